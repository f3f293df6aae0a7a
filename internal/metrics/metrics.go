// Package metrics exposes instantaneous prometheus counters for the
// monitor. There is no storage behind them; scraping is optional.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Registry is the custom Prometheus registry for vigil metrics.
var Registry = prometheus.NewRegistry()

var (
	ProbeChecksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vigil",
			Subsystem: "probe",
			Name:      "checks_total",
			Help:      "Total number of probe checks by result",
		},
		[]string{"result"},
	)

	ProbeDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "vigil",
			Subsystem: "probe",
			Name:      "duration_seconds",
			Help:      "Probe latency in seconds",
			Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
	)

	ActionInvocationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vigil",
			Subsystem: "action",
			Name:      "invocations_total",
			Help:      "Total number of recovery command invocations by result",
		},
		[]string{"result"},
	)

	Sites = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "vigil",
			Name:      "sites",
			Help:      "Number of monitored sites",
		},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		ProbeChecksTotal,
		ProbeDuration,
		ActionInvocationsTotal,
		Sites,
	)
}
