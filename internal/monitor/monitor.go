// Package monitor contains the polling scheduler and the per-site failure
// state machine that together decide when sites are probed and when
// recovery actions fire.
package monitor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/vigil-sh/vigil/internal/action"
	"github.com/vigil-sh/vigil/internal/constants"
	"github.com/vigil-sh/vigil/internal/domain"
	"github.com/vigil-sh/vigil/internal/metrics"
	"github.com/vigil-sh/vigil/internal/probe"
)

// SiteStore persists the site list
type SiteStore interface {
	Save(sites []domain.Site) error
}

// Config holds the monitor's collaborators and settings
type Config struct {
	// Granularity is the polling tick; it bounds the minimum meaningful
	// site interval and the timing jitter of each check
	Granularity time.Duration
	Store       SiteStore
	Prober      probe.Prober
	Runner      action.Runner
	Notifier    Notifier
	Logger      *slog.Logger
}

// Monitor drives the polling loop. Sites are scanned sequentially within
// each tick; all site state mutation happens from the loop goroutine, and
// the mutex only guards concurrent readers (API, TUI).
type Monitor struct {
	mu    sync.RWMutex
	sites []domain.Site

	tracker  *Tracker
	prober   probe.Prober
	store    SiteStore
	notifier Notifier
	logger   *slog.Logger

	granularity time.Duration
	now         func() time.Time

	state     string // "stopped" or "running"
	startedAt time.Time
}

// New creates a monitor over the given sites
func New(sites []domain.Site, config Config) *Monitor {
	if config.Granularity <= 0 {
		config.Granularity = constants.DefaultPollGranularity
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	metrics.Sites.Set(float64(len(sites)))

	return &Monitor{
		sites:       sites,
		tracker:     NewTracker(config.Runner, config.Notifier),
		prober:      config.Prober,
		store:       config.Store,
		notifier:    config.Notifier,
		logger:      config.Logger,
		granularity: config.Granularity,
		now:         time.Now,
		state:       "stopped",
	}
}

// Run executes the polling loop until ctx is cancelled. The current tick
// always completes before the loop exits, and the site list is persisted
// one final time on the way out, so no site check is left half-applied.
func (m *Monitor) Run(ctx context.Context) error {
	m.mu.Lock()
	m.state = "running"
	m.startedAt = m.now()
	count := len(m.sites)
	m.mu.Unlock()

	m.notifier.Notify(domain.NewEvent(domain.EventMonitorStart, "",
		"Monitoring started for %d site(s)", count))

	ticker := time.NewTicker(m.granularity)
	defer ticker.Stop()

	// First scan immediately: sites that have never been checked are due
	m.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			m.stop()
			return nil
		case <-ticker.C:
			m.tick(ctx)
		}
	}
}

// tick scans all sites once and checks the ones that are due
func (m *Monitor) tick(ctx context.Context) {
	for i := range m.sites {
		if ctx.Err() != nil {
			return
		}

		m.mu.RLock()
		due := m.sites[i].Due(m.now())
		url := m.sites[i].URL
		m.mu.RUnlock()
		if !due {
			continue
		}

		start := m.now()
		outcome := m.prober.Probe(ctx, url)
		metrics.ProbeDuration.Observe(m.now().Sub(start).Seconds())
		metrics.ProbeChecksTotal.WithLabelValues(outcome.String()).Inc()

		m.mu.Lock()
		m.sites[i].LastChecked = m.now()
		m.tracker.Apply(ctx, &m.sites[i], outcome)
		m.mu.Unlock()

		m.persist()
	}
}

// persist overwrites the store with the current site list. A write failure
// threatens configuration durability, so it is surfaced loudly, but it
// does not stop the monitor.
func (m *Monitor) persist() {
	if m.store == nil {
		return
	}
	if err := m.store.Save(m.Sites()); err != nil {
		m.logger.Error("persisting site state", "error", err)
	}
}

func (m *Monitor) stop() {
	m.persist()

	m.mu.Lock()
	m.state = "stopped"
	m.mu.Unlock()

	m.notifier.Notify(domain.NewEvent(domain.EventMonitorStop, "", "Monitoring stopped"))
}

// Sites returns a snapshot of the monitored sites
func (m *Monitor) Sites() []domain.Site {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snapshot := make([]domain.Site, len(m.sites))
	copy(snapshot, m.sites)
	return snapshot
}

// Status describes the monitor's current state
type Status struct {
	State     string
	StartedAt time.Time
	Sites     int
}

// UptimeSeconds returns how long the monitor has been running
func (s Status) UptimeSeconds() int64 {
	if s.State != "running" || s.StartedAt.IsZero() {
		return 0
	}
	return int64(time.Since(s.StartedAt).Seconds())
}

// Status returns the monitor's current status
func (m *Monitor) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Status{
		State:     m.state,
		StartedAt: m.startedAt,
		Sites:     len(m.sites),
	}
}
