package monitor

import (
	"context"

	"github.com/vigil-sh/vigil/internal/action"
	"github.com/vigil-sh/vigil/internal/domain"
	"github.com/vigil-sh/vigil/internal/metrics"
)

// Notifier receives monitor events
type Notifier interface {
	Notify(event domain.Event)
}

// Tracker is the per-site failure state machine. It consumes probe
// outcomes, maintains the consecutive failure count and the fired flag,
// and invokes the recovery action when a site's threshold is reached.
//
// Reset policy: a successful action invocation resets the failure count to
// zero and leaves the fired flag clear, so a sustained outage re-fires the
// action every threshold further consecutive failures. A failed invocation
// sets the fired flag instead, suppressing further attempts until the site
// next comes back up.
type Tracker struct {
	runner   action.Runner
	notifier Notifier
}

// NewTracker creates a tracker that runs recovery commands with runner and
// reports transitions to notifier
func NewTracker(runner action.Runner, notifier Notifier) *Tracker {
	return &Tracker{
		runner:   runner,
		notifier: notifier,
	}
}

// Apply updates the site's monitoring state for one probe outcome. The
// action invocation, when triggered, runs synchronously; it blocks only
// this site's check cycle.
func (t *Tracker) Apply(ctx context.Context, site *domain.Site, outcome domain.Outcome) {
	if outcome == domain.Up {
		t.applyUp(site)
		return
	}
	t.applyDown(ctx, site)
}

func (t *Tracker) applyUp(site *domain.Site) {
	recovered := site.Failures > 0 || site.ActionFired
	failures := site.Failures

	site.Failures = 0
	site.ActionFired = false

	if recovered {
		t.notifier.Notify(domain.NewEvent(domain.EventSiteRecovered, site.URL,
			"%s is UP (recovered after %d failed checks)", site.URL, failures))
		return
	}
	t.notifier.Notify(domain.NewEvent(domain.EventSiteUp, site.URL, "%s is UP", site.URL))
}

func (t *Tracker) applyDown(ctx context.Context, site *domain.Site) {
	site.Failures++

	t.notifier.Notify(domain.NewEvent(domain.EventSiteDown, site.URL,
		"%s is DOWN. Failure %d/%d", site.URL, site.Failures, site.Threshold))

	if site.Failures < site.Threshold || site.ActionFired {
		return
	}
	if site.Command == "" {
		// Nothing to fire; the count keeps growing so the operator can
		// see how long the outage has lasted
		return
	}

	t.notifier.Notify(domain.NewEvent(domain.EventActionStart, site.URL,
		"Running command: %s", site.Command))

	if t.runner.Run(ctx, site.Command) {
		metrics.ActionInvocationsTotal.WithLabelValues("success").Inc()
		t.notifier.Notify(domain.NewEvent(domain.EventActionOK, site.URL,
			"Command succeeded for %s", site.URL))
		// Rearm: the outage must last another full threshold of failures
		// before the action fires again
		site.Failures = 0
		return
	}

	metrics.ActionInvocationsTotal.WithLabelValues("failure").Inc()
	t.notifier.Notify(domain.NewEvent(domain.EventActionFailed, site.URL,
		"Command failed for %s", site.URL))
	// Suppress retries for the rest of this outage epoch
	site.ActionFired = true
}
