package monitor

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vigil-sh/vigil/internal/domain"
)

// fakeRunner records invocations and returns a scripted result
type fakeRunner struct {
	mu    sync.Mutex
	ok    bool
	calls []string
}

func (r *fakeRunner) Run(ctx context.Context, command string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, command)
	return r.ok
}

func (r *fakeRunner) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// recorder collects notified events
type recorder struct {
	mu     sync.Mutex
	events []domain.Event
}

func (r *recorder) Notify(event domain.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recorder) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	msgs := make([]string, len(r.events))
	for i, e := range r.events {
		msgs[i] = e.Message
	}
	return msgs
}

func (r *recorder) kinds() []domain.EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds := make([]domain.EventKind, len(r.events))
	for i, e := range r.events {
		kinds[i] = e.Kind
	}
	return kinds
}

func newTestSite(threshold int, command string) domain.Site {
	return domain.Site{
		URL:       "https://example.com",
		Interval:  5,
		Threshold: threshold,
		Command:   command,
	}
}

func TestTrackerFiresOnceAtThreshold(t *testing.T) {
	runner := &fakeRunner{ok: true}
	rec := &recorder{}
	tracker := NewTracker(runner, rec)

	site := newTestSite(3, "restart-app")
	ctx := context.Background()

	tracker.Apply(ctx, &site, domain.Down)
	assert.Equal(t, 1, site.Failures)
	assert.Equal(t, 0, runner.callCount())

	tracker.Apply(ctx, &site, domain.Down)
	assert.Equal(t, 2, site.Failures)
	assert.Equal(t, 0, runner.callCount())

	tracker.Apply(ctx, &site, domain.Down)
	assert.Equal(t, 1, runner.callCount())
	assert.Equal(t, []string{"restart-app"}, runner.calls)

	msgs := rec.messages()
	require.Len(t, msgs, 5)
	assert.Equal(t, "https://example.com is DOWN. Failure 1/3", msgs[0])
	assert.Equal(t, "https://example.com is DOWN. Failure 2/3", msgs[1])
	assert.Equal(t, "https://example.com is DOWN. Failure 3/3", msgs[2])
	assert.Equal(t, "Running command: restart-app", msgs[3])
	assert.Equal(t, "Command succeeded for https://example.com", msgs[4])
}

func TestTrackerRearmsAfterSuccessfulAction(t *testing.T) {
	runner := &fakeRunner{ok: true}
	tracker := NewTracker(runner, &recorder{})

	site := newTestSite(3, "restart-app")
	ctx := context.Background()

	// A sustained outage re-fires the action every threshold failures
	for i := 0; i < 9; i++ {
		tracker.Apply(ctx, &site, domain.Down)
	}

	assert.Equal(t, 3, runner.callCount())
	assert.Equal(t, 0, site.Failures)
	assert.False(t, site.ActionFired)
}

func TestTrackerUpResetsBeforeThreshold(t *testing.T) {
	runner := &fakeRunner{ok: true}
	tracker := NewTracker(runner, &recorder{})

	site := newTestSite(3, "restart-app")
	ctx := context.Background()

	tracker.Apply(ctx, &site, domain.Down)
	tracker.Apply(ctx, &site, domain.Down)
	tracker.Apply(ctx, &site, domain.Up)

	assert.Equal(t, 0, site.Failures)
	assert.False(t, site.ActionFired)
	assert.Equal(t, 0, runner.callCount())
}

func TestTrackerUpAlwaysClearsState(t *testing.T) {
	runner := &fakeRunner{ok: false}
	tracker := NewTracker(runner, &recorder{})

	site := newTestSite(2, "restart-app")
	ctx := context.Background()

	// Reach threshold with a failing action: fired flag is set
	tracker.Apply(ctx, &site, domain.Down)
	tracker.Apply(ctx, &site, domain.Down)
	require.True(t, site.ActionFired)

	tracker.Apply(ctx, &site, domain.Up)
	assert.Equal(t, 0, site.Failures)
	assert.False(t, site.ActionFired)
}

func TestTrackerFailedActionSuppressesRetries(t *testing.T) {
	runner := &fakeRunner{ok: false}
	rec := &recorder{}
	tracker := NewTracker(runner, rec)

	site := newTestSite(2, "restart-app")
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		tracker.Apply(ctx, &site, domain.Down)
	}

	// Only the threshold crossing attempted the command
	assert.Equal(t, 1, runner.callCount())
	assert.True(t, site.ActionFired)
	// Counter keeps growing so the operator sees the outage length
	assert.Equal(t, 6, site.Failures)
	assert.Contains(t, rec.messages(), "https://example.com is DOWN. Failure 6/2")
	assert.Contains(t, rec.kinds(), domain.EventActionFailed)
}

func TestTrackerNoCommandNeverFires(t *testing.T) {
	runner := &fakeRunner{ok: true}
	tracker := NewTracker(runner, &recorder{})

	site := newTestSite(2, "")
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		tracker.Apply(ctx, &site, domain.Down)
	}

	assert.Equal(t, 0, runner.callCount())
	assert.Equal(t, 5, site.Failures)
	assert.False(t, site.ActionFired)
}

func TestTrackerRecoveredEventOnlyOnTransition(t *testing.T) {
	runner := &fakeRunner{ok: true}
	rec := &recorder{}
	tracker := NewTracker(runner, rec)

	site := newTestSite(3, "")
	ctx := context.Background()

	tracker.Apply(ctx, &site, domain.Up)
	tracker.Apply(ctx, &site, domain.Down)
	tracker.Apply(ctx, &site, domain.Up)
	tracker.Apply(ctx, &site, domain.Up)

	kinds := rec.kinds()
	require.Len(t, kinds, 4)
	assert.Equal(t, domain.EventSiteUp, kinds[0])
	assert.Equal(t, domain.EventSiteDown, kinds[1])
	assert.Equal(t, domain.EventSiteRecovered, kinds[2])
	assert.Equal(t, domain.EventSiteUp, kinds[3])
}

func TestTrackerFailureCountStrictlyIncrements(t *testing.T) {
	runner := &fakeRunner{ok: true}
	tracker := NewTracker(runner, &recorder{})

	site := newTestSite(5, "restart-app")
	ctx := context.Background()

	for want := 1; want < 5; want++ {
		tracker.Apply(ctx, &site, domain.Down)
		assert.Equal(t, want, site.Failures)
	}
}
