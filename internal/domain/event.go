package domain

import (
	"fmt"
	"time"
)

// EventKind classifies monitor events
type EventKind string

const (
	EventSiteAdded     EventKind = "site_added"
	EventSiteRemoved   EventKind = "site_removed"
	EventSiteUp        EventKind = "site_up"
	EventSiteDown      EventKind = "site_down"
	EventSiteRecovered EventKind = "site_recovered"
	EventActionStart   EventKind = "action_start"
	EventActionOK      EventKind = "action_ok"
	EventActionFailed  EventKind = "action_failed"
	EventMonitorStart  EventKind = "monitor_start"
	EventMonitorStop   EventKind = "monitor_stop"
)

// String returns the string representation of EventKind
func (k EventKind) String() string {
	return string(k)
}

// Event represents a single timestamped monitor event. Events flow from the
// scheduler and CLI to the console, the daily log file, and API subscribers.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Kind      EventKind `json:"kind"`
	// Site is the URL of the site the event concerns; empty for
	// monitor-level events
	Site    string `json:"site,omitempty"`
	Message string `json:"message"`
}

// NewEvent creates an event stamped with the current time
func NewEvent(kind EventKind, site, format string, args ...interface{}) Event {
	return Event{
		Timestamp: time.Now(),
		Kind:      kind,
		Site:      site,
		Message:   fmt.Sprintf(format, args...),
	}
}

// Line formats the event as a human-readable log line without a trailing
// newline
func (e Event) Line() string {
	return fmt.Sprintf("%s %s", e.Timestamp.Format("2006-01-02 15:04:05"), e.Message)
}
