package domain

import (
	"fmt"
	"net/url"
	"time"
)

// Site represents one monitored HTTP(S) endpoint with its own check
// schedule and recovery policy.
//
// URL, Interval, Threshold, and Command are configuration and never change
// after the site is created. Failures, LastChecked, and ActionFired are
// monitoring state owned by the scheduler loop; they are reset when a site
// list is loaded from disk, so an in-progress outage does not survive a
// restart.
type Site struct {
	// URL is the absolute endpoint URL, http or https scheme required
	URL string `json:"url"`
	// Interval is the number of seconds between checks
	Interval int `json:"interval"`
	// Threshold is the number of consecutive failures that triggers the command
	Threshold int `json:"threshold"`
	// Command is the recovery shell command; empty means no action
	Command string `json:"command,omitempty"`

	// Failures counts consecutive failed probes; mutated only by the tracker
	Failures int `json:"failures"`
	// LastChecked is when the site was last probed; zero if never
	LastChecked time.Time `json:"last_checked,omitempty"`
	// ActionFired is true once the recovery command has been invoked for
	// the current unresolved outage
	ActionFired bool `json:"action_fired"`
}

// WithDefaults returns a copy of the site with default values applied
func (s Site) WithDefaults() Site {
	result := s
	if result.Interval == 0 {
		result.Interval = DefaultInterval
	}
	if result.Threshold == 0 {
		result.Threshold = DefaultThreshold
	}
	return result
}

// Default configuration values for new sites
const (
	DefaultInterval  = 5
	DefaultThreshold = 3
)

// Validate checks the site's configuration fields
func (s Site) Validate() error {
	if s.URL == "" {
		return fmt.Errorf("%w: url is empty", ErrInvalidURL)
	}
	u, err := url.Parse(s.URL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: %q must include an http or https scheme", ErrInvalidURL, s.URL)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: %q has no host", ErrInvalidURL, s.URL)
	}
	if s.Interval < 1 {
		return fmt.Errorf("%w: interval must be a positive number of seconds", ErrInvalidSite)
	}
	if s.Threshold < 1 {
		return fmt.Errorf("%w: threshold must be a positive number of failures", ErrInvalidSite)
	}
	return nil
}

// ResetState clears the monitoring state fields to their initial values
func (s *Site) ResetState() {
	s.Failures = 0
	s.LastChecked = time.Time{}
	s.ActionFired = false
}

// Due reports whether the site should be checked at the given time
func (s Site) Due(now time.Time) bool {
	if s.LastChecked.IsZero() {
		return true
	}
	return now.Sub(s.LastChecked) >= time.Duration(s.Interval)*time.Second
}

// Status derives the site's current status from its monitoring state
func (s Site) Status() SiteStatus {
	switch {
	case s.LastChecked.IsZero():
		return StatusUnknown
	case s.ActionFired:
		return StatusActionFired
	case s.Failures == 0:
		return StatusHealthy
	case s.Failures < s.Threshold:
		return StatusDegraded
	default:
		return StatusAlerting
	}
}
