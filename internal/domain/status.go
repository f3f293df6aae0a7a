package domain

// SiteStatus represents the monitoring status of a site
type SiteStatus string

const (
	// StatusUnknown means the site has not been probed yet
	StatusUnknown SiteStatus = "unknown"
	// StatusHealthy means the last probe succeeded
	StatusHealthy SiteStatus = "healthy"
	// StatusDegraded means the site has failed checks but is below threshold
	StatusDegraded SiteStatus = "degraded"
	// StatusAlerting means the failure threshold has been reached
	StatusAlerting SiteStatus = "alerting"
	// StatusActionFired means the recovery command has run this outage
	StatusActionFired SiteStatus = "action_fired"
)

// String returns the string representation of SiteStatus
func (s SiteStatus) String() string {
	return string(s)
}

// Outcome is the classification of a single probe attempt
type Outcome int

const (
	// Up means the probe received an HTTP success response
	Up Outcome = iota
	// Down means the probe failed at transport level or received an error status
	Down
)

// String returns the string representation of Outcome
func (o Outcome) String() string {
	if o == Up {
		return "up"
	}
	return "down"
}
