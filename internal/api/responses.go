package api

import (
	"time"

	"github.com/vigil-sh/vigil/internal/domain"
	"github.com/vigil-sh/vigil/internal/monitor"
)

// StatusResponse is the response for GET /api/v1/status
type StatusResponse struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Sites         int    `json:"sites"`
	StoreFile     string `json:"store_file"`
	APIVersion    string `json:"api_version"`
}

// SiteResponse describes one monitored site
type SiteResponse struct {
	URL         string `json:"url"`
	Interval    int    `json:"interval"`
	Threshold   int    `json:"threshold"`
	Command     string `json:"command,omitempty"`
	Status      string `json:"status"`
	Failures    int    `json:"failures"`
	LastChecked string `json:"last_checked,omitempty"`
	ActionFired bool   `json:"action_fired"`
}

// SiteListResponse is the response for GET /api/v1/sites
type SiteListResponse struct {
	Sites []SiteResponse `json:"sites"`
}

// EventResponse describes one monitor event
type EventResponse struct {
	Timestamp string `json:"timestamp"`
	Kind      string `json:"kind"`
	Site      string `json:"site,omitempty"`
	Message   string `json:"message"`
}

// EventsResponse is the response for GET /api/v1/events
type EventsResponse struct {
	Events []EventResponse `json:"events"`
	Count  int             `json:"count"`
}

// ErrorResponse is the standard error envelope
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ToSiteResponse converts a domain site to its API representation
func ToSiteResponse(site domain.Site) SiteResponse {
	resp := SiteResponse{
		URL:         site.URL,
		Interval:    site.Interval,
		Threshold:   site.Threshold,
		Command:     site.Command,
		Status:      site.Status().String(),
		Failures:    site.Failures,
		ActionFired: site.ActionFired,
	}
	if !site.LastChecked.IsZero() {
		resp.LastChecked = site.LastChecked.Format(time.RFC3339Nano)
	}
	return resp
}

// ToEventResponse converts a domain event to its API representation
func ToEventResponse(event domain.Event) EventResponse {
	return EventResponse{
		Timestamp: event.Timestamp.Format(time.RFC3339Nano),
		Kind:      event.Kind.String(),
		Site:      event.Site,
		Message:   event.Message,
	}
}

// ToStatusResponse converts a monitor status to its API representation
func ToStatusResponse(status monitor.Status, storeFile string) StatusResponse {
	return StatusResponse{
		Status:        status.State,
		UptimeSeconds: status.UptimeSeconds(),
		Sites:         status.Sites,
		StoreFile:     storeFile,
		APIVersion:    "v1",
	}
}
