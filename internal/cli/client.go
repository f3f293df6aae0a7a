package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/vigil-sh/vigil/internal/api"
	"github.com/vigil-sh/vigil/internal/constants"
)

// Client is an HTTP client for a running vigil instance
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: constants.DefaultRequestTimeout,
		},
	}
}

// GetStatus fetches the monitor status
func (c *Client) GetStatus() (api.StatusResponse, error) {
	var resp api.StatusResponse
	err := c.get("/api/v1/status", &resp)
	return resp, err
}

// GetSites fetches the monitored site list
func (c *Client) GetSites() (api.SiteListResponse, error) {
	var resp api.SiteListResponse
	err := c.get("/api/v1/sites", &resp)
	return resp, err
}

// GetEvents fetches the most recent events
func (c *Client) GetEvents(limit int) (api.EventsResponse, error) {
	path := "/api/v1/events"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var resp api.EventsResponse
	err := c.get(path, &resp)
	return resp, err
}

// get performs a GET request and decodes the JSON response into out
func (c *Client) get(path string, out interface{}) error {
	resp, err := c.httpClient.Get(strings.TrimRight(c.baseURL, "/") + path)
	if err != nil {
		return fmt.Errorf("connecting to vigil API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr api.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("API error (%s): %s", apiErr.Code, apiErr.Error)
		}
		return fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// formatAge renders a timestamp as a short relative age for table output
func formatAge(rfc3339 string) string {
	if rfc3339 == "" {
		return "-"
	}
	ts, err := time.Parse(time.RFC3339Nano, rfc3339)
	if err != nil {
		return "-"
	}

	age := time.Since(ts)
	switch {
	case age < time.Second:
		return "now"
	case age < time.Minute:
		return fmt.Sprintf("%ds ago", int(age.Seconds()))
	case age < time.Hour:
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	default:
		return fmt.Sprintf("%dh ago", int(age.Hours()))
	}
}
