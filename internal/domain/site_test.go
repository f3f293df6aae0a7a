package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSiteValidate(t *testing.T) {
	tests := []struct {
		name    string
		site    Site
		wantErr error
	}{
		{
			name: "valid http",
			site: Site{URL: "http://example.com", Interval: 5, Threshold: 3},
		},
		{
			name: "valid https with path",
			site: Site{URL: "https://example.com/health", Interval: 1, Threshold: 1},
		},
		{
			name:    "missing scheme",
			site:    Site{URL: "example.com", Interval: 5, Threshold: 3},
			wantErr: ErrInvalidURL,
		},
		{
			name:    "unsupported scheme",
			site:    Site{URL: "ftp://example.com", Interval: 5, Threshold: 3},
			wantErr: ErrInvalidURL,
		},
		{
			name:    "empty url",
			site:    Site{Interval: 5, Threshold: 3},
			wantErr: ErrInvalidURL,
		},
		{
			name:    "scheme only",
			site:    Site{URL: "http://", Interval: 5, Threshold: 3},
			wantErr: ErrInvalidURL,
		},
		{
			name:    "zero interval",
			site:    Site{URL: "http://example.com", Threshold: 3},
			wantErr: ErrInvalidSite,
		},
		{
			name:    "negative threshold",
			site:    Site{URL: "http://example.com", Interval: 5, Threshold: -1},
			wantErr: ErrInvalidSite,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.site.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestSiteWithDefaults(t *testing.T) {
	s := Site{URL: "http://example.com"}.WithDefaults()
	assert.Equal(t, DefaultInterval, s.Interval)
	assert.Equal(t, DefaultThreshold, s.Threshold)

	// Explicit values are preserved
	s = Site{URL: "http://example.com", Interval: 30, Threshold: 5}.WithDefaults()
	assert.Equal(t, 30, s.Interval)
	assert.Equal(t, 5, s.Threshold)
}

func TestSiteDue(t *testing.T) {
	now := time.Now()
	s := Site{URL: "http://example.com", Interval: 5, Threshold: 3}

	// Never checked
	assert.True(t, s.Due(now))

	// Checked just now
	s.LastChecked = now
	assert.False(t, s.Due(now))

	// Interval not yet elapsed
	assert.False(t, s.Due(now.Add(4*time.Second)))

	// Interval elapsed exactly
	assert.True(t, s.Due(now.Add(5*time.Second)))

	// Interval long past
	assert.True(t, s.Due(now.Add(time.Minute)))
}

func TestSiteResetState(t *testing.T) {
	s := Site{
		URL:         "http://example.com",
		Interval:    5,
		Threshold:   3,
		Failures:    2,
		LastChecked: time.Now(),
		ActionFired: true,
	}
	s.ResetState()

	assert.Equal(t, 0, s.Failures)
	assert.True(t, s.LastChecked.IsZero())
	assert.False(t, s.ActionFired)
	// Configuration is untouched
	assert.Equal(t, "http://example.com", s.URL)
	assert.Equal(t, 5, s.Interval)
}

func TestSiteStatus(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		site Site
		want SiteStatus
	}{
		{"never checked", Site{Threshold: 3}, StatusUnknown},
		{"healthy", Site{Threshold: 3, LastChecked: now}, StatusHealthy},
		{"degraded", Site{Threshold: 3, LastChecked: now, Failures: 1}, StatusDegraded},
		{"alerting", Site{Threshold: 3, LastChecked: now, Failures: 3}, StatusAlerting},
		{"action fired", Site{Threshold: 3, LastChecked: now, Failures: 4, ActionFired: true}, StatusActionFired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.site.Status())
		})
	}
}
