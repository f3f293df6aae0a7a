package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vigil-sh/vigil/internal/domain"
)

func TestProbeStatusClasses(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   domain.Outcome
	}{
		{"ok", http.StatusOK, domain.Up},
		{"created", http.StatusCreated, domain.Up},
		{"no content", http.StatusNoContent, domain.Up},
		{"not modified", http.StatusNotModified, domain.Up},
		{"not found", http.StatusNotFound, domain.Down},
		{"teapot", http.StatusTeapot, domain.Down},
		{"server error", http.StatusInternalServerError, domain.Down},
		{"bad gateway", http.StatusBadGateway, domain.Down},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			p := NewHTTPProber(time.Second)
			assert.Equal(t, tt.want, p.Probe(context.Background(), srv.URL))
		})
	}
}

func TestProbeFollowsRedirects(t *testing.T) {
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer target.Close()

	redirecting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target.URL, http.StatusFound)
	}))
	defer redirecting.Close()

	p := NewHTTPProber(time.Second)
	assert.Equal(t, domain.Up, p.Probe(context.Background(), redirecting.URL))
}

func TestProbeConnectionRefused(t *testing.T) {
	// Grab a port that nothing is listening on
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	p := NewHTTPProber(time.Second)
	assert.Equal(t, domain.Down, p.Probe(context.Background(), url))
}

func TestProbeTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	p := NewHTTPProber(50 * time.Millisecond)
	start := time.Now()
	outcome := p.Probe(context.Background(), srv.URL)

	assert.Equal(t, domain.Down, outcome)
	assert.Less(t, time.Since(start), 400*time.Millisecond)
}

func TestProbeInvalidURL(t *testing.T) {
	p := NewHTTPProber(time.Second)
	assert.Equal(t, domain.Down, p.Probe(context.Background(), "http://bad url with spaces"))
}

func TestProbeContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewHTTPProber(time.Second)
	assert.Equal(t, domain.Down, p.Probe(ctx, srv.URL))
}
