// Package probe performs single health checks against site URLs.
package probe

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/vigil-sh/vigil/internal/domain"
)

// Prober performs one health check against a URL and classifies the
// outcome. Implementations never return an error: every failure mode is a
// Down classification.
type Prober interface {
	Probe(ctx context.Context, url string) domain.Outcome
}

// HTTPProber probes sites with a single GET request per check. Responses
// with a status below 400 count as Up; everything else, including
// transport errors, timeouts, and DNS failures, counts as Down.
type HTTPProber struct {
	client *http.Client
}

// NewHTTPProber creates a prober whose individual checks are bounded by
// timeout
func NewHTTPProber(timeout time.Duration) *HTTPProber {
	return &HTTPProber{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Probe performs one GET request against url
func (p *HTTPProber) Probe(ctx context.Context, url string) domain.Outcome {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.Down
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return domain.Down
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 400 {
		return domain.Up
	}
	return domain.Down
}
