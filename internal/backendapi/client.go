// Package backendapi talks to the external indicator backend. The backend
// owns the real geospatial computations; this client only relays its
// payloads and reports failure so callers can fall back to the local
// pipeline. One attempt per call, no retries: the fallback chain is
// "try remote, then build local", not a retry loop.
package backendapi

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Client fetches payloads from the backend service.
type Client struct {
	baseURL string
	client  *http.Client
}

// New creates a Client for the given base URL. A zero timeout keeps the
// platform default; a slow backend then blocks the request until the
// transport gives up.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 10,
				MaxConnsPerHost:     20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchATMs performs GET {base}/atms and returns the raw response body.
// Any network error or non-2xx status is an error; the body is relayed
// verbatim, never reshaped.
func (c *Client) FetchATMs(ctx context.Context) ([]byte, error) {
	return c.get(ctx, "/atms")
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, eris.Wrap(err, "backendapi: create request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, eris.Wrapf(err, "backendapi: GET %s", url)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		zap.L().Warn("backend responded with non-success status",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode),
		)
		return nil, eris.Errorf("backendapi: http %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrapf(err, "backendapi: read body from %s", url)
	}
	return body, nil
}
