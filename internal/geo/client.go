// Package geo fetches the campus reference dataset used by the location
// selector, and caches it in process.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dlima/coursehub/internal/apperr"
)

// Campus is one row of the reverse-geocoding reference dataset.
type Campus struct {
	Name  string  `json:"name"`
	City  string  `json:"city"`
	State string  `json:"state"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

// Client talks to the campus lookup service.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
}

// NewClient creates a campus lookup client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		timeout: timeout,
	}
}

// Campuses retrieves the full reference dataset. There is no parameterized
// lookup upstream: every refresh is a full fetch.
func (c *Client) Campuses(ctx context.Context) ([]Campus, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/campuses", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create campuses request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperr.Timeout("campus lookup")
		}
		return nil, fmt.Errorf("campus lookup request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read campus lookup response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apperr.Upstream("campus lookup", resp.StatusCode)
	}

	var campuses []Campus
	if err := json.Unmarshal(body, &campuses); err != nil {
		return nil, fmt.Errorf("failed to parse campus lookup response: %w", err)
	}

	return campuses, nil
}
