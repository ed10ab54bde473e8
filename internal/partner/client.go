// Package partner talks to the enrollment partner's feeds: course pricing,
// unit lookup and enrollment detail.
package partner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dlima/coursehub/internal/apperr"
	"github.com/dlima/coursehub/internal/model"
)

const (
	maxAttempts    = 2
	initialBackoff = 300 * time.Millisecond
)

// Unit is one row of the partner's unit-lookup feed.
type Unit struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	City  string `json:"city"`
	State string `json:"state"`
}

// EnrollmentQuery identifies the full location context required for the
// enrollment-detail feed.
type EnrollmentQuery struct {
	CourseID    string
	Institution string
	State       string
	City        string
	UnitID      string
}

// Client talks to the partner feed API. Each endpoint has its own timeout
// because pricing responses are an order of magnitude larger than lookups.
type Client struct {
	baseURL       string
	apiKey        string
	http          *http.Client
	priceTimeout  time.Duration
	enrollTimeout time.Duration
}

// NewClient creates a partner feed client.
func NewClient(baseURL, apiKey string, priceTimeout, enrollTimeout time.Duration) *Client {
	return &Client{
		baseURL:       baseURL,
		apiKey:        apiKey,
		http:          &http.Client{},
		priceTimeout:  priceTimeout,
		enrollTimeout: enrollTimeout,
	}
}

// CoursePrices fetches every price point for a course, filtered server-side
// by course identifier.
func (c *Client) CoursePrices(ctx context.Context, courseID string) ([]model.RawOfferingRecord, error) {
	q := url.Values{}
	q.Set("courseId", courseID)

	return c.fetchRecords(ctx, "/v1/prices?"+q.Encode(), c.priceTimeout)
}

// UnitCourses fetches every price point offered at one unit. Used by the
// search flow, which fans out across units.
func (c *Client) UnitCourses(ctx context.Context, unitID string) ([]model.RawOfferingRecord, error) {
	q := url.Values{}
	q.Set("unitId", unitID)

	return c.fetchRecords(ctx, "/v1/prices?"+q.Encode(), c.priceTimeout)
}

// Units resolves the partner's units for an institution, optionally narrowed
// by state and city.
func (c *Client) Units(ctx context.Context, institution, state, city string) ([]Unit, error) {
	q := url.Values{}
	q.Set("institution", institution)
	if state != "" {
		q.Set("state", state)
	}
	if city != "" {
		q.Set("city", city)
	}

	body, err := c.get(ctx, "/v1/units?"+q.Encode(), c.enrollTimeout)
	if err != nil {
		return nil, err
	}

	var units []Unit
	if err := json.Unmarshal(body, &units); err != nil {
		return nil, fmt.Errorf("failed to parse units response: %w", err)
	}
	return units, nil
}

// EnrollmentDetail fetches the richer per-unit price points used to enrich
// the enrollment tree when the caller supplies full location context.
func (c *Client) EnrollmentDetail(ctx context.Context, query EnrollmentQuery) ([]model.RawOfferingRecord, error) {
	q := url.Values{}
	q.Set("courseId", query.CourseID)
	q.Set("institution", query.Institution)
	q.Set("state", query.State)
	q.Set("city", query.City)
	q.Set("unitId", query.UnitID)

	return c.fetchRecords(ctx, "/v1/enrollment?"+q.Encode(), c.enrollTimeout)
}

func (c *Client) fetchRecords(ctx context.Context, path string, timeout time.Duration) ([]model.RawOfferingRecord, error) {
	body, err := c.get(ctx, path, timeout)
	if err != nil {
		return nil, err
	}

	var records []model.RawOfferingRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("failed to parse pricing response: %w", err)
	}
	return records, nil
}

// get performs a GET with one retry on retryable statuses (429/5xx). The
// timeout covers each attempt separately so a slow first attempt does not
// starve the retry.
func (c *Client) get(ctx context.Context, path string, timeout time.Duration) ([]byte, error) {
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(initialBackoff * time.Duration(attempt-1)):
			}
		}

		body, retryable, err := c.doOnce(ctx, path, timeout)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}
	}

	return nil, lastErr
}

func (c *Client) doOnce(ctx context.Context, path string, timeout time.Duration) (_ []byte, retryable bool, _ error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create partner request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, false, apperr.Timeout("partner feed")
		}
		return nil, true, fmt.Errorf("partner request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("failed to read partner response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return nil, true, apperr.Upstream("partner feed", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, false, apperr.Upstream("partner feed", resp.StatusCode)
	}

	return body, false, nil
}
