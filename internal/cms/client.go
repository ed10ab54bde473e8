// Package cms queries the content-management system for editorial course
// content.
package cms

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

// Client talks to the CMS REST API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	timeout time.Duration
}

// NewClient creates a CMS client. token may be empty for unauthenticated
// read access.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{},
		timeout: timeout,
	}
}

// courseEnvelope is the CMS list response: entities under data, pagination
// under meta.
type courseEnvelope struct {
	Data []struct {
		ID         int `json:"id"`
		Attributes struct {
			Slug            string `json:"slug"`
			CourseID        string `json:"courseId"`
			Name            string `json:"name"`
			Description     string `json:"description"`
			Methodology     string `json:"methodology"`
			CertificateText string `json:"certificateText"`
			Coordinator     struct {
				Name string `json:"name"`
			} `json:"coordinator"`
			Teachers []struct {
				Name string `json:"name"`
			} `json:"teachers"`
		} `json:"attributes"`
	} `json:"data"`
	Meta struct {
		Pagination struct {
			Page      int `json:"page"`
			PageSize  int `json:"pageSize"`
			PageCount int `json:"pageCount"`
			Total     int `json:"total"`
		} `json:"pagination"`
	} `json:"meta"`
}

// CourseBySlug fetches the editorial course entity for a slug. Returns
// apperr.ErrNotFound when the CMS has no entity for it; callers treat that
// as recoverable and proceed without editorial data.
func (c *Client) CourseBySlug(ctx context.Context, slug string) (*model.EditorialCourse, error) {
	q := url.Values{}
	q.Set("filters[slug][$eq]", slug)
	q.Set("populate", "coordinator,teachers")
	q.Set("sort", "updatedAt:desc")
	q.Set("pagination[pageSize]", "1")

	body, err := c.get(ctx, "/api/courses?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var envelope courseEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse cms course response: %w", err)
	}

	if len(envelope.Data) == 0 {
		return nil, apperr.NotFound("editorial course", slug)
	}

	attrs := envelope.Data[0].Attributes
	course := &model.EditorialCourse{
		Slug:            attrs.Slug,
		CourseID:        attrs.CourseID,
		Name:            attrs.Name,
		Description:     attrs.Description,
		Methodology:     attrs.Methodology,
		CertificateText: attrs.CertificateText,
		Coordinator:     attrs.Coordinator.Name,
	}
	for _, teacher := range attrs.Teachers {
		course.Teachers = append(course.Teachers, teacher.Name)
	}

	return course, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cms request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperr.Timeout("cms")
		}
		return nil, fmt.Errorf("cms request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read cms response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperr.NotFound("cms resource", path)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apperr.Upstream("cms", resp.StatusCode)
	}

	return body, nil
}
