// Package client provides an HTTP client for the review service.
package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/evcraddock/review-analyzer/internal/review"
)

// Client is an HTTP client for the review service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ListOptions controls filtering for ListReviews. Empty fields are omitted.
type ListOptions struct {
	Location  string
	StartDate string
	EndDate   string
}

// ListReviews returns reviews matching opts with their sentiment scores.
func (c *Client) ListReviews(opts ListOptions) ([]review.Scored, error) {
	q := url.Values{}
	if opts.Location != "" {
		q.Set("location", opts.Location)
	}
	if opts.StartDate != "" {
		q.Set("start_date", opts.StartDate)
	}
	if opts.EndDate != "" {
		q.Set("end_date", opts.EndDate)
	}

	path := "/"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	var reviews []review.Scored
	if err := c.do(req, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// SubmitReview posts a new review and returns it as stored by the server.
func (c *Client) SubmitReview(body, location string) (*review.Review, error) {
	form := url.Values{"ReviewBody": {body}, "Location": {location}}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var r review.Review
	if err := c.do(req, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// do executes an HTTP request and decodes the JSON response into result.
func (c *Client) do(req *http.Request, result interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return fmt.Errorf("%s", errResp.Error)
		}
		return fmt.Errorf("server error: %s", http.StatusText(resp.StatusCode))
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
