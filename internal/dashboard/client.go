// Package dashboard is the presentation side of the service: it fetches the
// record list once per session and keeps every derived view in step with it.
package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/couchcryptid/pothole-dashboard/internal/domain"
)

// Client calls the dashboard HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the API rooted at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchDetections performs one GET of /api/detections.
func (c *Client) FetchDetections(ctx context.Context) ([]domain.DisplayRecord, error) {
	var records []domain.DisplayRecord
	if err := c.getJSON(ctx, "/api/detections", &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []domain.DisplayRecord{}
	}
	return records, nil
}

// FetchDetail performs one GET of /api/detections/{id}.
func (c *Client) FetchDetail(ctx context.Context, id string) (domain.DetectionDetail, error) {
	var detail domain.DetectionDetail
	if err := c.getJSON(ctx, "/api/detections/"+url.PathEscape(id), &detail); err != nil {
		return domain.DetectionDetail{}, err
	}
	return detail, nil
}

func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("fetch %s: %w", path, domain.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("fetch %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
