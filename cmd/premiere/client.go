package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	v1 "github.com/vmunix/premiere/internal/api/v1"
	"github.com/vmunix/premiere/internal/browse"
	"github.com/vmunix/premiere/internal/details"
)

// Client wraps HTTP calls to the premiere server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new premiere API client.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: serverURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// APIError is an error response from the server.
type APIError struct {
	Status  int
	Code    string `json:"code"`
	Message string `json:"error"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error %d", e.Status)
	}
	return e.Message
}

func (c *Client) do(method, path string, body, result any) error {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal error: %w", err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.baseURL+path, r)
	if err != nil {
		return fmt.Errorf("request creation failed: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		raw, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(raw, apiErr) != nil || apiErr.Message == "" {
			apiErr.Message = fmt.Sprintf("server error %d: %s", resp.StatusCode, bytes.TrimSpace(raw))
		}
		return apiErr
	}

	if result != nil && resp.StatusCode != http.StatusNoContent {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

// Search replaces the result set with the first page of query. With refresh
// set the server drops its cached pages for query first.
func (c *Client) Search(query string, refresh bool) (*browse.Snapshot, error) {
	body := map[string]any{"query": query}
	if refresh {
		body["refresh"] = true
	}
	var snap browse.Snapshot
	if err := c.do(http.MethodPost, "/api/v1/search", body, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// More appends the next page.
func (c *Client) More() (*browse.Snapshot, error) {
	var snap browse.Snapshot
	if err := c.do(http.MethodPost, "/api/v1/search/more", nil, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Results returns the current result set.
func (c *Client) Results() (*browse.Snapshot, error) {
	var snap browse.Snapshot
	if err := c.do(http.MethodGet, "/api/v1/results", nil, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// OpenDetails opens the detail view for an IMDb id.
func (c *Client) OpenDetails(imdbID string) (*details.View, error) {
	var v details.View
	if err := c.do(http.MethodPost, "/api/v1/details", map[string]string{"imdb_id": imdbID}, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Details returns the detail view.
func (c *Client) Details() (*details.View, error) {
	var v details.View
	if err := c.do(http.MethodGet, "/api/v1/details", nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// CloseDetails discards the detail view.
func (c *Client) CloseDetails() error {
	return c.do(http.MethodDelete, "/api/v1/details", nil, nil)
}

// Events lists recent events.
func (c *Client) Events(limit, offset int) (*v1.ListEventsResponse, error) {
	q := url.Values{}
	q.Set("limit", fmt.Sprint(limit))
	q.Set("offset", fmt.Sprint(offset))

	var resp v1.ListEventsResponse
	if err := c.do(http.MethodGet, "/api/v1/events?"+q.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// EntityEvents returns the history of one search or detail view.
func (c *Client) EntityEvents(entityType string, entityID int64) (*v1.ListEventsResponse, error) {
	q := url.Values{}
	q.Set("entity_type", entityType)
	q.Set("entity_id", fmt.Sprint(entityID))

	var resp v1.ListEventsResponse
	if err := c.do(http.MethodGet, "/api/v1/events?"+q.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Status returns the server status.
func (c *Client) Status() (*v1.StatusResponse, error) {
	var resp v1.StatusResponse
	if err := c.do(http.MethodGet, "/api/v1/status", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
