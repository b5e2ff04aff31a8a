package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://www.omdbapi.com"

// Sentinel errors for OMDb responses.
var (
	// ErrUnavailable indicates the service could not be reached at all.
	ErrUnavailable = errors.New("omdb unreachable")
	// ErrUnauthorized indicates the API key was rejected.
	ErrUnauthorized = errors.New("omdb: invalid api key")
)

// APIError is a logical failure reported by OMDb with Response "False".
// Message is the service's own text, e.g. "Movie not found!".
type APIError struct {
	Message string
}

func (e *APIError) Error() string { return e.Message }

// Client is an OMDb API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "omdb")
	}
}

// NewClient creates a new OMDb client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search fetches one page (1-based) of results for a free-text query.
func (c *Client) Search(ctx context.Context, query string, page int) (*SearchPage, error) {
	params := url.Values{}
	params.Set("s", query)
	params.Set("page", strconv.Itoa(page))

	var resp searchResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return nil, err
	}

	if resp.Response != "True" || resp.Search == nil {
		msg := resp.Error
		if msg == "" {
			msg = "No movies found."
		}
		return nil, &APIError{Message: msg}
	}

	total, err := strconv.Atoi(resp.TotalResults)
	if err != nil {
		total = 0
	}

	if c.log != nil {
		c.log.Debug("search page fetched", "query", query, "page", page, "results", len(resp.Search), "total", total)
	}

	return &SearchPage{Results: resp.Search, Total: total}, nil
}

// Title fetches the full record for an IMDb id with the long plot.
func (c *Client) Title(ctx context.Context, imdbID string) (*Title, error) {
	params := url.Values{}
	params.Set("i", imdbID)
	params.Set("plot", "full")

	var resp titleResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return nil, err
	}

	if resp.Response != "True" {
		msg := resp.Error
		if msg == "" {
			msg = "Could not load details."
		}
		return nil, &APIError{Message: msg}
	}

	return &resp.Title, nil
}

func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	params.Set("apikey", c.apiKey)
	endpoint := c.baseURL + "/?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("OMDb API error: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
