package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL  = "https://api.themoviedb.org"
	defaultCacheTTL = 24 * time.Hour
)

var (
	// ErrUnauthorized is returned when TMDB rejects the credential.
	ErrUnauthorized = errors.New("tmdb: invalid api key")
	// ErrRateLimited is returned on HTTP 429.
	ErrRateLimited = errors.New("tmdb: rate limited")
)

// Client searches TMDB people. Results are cached per normalized name.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      *cache
	log        *slog.Logger
}

type Option func(*Client)

// WithBaseURL points the client at another host (tests, proxies).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) { c.cache = newCache(ttl) }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// NewClient creates a client. apiKey is either a v3 API key or a v4 read
// access token; tokens are sent as a bearer credential.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      newCache(defaultCacheTTL),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchPerson returns people matching name, most relevant first.
func (c *Client) SearchPerson(ctx context.Context, name string) ([]Person, error) {
	if people, ok := c.cache.get(name); ok {
		return people, nil
	}

	params := url.Values{}
	params.Set("query", name)
	params.Set("include_adult", "false")

	var sr personSearchResponse
	if err := c.get(ctx, "/3/search/person", params, &sr); err != nil {
		return nil, err
	}

	if c.log != nil {
		c.log.Debug("tmdb person search", "name", name, "results", len(sr.Results))
	}
	c.cache.set(name, sr.Results)
	return sr.Results, nil
}

// bearer reports whether the credential is a v4 token (a JWT).
func (c *Client) bearer() bool {
	return strings.Count(c.apiKey, ".") == 2
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if !c.bearer() {
		params.Set("api_key", c.apiKey)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.bearer() {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("tmdb %s: %s: %s", path, resp.Status, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
