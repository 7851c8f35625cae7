// Package apiclient is a thin HTTP client for the galleria search API.
// It talks JSON to a running galleria server; for in-process use, prefer
// the embedded client in the repository root.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// ErrBadRequest signals that the server rejected the request as invalid.
var ErrBadRequest = errors.New("bad request")

// ErrUnhealthy signals a failing health check.
var ErrUnhealthy = errors.New("server unhealthy")

// Client calls the galleria HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout sets the per-request timeout (default 30s).
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// New creates a Client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Search runs a text search.
func (c *Client) Search(ctx context.Context, req *SearchRequest) (*ResultList, error) {
	return c.postSearch(ctx, "/v1/search", req)
}

// SearchByImage finds artworks visually similar to the image at the URL.
func (c *Client) SearchByImage(ctx context.Context, req *ImageSearchRequest) (*ResultList, error) {
	return c.postSearch(ctx, "/v1/search/image", req)
}

// SearchByMood searches by emotional mood.
func (c *Client) SearchByMood(ctx context.Context, req *MoodSearchRequest) (*ResultList, error) {
	return c.postSearch(ctx, "/v1/search/mood", req)
}

// SearchByColor searches by dominant color.
func (c *Client) SearchByColor(ctx context.Context, req *ColorSearchRequest) (*ResultList, error) {
	return c.postSearch(ctx, "/v1/search/color", req)
}

// SearchByStyle searches by artistic style.
func (c *Client) SearchByStyle(ctx context.Context, req *StyleSearchRequest) (*ResultList, error) {
	return c.postSearch(ctx, "/v1/search/style", req)
}

// Suggestions expands a partial query into related search terms.
func (c *Client) Suggestions(ctx context.Context, query string, limit int) ([]string, error) {
	q := url.Values{"q": {query}}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var resp termList
	if err := c.get(ctx, "/v1/suggestions?"+q.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("suggestions: %w", err)
	}
	return resp.Items, nil
}

// Trending returns currently trending search terms.
func (c *Client) Trending(ctx context.Context, limit int) ([]string, error) {
	path := "/v1/trending"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var resp termList
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("trending: %w", err)
	}
	return resp.Items, nil
}

// Health checks the server and its store.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return fmt.Errorf("health: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("health: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health: %w: status %d", ErrUnhealthy, resp.StatusCode)
	}
	return nil
}

func (c *Client) postSearch(ctx context.Context, path string, body any) (*ResultList, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%s: encode request: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	var out ResultList
	if err := c.do(req, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var e apiError
		if json.Unmarshal(data, &e) == nil && e.Message != "" {
			return fmt.Errorf("%w: %s (%s)", errFor(resp.StatusCode), e.Message, e.Code)
		}
		return fmt.Errorf("%w: status %d", errFor(resp.StatusCode), resp.StatusCode)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func errFor(status int) error {
	if status == http.StatusBadRequest {
		return ErrBadRequest
	}
	return fmt.Errorf("unexpected status %d", status)
}
