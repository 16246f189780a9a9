package itunes

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"songsearch/internal/services"
)

const (
	component       = "itunes"
	defaultTimeout  = 10 * time.Second
	maxPayloadBytes = 8 << 20
)

// Client issues search requests against an iTunes Search API compatible
// endpoint and returns the raw response body.
type Client struct {
	baseURL    string
	country    string
	media      string
	entity     string
	limit      int
	userAgent  string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the request timeout on the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

// WithCountry selects the storefront searched.
func WithCountry(country string) Option {
	return func(c *Client) {
		c.country = strings.ToLower(strings.TrimSpace(country))
	}
}

// WithFilters restricts results to a media type and entity, e.g. "music"/"song".
func WithFilters(media, entity string) Option {
	return func(c *Client) {
		c.media = strings.TrimSpace(media)
		c.entity = strings.TrimSpace(entity)
	}
}

// WithLimit caps the number of results returned. Zero keeps the catalog default.
func WithLimit(limit int) Option {
	return func(c *Client) {
		if limit > 0 {
			c.limit = limit
		}
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(agent string) Option {
	return func(c *Client) {
		c.userAgent = strings.TrimSpace(agent)
	}
}

// New creates a catalog search client.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, services.Wrap(services.ErrConfiguration, component, "new", "base url required", nil)
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, component, "new", "parse base url", err)
	}
	client := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// SearchURL builds the request URL for term.
func (c *Client) SearchURL(term string) (string, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse catalog url: %w", err)
	}
	params := endpoint.Query()
	params.Set("term", term)
	if c.country != "" {
		params.Set("country", c.country)
	}
	if c.media != "" {
		params.Set("media", c.media)
	}
	if c.entity != "" {
		params.Set("entity", c.entity)
	}
	if c.limit > 0 {
		params.Set("limit", strconv.Itoa(c.limit))
	}
	endpoint.RawQuery = params.Encode()
	return endpoint.String(), nil
}

// Search performs a catalog search and returns the undecoded response body.
// Every failure, including non-2xx statuses, carries services.ErrTransport.
func (c *Client) Search(ctx context.Context, term string) ([]byte, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, services.Wrap(services.ErrValidation, component, "search", "term must not be empty", nil)
	}
	target, err := c.SearchURL(term)
	if err != nil {
		return nil, services.Wrap(services.ErrTransport, component, "search", "build url", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, services.Wrap(services.ErrTransport, component, "search", "build request", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, services.Wrap(services.ErrTransport, component, "search", fmt.Sprintf("execute request (latency=%v)", latency), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &HTTPStatusError{URL: target, StatusCode: resp.StatusCode}
		return nil, services.Wrap(services.ErrTransport, component, "search", fmt.Sprintf("latency=%v", latency), statusErr)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes+1))
	if err != nil {
		return nil, services.Wrap(services.ErrTransport, component, "search", "read body", err)
	}
	if len(body) > maxPayloadBytes {
		return nil, services.Wrap(services.ErrTransport, component, "search",
			fmt.Sprintf("response body exceeds %d bytes", maxPayloadBytes), nil)
	}
	return body, nil
}
