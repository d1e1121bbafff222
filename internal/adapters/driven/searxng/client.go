package searxng

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/searxng-mcp/internal/config"
	"github.com/custodia-labs/searxng-mcp/internal/core/domain"
	"github.com/custodia-labs/searxng-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/searxng-mcp/internal/logger"
)

const (
	// searchPath is the SearXNG search endpoint.
	searchPath = "/search"

	// maxBodySize caps how much of the upstream response is read.
	maxBodySize = 1 << 20 // 1MB

	// userAgent identifies the adapter to the instance. SearXNG
	// rejects some default client UAs as bots.
	userAgent = "searxng-mcp/" + Version

	// Version is the adapter version reported upstream.
	Version = "0.1.0"
)

// Ensure Client implements the driven port.
var _ driven.SearchEngine = (*Client)(nil)

// Client is an HTTP client for the SearXNG JSON API.
// It is stateless apart from an optional outbound throttle and is safe
// for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
	limiter    *rate.Limiter
}

// NewClient creates a client from the resolved configuration.
func NewClient(cfg *config.Config) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		timeout:    cfg.Timeout,
	}

	if cfg.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}

	return c
}

// Search issues one upstream query. The query is expected to be
// validated already; MaxResults and Page carry their effective values.
func (c *Client) Search(ctx context.Context, query domain.SearchQuery) (*domain.SearchResponse, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	req, err := c.newSearchRequest(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	logger.Debug("GET %s", req.URL.Redacted())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.mapTransportError(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, c.mapTransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned status %d",
			domain.ErrConnection, c.baseURL, resp.StatusCode)
	}

	response, err := parseResponse(body, query)
	if err != nil {
		return nil, err
	}

	logger.Debug("upstream returned %d results for %q", response.NumberOfResults, query.Query)
	return response, nil
}

// HealthCheck probes the search endpoint with a trivial query.
func (c *Client) HealthCheck(ctx context.Context) error {
	if err := c.wait(ctx); err != nil {
		return err
	}

	probe := domain.SearchQuery{Query: "test"}
	req, err := c.newSearchRequest(ctx, probe)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.mapTransportError(err)
	}
	defer resp.Body.Close()                                     //nolint:errcheck
	io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize)) //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s returned status %d",
			domain.ErrConnection, c.baseURL, resp.StatusCode)
	}

	return nil
}

// wait blocks on the outbound throttle when one is configured.
func (c *Client) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: request exceeded %s", domain.ErrTimeout, c.timeout)
		}
		// Cancellation and limiter errors keep their own identity.
		return fmt.Errorf("waiting for rate limiter: %w", err)
	}
	return nil
}

func (c *Client) newSearchRequest(ctx context.Context, query domain.SearchQuery) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+searchPath, nil)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("q", query.Query)
	params.Set("format", "json")
	if query.Category != "" {
		params.Set("categories", string(query.Category))
	}
	if query.Language != "" {
		params.Set("language", query.Language)
	}
	if query.TimeRange != "" {
		params.Set("time_range", string(query.TimeRange))
	}
	if query.Page > 1 {
		params.Set("pageno", strconv.Itoa(query.Page))
	}
	req.URL.RawQuery = params.Encode()

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	return req, nil
}

// mapTransportError classifies a net/http error as timeout or
// connection failure.
func (c *Client) mapTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: request exceeded %s", domain.ErrTimeout, c.timeout)
	}

	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: request exceeded %s", domain.ErrTimeout, c.timeout)
	}

	return fmt.Errorf("%w: unable to reach %s: %v", domain.ErrConnection, c.baseURL, err)
}
