package vinted

import (
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

	"github.com/donaldgifford/deal-scanner/internal/metrics"
)

const (
	kindAPI        = "catalog_api"
	defaultTimeout = 10 * time.Second
	maxErrorBody   = 512
)

// MaxResponseBytes caps how much of a catalog response is read.
const MaxResponseBytes = 4 << 20

// APIClient implements CatalogClient against the JSON catalog endpoint.
type APIClient struct {
	baseURL     string
	client      *http.Client
	userAgents  []string
	rateLimiter *RateLimiter
}

// APIOption configures the APIClient.
type APIOption func(*APIClient)

// WithBaseURL overrides the marketplace origin (scheme and host).
func WithBaseURL(u string) APIOption {
	return func(c *APIClient) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) APIOption {
	return func(c *APIClient) {
		c.client = hc
	}
}

// WithUserAgents sets the user agents rotated across requests.
func WithUserAgents(agents []string) APIOption {
	return func(c *APIClient) {
		c.userAgents = agents
	}
}

// WithRateLimiter routes every Search through r.Wait first.
func WithRateLimiter(r *RateLimiter) APIOption {
	return func(c *APIClient) {
		c.rateLimiter = r
	}
}

// NewAPIClient creates a catalog API client.
func NewAPIClient(opts ...APIOption) *APIClient {
	c := &APIClient{
		baseURL: DefaultBaseURL,
		client:  &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the marketplace origin used for requests and item links.
func (c *APIClient) BaseURL() string {
	return c.baseURL
}

// Search implements CatalogClient.Search with a single GET of the first page.
func (c *APIClient) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	if err := waitRateLimit(ctx, c.rateLimiter); err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.fetch(ctx, req)
	metrics.SourceRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SourceRequestsTotal.WithLabelValues(kindAPI, "error").Inc()
		return nil, err
	}
	metrics.SourceRequestsTotal.WithLabelValues(kindAPI, "ok").Inc()
	return resp, nil
}

func (c *APIClient) fetch(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	u := c.baseURL + catalogAPIPath + "?" + searchParams(req).Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: creating HTTP request: %w", ErrTransport, err)
	}
	setBrowserHeaders(httpReq.Header, pickUserAgent(c.userAgents), "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: executing search request: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %w", ErrTransport, err)
	}
	if len(body) > MaxResponseBytes {
		return nil, fmt.Errorf("%w: response body exceeds %d bytes", ErrTransport, MaxResponseBytes)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: catalog API status %d: %s",
			ErrTransport, resp.StatusCode, truncate(string(body), maxErrorBody))
	}

	var apiResp catalogAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("%w: parsing search response: %w", ErrTransport, err)
	}

	return &SearchResponse{Items: apiResp.Items}, nil
}

// searchParams builds the query shared by the API and the catalog page.
func searchParams(req SearchRequest) url.Values {
	params := url.Values{}
	params.Set("search_text", req.Keywords)

	if req.MaxPrice.IsPositive() {
		params.Set("price_to", req.MaxPrice.String())
	}

	order := req.Order
	if order == "" {
		order = OrderNewest
	}
	params.Set("order", order)

	perPage := req.PerPage
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	params.Set("per_page", strconv.Itoa(perPage))

	return params
}

func waitRateLimit(ctx context.Context, rl *RateLimiter) error {
	if rl == nil {
		return nil
	}
	if err := rl.Wait(ctx); err != nil {
		if errors.Is(err, ErrDailyLimitReached) {
			metrics.SourceDailyLimitHits.Inc()
		}
		return fmt.Errorf("%w: rate limit: %w", ErrTransport, err)
	}
	metrics.SourceDailyUsage.Set(float64(rl.DailyCount()))
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
