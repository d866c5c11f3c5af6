package vinted

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/gocolly/colly/v2"
	"github.com/gocolly/colly/v2/extensions"

	"github.com/donaldgifford/deal-scanner/internal/metrics"
)

const kindScrape = "scrape"

var itemIDPattern = regexp.MustCompile(`/items/(\d+)`)

// Selectors locate listing fields in the catalog page markup.
type Selectors struct {
	Item  string `yaml:"item"`
	Link  string `yaml:"link"`
	Title string `yaml:"title"`
	Price string `yaml:"price"`
}

// DefaultSelectors matches the public catalog grid.
func DefaultSelectors() Selectors {
	return Selectors{
		Item:  "div.feed-grid__item",
		Link:  "a[href*='/items/']",
		Title: "[data-testid$='--description-title']",
		Price: "[data-testid$='--price-text']",
	}
}

// ScrapeClient implements CatalogClient by scraping the catalog page with
// colly. It is the fallback for when the JSON endpoint is unavailable.
type ScrapeClient struct {
	baseURL     string
	selectors   Selectors
	timeout     time.Duration
	userAgents  []string
	rateLimiter *RateLimiter
}

// ScrapeOption configures the ScrapeClient.
type ScrapeOption func(*ScrapeClient)

// WithScrapeBaseURL overrides the marketplace origin.
func WithScrapeBaseURL(u string) ScrapeOption {
	return func(c *ScrapeClient) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithSelectors overrides the markup selectors. Empty fields keep defaults.
func WithSelectors(s Selectors) ScrapeOption {
	return func(c *ScrapeClient) {
		if s.Item != "" {
			c.selectors.Item = s.Item
		}
		if s.Link != "" {
			c.selectors.Link = s.Link
		}
		if s.Title != "" {
			c.selectors.Title = s.Title
		}
		if s.Price != "" {
			c.selectors.Price = s.Price
		}
	}
}

// WithScrapeTimeout sets the per-request timeout.
func WithScrapeTimeout(d time.Duration) ScrapeOption {
	return func(c *ScrapeClient) {
		c.timeout = d
	}
}

// WithScrapeUserAgents sets a fixed rotation instead of colly's random agents.
func WithScrapeUserAgents(agents []string) ScrapeOption {
	return func(c *ScrapeClient) {
		c.userAgents = agents
	}
}

// WithScrapeRateLimiter routes every Search through r.Wait first.
func WithScrapeRateLimiter(r *RateLimiter) ScrapeOption {
	return func(c *ScrapeClient) {
		c.rateLimiter = r
	}
}

// NewScrapeClient creates a catalog page scraper.
func NewScrapeClient(opts ...ScrapeOption) *ScrapeClient {
	c := &ScrapeClient{
		baseURL:   DefaultBaseURL,
		selectors: DefaultSelectors(),
		timeout:   defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the marketplace origin used for requests and item links.
func (c *ScrapeClient) BaseURL() string {
	return c.baseURL
}

// Search implements CatalogClient.Search by visiting the catalog page once.
func (c *ScrapeClient) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	if err := waitRateLimit(ctx, c.rateLimiter); err != nil {
		return nil, err
	}

	limit := req.PerPage
	if limit <= 0 {
		limit = DefaultPerPage
	}

	var (
		mu    sync.Mutex
		items []CatalogItem
	)

	col := c.newCollector(ctx)
	col.OnHTML(c.selectors.Item, func(e *colly.HTMLElement) {
		item := c.parseItem(e)

		mu.Lock()
		defer mu.Unlock()
		if len(items) < limit {
			items = append(items, item)
		}
	})

	u := c.baseURL + catalogPagePath + "?" + searchParams(req).Encode()

	start := time.Now()
	err := col.Visit(u)
	col.Wait()
	metrics.SourceRequestDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.SourceRequestsTotal.WithLabelValues(kindScrape, "error").Inc()
		return nil, fmt.Errorf("%w: scraping catalog page: %w", ErrTransport, err)
	}
	metrics.SourceRequestsTotal.WithLabelValues(kindScrape, "ok").Inc()

	return &SearchResponse{Items: items}, nil
}

func (c *ScrapeClient) newCollector(ctx context.Context) *colly.Collector {
	col := colly.NewCollector(
		colly.StdlibContext(ctx),
		colly.AllowURLRevisit(),
		colly.MaxDepth(1),
	)
	col.SetRequestTimeout(c.timeout)

	if len(c.userAgents) == 0 {
		extensions.RandomUserAgent(col)
	}

	col.OnRequest(func(r *colly.Request) {
		ua := r.Headers.Get("User-Agent")
		if len(c.userAgents) > 0 {
			ua = pickUserAgent(c.userAgents)
		}
		setBrowserHeaders(*r.Headers, ua,
			"text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	})

	return col
}

// parseItem reads one grid cell. Missing fields are left empty and are
// rejected later by ToListings.
func (c *ScrapeClient) parseItem(e *colly.HTMLElement) CatalogItem {
	href := e.ChildAttr(c.selectors.Link, "href")

	var id ItemID
	if m := itemIDPattern.FindStringSubmatch(href); len(m) == 2 {
		id = ItemID(m[1])
	}

	title := strings.TrimSpace(e.ChildText(c.selectors.Title))
	if title == "" {
		title = strings.TrimSpace(e.ChildAttr("img", "alt"))
	}
	if title == "" {
		title = strings.TrimSpace(e.ChildAttr(c.selectors.Link, "title"))
	}

	return CatalogItem{
		ID:    id,
		Title: title,
		Price: Price{Amount: strings.TrimSpace(e.ChildText(c.selectors.Price))},
		URL:   e.Request.AbsoluteURL(href),
	}
}
