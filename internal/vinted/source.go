package vinted

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/donaldgifford/deal-scanner/internal/metrics"
	domain "github.com/donaldgifford/deal-scanner/pkg/types"
)

// ListingSource returns the newest listings matching a saved search.
type ListingSource interface {
	Fetch(ctx context.Context, spec *domain.SearchSpec) ([]domain.Listing, error)
}

// Source adapts a CatalogClient into a ListingSource: it paces requests with
// a random delay, asks for the first page only, and converts items into
// listings. Items it cannot parse stay in place with ParseErr set.
type Source struct {
	client   CatalogClient
	baseURL  string
	perPage  int
	delayMin time.Duration
	delayMax time.Duration
	sleep    func(ctx context.Context, d time.Duration) error
	log      *slog.Logger
}

// SourceOption configures a Source.
type SourceOption func(*Source)

// WithPerPage caps the number of items requested per search.
func WithPerPage(n int) SourceOption {
	return func(s *Source) {
		if n > 0 {
			s.perPage = n
		}
	}
}

// WithRequestDelay sets the bounds of the random pre-request delay.
func WithRequestDelay(minDelay, maxDelay time.Duration) SourceOption {
	return func(s *Source) {
		s.delayMin = minDelay
		s.delayMax = max(minDelay, maxDelay)
	}
}

// WithSleepFunc overrides the delay implementation for testing.
func WithSleepFunc(f func(ctx context.Context, d time.Duration) error) SourceOption {
	return func(s *Source) {
		s.sleep = f
	}
}

// WithSourceLogger sets a custom logger.
func WithSourceLogger(l *slog.Logger) SourceOption {
	return func(s *Source) {
		s.log = l
	}
}

// NewSource wraps client. baseURL is used to derive item links.
func NewSource(client CatalogClient, baseURL string, opts ...SourceOption) *Source {
	s := &Source{
		client:   client,
		baseURL:  baseURL,
		perPage:  DefaultPerPage,
		delayMin: 3 * time.Second,
		delayMax: 7 * time.Second,
		sleep:    SleepContext,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch runs one catalog query for spec. Transport failures come back as
// errors wrapping ErrTransport; per-item parse failures are marked on the
// listing, never dropped, so the newest-first order is preserved.
func (s *Source) Fetch(ctx context.Context, spec *domain.SearchSpec) ([]domain.Listing, error) {
	if err := s.sleep(ctx, s.jitter()); err != nil {
		return nil, err
	}

	resp, err := s.client.Search(ctx, SearchRequest{
		Keywords: spec.Keywords,
		MaxPrice: spec.MaxPrice,
		PerPage:  s.perPage,
		Order:    OrderNewest,
	})
	if err != nil {
		return nil, err
	}

	items := resp.Items
	if len(items) > s.perPage {
		items = items[:s.perPage]
	}

	listings, skipped := ToCandidates(items, s.baseURL)
	for _, skipErr := range skipped {
		metrics.SourceItemsSkippedTotal.Inc()
		s.log.Debug("skipping catalog item", "search", spec.Name, "error", skipErr)
	}

	return listings, nil
}

func (s *Source) jitter() time.Duration {
	span := s.delayMax - s.delayMin
	if span <= 0 {
		return s.delayMin
	}
	return s.delayMin + rand.N(span+1) //nolint:gosec // pacing only
}

// SleepContext waits for d or until ctx is done.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
