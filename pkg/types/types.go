// Package domain defines the core business types for the deal scanner.
package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MaxTitleLength is the number of runes kept from a listing title.
const MaxTitleLength = 80

// ErrInvalidSearch is returned when a SearchSpec violates its invariants.
var ErrInvalidSearch = errors.New("invalid search")

// KeyScheme selects how a listing's deduplication key is derived.
type KeyScheme string

// Dedup key scheme constants.
const (
	KeyListingID  KeyScheme = "listing_id"
	KeyTitlePrice KeyScheme = "title_price"
)

// Valid reports whether k is a known key scheme.
func (k KeyScheme) Valid() bool {
	return k == KeyListingID || k == KeyTitlePrice
}

// SearchSpec is a user-defined saved search and the thresholds applied to
// every listing it returns.
type SearchSpec struct {
	ID           string          `json:"id"`
	OwnerID      string          `json:"owner_id"`
	Name         string          `json:"name"`
	Keywords     string          `json:"keywords"`
	MaxPrice     decimal.Decimal `json:"max_price"`
	ProfitMargin decimal.Decimal `json:"profit_margin"`
	MinProfit    decimal.Decimal `json:"min_profit"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Validate checks the search invariants: a non-empty owner and keyword set,
// a positive max price, and a profit margin strictly greater than one.
func (s *SearchSpec) Validate() error {
	var errs []error

	if strings.TrimSpace(s.OwnerID) == "" {
		errs = append(errs, errors.New("owner is required"))
	}
	if strings.TrimSpace(s.Keywords) == "" {
		errs = append(errs, errors.New("keywords are required"))
	}
	if !s.MaxPrice.IsPositive() {
		errs = append(errs, fmt.Errorf("max price must be positive (got %s)", s.MaxPrice))
	}
	if s.ProfitMargin.LessThanOrEqual(decimal.NewFromInt(1)) {
		errs = append(errs, fmt.Errorf("profit margin must be greater than 1 (got %s)", s.ProfitMargin))
	}
	if s.MinProfit.IsNegative() {
		errs = append(errs, fmt.Errorf("min profit must not be negative (got %s)", s.MinProfit))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidSearch, errors.Join(errs...))
}

// Listing is a single marketplace item returned by a catalog search.
type Listing struct {
	ListingID string          `json:"listing_id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Currency  string          `json:"currency"`
	URL       string          `json:"url"`
	// ParseErr is set when the upstream item could not be parsed. The listing
	// keeps its position so it still takes a candidate slot, but it is never
	// evaluated as a deal.
	ParseErr error `json:"-"`
}

// DedupKey returns the key used to suppress repeat notifications for l.
func (l *Listing) DedupKey(scheme KeyScheme) string {
	if scheme == KeyTitlePrice {
		return strings.ToLower(strings.TrimSpace(l.Title)) + "|" + l.Price.String()
	}
	return l.ListingID
}

// TruncateTitle shortens title to MaxTitleLength runes.
func TruncateTitle(title string) string {
	title = strings.TrimSpace(title)
	r := []rune(title)
	if len(r) <= MaxTitleLength {
		return title
	}
	return string(r[:MaxTitleLength])
}

// Deal is a listing that passed the profit rule for a given search.
type Deal struct {
	ListingID       string          `json:"listing_id"`
	Key             string          `json:"key"`
	Title           string          `json:"title"`
	Price           decimal.Decimal `json:"price"`
	Currency        string          `json:"currency"`
	EstimatedProfit decimal.Decimal `json:"estimated_profit"`
	SearchName      string          `json:"search_name"`
	URL             string          `json:"url"`
}

// Stats is a point-in-time summary of the scanner state.
type Stats struct {
	Owners             int        `json:"owners"`
	Searches           int        `json:"searches"`
	Scans              int64      `json:"scans"`
	SeenItems          int64      `json:"seen_items"`
	DealsLastCycle     int        `json:"deals_last_cycle"`
	DeliveredLastCycle int        `json:"delivered_last_cycle"`
	LastCycleAt        *time.Time `json:"last_cycle_at,omitempty"`
}
