// Package vinted queries the Vinted catalog for listings, either through
// the JSON catalog API or by scraping the public catalog page. Both clients
// sit behind the CatalogClient interface.
package vinted

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// Default endpoints and request parameters.
const (
	DefaultBaseURL  = "https://www.vinted.fr"
	DefaultPerPage  = 10
	OrderNewest     = "newest_first"
	catalogAPIPath  = "/api/v2/catalog/items"
	catalogPagePath = "/catalog"
)

var (
	// ErrTransport wraps every failure to obtain a catalog page: network
	// errors, non-200 responses and undecodable bodies.
	ErrTransport = errors.New("catalog request failed")
	// ErrMissingID is returned when a catalog item carries no identifier.
	ErrMissingID = errors.New("catalog item has no id")
)

// SearchRequest defines the parameters for one catalog query.
type SearchRequest struct {
	Keywords string
	MaxPrice decimal.Decimal
	PerPage  int
	Order    string // "newest_first"
}

// SearchResponse holds the first page of a catalog query, newest first.
type SearchResponse struct {
	Items []CatalogItem
}

// CatalogClient defines the interface for querying the marketplace catalog.
type CatalogClient interface {
	Search(ctx context.Context, req SearchRequest) (*SearchResponse, error)
}
