package vinted

import (
	"fmt"
	"strings"

	"github.com/donaldgifford/deal-scanner/pkg/profit"
	domain "github.com/donaldgifford/deal-scanner/pkg/types"
)

const defaultCurrency = "EUR"

// ToListings converts catalog items into domain listings, preserving order.
// Items without an id or with an unparsable price are dropped and reported
// through the returned errors, one per skipped item.
func ToListings(items []CatalogItem, baseURL string) ([]domain.Listing, []error) {
	listings := make([]domain.Listing, 0, len(items))
	var skipped []error

	for i := range items {
		l, err := toListing(&items[i], baseURL)
		if err != nil {
			skipped = append(skipped, err)
			continue
		}
		listings = append(listings, l)
	}
	return listings, skipped
}

// ToCandidates converts catalog items like ToListings but keeps unparsable
// items in place, marked with ParseErr, so callers that cap the head of the
// result count them against the cap.
func ToCandidates(items []CatalogItem, baseURL string) ([]domain.Listing, []error) {
	listings := make([]domain.Listing, 0, len(items))
	var skipped []error

	for i := range items {
		l, err := toListing(&items[i], baseURL)
		if err != nil {
			skipped = append(skipped, err)
			l = domain.Listing{
				ListingID: string(items[i].ID),
				Title:     domain.TruncateTitle(items[i].Title),
				ParseErr:  err,
			}
		}
		listings = append(listings, l)
	}
	return listings, skipped
}

func toListing(item *CatalogItem, baseURL string) (domain.Listing, error) {
	if item.ID == "" {
		return domain.Listing{}, fmt.Errorf("%w (title %q)", ErrMissingID, item.Title)
	}

	price, err := profit.ParsePrice(item.Price.Amount)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("item %s: %w", item.ID, err)
	}

	currency := item.Price.Currency
	if currency == "" {
		currency = item.Currency
	}
	if currency == "" {
		currency = defaultCurrency
	}

	return domain.Listing{
		ListingID: string(item.ID),
		Title:     domain.TruncateTitle(item.Title),
		Price:     price,
		Currency:  currency,
		URL:       ItemURL(baseURL, string(item.ID)),
	}, nil
}

// ItemURL derives the public page of a listing from its id.
func ItemURL(baseURL, id string) string {
	return strings.TrimRight(baseURL, "/") + "/items/" + id
}
