package vinted

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/deal-scanner/pkg/profit"
	domain "github.com/donaldgifford/deal-scanner/pkg/types"
)

func TestToListings(t *testing.T) {
	t.Parallel()

	items := []CatalogItem{
		{ID: "1", Title: "Nike Air Max", Price: Price{Amount: "20.00", Currency: "EUR"}},
		{ID: "", Title: "no id", Price: Price{Amount: "5"}},
		{ID: "3", Title: "Adidas Samba", Price: Price{Amount: "1 234,50 €"}},
		{ID: "4", Title: "bad price", Price: Price{Amount: "gratuit?"}},
		{ID: "5", Title: "Zloty", Price: Price{Amount: "40"}, Currency: "PLN"},
	}

	listings, skipped := ToListings(items, "https://www.vinted.fr/")
	require.Len(t, listings, 3)
	require.Len(t, skipped, 2)

	assert.ErrorIs(t, skipped[0], ErrMissingID)
	assert.ErrorIs(t, skipped[1], profit.ErrUnparsablePrice)

	assert.Equal(t, "1", listings[0].ListingID)
	assert.Equal(t, "https://www.vinted.fr/items/1", listings[0].URL)
	assert.True(t, decimal.NewFromInt(20).Equal(listings[0].Price))

	assert.Equal(t, "3", listings[1].ListingID)
	assert.True(t, decimal.RequireFromString("1234.5").Equal(listings[1].Price))
	assert.Equal(t, "EUR", listings[1].Currency)

	assert.Equal(t, "PLN", listings[2].Currency)
}

func TestToListings_TruncatesTitle(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("é", domain.MaxTitleLength+20)
	listings, skipped := ToListings([]CatalogItem{{ID: "9", Title: long, Price: Price{Amount: "3"}}}, DefaultBaseURL)
	require.Empty(t, skipped)
	require.Len(t, listings, 1)
	assert.Equal(t, domain.MaxTitleLength, len([]rune(listings[0].Title)))
}

func TestToListings_Empty(t *testing.T) {
	t.Parallel()

	listings, skipped := ToListings(nil, DefaultBaseURL)
	assert.Empty(t, listings)
	assert.Empty(t, skipped)
}

func TestItemURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://www.vinted.fr/items/77", ItemURL("https://www.vinted.fr", "77"))
	assert.Equal(t, "http://localhost:8089/items/77", ItemURL("http://localhost:8089/", "77"))
}
