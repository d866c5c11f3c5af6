package vinted_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/deal-scanner/internal/vinted"
)

const catalogPage = `<!DOCTYPE html>
<html><body>
<div class="feed-grid">
  <div class="feed-grid__item">
    <a href="/items/501-nike-air-max-90" title="Nike Air Max 90, taille 42">
      <img alt="Nike Air Max 90" src="/img/501.jpg">
    </a>
    <p data-testid="product-item-id-501--description-title">Nike Air Max 90</p>
    <p data-testid="product-item-id-501--price-text">20,00 €</p>
  </div>
  <div class="feed-grid__item">
    <a href="/items/502-nike-cortez"><img alt="Nike Cortez" src="/img/502.jpg"></a>
    <p data-testid="product-item-id-502--price-text">15,50 €</p>
  </div>
  <div class="feed-grid__item">
    <a href="/member/77">Seller profile</a>
    <p data-testid="x--price-text">5,00 €</p>
  </div>
  <div class="feed-grid__item">
    <a href="/items/504-nike-blazer"><img alt="Nike Blazer"></a>
    <p data-testid="product-item-id-504--price-text">30,00 €</p>
  </div>
</div>
</body></html>`

func TestScrapeClient_Search(t *testing.T) {
	t.Parallel()

	queries := make(chan map[string]string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		queries <- map[string]string{
			"path":        r.URL.Path,
			"search_text": q.Get("search_text"),
			"price_to":    q.Get("price_to"),
			"order":       q.Get("order"),
			"ua":          r.Header.Get("User-Agent"),
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(catalogPage))
	}))
	t.Cleanup(srv.Close)

	c := vinted.NewScrapeClient(
		vinted.WithScrapeBaseURL(srv.URL),
		vinted.WithScrapeUserAgents([]string{"scrape-agent"}),
	)

	resp, err := c.Search(context.Background(), vinted.SearchRequest{
		Keywords: "nike",
		MaxPrice: decimal.NewFromInt(40),
		PerPage:  10,
	})
	require.NoError(t, err)

	gotQuery := <-queries
	assert.Equal(t, "/catalog", gotQuery["path"])
	assert.Equal(t, "nike", gotQuery["search_text"])
	assert.Equal(t, "40", gotQuery["price_to"])
	assert.Equal(t, "newest_first", gotQuery["order"])
	assert.Equal(t, "scrape-agent", gotQuery["ua"])

	require.Len(t, resp.Items, 4)

	first := resp.Items[0]
	assert.Equal(t, vinted.ItemID("501"), first.ID)
	assert.Equal(t, "Nike Air Max 90", first.Title)
	assert.Equal(t, "20,00 €", first.Price.Amount)
	assert.Equal(t, srv.URL+"/items/501-nike-air-max-90", first.URL)

	// Title falls back to the image alt text.
	assert.Equal(t, "Nike Cortez", resp.Items[1].Title)

	// Cells without an item link keep an empty id and are dropped on conversion.
	assert.Empty(t, resp.Items[2].ID)

	listings, skipped := vinted.ToListings(resp.Items, srv.URL)
	require.Len(t, listings, 3)
	assert.Len(t, skipped, 1)
	assert.True(t, decimal.RequireFromString("15.5").Equal(listings[1].Price))
}

func TestScrapeClient_Search_PerPageCap(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(catalogPage))
	}))
	t.Cleanup(srv.Close)

	c := vinted.NewScrapeClient(vinted.WithScrapeBaseURL(srv.URL))
	resp, err := c.Search(context.Background(), vinted.SearchRequest{Keywords: "nike", PerPage: 2})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 2)
}

func TestScrapeClient_Search_CustomSelectors(t *testing.T) {
	t.Parallel()

	page := `<html><body>
		<li class="card"><a class="lnk" href="/items/9-shirt">Shirt</a><span class="amt">€ 12</span></li>
	</body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(page))
	}))
	t.Cleanup(srv.Close)

	c := vinted.NewScrapeClient(
		vinted.WithScrapeBaseURL(srv.URL),
		vinted.WithSelectors(vinted.Selectors{Item: "li.card", Link: "a.lnk", Title: "a.lnk", Price: "span.amt"}),
	)
	resp, err := c.Search(context.Background(), vinted.SearchRequest{Keywords: "shirt"})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, vinted.ItemID("9"), resp.Items[0].ID)
	assert.Equal(t, "Shirt", resp.Items[0].Title)
	assert.Equal(t, "€ 12", resp.Items[0].Price.Amount)
}

func TestScrapeClient_Search_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	c := vinted.NewScrapeClient(vinted.WithScrapeBaseURL(srv.URL))
	_, err := c.Search(context.Background(), vinted.SearchRequest{Keywords: "nike"})
	require.Error(t, err)
	assert.ErrorIs(t, err, vinted.ErrTransport)
}

func TestScrapeClient_Search_EmptyPage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><p>Aucun résultat</p></body></html>`))
	}))
	t.Cleanup(srv.Close)

	c := vinted.NewScrapeClient(vinted.WithScrapeBaseURL(srv.URL))
	resp, err := c.Search(context.Background(), vinted.SearchRequest{Keywords: "nike"})
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}
