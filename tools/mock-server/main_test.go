package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/donaldgifford/deal-scanner/internal/vinted"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func loadTestFixture(t *testing.T) *catalogResponse {
	t.Helper()
	fixture, err := loadFixture(filepath.Join("testdata", "catalog_items.json"))
	if err != nil {
		t.Fatalf("loading fixture: %v", err)
	}
	return fixture
}

func TestLoadFixture(t *testing.T) {
	fixture := loadTestFixture(t)
	if len(fixture.Items) == 0 {
		t.Fatal("expected items in fixture")
	}
	for _, item := range fixture.Items {
		if item.ID == 0 || item.Title == "" || item.Price.Amount == "" {
			t.Errorf("incomplete fixture item: %+v", item)
		}
	}
}

func TestAPIHandler(t *testing.T) {
	fixture := loadTestFixture(t)

	tests := []struct {
		name    string
		query   string
		wantIDs []int64
	}{
		{name: "keywords", query: "search_text=nike+air+max", wantIDs: []int64{4012345002, 4012345001}},
		{name: "price cap", query: "search_text=nike+air+max&price_to=30", wantIDs: []int64{4012345001}},
		{name: "per page", query: "per_page=2", wantIDs: []int64{4012345008, 4012345007}},
		{name: "no match", query: "search_text=gucci", wantIDs: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v2/catalog/items?"+tt.query, http.NoBody)
			w := httptest.NewRecorder()
			apiHandler(testLogger(), fixture)(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
			}
			if !strings.Contains(w.Body.String(), `"items":[`) {
				t.Fatalf("expected items array, got %s", w.Body.String())
			}

			var resp catalogResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if len(resp.Items) != len(tt.wantIDs) {
				t.Fatalf("items=%d, want %d", len(resp.Items), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if resp.Items[i].ID != id {
					t.Errorf("items[%d].id=%d, want %d", i, resp.Items[i].ID, id)
				}
			}
		})
	}
}

func TestPageHandler(t *testing.T) {
	fixture := loadTestFixture(t)
	req := httptest.NewRequest(http.MethodGet, "/catalog?search_text=levi's", http.NoBody)
	w := httptest.NewRecorder()

	pageHandler(testLogger(), fixture)(w, req)

	body := w.Body.String()
	if got := strings.Count(body, `class="feed-grid__item"`); got != 2 {
		t.Errorf("grid items=%d, want 2", got)
	}
	if !strings.Contains(body, "12,00 €") {
		t.Error("expected display price 12,00 €")
	}
	if !strings.Contains(body, "/items/4012345004-levis-501") {
		t.Error("expected item link")
	}
}

func TestFailStatus(t *testing.T) {
	srv := httptest.NewServer(newMux(testLogger(), loadTestFixture(t), http.StatusTooManyRequests))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v2/catalog/items")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Errorf("status=%d, want %d", resp.StatusCode, http.StatusTooManyRequests)
	}
}

func TestClientsAgainstMock(t *testing.T) {
	srv := httptest.NewServer(newMux(testLogger(), loadTestFixture(t), 0))
	defer srv.Close()

	clients := map[string]vinted.CatalogClient{
		"catalog_api": vinted.NewAPIClient(vinted.WithBaseURL(srv.URL)),
		"scrape":      vinted.NewScrapeClient(vinted.WithScrapeBaseURL(srv.URL)),
	}

	for name, client := range clients {
		t.Run(name, func(t *testing.T) {
			resp, err := client.Search(context.Background(), vinted.SearchRequest{
				Keywords: "nike air max",
				MaxPrice: decimal.NewFromInt(30),
			})
			if err != nil {
				t.Fatalf("search: %v", err)
			}

			listings, skipped := vinted.ToListings(resp.Items, srv.URL)
			if len(skipped) != 0 {
				t.Fatalf("skipped items: %v", skipped)
			}
			if len(listings) != 1 {
				t.Fatalf("listings=%d, want 1", len(listings))
			}
			l := listings[0]
			if l.ListingID != "4012345001" {
				t.Errorf("id=%s, want 4012345001", l.ListingID)
			}
			if !l.Price.Equal(decimal.RequireFromString("28")) {
				t.Errorf("price=%s, want 28", l.Price)
			}
			if l.URL != srv.URL+"/items/4012345001" {
				t.Errorf("url=%s", l.URL)
			}
		})
	}
}
