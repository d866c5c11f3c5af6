// Package main implements a fake marketplace catalog for local development.
// It serves canned listings from a JSON fixture through both the catalog API
// endpoint and the HTML catalog page, so either source kind can be pointed
// at it with source.base_url: http://localhost:8089.
package main

import (
	"cmp"
	"encoding/json"
	"flag"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"
)

const defaultPerPage = 10

type catalogResponse struct {
	Items []fixtureItem `json:"items"`
}

type fixtureItem struct {
	ID    int64        `json:"id"`
	Title string       `json:"title"`
	Price fixturePrice `json:"price"`
	URL   string       `json:"url"`
}

type fixturePrice struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currency_code"`
}

// DisplayPrice renders the amount the way the catalog grid shows it.
func (p fixturePrice) DisplayPrice() string {
	return strings.Replace(p.Amount, ".", ",", 1) + " €"
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/catalog_items.json", "path to catalog fixture")
	failStatus := flag.Int("fail-status", 0, "answer every catalog request with this HTTP status")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fixture, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "items", len(fixture.Items))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock catalog server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newMux(logger, fixture, *failStatus)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newMux(logger *slog.Logger, fixture *catalogResponse, failStatus int) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("GET /api/v2/catalog/items", failWith(failStatus, apiHandler(logger, fixture)))
	mux.Handle("GET /catalog", failWith(failStatus, pageHandler(logger, fixture)))
	return mux
}

func loadFixture(path string) (*catalogResponse, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var resp catalogResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &resp, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery,
			"user_agent", r.UserAgent())
		next.ServeHTTP(w, r)
	})
}

func failWith(status int, next http.Handler) http.Handler {
	if status == 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, http.StatusText(status), status)
	})
}

// match applies the catalog query parameters: every search_text word must
// appear in the title, price_to caps the price, and per_page limits the
// result. Results are newest first, which for the fixture means highest id.
func match(items []fixtureItem, r *http.Request) []fixtureItem {
	q := r.URL.Query()
	words := strings.Fields(strings.ToLower(q.Get("search_text")))

	priceTo := -1.0
	if v, err := strconv.ParseFloat(q.Get("price_to"), 64); err == nil && v > 0 {
		priceTo = v
	}

	perPage := defaultPerPage
	if v, err := strconv.Atoi(q.Get("per_page")); err == nil && v > 0 {
		perPage = v
	}

	var matched []fixtureItem
	for _, item := range items {
		title := strings.ToLower(item.Title)
		ok := true
		for _, w := range words {
			if !strings.Contains(title, w) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		if priceTo > 0 {
			amount, err := strconv.ParseFloat(item.Price.Amount, 64)
			if err != nil || amount > priceTo {
				continue
			}
		}
		matched = append(matched, item)
	}

	slices.SortFunc(matched, func(a, b fixtureItem) int { return cmp.Compare(b.ID, a.ID) })
	if len(matched) > perPage {
		matched = matched[:perPage]
	}
	return matched
}

func apiHandler(logger *slog.Logger, fixture *catalogResponse) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matched := match(fixture.Items, r)
		if matched == nil {
			matched = []fixtureItem{}
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(catalogResponse{Items: matched})
		logger.Info("catalog api", "search_text", r.URL.Query().Get("search_text"), "returned", len(matched))
	}
}

var catalogPage = template.Must(template.New("catalog").Parse(`<!DOCTYPE html>
<html>
<head><title>Catalog</title></head>
<body>
<div class="feed-grid">
{{- range .}}
  <div class="feed-grid__item">
    <a href="{{.URL}}" title="{{.Title}}"><img src="/static/{{.ID}}.jpg" alt="{{.Title}}"></a>
    <p data-testid="product-item-id-{{.ID}}--description-title">{{.Title}}</p>
    <p data-testid="product-item-id-{{.ID}}--price-text">{{.Price.DisplayPrice}}</p>
  </div>
{{- end}}
</div>
</body>
</html>
`))

func pageHandler(logger *slog.Logger, fixture *catalogResponse) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matched := match(fixture.Items, r)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := catalogPage.Execute(w, matched); err != nil {
			logger.Error("rendering catalog page", "error", err)
			return
		}
		logger.Info("catalog page", "search_text", r.URL.Query().Get("search_text"), "returned", len(matched))
	}
}
