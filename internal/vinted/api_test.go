package vinted_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/deal-scanner/internal/vinted"
)

func TestAPIClient_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		req        vinted.SearchRequest
		handler    http.HandlerFunc
		wantErr    bool
		errContain string
		wantItems  int
	}{
		{
			name: "successful search with results",
			req: vinted.SearchRequest{
				Keywords: "nike air max",
				MaxPrice: decimal.NewFromInt(30),
				PerPage:  10,
			},
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v2/catalog/items", r.URL.Path)
				q := r.URL.Query()
				assert.Equal(t, "nike air max", q.Get("search_text"))
				assert.Equal(t, "30", q.Get("price_to"))
				assert.Equal(t, "newest_first", q.Get("order"))
				assert.Equal(t, "10", q.Get("per_page"))
				assert.Equal(t, "application/json", r.Header.Get("Accept"))
				assert.NotEmpty(t, r.Header.Get("User-Agent"))

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{
					"items": [
						{"id": 101, "title": "Nike Air Max 90", "price": "20.0"},
						{"id": "102", "title": "Nike Air Max 1", "price": {"amount": "25.50", "currency_code": "EUR"}}
					]
				}`))
			},
			wantItems: 2,
		},
		{
			name: "defaults applied for per_page and order",
			req:  vinted.SearchRequest{Keywords: "levis"},
			handler: func(w http.ResponseWriter, r *http.Request) {
				q := r.URL.Query()
				assert.Equal(t, "10", q.Get("per_page"))
				assert.Equal(t, "newest_first", q.Get("order"))
				assert.Empty(t, q.Get("price_to"))
				_, _ = w.Write([]byte(`{"items": []}`))
			},
			wantItems: 0,
		},
		{
			name: "403 forbidden response",
			req:  vinted.SearchRequest{Keywords: "test"},
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"message": "blocked"}`))
			},
			wantErr:    true,
			errContain: "status 403",
		},
		{
			name: "429 rate limited response",
			req:  vinted.SearchRequest{Keywords: "test"},
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
			wantErr:    true,
			errContain: "status 429",
		},
		{
			name: "malformed JSON",
			req:  vinted.SearchRequest{Keywords: "test"},
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{not json`))
			},
			wantErr:    true,
			errContain: "parsing search response",
		},
		{
			name: "oversized body",
			req:  vinted.SearchRequest{Keywords: "test"},
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"items": [], "pad": "`))
				_, _ = w.Write([]byte(strings.Repeat("x", vinted.MaxResponseBytes)))
				_, _ = w.Write([]byte(`"}`))
			},
			wantErr:    true,
			errContain: "response body exceeds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			t.Cleanup(srv.Close)

			c := vinted.NewAPIClient(
				vinted.WithBaseURL(srv.URL),
				vinted.WithHTTPClient(srv.Client()),
				vinted.WithUserAgents([]string{"test-agent"}),
			)

			resp, err := c.Search(context.Background(), tt.req)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, vinted.ErrTransport)
				assert.Contains(t, err.Error(), tt.errContain)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, resp)
			assert.Len(t, resp.Items, tt.wantItems)
		})
	}
}

func TestAPIClient_Search_ParsesPriceShapes(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"items": [
			{"id": 1, "title": "a", "price": 12.5},
			{"id": 2, "title": "b", "price": "7,00 €"},
			{"id": 3, "title": "c", "price": {"amount": 9, "currency_code": "PLN"}}
		]}`))
	}))
	t.Cleanup(srv.Close)

	c := vinted.NewAPIClient(vinted.WithBaseURL(srv.URL))
	resp, err := c.Search(context.Background(), vinted.SearchRequest{Keywords: "x"})
	require.NoError(t, err)
	require.Len(t, resp.Items, 3)

	assert.Equal(t, vinted.ItemID("1"), resp.Items[0].ID)
	assert.Equal(t, "12.5", resp.Items[0].Price.Amount)
	assert.Equal(t, "7,00 €", resp.Items[1].Price.Amount)
	assert.Equal(t, "9", resp.Items[2].Price.Amount)
	assert.Equal(t, "PLN", resp.Items[2].Price.Currency)
}

func TestAPIClient_Search_UserAgentRotation(t *testing.T) {
	t.Parallel()

	agents := []string{"agent-a", "agent-b"}
	seen := make(chan string, 20)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen <- r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`{"items": []}`))
	}))
	t.Cleanup(srv.Close)

	c := vinted.NewAPIClient(vinted.WithBaseURL(srv.URL), vinted.WithUserAgents(agents))
	for range 20 {
		_, err := c.Search(context.Background(), vinted.SearchRequest{Keywords: "x"})
		require.NoError(t, err)
	}
	close(seen)

	for ua := range seen {
		assert.Contains(t, agents, ua)
	}
}

func TestAPIClient_Search_TransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := vinted.NewAPIClient(vinted.WithBaseURL(url))
	_, err := c.Search(context.Background(), vinted.SearchRequest{Keywords: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, vinted.ErrTransport)
}

func TestAPIClient_Search_Timeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	c := vinted.NewAPIClient(
		vinted.WithBaseURL(srv.URL),
		vinted.WithHTTPClient(&http.Client{Timeout: 50 * time.Millisecond}),
	)
	_, err := c.Search(context.Background(), vinted.SearchRequest{Keywords: "x"})
	require.ErrorIs(t, err, vinted.ErrTransport)
}

func TestAPIClient_Search_DailyLimit(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"items": []}`))
	}))
	t.Cleanup(srv.Close)

	c := vinted.NewAPIClient(
		vinted.WithBaseURL(srv.URL),
		vinted.WithRateLimiter(vinted.NewRateLimiter(100, 10, 1)),
	)

	_, err := c.Search(context.Background(), vinted.SearchRequest{Keywords: "x"})
	require.NoError(t, err)

	_, err = c.Search(context.Background(), vinted.SearchRequest{Keywords: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, vinted.ErrDailyLimitReached)
	assert.ErrorIs(t, err, vinted.ErrTransport)
	assert.Equal(t, int32(1), calls.Load())
}

func TestNewAPIClient_Defaults(t *testing.T) {
	t.Parallel()

	c := vinted.NewAPIClient()
	assert.Equal(t, vinted.DefaultBaseURL, c.BaseURL())

	c = vinted.NewAPIClient(vinted.WithBaseURL("http://localhost:8089/"))
	assert.Equal(t, "http://localhost:8089", c.BaseURL())
}
