package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/deal-scanner/pkg/types"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.ListSearches(context.Background(), "42")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantDetail string
	}{
		{
			name:       "problem detail",
			status:     http.StatusNotFound,
			body:       `{"title":"Not Found","status":404,"detail":"search not found"}`,
			wantDetail: "search not found",
		},
		{
			name:       "raw body",
			status:     http.StatusInternalServerError,
			body:       "internal\n",
			wantDetail: "internal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := New(srv.URL).Stats(context.Background())
			require.Error(t, err)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantDetail, apiErr.Detail)
			assert.Contains(t, err.Error(), "API error (HTTP")
		})
	}
}

func TestClient_ListSearches(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/owners/42/searches", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]Search{
			{Index: 1, ID: "s1", Name: "nike", MaxPrice: "30.00"},
		})
	}))
	defer srv.Close()

	result, err := New(srv.URL).ListSearches(context.Background(), "42")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "nike", result[0].Name)
	assert.Equal(t, 1, result[0].Index)
}

func TestClient_AddSearch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/owners/42/searches", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var raw map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Equal(t, "nike", raw["name"])
		assert.Equal(t, "30", raw["max_price"])
		assert.NotContains(t, raw, "profit_margin")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Search{Index: 1, ID: "s-created", Name: "nike"})
	}))
	defer srv.Close()

	result, err := New(srv.URL).AddSearch(context.Background(), "42", AddSearchRequest{
		Name:     "nike",
		Keywords: "nike air max",
		MaxPrice: "30",
	})
	require.NoError(t, err)
	assert.Equal(t, "s-created", result.ID)
}

func TestClient_RemoveSearch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/owners/42/searches/2", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Search{Index: 2, Name: "levis"})
	}))
	defer srv.Close()

	removed, err := New(srv.URL).RemoveSearch(context.Background(), "42", 2)
	require.NoError(t, err)
	assert.Equal(t, "levis", removed.Name)
}

func TestClient_Stats(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/stats", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.Stats{Owners: 3, Searches: 7, Scans: 11})
	}))
	defer srv.Close()

	st, err := New(srv.URL).Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, st.Owners)
	assert.Equal(t, int64(11), st.Scans)
}

func TestClient_Scan(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/scan", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"scan completed","report":{"scan":5,"deals":2,"delivered":1}}`))
	}))
	defer srv.Close()

	result, err := New(srv.URL).Scan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "scan completed", result.Status)
	require.NotNil(t, result.Report)
	assert.Equal(t, int64(5), result.Report.Scan)
	assert.Equal(t, 2, result.Report.Deals)
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	c := New("http://example.com", WithHTTPClient(custom))
	assert.Same(t, custom, c.httpClient)
}
