package api_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/deal-scanner/internal/api"
	"github.com/donaldgifford/deal-scanner/internal/engine"
	"github.com/donaldgifford/deal-scanner/internal/store"
	storeMocks "github.com/donaldgifford/deal-scanner/internal/store/mocks"
	domain "github.com/donaldgifford/deal-scanner/pkg/types"
)

type statsFunc func(ctx context.Context) (*domain.Stats, error)

func (f statsFunc) Stats(ctx context.Context) (*domain.Stats, error) { return f(ctx) }

type runnerFunc func(ctx context.Context) (*engine.CycleReport, error)

func (f runnerFunc) RunCycle(ctx context.Context) (*engine.CycleReport, error) { return f(ctx) }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestDeps(s *store.MemoryStore) api.Deps {
	return api.Deps{
		Store:    s,
		Registry: s,
		Stats: statsFunc(func(context.Context) (*domain.Stats, error) {
			return &domain.Stats{Owners: 1, Searches: 1}, nil
		}),
		Scanner: runnerFunc(func(context.Context) (*engine.CycleReport, error) {
			return &engine.CycleReport{Scan: 1}, nil
		}),
		Logger: quietLogger(),
	}
}

func serve(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader = http.NoBody
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestNewRouter_Routes(t *testing.T) {
	t.Parallel()

	e := api.NewRouter(newTestDeps(store.NewMemoryStore()))

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "healthz", method: http.MethodGet, path: "/healthz", wantStatus: http.StatusOK, wantBody: `"ok"`},
		{name: "readyz", method: http.MethodGet, path: "/readyz", wantStatus: http.StatusOK, wantBody: `"ready"`},
		{name: "metrics", method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK, wantBody: "ds_healthz_up"},
		{name: "openapi document", method: http.MethodGet, path: "/openapi.json", wantStatus: http.StatusOK, wantBody: "list-searches"},
		{name: "stats", method: http.MethodGet, path: "/api/v1/stats", wantStatus: http.StatusOK, wantBody: `"owners":1`},
		{name: "scan", method: http.MethodPost, path: "/api/v1/scan", wantStatus: http.StatusOK, wantBody: `"scan":1`},
		{name: "unknown route", method: http.MethodGet, path: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := serve(t, e, tt.method, tt.path, "")
			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestNewRouter_SearchLifecycle(t *testing.T) {
	t.Parallel()

	s := store.NewMemoryStore()
	e := api.NewRouter(newTestDeps(s))

	rec := serve(t, e, http.MethodPost, "/api/v1/owners/42/searches",
		`{"name":"nike","keywords":"nike air max","max_price":"30"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = serve(t, e, http.MethodGet, "/api/v1/owners/42/searches", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"keywords":"nike air max"`)

	rec = serve(t, e, http.MethodDelete, "/api/v1/owners/42/searches/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	specs, err := s.ListSearches(context.Background(), "42")
	require.NoError(t, err)
	assert.Empty(t, specs)
}

func TestNewRouter_ReadyzStoreDown(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().Ping(mock.Anything).Return(errors.New("connection refused")).Once()

	deps := newTestDeps(store.NewMemoryStore())
	deps.Store = ms

	rec := serve(t, api.NewRouter(deps), http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
