package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/deal-scanner/internal/api/handlers"
	"github.com/donaldgifford/deal-scanner/internal/store"
	storeMocks "github.com/donaldgifford/deal-scanner/internal/store/mocks"
	domain "github.com/donaldgifford/deal-scanner/pkg/types"
)

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("s-%d", n)
	}
}

func seedSearch(t *testing.T, reg store.SearchRegistry, owner, name string) {
	t.Helper()
	err := reg.AddSearch(context.Background(), &domain.SearchSpec{
		ID:           owner + "-" + name,
		OwnerID:      owner,
		Name:         name,
		Keywords:     name + " kw",
		MaxPrice:     decimal.NewFromInt(30),
		ProfitMargin: decimal.RequireFromString("1.8"),
		MinProfit:    decimal.NewFromInt(8),
	})
	require.NoError(t, err)
}

func TestSearchHandler_List(t *testing.T) {
	t.Parallel()

	reg := store.NewMemoryStore()
	seedSearch(t, reg, "42", "nike")
	seedSearch(t, reg, "42", "levis")
	seedSearch(t, reg, "7", "other")

	_, api := humatest.New(t)
	handlers.RegisterSearchRoutes(api, handlers.NewSearchHandler(reg))

	resp := api.Get("/api/v1/owners/42/searches")
	require.Equal(t, http.StatusOK, resp.Code)

	var got []handlers.SearchView
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Index)
	assert.Equal(t, "nike", got[0].Name)
	assert.Equal(t, "30.00", got[0].MaxPrice)
	assert.Equal(t, "1.8", got[0].ProfitMargin)
	assert.Equal(t, 2, got[1].Index)
	assert.Equal(t, "levis", got[1].Name)

	resp = api.Get("/api/v1/owners/nobody/searches")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())
}

func TestSearchHandler_List_StoreError(t *testing.T) {
	t.Parallel()

	reg := storeMocks.NewMockSearchRegistry(t)
	reg.EXPECT().
		ListSearches(mock.Anything, "42").
		Return(nil, errors.New("db error")).
		Once()

	_, api := humatest.New(t)
	handlers.RegisterSearchRoutes(api, handlers.NewSearchHandler(reg))

	resp := api.Get("/api/v1/owners/42/searches")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "listing searches failed")
}

func TestSearchHandler_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       map[string]any
		wantStatus int
		wantBody   string
		check      func(t *testing.T, specs []domain.SearchSpec)
	}{
		{
			name: "defaults applied",
			body: map[string]any{
				"name":      "nike",
				"keywords":  "nike air max",
				"max_price": "30",
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"min_profit":"8.00"`,
			check: func(t *testing.T, specs []domain.SearchSpec) {
				t.Helper()
				require.Len(t, specs, 1)
				assert.Equal(t, "s-1", specs[0].ID)
				assert.Equal(t, "1.8", specs[0].ProfitMargin.String())
			},
		},
		{
			name: "explicit margin and min profit",
			body: map[string]any{
				"name":          "levis",
				"keywords":      "levis 501",
				"max_price":     "25.50",
				"profit_margin": "2.5",
				"min_profit":    "12",
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"profit_margin":"2.5"`,
			check: func(t *testing.T, specs []domain.SearchSpec) {
				t.Helper()
				require.Len(t, specs, 1)
				assert.True(t, decimal.RequireFromString("25.50").Equal(specs[0].MaxPrice))
				assert.True(t, decimal.NewFromInt(12).Equal(specs[0].MinProfit))
			},
		},
		{
			name: "explicit zero min profit kept",
			body: map[string]any{
				"name":       "acg",
				"keywords":   "nike acg",
				"max_price":  "15",
				"min_profit": "0",
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"min_profit":"0.00"`,
			check: func(t *testing.T, specs []domain.SearchSpec) {
				t.Helper()
				require.Len(t, specs, 1)
				assert.True(t, specs[0].MinProfit.IsZero(), "min_profit=%s", specs[0].MinProfit)
			},
		},
		{
			name: "unparsable price",
			body: map[string]any{
				"name":      "x",
				"keywords":  "x",
				"max_price": "thirty",
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "max_price must be a decimal number",
		},
		{
			name: "zero price",
			body: map[string]any{
				"name":      "x",
				"keywords":  "x",
				"max_price": "0",
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "max price must be positive",
		},
		{
			name: "margin of one",
			body: map[string]any{
				"name":          "x",
				"keywords":      "x",
				"max_price":     "10",
				"profit_margin": "1",
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "invalid search",
		},
		{
			name: "missing keywords",
			body: map[string]any{
				"name":      "x",
				"max_price": "10",
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reg := store.NewMemoryStore()
			_, api := humatest.New(t)
			handlers.RegisterSearchRoutes(api, handlers.NewSearchHandler(reg, handlers.WithSearchIDFunc(seqIDs())))

			resp := api.Post("/api/v1/owners/42/searches", tt.body)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}

			specs, err := reg.ListSearches(context.Background(), "42")
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, specs)
				return
			}
			assert.Empty(t, specs)
		})
	}
}

func TestSearchHandler_Create_ReportsPosition(t *testing.T) {
	t.Parallel()

	reg := store.NewMemoryStore()
	seedSearch(t, reg, "42", "first")

	_, api := humatest.New(t)
	handlers.RegisterSearchRoutes(api, handlers.NewSearchHandler(reg))

	resp := api.Post("/api/v1/owners/42/searches", map[string]any{
		"name": "second", "keywords": "kw", "max_price": "10",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var got handlers.SearchView
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, 2, got.Index)
	assert.Equal(t, "42", got.OwnerID)
	assert.NotEmpty(t, got.ID)
}

func TestSearchHandler_Create_PositionByID(t *testing.T) {
	t.Parallel()

	spec := func(id, name string) domain.SearchSpec {
		return domain.SearchSpec{
			ID: id, OwnerID: "42", Name: name, Keywords: name,
			MaxPrice: decimal.NewFromInt(10), ProfitMargin: decimal.RequireFromString("1.8"),
		}
	}

	reg := storeMocks.NewMockSearchRegistry(t)
	reg.EXPECT().AddSearch(mock.Anything, mock.Anything).Return(nil).Once()
	// Another add for the same owner landed between AddSearch and ListSearches.
	reg.EXPECT().ListSearches(mock.Anything, "42").
		Return([]domain.SearchSpec{spec("old", "first"), spec("s-1", "second"), spec("s-9", "third")}, nil).
		Once()

	_, api := humatest.New(t)
	handlers.RegisterSearchRoutes(api, handlers.NewSearchHandler(reg, handlers.WithSearchIDFunc(seqIDs())))

	resp := api.Post("/api/v1/owners/42/searches", map[string]any{
		"name": "second", "keywords": "kw", "max_price": "10",
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var got handlers.SearchView
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, 2, got.Index)
	assert.Equal(t, "s-1", got.ID)
}

func TestSearchHandler_Create_StoreErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		addErr     error
		wantStatus int
	}{
		{name: "duplicate", addErr: fmt.Errorf("adding: %w", store.ErrDuplicateSearch), wantStatus: http.StatusConflict},
		{name: "backend failure", addErr: errors.New("db error"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reg := storeMocks.NewMockSearchRegistry(t)
			reg.EXPECT().
				AddSearch(mock.Anything, mock.MatchedBy(func(s *domain.SearchSpec) bool {
					return s.OwnerID == "42" && s.Name == "nike"
				})).
				Return(tt.addErr).
				Once()

			_, api := humatest.New(t)
			handlers.RegisterSearchRoutes(api, handlers.NewSearchHandler(reg))

			resp := api.Post("/api/v1/owners/42/searches", map[string]any{
				"name": "nike", "keywords": "nike", "max_price": "30",
			})
			assert.Equal(t, tt.wantStatus, resp.Code)
		})
	}
}

func TestSearchHandler_Delete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
		wantLeft   []string
	}{
		{
			name:       "middle search",
			path:       "/api/v1/owners/42/searches/2",
			wantStatus: http.StatusOK,
			wantBody:   `"name":"b"`,
			wantLeft:   []string{"a", "c"},
		},
		{
			name:       "past the end",
			path:       "/api/v1/owners/42/searches/9",
			wantStatus: http.StatusNotFound,
			wantBody:   "search not found",
			wantLeft:   []string{"a", "b", "c"},
		},
		{
			name:       "zero index",
			path:       "/api/v1/owners/42/searches/0",
			wantStatus: http.StatusUnprocessableEntity,
			wantLeft:   []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reg := store.NewMemoryStore()
			for _, n := range []string{"a", "b", "c"} {
				seedSearch(t, reg, "42", n)
			}

			_, api := humatest.New(t)
			handlers.RegisterSearchRoutes(api, handlers.NewSearchHandler(reg))

			resp := api.Delete(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}

			specs, err := reg.ListSearches(context.Background(), "42")
			require.NoError(t, err)
			names := make([]string, 0, len(specs))
			for i := range specs {
				names = append(names, specs[i].Name)
			}
			assert.Equal(t, tt.wantLeft, names)
		})
	}
}

func TestSearchHandler_Delete_StoreError(t *testing.T) {
	t.Parallel()

	reg := storeMocks.NewMockSearchRegistry(t)
	reg.EXPECT().
		RemoveSearchByIndex(mock.Anything, "42", 1).
		Return(nil, errors.New("db error")).
		Once()

	_, api := humatest.New(t)
	handlers.RegisterSearchRoutes(api, handlers.NewSearchHandler(reg))

	resp := api.Delete("/api/v1/owners/42/searches/1")
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "removing search failed")
}
