package handlers

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/donaldgifford/deal-scanner/internal/store"
	"github.com/donaldgifford/deal-scanner/pkg/profit"
	domain "github.com/donaldgifford/deal-scanner/pkg/types"
)

// SearchView is the API representation of a saved search. Money is
// rendered as decimal strings.
type SearchView struct {
	Index        int       `json:"index" example:"1" doc:"1-based position within the owner's searches"`
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id" example:"123456789012345678"`
	Name         string    `json:"name" example:"nike"`
	Keywords     string    `json:"keywords" example:"nike air max"`
	MaxPrice     string    `json:"max_price" example:"30.00"`
	ProfitMargin string    `json:"profit_margin" example:"1.8"`
	MinProfit    string    `json:"min_profit" example:"8.00"`
	CreatedAt    time.Time `json:"created_at"`
}

func toSearchView(index int, s *domain.SearchSpec) SearchView {
	return SearchView{
		Index:        index,
		ID:           s.ID,
		OwnerID:      s.OwnerID,
		Name:         s.Name,
		Keywords:     s.Keywords,
		MaxPrice:     s.MaxPrice.StringFixed(2),
		ProfitMargin: s.ProfitMargin.String(),
		MinProfit:    s.MinProfit.StringFixed(2),
		CreatedAt:    s.CreatedAt,
	}
}

// SearchHandler manages saved searches per owner.
type SearchHandler struct {
	registry store.SearchRegistry
	policy   profit.Policy
	newID    func() string
	now      func() time.Time
}

// SearchHandlerOption configures a SearchHandler.
type SearchHandlerOption func(*SearchHandler)

// WithSearchPolicy sets the defaults applied when margin or min profit are
// omitted.
func WithSearchPolicy(p profit.Policy) SearchHandlerOption {
	return func(h *SearchHandler) {
		h.policy = p
	}
}

// WithSearchIDFunc overrides search id generation.
func WithSearchIDFunc(f func() string) SearchHandlerOption {
	return func(h *SearchHandler) {
		h.newID = f
	}
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(r store.SearchRegistry, opts ...SearchHandlerOption) *SearchHandler {
	h := &SearchHandler{
		registry: r,
		policy:   profit.DefaultPolicy(),
		newID:    uuid.NewString,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// OwnerInput identifies the owner in the path.
type OwnerInput struct {
	Owner string `path:"owner" minLength:"1" doc:"Discord user id of the owner"`
}

// ListSearchesOutput is the response body for listing an owner's searches.
type ListSearchesOutput struct {
	Body []SearchView
}

// List returns the owner's searches in insertion order.
func (h *SearchHandler) List(ctx context.Context, input *OwnerInput) (*ListSearchesOutput, error) {
	specs, err := h.registry.ListSearches(ctx, input.Owner)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing searches failed: " + err.Error())
	}

	views := make([]SearchView, 0, len(specs))
	for i := range specs {
		views = append(views, toSearchView(i+1, &specs[i]))
	}
	return &ListSearchesOutput{Body: views}, nil
}

// CreateSearchInput is the request for adding a search.
type CreateSearchInput struct {
	Owner string `path:"owner" minLength:"1" doc:"Discord user id of the owner"`
	Body  struct {
		Name         string `json:"name" minLength:"1" maxLength:"80" example:"nike"`
		Keywords     string `json:"keywords" minLength:"1" example:"nike air max"`
		MaxPrice     string `json:"max_price" example:"30" doc:"Highest listing price, decimal string"`
		ProfitMargin string `json:"profit_margin,omitempty" required:"false" example:"1.8" doc:"Resale multiplier, defaults to 1.8"`
		MinProfit    string `json:"min_profit,omitempty" required:"false" example:"8" doc:"Minimum estimated profit, defaults to 8"`
	}
}

// SearchOutput is the response body for a single search.
type SearchOutput struct {
	Body SearchView
}

// Create adds a search for the owner.
func (h *SearchHandler) Create(ctx context.Context, input *CreateSearchInput) (*SearchOutput, error) {
	maxPrice, err := parseAmount("max_price", input.Body.MaxPrice, decimal.Zero)
	if err != nil {
		return nil, err
	}
	margin, err := parseAmount("profit_margin", input.Body.ProfitMargin, h.policy.DefaultMargin)
	if err != nil {
		return nil, err
	}
	minProfit, err := parseAmount("min_profit", input.Body.MinProfit, h.policy.DefaultMinProfit)
	if err != nil {
		return nil, err
	}

	spec := &domain.SearchSpec{
		ID:           h.newID(),
		OwnerID:      input.Owner,
		Name:         strings.TrimSpace(input.Body.Name),
		Keywords:     strings.TrimSpace(input.Body.Keywords),
		MaxPrice:     maxPrice,
		ProfitMargin: margin,
		MinProfit:    minProfit,
		CreatedAt:    h.now().UTC(),
	}
	if err := spec.Validate(); err != nil {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}

	if err := h.registry.AddSearch(ctx, spec); err != nil {
		if errors.Is(err, store.ErrDuplicateSearch) {
			return nil, huma.Error409Conflict(err.Error())
		}
		return nil, huma.Error500InternalServerError("adding search failed: " + err.Error())
	}

	specs, err := h.registry.ListSearches(ctx, input.Owner)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing searches failed: " + err.Error())
	}
	pos := slices.IndexFunc(specs, func(s domain.SearchSpec) bool { return s.ID == spec.ID })
	if pos < 0 {
		return nil, huma.Error500InternalServerError("search " + spec.ID + " missing after add")
	}

	return &SearchOutput{Body: toSearchView(pos+1, spec)}, nil
}

// DeleteSearchInput identifies a search by owner and position.
type DeleteSearchInput struct {
	Owner string `path:"owner" minLength:"1" doc:"Discord user id of the owner"`
	Index int    `path:"index" minimum:"1" doc:"1-based position reported by the list endpoint"`
}

// Delete removes the owner's search at the given position and returns it.
func (h *SearchHandler) Delete(ctx context.Context, input *DeleteSearchInput) (*SearchOutput, error) {
	removed, err := h.registry.RemoveSearchByIndex(ctx, input.Owner, input.Index)
	if errors.Is(err, store.ErrSearchNotFound) {
		return nil, huma.Error404NotFound(err.Error())
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("removing search failed: " + err.Error())
	}
	return &SearchOutput{Body: toSearchView(input.Index, removed)}, nil
}

// parseAmount parses a decimal field, returning def when raw is empty.
func parseAmount(field, raw string, def decimal.Decimal) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, huma.Error422UnprocessableEntity(field + " must be a decimal number")
	}
	return d, nil
}

// RegisterSearchRoutes registers the saved search endpoints with the Huma API.
func RegisterSearchRoutes(api huma.API, h *SearchHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-searches",
		Method:      http.MethodGet,
		Path:        "/api/v1/owners/{owner}/searches",
		Summary:     "List an owner's searches",
		Description: "Returns the owner's saved searches in insertion order with their 1-based positions.",
		Tags:        []string{"searches"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID:   "create-search",
		Method:        http.MethodPost,
		Path:          "/api/v1/owners/{owner}/searches",
		Summary:       "Add a search",
		Description:   "Registers a saved search. Margin and minimum profit fall back to the configured defaults.",
		Tags:          []string{"searches"},
		DefaultStatus: http.StatusCreated,
		Errors: []int{
			http.StatusConflict,
			http.StatusUnprocessableEntity,
			http.StatusInternalServerError,
		},
	}, h.Create)

	huma.Register(api, huma.Operation{
		OperationID: "delete-search",
		Method:      http.MethodDelete,
		Path:        "/api/v1/owners/{owner}/searches/{index}",
		Summary:     "Remove a search",
		Description: "Removes the owner's search at the given 1-based position and returns it.",
		Tags:        []string{"searches"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.Delete)
}
