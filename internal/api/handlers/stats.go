package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/deal-scanner/pkg/types"
)

// StatsProvider reports scanner statistics.
type StatsProvider interface {
	Stats(ctx context.Context) (*domain.Stats, error)
}

// StatsHandler serves the scanner statistics.
type StatsHandler struct {
	provider StatsProvider
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(p StatsProvider) *StatsHandler {
	return &StatsHandler{provider: p}
}

// StatsOutput is the response body for the stats endpoint.
type StatsOutput struct {
	Body domain.Stats
}

// Get returns owner, search, scan and seen-item counts.
func (h *StatsHandler) Get(ctx context.Context, _ *struct{}) (*StatsOutput, error) {
	st, err := h.provider.Stats(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("loading stats failed: " + err.Error())
	}
	return &StatsOutput{Body: *st}, nil
}

// RegisterStatsRoutes registers the stats endpoint with the Huma API.
func RegisterStatsRoutes(api huma.API, h *StatsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-stats",
		Method:      http.MethodGet,
		Path:        "/api/v1/stats",
		Summary:     "Scanner statistics",
		Description: "Returns the number of owners, saved searches, completed scans and seen items.",
		Tags:        []string{"stats"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.Get)
}
