package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/deal-scanner/internal/engine"
)

// CycleRunner runs one scan cycle.
type CycleRunner interface {
	RunCycle(ctx context.Context) (*engine.CycleReport, error)
}

// ScanHandler handles manual scan trigger requests.
type ScanHandler struct {
	runner CycleRunner
}

// NewScanHandler creates a new ScanHandler.
func NewScanHandler(r CycleRunner) *ScanHandler {
	return &ScanHandler{runner: r}
}

// ScanOutput is the response body for the scan endpoint. Report is nil when
// no searches are registered.
type ScanOutput struct {
	Body struct {
		Status string              `json:"status" example:"scan completed" doc:"Scan status"`
		Report *engine.CycleReport `json:"report,omitempty" doc:"Cycle summary"`
	}
}

// Scan runs one cycle synchronously. It waits for a scheduled cycle in
// progress to finish first.
func (h *ScanHandler) Scan(ctx context.Context, _ *struct{}) (*ScanOutput, error) {
	report, err := h.runner.RunCycle(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("scan failed: " + err.Error())
	}

	resp := &ScanOutput{}
	resp.Body.Report = report
	resp.Body.Status = "scan completed"
	if report == nil {
		resp.Body.Status = "no searches registered"
	}
	return resp, nil
}

// RegisterScanRoutes registers the scan trigger with the Huma API.
func RegisterScanRoutes(api huma.API, h *ScanHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "trigger-scan",
		Method:      http.MethodPost,
		Path:        "/api/v1/scan",
		Summary:     "Run a scan cycle",
		Description: "Runs one scan cycle over every saved search and returns its summary.",
		Tags:        []string{"scan"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.Scan)
}
