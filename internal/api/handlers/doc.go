// Package handlers implements the HTTP handlers of the deal scanner API.
//
// Health endpoints are plain Echo handlers; every /api/v1 operation is
// registered through Huma so it appears in the generated OpenAPI document.
package handlers

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}
