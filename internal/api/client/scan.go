package client

import (
	"context"
	"time"
)

// CycleReport summarizes a completed scan cycle.
type CycleReport struct {
	Scan      int64         `json:"scan"`
	Searches  int           `json:"searches"`
	Evaluated int           `json:"evaluated"`
	Deals     int           `json:"deals"`
	Delivered int           `json:"delivered"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
}

// ScanResult is the response of a manual scan. Report is nil when no
// searches are registered.
type ScanResult struct {
	Status string       `json:"status"`
	Report *CycleReport `json:"report,omitempty"`
}

// Scan runs one scan cycle on the server and waits for its summary.
func (c *Client) Scan(ctx context.Context) (*ScanResult, error) {
	var result ScanResult
	if err := c.post(ctx, "/api/v1/scan", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
