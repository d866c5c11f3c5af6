package client

import (
	"context"
	"net/url"
	"strconv"
	"time"

	domain "github.com/donaldgifford/deal-scanner/pkg/types"
)

// Search is a saved search as reported by the API.
type Search struct {
	Index        int       `json:"index"`
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	Name         string    `json:"name"`
	Keywords     string    `json:"keywords"`
	MaxPrice     string    `json:"max_price"`
	ProfitMargin string    `json:"profit_margin"`
	MinProfit    string    `json:"min_profit"`
	CreatedAt    time.Time `json:"created_at"`
}

// AddSearchRequest contains the fields accepted when adding a search.
// Empty optional fields select the server defaults.
type AddSearchRequest struct {
	Name         string `json:"name"`
	Keywords     string `json:"keywords"`
	MaxPrice     string `json:"max_price"`
	ProfitMargin string `json:"profit_margin,omitempty"`
	MinProfit    string `json:"min_profit,omitempty"`
}

func searchesPath(owner string) string {
	return "/api/v1/owners/" + url.PathEscape(owner) + "/searches"
}

// ListSearches returns the owner's searches in insertion order.
func (c *Client) ListSearches(ctx context.Context, owner string) ([]Search, error) {
	var searches []Search
	if err := c.get(ctx, searchesPath(owner), &searches); err != nil {
		return nil, err
	}
	return searches, nil
}

// AddSearch registers a search for the owner.
func (c *Client) AddSearch(ctx context.Context, owner string, req AddSearchRequest) (*Search, error) {
	var created Search
	if err := c.post(ctx, searchesPath(owner), req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// RemoveSearch removes the owner's search at the 1-based index.
func (c *Client) RemoveSearch(ctx context.Context, owner string, index int) (*Search, error) {
	var removed Search
	if err := c.del(ctx, searchesPath(owner)+"/"+strconv.Itoa(index), &removed); err != nil {
		return nil, err
	}
	return &removed, nil
}

// Stats returns the scanner statistics.
func (c *Client) Stats(ctx context.Context) (*domain.Stats, error) {
	var st domain.Stats
	if err := c.get(ctx, "/api/v1/stats", &st); err != nil {
		return nil, err
	}
	return &st, nil
}
