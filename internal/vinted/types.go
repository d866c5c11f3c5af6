package vinted

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// CatalogItem is a single entry of the catalog API "items" array. The scrape
// client produces the same shape from markup.
type CatalogItem struct {
	ID       ItemID `json:"id"`
	Title    string `json:"title"`
	Price    Price  `json:"price"`
	Currency string `json:"currency,omitempty"`
	URL      string `json:"url,omitempty"`
}

// ItemID accepts both numeric and string identifiers.
type ItemID string

// UnmarshalJSON decodes a JSON number or string into an ItemID.
func (id *ItemID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("decoding item id: %w", err)
		}
		*id = ItemID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("decoding item id: %w", err)
	}
	*id = ItemID(n.String())
	return nil
}

// Price is the raw catalog price. The API has shipped it as a bare number,
// a display string, and an {amount, currency_code} object; all three decode
// here. Amount stays a string and is parsed during conversion.
type Price struct {
	Amount   string
	Currency string
}

// UnmarshalJSON decodes any of the price shapes.
func (p *Price) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*p = Price{}
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("decoding price string: %w", err)
		}
		*p = Price{Amount: s}
	case '{':
		var obj struct {
			Amount       json.RawMessage `json:"amount"`
			CurrencyCode string          `json:"currency_code"`
		}
		if err := json.Unmarshal(b, &obj); err != nil {
			return fmt.Errorf("decoding price object: %w", err)
		}
		var inner Price
		if len(obj.Amount) > 0 {
			if err := inner.UnmarshalJSON(obj.Amount); err != nil {
				return err
			}
		}
		*p = Price{Amount: inner.Amount, Currency: obj.CurrencyCode}
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("decoding price number: %w", err)
		}
		*p = Price{Amount: n.String()}
	}
	return nil
}

type catalogAPIResponse struct {
	Items []CatalogItem `json:"items"`
}
