package vinted

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemID_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    ItemID
		wantErr bool
	}{
		{name: "number", input: `4512876`, want: "4512876"},
		{name: "string", input: `"4512876"`, want: "4512876"},
		{name: "padded string", input: `" 42 "`, want: "42"},
		{name: "null", input: `null`, want: ""},
		{name: "object", input: `{"id": 1}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var id ItemID
			err := json.Unmarshal([]byte(tt.input), &id)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestPrice_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Price
		wantErr bool
	}{
		{name: "number", input: `12.5`, want: Price{Amount: "12.5"}},
		{name: "display string", input: `"12,50 €"`, want: Price{Amount: "12,50 €"}},
		{
			name:  "object with string amount",
			input: `{"amount": "9.90", "currency_code": "EUR"}`,
			want:  Price{Amount: "9.90", Currency: "EUR"},
		},
		{
			name:  "object with numeric amount",
			input: `{"amount": 15, "currency_code": "PLN"}`,
			want:  Price{Amount: "15", Currency: "PLN"},
		},
		{name: "object without amount", input: `{"currency_code": "EUR"}`, want: Price{Currency: "EUR"}},
		{name: "null", input: `null`, want: Price{}},
		{name: "boolean", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var p Price
			err := json.Unmarshal([]byte(tt.input), &p)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
		})
	}
}

func TestCatalogAPIResponse_Decode(t *testing.T) {
	t.Parallel()

	body := `{
		"items": [
			{"id": 1, "title": "Levi's 501", "price": {"amount": "18.00", "currency_code": "EUR"}, "url": "https://www.vinted.fr/items/1"},
			{"id": "2", "title": "Carhartt jacket", "price": "35", "currency": "EUR"}
		],
		"pagination": {"current_page": 1}
	}`

	var resp catalogAPIResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.Len(t, resp.Items, 2)
	assert.Equal(t, ItemID("1"), resp.Items[0].ID)
	assert.Equal(t, "EUR", resp.Items[0].Price.Currency)
	assert.Equal(t, "35", resp.Items[1].Price.Amount)
	assert.Equal(t, "EUR", resp.Items[1].Currency)
}
