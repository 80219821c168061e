package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"number", `{"amount": 180.5}`, "180.5"},
		{"number rounded to cents", `{"amount": 10.005}`, "10.01"},
		{"currency text", `{"amount": "R$ 1.234,56"}`, "1234.56"},
		{"plain text with comma", `{"amount": "99,90"}`, "99.9"},
		{"text without a number", `{"amount": "R$"}`, "0"},
		{"absent", `{}`, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req struct {
				Amount Amount `json:"amount"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.True(t, decimal.RequireFromString(tt.want).Equal(req.Amount.Decimal()), "got %s", req.Amount.Decimal())
		})
	}
}

func TestAmount_RejectsOtherTypes(t *testing.T) {
	var req struct {
		Amount Amount `json:"amount"`
	}
	err := json.Unmarshal([]byte(`{"amount": true}`), &req)
	assert.ErrorIs(t, err, errInvalidAmount)
}

func TestOptionalAmount(t *testing.T) {
	var req struct {
		Amount *Amount `json:"amount,omitempty"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))
	assert.Nil(t, OptionalAmount(req.Amount))

	require.NoError(t, json.Unmarshal([]byte(`{"amount": "R$ 50,00"}`), &req))
	got := OptionalAmount(req.Amount)
	require.NotNil(t, got)
	assert.True(t, decimal.NewFromInt(50).Equal(*got))
}
