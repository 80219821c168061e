// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mycash/backend/internal/domain/valueobject"
)

// DateLayout is the calendar date format accepted and produced by the API.
const DateLayout = "2006-01-02"

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// MessageResponse represents a simple acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

var errInvalidDate = errors.New("date must be YYYY-MM-DD or RFC 3339")

// ParseDate accepts a calendar date or an RFC 3339 timestamp. Calendar dates
// are placed at midnight in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(DateLayout, value, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.In(loc), nil
	}
	return time.Time{}, errInvalidDate
}

// ParseOptionalDate parses value when it is non-nil.
func ParseOptionalDate(value *string, loc *time.Location) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := ParseDate(*value, loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ParseOptionalUUID parses value when it is non-nil and non-empty.
func ParseOptionalUUID(value *string) (*uuid.UUID, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// Money converts a request amount to a decimal rounded to cents.
func Money(value float64) decimal.Decimal {
	return decimal.NewFromFloat(value).Round(2)
}

// OptionalMoney converts value when it is non-nil.
func OptionalMoney(value *float64) *decimal.Decimal {
	if value == nil {
		return nil
	}
	d := Money(*value)
	return &d
}

var errInvalidAmount = errors.New("amount must be a number or currency text such as \"R$ 1.234,56\"")

// Amount is a money value sent either as a JSON number or as typed currency
// text such as "R$ 1.234,56". Text that holds no number reads as zero.
type Amount struct {
	value decimal.Decimal
}

// NewAmount wraps d rounded to cents.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{value: d.Round(2)}
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*a = NewAmount(valueobject.ParseCurrencyInput(text))
		return nil
	}
	var number decimal.Decimal
	if err := json.Unmarshal(data, &number); err != nil {
		return errInvalidAmount
	}
	*a = NewAmount(number)
	return nil
}

// Decimal returns the amount.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// OptionalAmount returns the amount when a is non-nil.
func OptionalAmount(a *Amount) *decimal.Decimal {
	if a == nil {
		return nil
	}
	d := a.Decimal()
	return &d
}

// FormatMoney renders an amount with two decimal places.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Percent rounds a percentage to one decimal place for display.
func Percent(d decimal.Decimal) float64 {
	return d.Round(1).InexactFloat64()
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

func formatOptionalUUID(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
