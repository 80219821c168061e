package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculatePercentage(t *testing.T) {
	tests := []struct {
		name     string
		part     string
		total    string
		expected string
	}{
		{"simple", "400", "1000", "40"},
		{"one decimal", "1", "3", "33.3"},
		{"zero total", "50", "0", "0"},
		{"above hundred", "1500", "1000", "150"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePercentage(d(tt.part), d(tt.total))
			assert.True(t, d(tt.expected).Equal(got), "got %s", got)
		})
	}
}

func TestCalculateDifference(t *testing.T) {
	diff := CalculateDifference(d("150"), d("100"))
	assert.True(t, d("50").Equal(diff.Absolute))
	assert.True(t, d("50").Equal(diff.Percentage))

	diff = CalculateDifference(d("80"), d("120"))
	assert.True(t, d("-40").Equal(diff.Absolute))
	assert.True(t, d("-33.3").Equal(diff.Percentage))

	diff = CalculateDifference(d("80"), decimal.Zero)
	assert.True(t, d("80").Equal(diff.Absolute))
	assert.True(t, diff.Percentage.IsZero())
}

func TestInstallmentValue(t *testing.T) {
	assert.True(t, d("33.33").Equal(InstallmentValue(d("100"), 3)))
	assert.True(t, d("100").Equal(InstallmentValue(d("100"), 1)))
	assert.True(t, d("100").Equal(InstallmentValue(d("100"), 0)))
	assert.True(t, d("100").Equal(InstallmentValue(d("100"), -2)))
}

func TestParseCurrencyInput(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"R$ 1.234,56", "1234.56"},
		{"R$1.234,56", "1234.56"},
		{"1.000.000,00", "1000000"},
		{"  42  ", "42"},
		{"12abc", "12"},
		{"abc", "0"},
		{"", "0"},
		{"R$ ", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseCurrencyInput(tt.input)
			assert.True(t, d(tt.expected).Equal(got), "got %s", got)
		})
	}
}
