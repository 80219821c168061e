// Package valueobject contains domain value objects and calculations for the mycash+ backend.
package valueobject

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// leadingNumber matches the numeric prefix of a cleaned currency input.
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)`)

// Difference is the change between two values.
type Difference struct {
	Absolute   decimal.Decimal // current - previous, signed
	Percentage decimal.Decimal // one decimal place, 0 when previous is 0
}

// Ratio returns 100 * part / total without rounding, or 0 when total is zero.
func Ratio(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Mul(hundred).Div(total)
}

// CalculatePercentage returns part as a percentage of total rounded to one decimal place.
func CalculatePercentage(part, total decimal.Decimal) decimal.Decimal {
	return Ratio(part, total).Round(1)
}

// CalculateDifference compares current against previous.
func CalculateDifference(current, previous decimal.Decimal) Difference {
	abs := current.Sub(previous)
	return Difference{
		Absolute:   abs,
		Percentage: CalculatePercentage(abs, previous),
	}
}

// InstallmentValue splits total into n parcels rounded to cents. A non-positive n yields total.
func InstallmentValue(total decimal.Decimal, n int) decimal.Decimal {
	if n <= 0 {
		return total
	}
	return total.Div(decimal.NewFromInt(int64(n))).Round(2)
}

// ParseCurrencyInput converts user input such as "R$ 1.234,56" into 1234.56.
// Unparsable input yields zero.
func ParseCurrencyInput(input string) decimal.Decimal {
	cleaned := strings.ReplaceAll(input, "R$", "")
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.Replace(cleaned, ",", ".", 1)
	cleaned = strings.TrimSpace(cleaned)

	match := leadingNumber.FindString(cleaned)
	if match == "" {
		return decimal.Zero
	}
	value, err := decimal.NewFromString(strings.TrimSuffix(match, "."))
	if err != nil {
		return decimal.Zero
	}
	return value
}
