package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CardTheme represents the visual theme of a credit card.
type CardTheme string

const (
	CardThemeBlack CardTheme = "black"
	CardThemeLime  CardTheme = "lime"
	CardThemeWhite CardTheme = "white"
)

// IsValid reports whether t is a known card theme.
func (t CardTheme) IsValid() bool {
	switch t {
	case CardThemeBlack, CardThemeLime, CardThemeWhite:
		return true
	}
	return false
}

// CreditCard represents a credit card held by a family member.
type CreditCard struct {
	ID          uuid.UUID
	Name        string
	HolderID    uuid.UUID // Informational, not enforced
	Limit       decimal.Decimal
	CurrentBill decimal.Decimal
	ClosingDay  int // 1-31, not checked against the calendar
	DueDay      int // 1-31, not checked against the calendar
	Theme       CardTheme
	LastDigits  string
	CreatedAt   time.Time
}

// Ref returns the tagged reference to this card.
func (c *CreditCard) Ref() AccountRef {
	return CreditCardRef(c.ID)
}

// AvailableLimit returns the limit not consumed by the current bill. It may be negative.
func (c *CreditCard) AvailableLimit() decimal.Decimal {
	return c.Limit.Sub(c.CurrentBill)
}

// UsagePercentage returns the bill as a whole percentage of the limit, 0 for a zero limit.
func (c *CreditCard) UsagePercentage() int {
	if c.Limit.IsZero() {
		return 0
	}
	return int(c.CurrentBill.Div(c.Limit).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
}

// CreditCardPatch carries the fields to change on a credit card.
type CreditCardPatch struct {
	Name        *string
	HolderID    *uuid.UUID
	Limit       *decimal.Decimal
	CurrentBill *decimal.Decimal
	ClosingDay  *int
	DueDay      *int
	Theme       *CardTheme
	LastDigits  *string
}

// Apply writes the patch onto c.
func (p CreditCardPatch) Apply(c *CreditCard) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.HolderID != nil {
		c.HolderID = *p.HolderID
	}
	if p.Limit != nil {
		c.Limit = *p.Limit
	}
	if p.CurrentBill != nil {
		c.CurrentBill = *p.CurrentBill
	}
	if p.ClosingDay != nil {
		c.ClosingDay = *p.ClosingDay
	}
	if p.DueDay != nil {
		c.DueDay = *p.DueDay
	}
	if p.Theme != nil {
		c.Theme = *p.Theme
	}
	if p.LastDigits != nil {
		c.LastDigits = *p.LastDigits
	}
}
