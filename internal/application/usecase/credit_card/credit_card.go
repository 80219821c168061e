// Package creditcard contains credit card use cases.
package creditcard

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mycash/backend/internal/application/adapter"
	"github.com/mycash/backend/internal/domain/entity"
	domainerror "github.com/mycash/backend/internal/domain/error"
	"github.com/mycash/backend/internal/domain/valueobject"
)

// CreditCardOutput represents a single credit card with its derived limit figures.
type CreditCardOutput struct {
	ID              uuid.UUID
	Name            string
	HolderID        uuid.UUID
	HolderName      string
	Limit           decimal.Decimal
	CurrentBill     decimal.Decimal
	AvailableLimit  decimal.Decimal
	UsagePercentage int
	ClosingDay      int
	DueDay          int
	Theme           entity.CardTheme
	LastDigits      string
	CreatedAt       time.Time
}

func toOutput(store adapter.FamilyMemberStore, c entity.CreditCard) *CreditCardOutput {
	holder := entity.UnknownName
	if m, ok := store.MemberByID(c.HolderID); ok {
		holder = m.Name
	}
	return &CreditCardOutput{
		ID:              c.ID,
		Name:            c.Name,
		HolderID:        c.HolderID,
		HolderName:      holder,
		Limit:           c.Limit,
		CurrentBill:     c.CurrentBill,
		AvailableLimit:  c.AvailableLimit(),
		UsagePercentage: c.UsagePercentage(),
		ClosingDay:      c.ClosingDay,
		DueDay:          c.DueDay,
		Theme:           c.Theme,
		LastDigits:      c.LastDigits,
		CreatedAt:       c.CreatedAt,
	}
}

// validateCard checks a card before it is stored. The holder is only resolved
// when checkHolder is set.
func validateCard(store adapter.FamilyMemberStore, c *entity.CreditCard, checkHolder bool) error {
	if valueobject.IsBlank(c.Name) {
		return domainerror.NewAccountError(
			domainerror.ErrCodeAccountNameRequired,
			"card name is required",
			domainerror.ErrAccountNameRequired,
		)
	}
	if valueobject.TextLength(c.Name) > valueobject.MaxNameLength {
		return domainerror.NewAccountError(
			domainerror.ErrCodeAccountNameTooLong,
			fmt.Sprintf("card name must not exceed %d characters", valueobject.MaxNameLength),
			domainerror.ErrAccountNameTooLong,
		)
	}
	if _, ok := store.MemberByID(c.HolderID); checkHolder && !ok {
		return domainerror.NewAccountError(
			domainerror.ErrCodeAccountHolderNotFound,
			"card holder not found",
			domainerror.ErrAccountHolderNotFound,
		)
	}
	if !c.Limit.IsPositive() {
		return domainerror.NewAccountError(
			domainerror.ErrCodeInvalidCardLimit,
			"card limit must be greater than zero",
			domainerror.ErrInvalidCardLimit,
		)
	}
	if c.CurrentBill.IsNegative() {
		return domainerror.NewAccountError(
			domainerror.ErrCodeInvalidCardBill,
			"current bill must not be negative",
			domainerror.ErrInvalidCardBill,
		)
	}
	if c.ClosingDay < 1 || c.ClosingDay > 31 {
		return domainerror.NewAccountError(
			domainerror.ErrCodeInvalidClosingDay,
			"closing day must be between 1 and 31",
			domainerror.ErrInvalidClosingDay,
		)
	}
	if c.DueDay < 1 || c.DueDay > 31 {
		return domainerror.NewAccountError(
			domainerror.ErrCodeInvalidDueDay,
			"due day must be between 1 and 31",
			domainerror.ErrInvalidDueDay,
		)
	}
	if !c.Theme.IsValid() {
		return domainerror.NewAccountError(
			domainerror.ErrCodeInvalidCardTheme,
			"theme must be 'black', 'lime' or 'white'",
			domainerror.ErrInvalidCardTheme,
		)
	}
	if c.LastDigits != "" && !valueobject.IsLastDigits(c.LastDigits) {
		return domainerror.NewAccountError(
			domainerror.ErrCodeInvalidLastDigits,
			"last digits must be 4 numeric characters",
			domainerror.ErrInvalidLastDigits,
		)
	}
	return nil
}

func normalize(c *entity.CreditCard) {
	c.Name = strings.TrimSpace(c.Name)
	c.LastDigits = strings.TrimSpace(c.LastDigits)
}

func notFoundError() error {
	return domainerror.NewAccountError(
		domainerror.ErrCodeCreditCardNotFound,
		"credit card not found",
		domainerror.ErrCreditCardNotFound,
	)
}
