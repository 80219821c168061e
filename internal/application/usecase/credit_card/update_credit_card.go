package creditcard

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mycash/backend/internal/application/adapter"
	"github.com/mycash/backend/internal/domain/entity"
	domainerror "github.com/mycash/backend/internal/domain/error"
)

// UpdateCreditCardInput represents the input for card update.
type UpdateCreditCardInput struct {
	CardID      uuid.UUID
	Name        *string
	HolderID    *uuid.UUID
	Limit       *decimal.Decimal
	CurrentBill *decimal.Decimal
	ClosingDay  *int
	DueDay      *int
	Theme       *entity.CardTheme
	LastDigits  *string
}

// UpdateCreditCardOutput represents the output of card update.
type UpdateCreditCardOutput struct {
	CreditCard *CreditCardOutput
}

// UpdateCreditCardUseCase handles card update logic.
type UpdateCreditCardUseCase struct {
	store adapter.FinanceStore
}

// NewUpdateCreditCardUseCase creates a new UpdateCreditCardUseCase instance.
func NewUpdateCreditCardUseCase(store adapter.FinanceStore) *UpdateCreditCardUseCase {
	return &UpdateCreditCardUseCase{
		store: store,
	}
}

// Execute performs the card update. Invalid changes leave the card untouched.
func (uc *UpdateCreditCardUseCase) Execute(ctx context.Context, input UpdateCreditCardInput) (*UpdateCreditCardOutput, error) {
	current, ok := uc.store.CreditCardByID(input.CardID)
	if !ok {
		return nil, notFoundError()
	}

	patch := entity.CreditCardPatch{
		Name:        input.Name,
		HolderID:    input.HolderID,
		Limit:       input.Limit,
		CurrentBill: input.CurrentBill,
		ClosingDay:  input.ClosingDay,
		DueDay:      input.DueDay,
		Theme:       input.Theme,
		LastDigits:  input.LastDigits,
	}
	merged := current
	patch.Apply(&merged)
	normalize(&merged)
	if err := validateCard(uc.store, &merged, input.HolderID != nil); err != nil {
		return nil, err
	}
	patch.Name = &merged.Name
	patch.LastDigits = &merged.LastDigits

	updated, err := uc.store.UpdateCreditCard(input.CardID, patch)
	if err != nil {
		if errors.Is(err, domainerror.ErrCreditCardNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to update credit card: %w", err)
	}

	return &UpdateCreditCardOutput{CreditCard: toOutput(uc.store, updated)}, nil
}
