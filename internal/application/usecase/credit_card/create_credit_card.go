package creditcard

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mycash/backend/internal/application/adapter"
	"github.com/mycash/backend/internal/domain/entity"
)

// CreateCreditCardInput represents the input for card creation.
type CreateCreditCardInput struct {
	Name        string
	HolderID    uuid.UUID
	Limit       decimal.Decimal
	CurrentBill decimal.Decimal
	ClosingDay  int
	DueDay      int
	Theme       entity.CardTheme
	LastDigits  string
}

// CreateCreditCardOutput represents the output of card creation.
type CreateCreditCardOutput struct {
	CreditCard *CreditCardOutput
}

// CreateCreditCardUseCase handles card creation logic.
type CreateCreditCardUseCase struct {
	store adapter.FinanceStore
}

// NewCreateCreditCardUseCase creates a new CreateCreditCardUseCase instance.
func NewCreateCreditCardUseCase(store adapter.FinanceStore) *CreateCreditCardUseCase {
	return &CreateCreditCardUseCase{
		store: store,
	}
}

// Execute performs the card creation.
func (uc *CreateCreditCardUseCase) Execute(ctx context.Context, input CreateCreditCardInput) (*CreateCreditCardOutput, error) {
	draft := entity.CreditCard{
		Name:        input.Name,
		HolderID:    input.HolderID,
		Limit:       input.Limit,
		CurrentBill: input.CurrentBill,
		ClosingDay:  input.ClosingDay,
		DueDay:      input.DueDay,
		Theme:       input.Theme,
		LastDigits:  input.LastDigits,
	}
	normalize(&draft)
	if draft.Theme == "" {
		draft.Theme = entity.CardThemeBlack
	}
	if err := validateCard(uc.store, &draft, true); err != nil {
		return nil, err
	}

	created := uc.store.AddCreditCard(draft)
	slog.DebugContext(ctx, "credit card created", "card_id", created.ID, "holder_id", created.HolderID)

	return &CreateCreditCardOutput{CreditCard: toOutput(uc.store, created)}, nil
}
