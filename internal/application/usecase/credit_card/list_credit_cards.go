package creditcard

import (
	"context"

	"github.com/google/uuid"

	"github.com/mycash/backend/internal/application/adapter"
)

// ListCreditCardsInput represents the input for listing cards.
type ListCreditCardsInput struct {
	HolderID *uuid.UUID
}

// ListCreditCardsOutput represents the output of listing cards.
type ListCreditCardsOutput struct {
	CreditCards []*CreditCardOutput
}

// ListCreditCardsUseCase handles listing cards logic.
type ListCreditCardsUseCase struct {
	store adapter.FinanceStore
}

// NewListCreditCardsUseCase creates a new ListCreditCardsUseCase instance.
func NewListCreditCardsUseCase(store adapter.FinanceStore) *ListCreditCardsUseCase {
	return &ListCreditCardsUseCase{
		store: store,
	}
}

// Execute lists cards in insertion order.
func (uc *ListCreditCardsUseCase) Execute(ctx context.Context, input ListCreditCardsInput) (*ListCreditCardsOutput, error) {
	out := &ListCreditCardsOutput{CreditCards: []*CreditCardOutput{}}
	for _, c := range uc.store.CreditCards() {
		if input.HolderID != nil && c.HolderID != *input.HolderID {
			continue
		}
		out.CreditCards = append(out.CreditCards, toOutput(uc.store, c))
	}
	return out, nil
}
