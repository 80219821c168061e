package creditcard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mycash/backend/internal/application/adapter"
	domainerror "github.com/mycash/backend/internal/domain/error"
)

// DeleteCreditCardInput represents the input for card deletion.
type DeleteCreditCardInput struct {
	CardID uuid.UUID
}

// DeleteCreditCardUseCase handles card deletion logic.
type DeleteCreditCardUseCase struct {
	store adapter.FinanceStore
}

// NewDeleteCreditCardUseCase creates a new DeleteCreditCardUseCase instance.
func NewDeleteCreditCardUseCase(store adapter.FinanceStore) *DeleteCreditCardUseCase {
	return &DeleteCreditCardUseCase{
		store: store,
	}
}

// Execute removes the card.
func (uc *DeleteCreditCardUseCase) Execute(ctx context.Context, input DeleteCreditCardInput) error {
	err := uc.store.DeleteCreditCard(input.CardID)
	switch {
	case err == nil:
		slog.DebugContext(ctx, "credit card deleted", "card_id", input.CardID)
		return nil
	case errors.Is(err, domainerror.ErrCreditCardNotFound):
		return notFoundError()
	case errors.Is(err, domainerror.ErrAccountInUse):
		return domainerror.NewAccountError(
			domainerror.ErrCodeAccountInUse,
			"credit card is used by transactions",
			domainerror.ErrAccountInUse,
		)
	default:
		return fmt.Errorf("failed to delete credit card: %w", err)
	}
}
