package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mycash/backend/internal/application/adapter"
	domainerror "github.com/mycash/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	TransactionID uuid.UUID
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	store adapter.FinanceStore
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(store adapter.FinanceStore) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		store: store,
	}
}

// Execute removes the transaction.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	if err := uc.store.DeleteTransaction(input.TransactionID); err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return notFoundError()
		}
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	slog.DebugContext(ctx, "transaction deleted", "transaction_id", input.TransactionID)
	return nil
}
