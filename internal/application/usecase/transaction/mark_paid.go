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

// MarkPaidInput represents the input for settling a transaction.
type MarkPaidInput struct {
	TransactionID uuid.UUID
}

// MarkPaidOutput represents the output of settling a transaction.
type MarkPaidOutput struct {
	Transaction *TransactionOutput
}

// MarkPaidUseCase settles a pending bill.
type MarkPaidUseCase struct {
	store adapter.FinanceStore
}

// NewMarkPaidUseCase creates a new MarkPaidUseCase instance.
func NewMarkPaidUseCase(store adapter.FinanceStore) *MarkPaidUseCase {
	return &MarkPaidUseCase{
		store: store,
	}
}

// Execute marks the transaction as paid and completed. Repeating it has no further effect.
func (uc *MarkPaidUseCase) Execute(ctx context.Context, input MarkPaidInput) (*MarkPaidOutput, error) {
	paid, err := uc.store.MarkTransactionAsPaid(input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to mark transaction as paid: %w", err)
	}

	slog.DebugContext(ctx, "transaction marked as paid", "transaction_id", paid.ID)

	return &MarkPaidOutput{
		Transaction: NewTransactionOutput(uc.store, paid),
	}, nil
}
