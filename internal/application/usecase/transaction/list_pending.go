package transaction

import (
	"context"

	"github.com/mycash/backend/internal/application/adapter"
	domainerror "github.com/mycash/backend/internal/domain/error"
)

// ListPendingInput represents the input for listing upcoming bills.
type ListPendingInput struct {
	Limit int // 0 returns every pending expense
}

// ListPendingOutput represents the upcoming bills, soonest due first.
type ListPendingOutput struct {
	Transactions []*TransactionOutput
	Total        int
}

// ListPendingUseCase lists unpaid expenses with a due date.
type ListPendingUseCase struct {
	store adapter.FinanceStore
}

// NewListPendingUseCase creates a new ListPendingUseCase instance.
func NewListPendingUseCase(store adapter.FinanceStore) *ListPendingUseCase {
	return &ListPendingUseCase{
		store: store,
	}
}

// Execute returns the pending expenses, optionally truncated to Limit.
func (uc *ListPendingUseCase) Execute(ctx context.Context, input ListPendingInput) (*ListPendingOutput, error) {
	if input.Limit < 0 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionPage,
			"limit must not be negative",
			domainerror.ErrInvalidPagination,
		)
	}

	pending := uc.store.PendingExpenses()
	total := len(pending)
	if input.Limit > 0 && input.Limit < total {
		pending = pending[:input.Limit]
	}

	return &ListPendingOutput{
		Transactions: NewTransactionOutputs(uc.store, pending),
		Total:        total,
	}, nil
}
