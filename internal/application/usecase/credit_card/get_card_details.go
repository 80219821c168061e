package creditcard

import (
	"context"

	"github.com/google/uuid"

	"github.com/mycash/backend/internal/application/adapter"
	"github.com/mycash/backend/internal/application/usecase/transaction"
	"github.com/mycash/backend/internal/domain/entity"
)

// RecentExpensesLimit caps how many card expenses the details view shows.
const RecentExpensesLimit = 10

// GetCardDetailsInput represents the input for the card details view.
type GetCardDetailsInput struct {
	CardID uuid.UUID
}

// GetCardDetailsOutput carries the card and the latest expenses charged to it.
type GetCardDetailsOutput struct {
	CreditCard     *CreditCardOutput
	RecentExpenses []*transaction.TransactionOutput
}

// GetCardDetailsUseCase builds the card details view.
type GetCardDetailsUseCase struct {
	store adapter.FinanceStore
}

// NewGetCardDetailsUseCase creates a new GetCardDetailsUseCase instance.
func NewGetCardDetailsUseCase(store adapter.FinanceStore) *GetCardDetailsUseCase {
	return &GetCardDetailsUseCase{
		store: store,
	}
}

// Execute looks the card up and collects its expenses over the whole ledger,
// ignoring the global filters.
func (uc *GetCardDetailsUseCase) Execute(ctx context.Context, input GetCardDetailsInput) (*GetCardDetailsOutput, error) {
	card, ok := uc.store.CreditCardByID(input.CardID)
	if !ok {
		return nil, notFoundError()
	}

	ref := card.Ref()
	expenses := make([]entity.Transaction, 0, RecentExpensesLimit)
	for _, t := range uc.store.Transactions() {
		if len(expenses) == RecentExpensesLimit {
			break
		}
		if t.IsExpense() && t.Account == ref {
			expenses = append(expenses, t)
		}
	}

	return &GetCardDetailsOutput{
		CreditCard:     toOutput(uc.store, card),
		RecentExpenses: transaction.NewTransactionOutputs(uc.store, expenses),
	}, nil
}
