package transaction

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mycash/backend/internal/application/adapter"
	"github.com/mycash/backend/internal/domain/entity"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Type               entity.TransactionType
	Description        string
	Amount             decimal.Decimal
	CategoryID         uuid.UUID
	Account            entity.AccountRef
	MemberID           *uuid.UUID
	Date               time.Time
	DueDate            *time.Time
	Installments       int // 0 means a single payment
	CurrentInstallment *int
	Status             entity.TransactionStatus // empty means completed
	IsRecurring        bool
	IsPaid             bool
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	store adapter.FinanceStore
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(store adapter.FinanceStore) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		store: store,
	}
}

// Execute validates the input and adds the transaction to the head of the ledger.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	draft := entity.Transaction{
		Type:               input.Type,
		Description:        input.Description,
		Amount:             input.Amount,
		CategoryID:         input.CategoryID,
		Account:            input.Account,
		MemberID:           input.MemberID,
		Date:               input.Date,
		DueDate:            input.DueDate,
		Installments:       input.Installments,
		CurrentInstallment: input.CurrentInstallment,
		Status:             input.Status,
		IsRecurring:        input.IsRecurring,
		IsPaid:             input.IsPaid,
	}
	if draft.Installments == 0 {
		draft.Installments = 1
	}
	if draft.Status == "" {
		draft.Status = entity.TransactionStatusCompleted
	}

	if err := validateTransaction(uc.store, &draft, allReferences); err != nil {
		return nil, err
	}

	created := uc.store.AddTransaction(draft)

	slog.DebugContext(ctx, "transaction created",
		"transaction_id", created.ID,
		"type", created.Type,
		"amount", created.Amount.String(),
		"account", created.Account.String(),
	)

	return &CreateTransactionOutput{
		Transaction: NewTransactionOutput(uc.store, created),
	}, nil
}
