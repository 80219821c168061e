package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mycash/backend/internal/application/adapter"
	"github.com/mycash/backend/internal/domain/entity"
	domainerror "github.com/mycash/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update.
type UpdateTransactionInput struct {
	TransactionID      uuid.UUID
	Type               *entity.TransactionType
	Description        *string
	Amount             *decimal.Decimal
	CategoryID         *uuid.UUID
	Account            *entity.AccountRef
	MemberID           *uuid.UUID
	ClearMember        bool // Set to true to attribute the transaction to the whole family
	Date               *time.Time
	DueDate            *time.Time
	ClearDueDate       bool
	Installments       *int
	CurrentInstallment *int
	Status             *entity.TransactionStatus
	IsRecurring        *bool
	IsPaid             *bool
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	store adapter.FinanceStore
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(store adapter.FinanceStore) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		store: store,
	}
}

// Execute applies the supplied fields only. Field rules are checked on the merged
// result; references are resolved only when the update changes them.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	existing, ok := uc.store.TransactionByID(input.TransactionID)
	if !ok {
		return nil, notFoundError()
	}

	patch := entity.TransactionPatch{
		Type:               input.Type,
		Description:        input.Description,
		Amount:             input.Amount,
		CategoryID:         input.CategoryID,
		Account:            input.Account,
		MemberID:           input.MemberID,
		ClearMember:        input.ClearMember,
		Date:               input.Date,
		DueDate:            input.DueDate,
		ClearDueDate:       input.ClearDueDate,
		Installments:       input.Installments,
		CurrentInstallment: input.CurrentInstallment,
		Status:             input.Status,
		IsRecurring:        input.IsRecurring,
		IsPaid:             input.IsPaid,
	}

	merged := existing.Clone()
	patch.Apply(&merged)
	checks := referenceChecks{
		category:     input.CategoryID != nil,
		categoryType: input.CategoryID != nil || input.Type != nil,
		account:      input.Account != nil,
		member:       input.MemberID != nil,
	}
	if err := validateTransaction(uc.store, &merged, checks); err != nil {
		return nil, err
	}

	updated, err := uc.store.UpdateTransaction(input.TransactionID, patch)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	slog.DebugContext(ctx, "transaction updated", "transaction_id", updated.ID)

	return &UpdateTransactionOutput{
		Transaction: NewTransactionOutput(uc.store, updated),
	}, nil
}

func notFoundError() error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeTransactionNotFound,
		"transaction not found",
		domainerror.ErrTransactionNotFound,
	)
}
