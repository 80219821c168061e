// Package bankaccount contains bank account use cases.
package bankaccount

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mycash/backend/internal/application/adapter"
	"github.com/mycash/backend/internal/domain/entity"
	domainerror "github.com/mycash/backend/internal/domain/error"
	"github.com/mycash/backend/internal/domain/valueobject"
)

// Store is the part of the finance store the bank account use cases need.
type Store interface {
	adapter.BankAccountStore
	adapter.FamilyMemberStore
}

// BankAccountOutput represents a single bank account.
type BankAccountOutput struct {
	ID         uuid.UUID
	Name       string
	HolderID   uuid.UUID
	HolderName string
	Balance    decimal.Decimal
	CreatedAt  time.Time
}

func toOutput(store adapter.FamilyMemberStore, a entity.BankAccount) *BankAccountOutput {
	holder := entity.UnknownName
	if m, ok := store.MemberByID(a.HolderID); ok {
		holder = m.Name
	}
	return &BankAccountOutput{
		ID:         a.ID,
		Name:       a.Name,
		HolderID:   a.HolderID,
		HolderName: holder,
		Balance:    a.Balance,
		CreatedAt:  a.CreatedAt,
	}
}

func validateAccount(store adapter.FamilyMemberStore, a *entity.BankAccount, checkHolder bool) error {
	if valueobject.IsBlank(a.Name) {
		return domainerror.NewAccountError(
			domainerror.ErrCodeAccountNameRequired,
			"account name is required",
			domainerror.ErrAccountNameRequired,
		)
	}
	if valueobject.TextLength(a.Name) > valueobject.MaxNameLength {
		return domainerror.NewAccountError(
			domainerror.ErrCodeAccountNameTooLong,
			fmt.Sprintf("account name must not exceed %d characters", valueobject.MaxNameLength),
			domainerror.ErrAccountNameTooLong,
		)
	}
	if _, ok := store.MemberByID(a.HolderID); checkHolder && !ok {
		return domainerror.NewAccountError(
			domainerror.ErrCodeAccountHolderNotFound,
			"account holder not found",
			domainerror.ErrAccountHolderNotFound,
		)
	}
	return nil
}

func notFoundError() error {
	return domainerror.NewAccountError(
		domainerror.ErrCodeBankAccountNotFound,
		"bank account not found",
		domainerror.ErrBankAccountNotFound,
	)
}

// CreateBankAccountInput represents the input for account creation.
type CreateBankAccountInput struct {
	Name     string
	HolderID uuid.UUID
	Balance  decimal.Decimal // May be negative
}

// CreateBankAccountUseCase handles account creation logic.
type CreateBankAccountUseCase struct {
	store Store
}

// NewCreateBankAccountUseCase creates a new CreateBankAccountUseCase instance.
func NewCreateBankAccountUseCase(store Store) *CreateBankAccountUseCase {
	return &CreateBankAccountUseCase{store: store}
}

// Execute performs the account creation.
func (uc *CreateBankAccountUseCase) Execute(ctx context.Context, input CreateBankAccountInput) (*BankAccountOutput, error) {
	draft := entity.BankAccount{
		Name:     strings.TrimSpace(input.Name),
		HolderID: input.HolderID,
		Balance:  input.Balance,
	}
	if err := validateAccount(uc.store, &draft, true); err != nil {
		return nil, err
	}

	created := uc.store.AddBankAccount(draft)
	slog.DebugContext(ctx, "bank account created", "account_id", created.ID)

	return toOutput(uc.store, created), nil
}

// UpdateBankAccountInput represents the input for account update.
type UpdateBankAccountInput struct {
	AccountID uuid.UUID
	Name      *string
	HolderID  *uuid.UUID
	Balance   *decimal.Decimal
}

// UpdateBankAccountUseCase handles account update logic.
type UpdateBankAccountUseCase struct {
	store Store
}

// NewUpdateBankAccountUseCase creates a new UpdateBankAccountUseCase instance.
func NewUpdateBankAccountUseCase(store Store) *UpdateBankAccountUseCase {
	return &UpdateBankAccountUseCase{store: store}
}

// Execute performs the account update.
func (uc *UpdateBankAccountUseCase) Execute(ctx context.Context, input UpdateBankAccountInput) (*BankAccountOutput, error) {
	current, ok := uc.store.BankAccountByID(input.AccountID)
	if !ok {
		return nil, notFoundError()
	}

	patch := entity.BankAccountPatch{HolderID: input.HolderID, Balance: input.Balance}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		patch.Name = &name
	}
	merged := current
	patch.Apply(&merged)
	if err := validateAccount(uc.store, &merged, input.HolderID != nil); err != nil {
		return nil, err
	}

	updated, err := uc.store.UpdateBankAccount(input.AccountID, patch)
	if err != nil {
		if errors.Is(err, domainerror.ErrBankAccountNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to update bank account: %w", err)
	}
	return toOutput(uc.store, updated), nil
}

// DeleteBankAccountUseCase handles account deletion logic.
type DeleteBankAccountUseCase struct {
	store Store
}

// NewDeleteBankAccountUseCase creates a new DeleteBankAccountUseCase instance.
func NewDeleteBankAccountUseCase(store Store) *DeleteBankAccountUseCase {
	return &DeleteBankAccountUseCase{store: store}
}

// Execute removes the account.
func (uc *DeleteBankAccountUseCase) Execute(ctx context.Context, accountID uuid.UUID) error {
	err := uc.store.DeleteBankAccount(accountID)
	switch {
	case err == nil:
		slog.DebugContext(ctx, "bank account deleted", "account_id", accountID)
		return nil
	case errors.Is(err, domainerror.ErrBankAccountNotFound):
		return notFoundError()
	case errors.Is(err, domainerror.ErrAccountInUse):
		return domainerror.NewAccountError(
			domainerror.ErrCodeAccountInUse,
			"bank account is used by transactions",
			domainerror.ErrAccountInUse,
		)
	default:
		return fmt.Errorf("failed to delete bank account: %w", err)
	}
}

// ListBankAccountsUseCase handles listing accounts logic.
type ListBankAccountsUseCase struct {
	store Store
}

// NewListBankAccountsUseCase creates a new ListBankAccountsUseCase instance.
func NewListBankAccountsUseCase(store Store) *ListBankAccountsUseCase {
	return &ListBankAccountsUseCase{store: store}
}

// Execute lists accounts in insertion order.
func (uc *ListBankAccountsUseCase) Execute(ctx context.Context) ([]*BankAccountOutput, error) {
	accounts := uc.store.BankAccounts()
	out := make([]*BankAccountOutput, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toOutput(uc.store, a))
	}
	return out, nil
}
