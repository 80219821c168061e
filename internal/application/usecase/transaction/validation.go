package transaction

import (
	"fmt"

	"github.com/mycash/backend/internal/application/adapter"
	"github.com/mycash/backend/internal/domain/entity"
	domainerror "github.com/mycash/backend/internal/domain/error"
	"github.com/mycash/backend/internal/domain/valueobject"
)

// referenceChecks selects which references of a transaction are resolved
// against the store. Updates only check the references they change, so a
// record pointing at a deleted category or member stays editable.
type referenceChecks struct {
	category     bool // category must exist
	categoryType bool // an existing category must match the transaction type
	account      bool
	member       bool
}

var allReferences = referenceChecks{category: true, categoryType: true, account: true, member: true}

// validateTransaction checks a complete transaction against the store's
// reference data before it is written.
func validateTransaction(store adapter.FinanceStore, t *entity.Transaction, checks referenceChecks) error {
	if !t.Type.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if !t.Status.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionStatus,
			"transaction status must be 'completed' or 'pending'",
			domainerror.ErrInvalidTransactionStatus,
		)
	}

	if valueobject.IsBlank(t.Description) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionRequired,
			"description is required",
			domainerror.ErrDescriptionRequired,
		)
	}

	if valueobject.TextLength(t.Description) > valueobject.MaxDescriptionLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", valueobject.MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	if !t.Amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if t.Date.IsZero() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	if t.Installments < 1 {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidInstallments,
			"installments must be at least 1",
			domainerror.ErrInvalidInstallments,
		)
	}

	if t.CurrentInstallment != nil && (*t.CurrentInstallment < 1 || *t.CurrentInstallment > t.Installments) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidCurrentInstallment,
			fmt.Sprintf("current installment must be between 1 and %d", t.Installments),
			domainerror.ErrInvalidCurrentInstallment,
		)
	}

	if checks.category || checks.categoryType {
		category, ok := store.CategoryByID(t.CategoryID)
		if !ok && checks.category {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFoundForTransaction,
			)
		}
		if ok && checks.categoryType && category.Type != t.Type {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryTypeMismatch,
				fmt.Sprintf("category '%s' is not an %s category", category.Name, t.Type),
				domainerror.ErrCategoryTypeMismatch,
			)
		}
	}

	if checks.account {
		if _, ok := store.ResolveAccount(t.Account); !ok {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeTxnAccountNotFound,
				"account or card not found",
				domainerror.ErrAccountNotFoundForTransaction,
			)
		}
	}

	if checks.member && t.MemberID != nil {
		if _, ok := store.MemberByID(*t.MemberID); !ok {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeTxnMemberNotFound,
				"member not found",
				domainerror.ErrMemberNotFoundForTransaction,
			)
		}
	}

	return nil
}
