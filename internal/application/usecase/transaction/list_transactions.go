package transaction

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mycash/backend/internal/application/adapter"
	"github.com/mycash/backend/internal/domain/entity"
	domainerror "github.com/mycash/backend/internal/domain/error"
)

const (
	// DefaultPageSize is the number of ledger rows per page.
	DefaultPageSize = 10
	// MaxPageSize caps the page size a caller may request.
	MaxPageSize = 100
)

// ListTransactionsInput represents the input for listing the ledger. The local
// filters narrow the globally filtered transactions further.
type ListTransactionsInput struct {
	Search     string
	Type       entity.TransactionTypeFilter
	CategoryID *uuid.UUID
	Account    *entity.AccountRef
	MemberID   *uuid.UUID
	Page       int
	PageSize   int
}

// PaginationOutput represents pagination information in the output.
type PaginationOutput struct {
	Page       int
	PageSize   int
	Total      int
	TotalPages int
}

// TotalsOutput represents aggregated totals of every matching row, not only the current page.
type TotalsOutput struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	Difference   decimal.Decimal
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
	Pagination   PaginationOutput
	Totals       TotalsOutput
}

// ListTransactionsUseCase handles listing transactions logic.
type ListTransactionsUseCase struct {
	store           adapter.FinanceStore
	defaultPageSize int
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
// A non-positive defaultPageSize falls back to DefaultPageSize.
func NewListTransactionsUseCase(store adapter.FinanceStore, defaultPageSize int) *ListTransactionsUseCase {
	if defaultPageSize < 1 {
		defaultPageSize = DefaultPageSize
	}
	return &ListTransactionsUseCase{
		store:           store,
		defaultPageSize: defaultPageSize,
	}
}

// Execute performs the transaction listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	if input.Type != "" && !input.Type.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be: all, income, or expense",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if input.PageSize > MaxPageSize {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionPage,
			"page size must not exceed 100",
			domainerror.ErrInvalidPagination,
		)
	}

	// Set default pagination values
	page := input.Page
	if page < 1 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize < 1 {
		pageSize = uc.defaultPageSize
	}

	snap := uc.store.FilteredSnapshot()
	idx := newSnapshotIndex(snap)
	var matched []entity.Transaction
	for _, t := range snap.Transactions {
		if matchesLocal(input, &t, idx.categoryName(t.CategoryID)) {
			matched = append(matched, t)
		}
	}

	totals := TotalsOutput{IncomeTotal: decimal.Zero, ExpenseTotal: decimal.Zero}
	for _, t := range matched {
		if t.IsIncome() {
			totals.IncomeTotal = totals.IncomeTotal.Add(t.Amount)
		} else {
			totals.ExpenseTotal = totals.ExpenseTotal.Add(t.Amount)
		}
	}
	totals.Difference = totals.IncomeTotal.Sub(totals.ExpenseTotal)

	total := len(matched)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start := min((page-1)*pageSize, total)
	end := min(start+pageSize, total)

	return &ListTransactionsOutput{
		Transactions: idx.outputs(matched[start:end]),
		Pagination: PaginationOutput{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
		},
		Totals: totals,
	}, nil
}

func matchesLocal(input ListTransactionsInput, t *entity.Transaction, categoryName string) bool {
	if !entity.SearchMatches(input.Search, t.Description, categoryName) {
		return false
	}
	if !input.Type.Matches(t.Type) {
		return false
	}
	if input.CategoryID != nil && t.CategoryID != *input.CategoryID {
		return false
	}
	if input.Account != nil && t.Account != *input.Account {
		return false
	}
	if input.MemberID != nil && !t.BelongsToMember(*input.MemberID) {
		return false
	}
	return true
}
