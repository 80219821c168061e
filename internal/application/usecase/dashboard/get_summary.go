// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mycash/backend/internal/application/adapter"
	"github.com/mycash/backend/internal/domain/entity"
	"github.com/mycash/backend/internal/domain/valueobject"
)

// GetSummaryOutput represents the dashboard summary cards.
type GetSummaryOutput struct {
	TotalBalance decimal.Decimal
	Income       decimal.Decimal
	Expenses     decimal.Decimal
	SavingsRate  decimal.Decimal // unrounded percentage
	MemberCount  int
	Filters      entity.GlobalFilters

	// Change against the preceding period of the same length
	IncomeChange  valueobject.Difference
	ExpenseChange valueobject.Difference
}

// GetSummaryUseCase handles building the dashboard summary.
type GetSummaryUseCase struct {
	store adapter.FinanceStore
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(store adapter.FinanceStore) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		store: store,
	}
}

// Execute computes the summary under the current global filters.
func (uc *GetSummaryUseCase) Execute(ctx context.Context) (*GetSummaryOutput, error) {
	summary := uc.store.PeriodSummary()
	return &GetSummaryOutput{
		TotalBalance:  summary.TotalBalance,
		Income:        summary.Income,
		Expenses:      summary.Expenses,
		SavingsRate:   summary.SavingsRate,
		MemberCount:   summary.MemberCount,
		Filters:       summary.Filters,
		IncomeChange:  valueobject.CalculateDifference(summary.Income, summary.PreviousIncome),
		ExpenseChange: valueobject.CalculateDifference(summary.Expenses, summary.PreviousExpenses),
	}, nil
}
