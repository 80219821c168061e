package dashboard

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mycash/backend/internal/application/adapter"
	"github.com/mycash/backend/internal/domain/entity"
)

// GetCategoryBreakdownOutput represents the expense breakdown by category.
type GetCategoryBreakdownOutput struct {
	TotalExpenses decimal.Decimal
	Categories    []entity.CategoryExpense
}

// GetCategoryBreakdownUseCase handles getting spending breakdown by category.
type GetCategoryBreakdownUseCase struct {
	store adapter.FinanceStore
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(store adapter.FinanceStore) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		store: store,
	}
}

// Execute groups the filtered expenses by category, largest first.
func (uc *GetCategoryBreakdownUseCase) Execute(ctx context.Context) (*GetCategoryBreakdownOutput, error) {
	categories := uc.store.ExpensesByCategory()
	total := decimal.Zero
	for _, c := range categories {
		total = total.Add(c.Total)
	}
	return &GetCategoryBreakdownOutput{
		TotalExpenses: total,
		Categories:    categories,
	}, nil
}
