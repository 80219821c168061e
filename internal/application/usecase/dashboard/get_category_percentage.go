package dashboard

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mycash/backend/internal/application/adapter"
	domainerror "github.com/mycash/backend/internal/domain/error"
)

// GetCategoryPercentageInput represents the amount to compare with the period income.
type GetCategoryPercentageInput struct {
	Total decimal.Decimal
}

// GetCategoryPercentageOutput carries the unrounded percentage.
type GetCategoryPercentageOutput struct {
	Percentage decimal.Decimal
}

// GetCategoryPercentageUseCase handles computing an amount's share of the income.
type GetCategoryPercentageUseCase struct {
	store adapter.FinanceStore
}

// NewGetCategoryPercentageUseCase creates a new GetCategoryPercentageUseCase instance.
func NewGetCategoryPercentageUseCase(store adapter.FinanceStore) *GetCategoryPercentageUseCase {
	return &GetCategoryPercentageUseCase{
		store: store,
	}
}

// Execute returns total as a percentage of the filtered income, 0 without income.
func (uc *GetCategoryPercentageUseCase) Execute(ctx context.Context, input GetCategoryPercentageInput) (*GetCategoryPercentageOutput, error) {
	if input.Total.IsNegative() {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidPercentageTotal,
			"total must not be negative",
			domainerror.ErrInvalidPercentageTotal,
		)
	}
	return &GetCategoryPercentageOutput{Percentage: uc.store.CategoryPercentage(input.Total)}, nil
}
