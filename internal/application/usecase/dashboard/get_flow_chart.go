package dashboard

import (
	"context"

	"github.com/mycash/backend/internal/application/adapter"
	"github.com/mycash/backend/internal/domain/entity"
)

// GetFlowChartOutput represents the monthly income and expense series.
type GetFlowChartOutput struct {
	Points []entity.FlowPoint
}

// GetFlowChartUseCase handles building the financial flow chart.
type GetFlowChartUseCase struct {
	store adapter.FinanceStore
}

// NewGetFlowChartUseCase creates a new GetFlowChartUseCase instance.
func NewGetFlowChartUseCase(store adapter.FinanceStore) *GetFlowChartUseCase {
	return &GetFlowChartUseCase{
		store: store,
	}
}

// Execute returns the trailing months, oldest first. The series ignores the
// global filters.
func (uc *GetFlowChartUseCase) Execute(ctx context.Context) (*GetFlowChartOutput, error) {
	return &GetFlowChartOutput{Points: uc.store.FlowChartSeries()}, nil
}
