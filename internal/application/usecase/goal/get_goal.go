package goal

import (
	"context"

	"github.com/google/uuid"
)

// GetGoalInput represents the input for retrieving a goal.
type GetGoalInput struct {
	GoalID uuid.UUID
}

// GetGoalUseCase handles retrieving a single goal.
type GetGoalUseCase struct {
	store Store
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(store Store) *GetGoalUseCase {
	return &GetGoalUseCase{
		store: store,
	}
}

// Execute returns the goal with its progress.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GoalOutput, error) {
	g, ok := uc.store.GoalByID(input.GoalID)
	if !ok {
		return nil, notFoundError()
	}
	return toOutput(uc.store, g), nil
}
