package goal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	domainerror "github.com/mycash/backend/internal/domain/error"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	GoalID uuid.UUID
}

// DeleteGoalUseCase handles goal deletion logic.
type DeleteGoalUseCase struct {
	store Store
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(store Store) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		store: store,
	}
}

// Execute removes the goal.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	if err := uc.store.DeleteGoal(input.GoalID); err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return notFoundError()
		}
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	slog.DebugContext(ctx, "goal deleted", "goal_id", input.GoalID)
	return nil
}
