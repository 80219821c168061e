package goal

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mycash/backend/internal/domain/entity"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	Name          string
	Description   string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      *time.Time
	MemberID      *uuid.UUID
	IconName      string
	Color         string
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *GoalOutput
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	store Store
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(store Store) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		store: store,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	draft := entity.Goal{
		Name:          strings.TrimSpace(input.Name),
		Description:   strings.TrimSpace(input.Description),
		TargetAmount:  input.TargetAmount,
		CurrentAmount: input.CurrentAmount,
		Deadline:      input.Deadline,
		MemberID:      input.MemberID,
		IconName:      input.IconName,
		Color:         input.Color,
	}
	if err := validateGoal(uc.store, &draft, true); err != nil {
		return nil, err
	}

	created := uc.store.AddGoal(draft)

	slog.DebugContext(ctx, "goal created",
		"goal_id", created.ID,
		"family_goal", created.IsFamilyGoal(),
	)

	return &CreateGoalOutput{Goal: toOutput(uc.store, created)}, nil
}
