package goal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mycash/backend/internal/domain/entity"
	domainerror "github.com/mycash/backend/internal/domain/error"
)

// UpdateGoalInput represents the input for goal update.
type UpdateGoalInput struct {
	GoalID        uuid.UUID
	Name          *string
	Description   *string
	TargetAmount  *decimal.Decimal
	CurrentAmount *decimal.Decimal
	Deadline      *time.Time
	ClearDeadline bool
	MemberID      *uuid.UUID
	ClearMember   bool
	IconName      *string
	Color         *string
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *GoalOutput
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	store Store
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(store Store) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		store: store,
	}
}

// Execute performs the goal update. Invalid changes leave the goal untouched.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	current, ok := uc.store.GoalByID(input.GoalID)
	if !ok {
		return nil, notFoundError()
	}

	patch := entity.GoalPatch{
		TargetAmount:  input.TargetAmount,
		CurrentAmount: input.CurrentAmount,
		Deadline:      input.Deadline,
		ClearDeadline: input.ClearDeadline,
		MemberID:      input.MemberID,
		ClearMember:   input.ClearMember,
		IconName:      input.IconName,
		Color:         input.Color,
	}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		patch.Name = &name
	}
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		patch.Description = &description
	}

	merged := current.Clone()
	patch.Apply(&merged)
	if err := validateGoal(uc.store, &merged, input.MemberID != nil); err != nil {
		return nil, err
	}

	updated, err := uc.store.UpdateGoal(input.GoalID, patch)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{Goal: toOutput(uc.store, updated)}, nil
}
