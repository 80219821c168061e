package goal

import (
	"context"

	"github.com/google/uuid"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	MemberID   *uuid.UUID // Goals of this member only
	FamilyOnly bool       // Goals without a member only
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []*GoalOutput
}

// ListGoalsUseCase handles listing goals logic.
type ListGoalsUseCase struct {
	store Store
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(store Store) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		store: store,
	}
}

// Execute lists goals in insertion order.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	out := &ListGoalsOutput{Goals: []*GoalOutput{}}
	for _, g := range uc.store.Goals() {
		if input.FamilyOnly && !g.IsFamilyGoal() {
			continue
		}
		if input.MemberID != nil && (g.MemberID == nil || *g.MemberID != *input.MemberID) {
			continue
		}
		out.Goals = append(out.Goals, toOutput(uc.store, g))
	}
	return out, nil
}
