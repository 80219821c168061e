// Package goal contains savings goal use cases.
package goal

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mycash/backend/internal/application/adapter"
	"github.com/mycash/backend/internal/domain/entity"
	domainerror "github.com/mycash/backend/internal/domain/error"
	"github.com/mycash/backend/internal/domain/valueobject"
)

// GoalOutput represents a single goal with its progress.
type GoalOutput struct {
	ID                 uuid.UUID
	Name               string
	Description        string
	TargetAmount       decimal.Decimal
	CurrentAmount      decimal.Decimal
	RemainingAmount    decimal.Decimal
	ProgressPercentage int
	Deadline           *time.Time
	MemberID           *uuid.UUID
	MemberName         string
	IconName           string
	Color              string
	CreatedAt          time.Time
}

func toOutput(store adapter.FamilyMemberStore, g entity.Goal) *GoalOutput {
	out := &GoalOutput{
		ID:                 g.ID,
		Name:               g.Name,
		Description:        g.Description,
		TargetAmount:       g.TargetAmount,
		CurrentAmount:      g.CurrentAmount,
		RemainingAmount:    g.RemainingAmount(),
		ProgressPercentage: g.ProgressPercentage(),
		Deadline:           g.Deadline,
		MemberID:           g.MemberID,
		MemberName:         entity.FamilyName,
		IconName:           g.IconName,
		Color:              g.Color,
		CreatedAt:          g.CreatedAt,
	}
	if g.MemberID != nil {
		out.MemberName = entity.UnknownName
		if m, ok := store.MemberByID(*g.MemberID); ok {
			out.MemberName = m.Name
		}
	}
	return out
}

// validateGoal checks a complete goal before it is stored. The member is only
// resolved when checkMember is set.
func validateGoal(store adapter.FamilyMemberStore, g *entity.Goal, checkMember bool) error {
	if valueobject.IsBlank(g.Name) {
		return domainerror.NewGoalError(
			domainerror.ErrCodeGoalNameRequired,
			"goal name is required",
			domainerror.ErrGoalNameRequired,
		)
	}
	if valueobject.TextLength(g.Name) > valueobject.MaxNameLength {
		return domainerror.NewGoalError(
			domainerror.ErrCodeGoalNameTooLong,
			fmt.Sprintf("goal name must not exceed %d characters", valueobject.MaxNameLength),
			domainerror.ErrGoalNameTooLong,
		)
	}
	if valueobject.TextLength(g.Description) > valueobject.MaxDescriptionLength {
		return domainerror.NewGoalError(
			domainerror.ErrCodeGoalDescriptionTooLong,
			fmt.Sprintf("goal description must not exceed %d characters", valueobject.MaxDescriptionLength),
			domainerror.ErrGoalDescriptionTooLong,
		)
	}
	if !g.TargetAmount.IsPositive() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalTarget,
			"target amount must be greater than zero",
			domainerror.ErrInvalidGoalTarget,
		)
	}
	if g.CurrentAmount.IsNegative() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalCurrentAmount,
			"current amount must not be negative",
			domainerror.ErrInvalidGoalCurrentAmount,
		)
	}
	if g.Color != "" && !valueobject.IsHexColor(g.Color) {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalColor,
			"color must be a hex value like #D7FF00",
			domainerror.ErrInvalidGoalColor,
		)
	}
	if checkMember && g.MemberID != nil {
		if _, ok := store.MemberByID(*g.MemberID); !ok {
			return domainerror.NewGoalError(
				domainerror.ErrCodeGoalMemberNotFound,
				"goal member not found",
				domainerror.ErrGoalMemberNotFound,
			)
		}
	}
	return nil
}

func notFoundError() error {
	return domainerror.NewGoalError(
		domainerror.ErrCodeGoalNotFound,
		"goal not found",
		domainerror.ErrGoalNotFound,
	)
}

// Store is the part of the finance store the goal use cases need.
type Store interface {
	adapter.GoalStore
	adapter.FamilyMemberStore
}
