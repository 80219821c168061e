package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal represents a savings goal of a member or of the whole family.
type Goal struct {
	ID            uuid.UUID
	Name          string
	Description   string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      *time.Time
	MemberID      *uuid.UUID // nil means a family goal
	IconName      string
	Color         string
	CreatedAt     time.Time
}

// ProgressPercentage returns the saved share of the target as a whole percentage.
// It is not capped at 100 and is 0 when the target is zero.
func (g *Goal) ProgressPercentage() int {
	if g.TargetAmount.IsZero() {
		return 0
	}
	return int(g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
}

// RemainingAmount returns how much is still missing to reach the target, never negative.
func (g *Goal) RemainingAmount() decimal.Decimal {
	remaining := g.TargetAmount.Sub(g.CurrentAmount)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// IsFamilyGoal reports whether the goal belongs to the whole family.
func (g *Goal) IsFamilyGoal() bool {
	return g.MemberID == nil
}

// Clone returns a deep copy of the goal.
func (g Goal) Clone() Goal {
	g.Deadline = cloneTime(g.Deadline)
	g.MemberID = cloneUUID(g.MemberID)
	return g
}

// GoalPatch carries the fields to change on a goal.
type GoalPatch struct {
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

// Apply writes the patch onto g.
func (p GoalPatch) Apply(g *Goal) {
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.Description != nil {
		g.Description = *p.Description
	}
	if p.TargetAmount != nil {
		g.TargetAmount = *p.TargetAmount
	}
	if p.CurrentAmount != nil {
		g.CurrentAmount = *p.CurrentAmount
	}
	if p.ClearDeadline {
		g.Deadline = nil
	} else if p.Deadline != nil {
		g.Deadline = cloneTime(p.Deadline)
	}
	if p.ClearMember {
		g.MemberID = nil
	} else if p.MemberID != nil {
		g.MemberID = cloneUUID(p.MemberID)
	}
	if p.IconName != nil {
		g.IconName = *p.IconName
	}
	if p.Color != nil {
		g.Color = *p.Color
	}
}
