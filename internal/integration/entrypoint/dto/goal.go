package dto

import (
	"time"

	"github.com/mycash/backend/internal/application/usecase/goal"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Name          string  `json:"name" binding:"required,max=100"`
	Description   string  `json:"description,omitempty" binding:"max=255"`
	TargetAmount  float64 `json:"target_amount" binding:"required,gt=0"`
	CurrentAmount float64 `json:"current_amount" binding:"gte=0"`
	Deadline      *string `json:"deadline,omitempty"`
	MemberID      *string `json:"member_id,omitempty" binding:"omitempty,uuid"`
	IconName      string  `json:"icon_name,omitempty"`
	Color         string  `json:"color,omitempty"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Name          *string  `json:"name,omitempty" binding:"omitempty,max=100"`
	Description   *string  `json:"description,omitempty" binding:"omitempty,max=255"`
	TargetAmount  *float64 `json:"target_amount,omitempty" binding:"omitempty,gt=0"`
	CurrentAmount *float64 `json:"current_amount,omitempty" binding:"omitempty,gte=0"`
	Deadline      *string  `json:"deadline,omitempty"`
	ClearDeadline bool     `json:"clear_deadline,omitempty"`
	MemberID      *string  `json:"member_id,omitempty" binding:"omitempty,uuid"`
	ClearMember   bool     `json:"clear_member,omitempty"`
	IconName      *string  `json:"icon_name,omitempty"`
	Color         *string  `json:"color,omitempty"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description,omitempty"`
	TargetAmount       string    `json:"target_amount"`
	CurrentAmount      string    `json:"current_amount"`
	RemainingAmount    string    `json:"remaining_amount"`
	ProgressPercentage int       `json:"progress_percentage"`
	Deadline           *string   `json:"deadline,omitempty"`
	MemberID           *string   `json:"member_id"`
	MemberName         string    `json:"member_name"`
	IconName           string    `json:"icon_name,omitempty"`
	Color              string    `json:"color,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a GoalOutput to a GoalResponse DTO.
func ToGoalResponse(g *goal.GoalOutput) GoalResponse {
	return GoalResponse{
		ID:                 g.ID.String(),
		Name:               g.Name,
		Description:        g.Description,
		TargetAmount:       FormatMoney(g.TargetAmount),
		CurrentAmount:      FormatMoney(g.CurrentAmount),
		RemainingAmount:    FormatMoney(g.RemainingAmount),
		ProgressPercentage: g.ProgressPercentage,
		Deadline:           formatOptionalDate(g.Deadline),
		MemberID:           formatOptionalUUID(g.MemberID),
		MemberName:         g.MemberName,
		IconName:           g.IconName,
		Color:              g.Color,
		CreatedAt:          g.CreatedAt,
	}
}

// ToGoalListResponse converts goal outputs to a GoalListResponse DTO.
func ToGoalListResponse(goals []*goal.GoalOutput) GoalListResponse {
	response := GoalListResponse{Goals: make([]GoalResponse, len(goals))}
	for i, g := range goals {
		response.Goals[i] = ToGoalResponse(g)
	}
	return response
}
