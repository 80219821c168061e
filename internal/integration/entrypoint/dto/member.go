package dto

import (
	"time"

	"github.com/mycash/backend/internal/application/usecase/member"
)

// CreateMemberRequest represents the request body for member creation.
type CreateMemberRequest struct {
	Name          string   `json:"name" binding:"required,max=100"`
	Role          string   `json:"role" binding:"required"`
	AvatarURL     string   `json:"avatar_url,omitempty"`
	Email         string   `json:"email,omitempty" binding:"omitempty,email"`
	MonthlyIncome *float64 `json:"monthly_income,omitempty" binding:"omitempty,gte=0"`
}

// UpdateMemberRequest represents the request body for member update.
type UpdateMemberRequest struct {
	Name               *string  `json:"name,omitempty" binding:"omitempty,max=100"`
	Role               *string  `json:"role,omitempty"`
	AvatarURL          *string  `json:"avatar_url,omitempty"`
	Email              *string  `json:"email,omitempty"`
	MonthlyIncome      *float64 `json:"monthly_income,omitempty" binding:"omitempty,gte=0"`
	ClearMonthlyIncome bool     `json:"clear_monthly_income,omitempty"`
}

// MemberResponse represents a single family member in API responses.
type MemberResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Role          string    `json:"role"`
	AvatarURL     string    `json:"avatar_url,omitempty"`
	Email         string    `json:"email,omitempty"`
	MonthlyIncome *string   `json:"monthly_income,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// MemberListResponse represents the response for listing members.
type MemberListResponse struct {
	Members []MemberResponse `json:"members"`
}

// ToMemberResponse converts a MemberOutput to a MemberResponse DTO.
func ToMemberResponse(m *member.MemberOutput) MemberResponse {
	response := MemberResponse{
		ID:        m.ID.String(),
		Name:      m.Name,
		Role:      m.Role,
		AvatarURL: m.AvatarURL,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
	}
	if m.MonthlyIncome != nil {
		income := FormatMoney(*m.MonthlyIncome)
		response.MonthlyIncome = &income
	}
	return response
}

// ToMemberListResponse converts member outputs to a MemberListResponse DTO.
func ToMemberListResponse(members []*member.MemberOutput) MemberListResponse {
	response := MemberListResponse{Members: make([]MemberResponse, len(members))}
	for i, m := range members {
		response.Members[i] = ToMemberResponse(m)
	}
	return response
}
