package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FamilyMember represents a person sharing the household finances.
type FamilyMember struct {
	ID            uuid.UUID
	Name          string
	Role          string // Free text, e.g. "Pai", "Mãe", "Filho"
	AvatarURL     string
	Email         string
	MonthlyIncome *decimal.Decimal
	CreatedAt     time.Time
}

// Clone returns a deep copy of the member.
func (m FamilyMember) Clone() FamilyMember {
	if m.MonthlyIncome != nil {
		v := *m.MonthlyIncome
		m.MonthlyIncome = &v
	}
	return m
}

// FamilyMemberPatch carries the fields to change on a family member.
type FamilyMemberPatch struct {
	Name               *string
	Role               *string
	AvatarURL          *string
	Email              *string
	MonthlyIncome      *decimal.Decimal
	ClearMonthlyIncome bool
}

// Apply writes the patch onto m.
func (p FamilyMemberPatch) Apply(m *FamilyMember) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Role != nil {
		m.Role = *p.Role
	}
	if p.AvatarURL != nil {
		m.AvatarURL = *p.AvatarURL
	}
	if p.Email != nil {
		m.Email = *p.Email
	}
	if p.ClearMonthlyIncome {
		m.MonthlyIncome = nil
	} else if p.MonthlyIncome != nil {
		v := *p.MonthlyIncome
		m.MonthlyIncome = &v
	}
}
