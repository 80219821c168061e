// Package member contains family member use cases.
package member

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mycash/backend/internal/application/adapter"
	"github.com/mycash/backend/internal/domain/entity"
	domainerror "github.com/mycash/backend/internal/domain/error"
	"github.com/mycash/backend/internal/domain/valueobject"
)

// MemberOutput represents a single family member.
type MemberOutput struct {
	ID            uuid.UUID
	Name          string
	Role          string
	AvatarURL     string
	Email         string
	MonthlyIncome *decimal.Decimal
	CreatedAt     time.Time
}

func toOutput(m entity.FamilyMember) *MemberOutput {
	return &MemberOutput{
		ID:            m.ID,
		Name:          m.Name,
		Role:          m.Role,
		AvatarURL:     m.AvatarURL,
		Email:         m.Email,
		MonthlyIncome: m.MonthlyIncome,
		CreatedAt:     m.CreatedAt,
	}
}

func validateMember(m *entity.FamilyMember) error {
	if valueobject.IsBlank(m.Name) {
		return domainerror.NewMemberError(
			domainerror.ErrCodeMemberNameRequired,
			"member name is required",
			domainerror.ErrMemberNameRequired,
		)
	}
	if valueobject.TextLength(m.Name) > valueobject.MaxNameLength {
		return domainerror.NewMemberError(
			domainerror.ErrCodeMemberNameTooLong,
			fmt.Sprintf("member name must not exceed %d characters", valueobject.MaxNameLength),
			domainerror.ErrMemberNameTooLong,
		)
	}
	if valueobject.IsBlank(m.Role) {
		return domainerror.NewMemberError(
			domainerror.ErrCodeMemberRoleRequired,
			"member role is required",
			domainerror.ErrMemberRoleRequired,
		)
	}
	if m.Email != "" && !valueobject.IsValidEmail(m.Email) {
		return domainerror.NewMemberError(
			domainerror.ErrCodeInvalidMemberEmail,
			"invalid email format",
			domainerror.ErrInvalidMemberEmail,
		)
	}
	if m.MonthlyIncome != nil && m.MonthlyIncome.IsNegative() {
		return domainerror.NewMemberError(
			domainerror.ErrCodeInvalidMonthlyIncome,
			"monthly income must not be negative",
			domainerror.ErrInvalidMonthlyIncome,
		)
	}
	return nil
}

func notFoundError() error {
	return domainerror.NewMemberError(
		domainerror.ErrCodeMemberNotFound,
		"family member not found",
		domainerror.ErrMemberNotFound,
	)
}

// CreateMemberInput represents the input for member creation.
type CreateMemberInput struct {
	Name          string
	Role          string
	AvatarURL     string
	Email         string
	MonthlyIncome *decimal.Decimal
}

// CreateMemberUseCase handles member creation logic.
type CreateMemberUseCase struct {
	store adapter.FamilyMemberStore
}

// NewCreateMemberUseCase creates a new CreateMemberUseCase instance.
func NewCreateMemberUseCase(store adapter.FamilyMemberStore) *CreateMemberUseCase {
	return &CreateMemberUseCase{store: store}
}

// Execute performs the member creation.
func (uc *CreateMemberUseCase) Execute(ctx context.Context, input CreateMemberInput) (*MemberOutput, error) {
	draft := entity.FamilyMember{
		Name:          strings.TrimSpace(input.Name),
		Role:          strings.TrimSpace(input.Role),
		AvatarURL:     input.AvatarURL,
		Email:         strings.TrimSpace(input.Email),
		MonthlyIncome: input.MonthlyIncome,
	}
	if err := validateMember(&draft); err != nil {
		return nil, err
	}

	created := uc.store.AddFamilyMember(draft)
	slog.DebugContext(ctx, "family member created", "member_id", created.ID)

	return toOutput(created), nil
}

// UpdateMemberInput represents the input for member update.
type UpdateMemberInput struct {
	MemberID           uuid.UUID
	Name               *string
	Role               *string
	AvatarURL          *string
	Email              *string
	MonthlyIncome      *decimal.Decimal
	ClearMonthlyIncome bool
}

// UpdateMemberUseCase handles member update logic.
type UpdateMemberUseCase struct {
	store adapter.FamilyMemberStore
}

// NewUpdateMemberUseCase creates a new UpdateMemberUseCase instance.
func NewUpdateMemberUseCase(store adapter.FamilyMemberStore) *UpdateMemberUseCase {
	return &UpdateMemberUseCase{store: store}
}

// Execute performs the member update.
func (uc *UpdateMemberUseCase) Execute(ctx context.Context, input UpdateMemberInput) (*MemberOutput, error) {
	current, ok := uc.store.MemberByID(input.MemberID)
	if !ok {
		return nil, notFoundError()
	}

	patch := entity.FamilyMemberPatch{
		Name:               trimmed(input.Name),
		Role:               trimmed(input.Role),
		AvatarURL:          input.AvatarURL,
		Email:              trimmed(input.Email),
		MonthlyIncome:      input.MonthlyIncome,
		ClearMonthlyIncome: input.ClearMonthlyIncome,
	}
	merged := current.Clone()
	patch.Apply(&merged)
	if err := validateMember(&merged); err != nil {
		return nil, err
	}

	updated, err := uc.store.UpdateFamilyMember(input.MemberID, patch)
	if err != nil {
		if errors.Is(err, domainerror.ErrMemberNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to update family member: %w", err)
	}
	return toOutput(updated), nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// DeleteMemberUseCase handles member deletion logic.
type DeleteMemberUseCase struct {
	store adapter.FamilyMemberStore
}

// NewDeleteMemberUseCase creates a new DeleteMemberUseCase instance.
func NewDeleteMemberUseCase(store adapter.FamilyMemberStore) *DeleteMemberUseCase {
	return &DeleteMemberUseCase{store: store}
}

// Execute removes the member. Records pointing at it keep the id and render
// with the unknown-member fallback.
func (uc *DeleteMemberUseCase) Execute(ctx context.Context, memberID uuid.UUID) error {
	err := uc.store.DeleteFamilyMember(memberID)
	switch {
	case err == nil:
		slog.DebugContext(ctx, "family member deleted", "member_id", memberID)
		return nil
	case errors.Is(err, domainerror.ErrMemberNotFound):
		return notFoundError()
	case errors.Is(err, domainerror.ErrMemberInUse):
		return domainerror.NewMemberError(
			domainerror.ErrCodeMemberInUse,
			"family member is still referenced",
			domainerror.ErrMemberInUse,
		)
	default:
		return fmt.Errorf("failed to delete family member: %w", err)
	}
}

// ListMembersUseCase handles listing members logic.
type ListMembersUseCase struct {
	store adapter.FamilyMemberStore
}

// NewListMembersUseCase creates a new ListMembersUseCase instance.
func NewListMembersUseCase(store adapter.FamilyMemberStore) *ListMembersUseCase {
	return &ListMembersUseCase{store: store}
}

// Execute lists members in insertion order.
func (uc *ListMembersUseCase) Execute(ctx context.Context) ([]*MemberOutput, error) {
	members := uc.store.FamilyMembers()
	out := make([]*MemberOutput, 0, len(members))
	for _, m := range members {
		out = append(out, toOutput(m))
	}
	return out, nil
}
