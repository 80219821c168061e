package category

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mycash/backend/internal/application/adapter"
	"github.com/mycash/backend/internal/domain/entity"
	domainerror "github.com/mycash/backend/internal/domain/error"
)

// UpdateCategoryInput represents the input for category update.
type UpdateCategoryInput struct {
	CategoryID uuid.UUID
	Name       *string
	Type       *entity.CategoryType
	Color      *string
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category *CategoryOutput
}

// UpdateCategoryUseCase handles category update logic.
type UpdateCategoryUseCase struct {
	store adapter.CategoryStore
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(store adapter.CategoryStore) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		store: store,
	}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	patch := entity.CategoryPatch{Type: input.Type, Color: input.Color}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if err := validateName(name); err != nil {
			return nil, err
		}
		patch.Name = &name
	}
	if input.Type != nil {
		if err := validateType(*input.Type); err != nil {
			return nil, err
		}
	}
	if input.Color != nil {
		if err := validateColor(*input.Color); err != nil {
			return nil, err
		}
	}

	updated, err := uc.store.UpdateCategory(input.CategoryID, patch)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &UpdateCategoryOutput{Category: toOutput(updated)}, nil
}
