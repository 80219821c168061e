package category

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mycash/backend/internal/application/adapter"
	"github.com/mycash/backend/internal/domain/entity"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name  string
	Type  entity.CategoryType
	Color string
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *CategoryOutput
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	store adapter.CategoryStore
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(store adapter.CategoryStore) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		store: store,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateType(input.Type); err != nil {
		return nil, err
	}
	if err := validateColor(input.Color); err != nil {
		return nil, err
	}

	created := uc.store.AddCategory(entity.Category{
		Name:  name,
		Type:  input.Type,
		Color: input.Color,
	})

	slog.DebugContext(ctx, "category created", "category_id", created.ID, "type", created.Type)

	return &CreateCategoryOutput{Category: toOutput(created)}, nil
}
