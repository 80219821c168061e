package category

import (
	"context"

	"github.com/mycash/backend/internal/application/adapter"
	"github.com/mycash/backend/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	Type *entity.CategoryType // nil lists both types
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*CategoryOutput
}

// ListCategoriesUseCase handles listing categories logic.
type ListCategoriesUseCase struct {
	store adapter.CategoryStore
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(store adapter.CategoryStore) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		store: store,
	}
}

// Execute lists categories in insertion order.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	if input.Type != nil {
		if err := validateType(*input.Type); err != nil {
			return nil, err
		}
	}

	out := &ListCategoriesOutput{Categories: []*CategoryOutput{}}
	for _, c := range uc.store.Categories() {
		if input.Type != nil && c.Type != *input.Type {
			continue
		}
		out.Categories = append(out.Categories, toOutput(c))
	}
	return out, nil
}
