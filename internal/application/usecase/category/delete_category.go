package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mycash/backend/internal/application/adapter"
	domainerror "github.com/mycash/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	CategoryID uuid.UUID
}

// DeleteCategoryUseCase handles category deletion logic.
type DeleteCategoryUseCase struct {
	store adapter.CategoryStore
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(store adapter.CategoryStore) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		store: store,
	}
}

// Execute removes the category. Transactions that used it keep its id.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	err := uc.store.DeleteCategory(input.CategoryID)
	switch {
	case err == nil:
		slog.DebugContext(ctx, "category deleted", "category_id", input.CategoryID)
		return nil
	case errors.Is(err, domainerror.ErrCategoryNotFound):
		return notFoundError()
	case errors.Is(err, domainerror.ErrCategoryInUse):
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryInUse,
			"category is used by transactions",
			domainerror.ErrCategoryInUse,
		)
	default:
		return fmt.Errorf("failed to delete category: %w", err)
	}
}
