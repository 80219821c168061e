// Package category contains category-related use cases.
package category

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mycash/backend/internal/domain/entity"
	domainerror "github.com/mycash/backend/internal/domain/error"
	"github.com/mycash/backend/internal/domain/valueobject"
)

// CategoryOutput represents a single category in the output.
type CategoryOutput struct {
	ID    uuid.UUID
	Name  string
	Type  entity.CategoryType
	Color string
}

func toOutput(c entity.Category) *CategoryOutput {
	return &CategoryOutput{
		ID:    c.ID,
		Name:  c.Name,
		Type:  c.Type,
		Color: c.Color,
	}
}

func validateName(name string) error {
	if valueobject.IsBlank(name) {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameRequired,
			"category name is required",
			domainerror.ErrCategoryNameRequired,
		)
	}
	if valueobject.TextLength(name) > valueobject.MaxNameLength {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			fmt.Sprintf("category name must not exceed %d characters", valueobject.MaxNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}
	return nil
}

func validateType(t entity.CategoryType) error {
	if !t.IsValid() {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			"category type must be 'expense' or 'income'",
			domainerror.ErrInvalidCategoryType,
		)
	}
	return nil
}

func validateColor(color string) error {
	if color != "" && !valueobject.IsHexColor(color) {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryColor,
			"color must be a hex value like #D7FF00",
			domainerror.ErrInvalidCategoryColor,
		)
	}
	return nil
}

func notFoundError() error {
	return domainerror.NewCategoryError(
		domainerror.ErrCodeCategoryNotFound,
		"category not found",
		domainerror.ErrCategoryNotFound,
	)
}
