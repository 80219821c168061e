package dto

import (
	"github.com/mycash/backend/internal/application/usecase/category"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Type  string `json:"type" binding:"required,oneof=expense income"`
	Color string `json:"color,omitempty"`
}

// UpdateCategoryRequest represents the request body for category update.
type UpdateCategoryRequest struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,max=100"`
	Type  *string `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	Color *string `json:"color,omitempty"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color,omitempty"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a CategoryOutput to a CategoryResponse DTO.
func ToCategoryResponse(c *category.CategoryOutput) CategoryResponse {
	return CategoryResponse{
		ID:    c.ID.String(),
		Name:  c.Name,
		Type:  string(c.Type),
		Color: c.Color,
	}
}

// ToCategoryListResponse converts category outputs to a CategoryListResponse DTO.
func ToCategoryListResponse(categories []*category.CategoryOutput) CategoryListResponse {
	response := CategoryListResponse{Categories: make([]CategoryResponse, len(categories))}
	for i, c := range categories {
		response.Categories[i] = ToCategoryResponse(c)
	}
	return response
}
