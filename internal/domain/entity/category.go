package entity

import "github.com/google/uuid"

// CategoryType represents the type of category (expense or income).
type CategoryType = TransactionType

const (
	CategoryTypeExpense = TransactionTypeExpense
	CategoryTypeIncome  = TransactionTypeIncome
)

// Fallback display names used when a referenced record no longer exists.
const (
	// BreakdownFallbackCategoryName labels expense groups whose category was deleted.
	BreakdownFallbackCategoryName = "Outros"
	// UncategorizedName labels ledger rows whose category was deleted.
	UncategorizedName = "Sem categoria"
	// UnknownName labels members and accounts that can no longer be resolved.
	UnknownName = "Desconhecido"
	// FamilyName labels records attributed to the whole family.
	FamilyName = "Família"
)

// Category represents a transaction category. Categories carry no timestamp.
type Category struct {
	ID    uuid.UUID
	Name  string
	Type  CategoryType
	Color string // Optional, "#RRGGBB"
}

// CategoryPatch carries the fields to change on a category.
type CategoryPatch struct {
	Name  *string
	Type  *CategoryType
	Color *string
}

// Apply writes the patch onto c.
func (p CategoryPatch) Apply(c *Category) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.Color != nil {
		c.Color = *p.Color
	}
}
