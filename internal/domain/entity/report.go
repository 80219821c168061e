package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryExpense is one group of the expense breakdown by category.
type CategoryExpense struct {
	CategoryID   uuid.UUID
	CategoryName string // BreakdownFallbackCategoryName when the category no longer exists
	Color        string
	Total        decimal.Decimal
	Percentage   decimal.Decimal // share of the period income, unrounded
}

// FlowPoint holds the income and expense totals of one calendar month.
type FlowPoint struct {
	Month       string
	PeriodStart time.Time
	Income      decimal.Decimal
	Expense     decimal.Decimal
}

// PeriodSummary holds the dashboard totals, all taken from one state of the store.
// The previous totals use the same filters over DateRange.Previous.
type PeriodSummary struct {
	TotalBalance     decimal.Decimal
	Income           decimal.Decimal
	Expenses         decimal.Decimal
	SavingsRate      decimal.Decimal // unrounded
	PreviousIncome   decimal.Decimal
	PreviousExpenses decimal.Decimal
	MemberCount      int
	Filters          GlobalFilters
}
