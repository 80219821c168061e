package dto

import (
	"github.com/mycash/backend/internal/application/usecase/dashboard"
	"github.com/mycash/backend/internal/domain/entity"
	"github.com/mycash/backend/internal/domain/valueobject"
)

// FiltersRequest represents a partial change to the global filters.
type FiltersRequest struct {
	MemberID    *string `json:"member_id,omitempty" binding:"omitempty,uuid"`
	ClearMember bool    `json:"clear_member,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	Type        *string `json:"type,omitempty"`
	Search      *string `json:"search,omitempty"`
}

// FiltersResponse represents the current global filters.
type FiltersResponse struct {
	MemberID  *string `json:"member_id"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Type      string  `json:"type"`
	Search    string  `json:"search"`
}

// SummaryResponse represents the dashboard summary cards.
type SummaryResponse struct {
	TotalBalance  string          `json:"total_balance"`
	Income        string          `json:"income"`
	Expenses      string          `json:"expenses"`
	SavingsRate   float64         `json:"savings_rate"`
	MemberCount   int             `json:"member_count"`
	Filters       FiltersResponse `json:"filters"`
	IncomeChange  ChangeResponse  `json:"income_change"`
	ExpenseChange ChangeResponse  `json:"expense_change"`
}

// ChangeResponse compares a total with the preceding period.
type ChangeResponse struct {
	Amount     string  `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// CategoryExpenseResponse represents one slice of the expense breakdown.
type CategoryExpenseResponse struct {
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Color        string  `json:"color,omitempty"`
	Total        string  `json:"total"`
	Percentage   float64 `json:"percentage"`
}

// CategoryBreakdownResponse represents the expense breakdown by category.
type CategoryBreakdownResponse struct {
	TotalExpenses string                    `json:"total_expenses"`
	Categories    []CategoryExpenseResponse `json:"categories"`
}

// FlowPointResponse represents one month of the flow chart.
type FlowPointResponse struct {
	Month       string `json:"month"`
	PeriodStart string `json:"period_start"`
	Income      string `json:"income"`
	Expense     string `json:"expense"`
}

// FlowChartResponse represents the financial flow chart.
type FlowChartResponse struct {
	Points []FlowPointResponse `json:"points"`
}

// CategoryPercentageResponse represents an amount's share of the period income.
type CategoryPercentageResponse struct {
	Percentage float64 `json:"percentage"`
}

// ToFiltersResponse converts global filters to a FiltersResponse DTO.
func ToFiltersResponse(f entity.GlobalFilters) FiltersResponse {
	transactionType := f.TransactionType
	if transactionType == "" {
		transactionType = entity.TransactionTypeFilterAll
	}
	return FiltersResponse{
		MemberID:  formatOptionalUUID(f.SelectedMemberID),
		StartDate: f.DateRange.StartDate.Format(DateLayout),
		EndDate:   f.DateRange.EndDate.Format(DateLayout),
		Type:      string(transactionType),
		Search:    f.SearchText,
	}
}

// ToSummaryResponse converts a GetSummaryOutput to a SummaryResponse DTO.
func ToSummaryResponse(output *dashboard.GetSummaryOutput) SummaryResponse {
	return SummaryResponse{
		TotalBalance:  FormatMoney(output.TotalBalance),
		Income:        FormatMoney(output.Income),
		Expenses:      FormatMoney(output.Expenses),
		SavingsRate:   Percent(output.SavingsRate),
		MemberCount:   output.MemberCount,
		Filters:       ToFiltersResponse(output.Filters),
		IncomeChange:  toChangeResponse(output.IncomeChange),
		ExpenseChange: toChangeResponse(output.ExpenseChange),
	}
}

func toChangeResponse(d valueobject.Difference) ChangeResponse {
	return ChangeResponse{
		Amount:     FormatMoney(d.Absolute),
		Percentage: d.Percentage.InexactFloat64(),
	}
}

// ToCategoryBreakdownResponse converts a GetCategoryBreakdownOutput to its DTO.
func ToCategoryBreakdownResponse(output *dashboard.GetCategoryBreakdownOutput) CategoryBreakdownResponse {
	response := CategoryBreakdownResponse{
		TotalExpenses: FormatMoney(output.TotalExpenses),
		Categories:    make([]CategoryExpenseResponse, len(output.Categories)),
	}
	for i, c := range output.Categories {
		response.Categories[i] = CategoryExpenseResponse{
			CategoryID:   c.CategoryID.String(),
			CategoryName: c.CategoryName,
			Color:        c.Color,
			Total:        FormatMoney(c.Total),
			Percentage:   Percent(c.Percentage),
		}
	}
	return response
}

// ToFlowChartResponse converts a GetFlowChartOutput to a FlowChartResponse DTO.
func ToFlowChartResponse(output *dashboard.GetFlowChartOutput) FlowChartResponse {
	response := FlowChartResponse{Points: make([]FlowPointResponse, len(output.Points))}
	for i, p := range output.Points {
		response.Points[i] = FlowPointResponse{
			Month:       p.Month,
			PeriodStart: p.PeriodStart.Format(DateLayout),
			Income:      FormatMoney(p.Income),
			Expense:     FormatMoney(p.Expense),
		}
	}
	return response
}
