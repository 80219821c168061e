package dto

import (
	"time"

	"github.com/mycash/backend/internal/application/usecase/transaction"
)

// CreateTransactionRequest represents the request body for transaction creation.
// The amount may be typed currency text; non-positive amounts are rejected by
// the use case.
type CreateTransactionRequest struct {
	Type               string  `json:"type" binding:"required,oneof=income expense"`
	Description        string  `json:"description" binding:"required,max=255"`
	Amount             Amount  `json:"amount"`
	CategoryID         string  `json:"category_id" binding:"required,uuid"`
	AccountType        string  `json:"account_type" binding:"required,oneof=bank_account credit_card"`
	AccountID          string  `json:"account_id" binding:"required,uuid"`
	MemberID           *string `json:"member_id,omitempty" binding:"omitempty,uuid"`
	Date               string  `json:"date" binding:"required"`
	DueDate            *string `json:"due_date,omitempty"`
	Installments       int     `json:"installments,omitempty" binding:"omitempty,min=1"`
	CurrentInstallment *int    `json:"current_installment,omitempty" binding:"omitempty,min=1"`
	Status             string  `json:"status,omitempty" binding:"omitempty,oneof=completed pending"`
	IsRecurring        bool    `json:"is_recurring"`
	IsPaid             bool    `json:"is_paid"`
}

// UpdateTransactionRequest represents the request body for transaction update.
// Absent fields are left unchanged.
type UpdateTransactionRequest struct {
	Type               *string `json:"type,omitempty" binding:"omitempty,oneof=income expense"`
	Description        *string `json:"description,omitempty" binding:"omitempty,max=255"`
	Amount             *Amount `json:"amount,omitempty"`
	CategoryID         *string `json:"category_id,omitempty" binding:"omitempty,uuid"`
	AccountType        *string `json:"account_type,omitempty" binding:"omitempty,oneof=bank_account credit_card"`
	AccountID          *string `json:"account_id,omitempty" binding:"omitempty,uuid"`
	MemberID           *string `json:"member_id,omitempty" binding:"omitempty,uuid"`
	ClearMember        bool    `json:"clear_member,omitempty"`
	Date               *string `json:"date,omitempty"`
	DueDate            *string `json:"due_date,omitempty"`
	ClearDueDate       bool    `json:"clear_due_date,omitempty"`
	Installments       *int    `json:"installments,omitempty" binding:"omitempty,min=1"`
	CurrentInstallment *int    `json:"current_installment,omitempty" binding:"omitempty,min=1"`
	Status             *string `json:"status,omitempty" binding:"omitempty,oneof=completed pending"`
	IsRecurring        *bool   `json:"is_recurring,omitempty"`
	IsPaid             *bool   `json:"is_paid,omitempty"`
}

// ListTransactionsQuery represents the query string of the ledger listing.
type ListTransactionsQuery struct {
	Search      string `form:"search"`
	Type        string `form:"type" binding:"omitempty,oneof=all income expense"`
	CategoryID  string `form:"category_id" binding:"omitempty,uuid"`
	AccountType string `form:"account_type" binding:"omitempty,oneof=bank_account credit_card"`
	AccountID   string `form:"account_id" binding:"omitempty,uuid"`
	MemberID    string `form:"member_id" binding:"omitempty,uuid"`
	Page        int    `form:"page" binding:"omitempty,min=1"`
	PageSize    int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// AccountRefResponse identifies the account or card of a transaction.
type AccountRefResponse struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TransactionResponse represents a single ledger row in API responses.
type TransactionResponse struct {
	ID                 string             `json:"id"`
	Type               string             `json:"type"`
	Description        string             `json:"description"`
	Amount             string             `json:"amount"`
	CategoryID         string             `json:"category_id"`
	CategoryName       string             `json:"category_name"`
	CategoryColor      string             `json:"category_color,omitempty"`
	Account            AccountRefResponse `json:"account"`
	MemberID           *string            `json:"member_id"`
	MemberName         string             `json:"member_name"`
	Date               string             `json:"date"`
	DueDate            *string            `json:"due_date,omitempty"`
	Installments       int                `json:"installments"`
	CurrentInstallment *int               `json:"current_installment,omitempty"`
	InstallmentValue   string             `json:"installment_value"`
	Status             string             `json:"status"`
	IsRecurring        bool               `json:"is_recurring"`
	IsPaid             bool               `json:"is_paid"`
	CreatedAt          time.Time          `json:"created_at"`
}

// PaginationResponse represents pagination information in API responses.
type PaginationResponse struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// TotalsResponse represents the period stats of a listing.
type TotalsResponse struct {
	IncomeTotal  string `json:"income_total"`
	ExpenseTotal string `json:"expense_total"`
	Difference   string `json:"difference"`
}

// TransactionListResponse represents the ledger listing response.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationResponse    `json:"pagination"`
	Totals       TotalsResponse        `json:"totals"`
}

// PendingListResponse represents the upcoming bills response.
type PendingListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// ToTransactionResponse converts a TransactionOutput to a TransactionResponse DTO.
func ToTransactionResponse(t *transaction.TransactionOutput) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID.String(),
		Type:          string(t.Type),
		Description:   t.Description,
		Amount:        FormatMoney(t.Amount),
		CategoryID:    t.CategoryID.String(),
		CategoryName:  t.CategoryName,
		CategoryColor: t.CategoryColor,
		Account: AccountRefResponse{
			Type: string(t.Account.Kind),
			ID:   t.Account.ID.String(),
			Name: t.AccountName,
		},
		MemberID:           formatOptionalUUID(t.MemberID),
		MemberName:         t.MemberName,
		Date:               t.Date.Format(DateLayout),
		DueDate:            formatOptionalDate(t.DueDate),
		Installments:       t.Installments,
		CurrentInstallment: t.CurrentInstallment,
		InstallmentValue:   FormatMoney(t.InstallmentValue),
		Status:             string(t.Status),
		IsRecurring:        t.IsRecurring,
		IsPaid:             t.IsPaid,
		CreatedAt:          t.CreatedAt,
	}
}

// ToTransactionResponses converts a list of outputs.
func ToTransactionResponses(outputs []*transaction.TransactionOutput) []TransactionResponse {
	responses := make([]TransactionResponse, len(outputs))
	for i, t := range outputs {
		responses[i] = ToTransactionResponse(t)
	}
	return responses
}

// ToTransactionListResponse converts a ListTransactionsOutput to a TransactionListResponse DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	return TransactionListResponse{
		Transactions: ToTransactionResponses(output.Transactions),
		Pagination: PaginationResponse{
			Page:       output.Pagination.Page,
			PageSize:   output.Pagination.PageSize,
			Total:      output.Pagination.Total,
			TotalPages: output.Pagination.TotalPages,
		},
		Totals: TotalsResponse{
			IncomeTotal:  FormatMoney(output.Totals.IncomeTotal),
			ExpenseTotal: FormatMoney(output.Totals.ExpenseTotal),
			Difference:   FormatMoney(output.Totals.Difference),
		},
	}
}
