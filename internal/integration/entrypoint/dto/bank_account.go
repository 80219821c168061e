package dto

import (
	"time"

	"github.com/mycash/backend/internal/application/usecase/bankaccount"
)

// CreateBankAccountRequest represents the request body for account creation.
type CreateBankAccountRequest struct {
	Name     string  `json:"name" binding:"required,max=100"`
	HolderID string  `json:"holder_id" binding:"required,uuid"`
	Balance  float64 `json:"balance"`
}

// UpdateBankAccountRequest represents the request body for account update.
type UpdateBankAccountRequest struct {
	Name     *string  `json:"name,omitempty" binding:"omitempty,max=100"`
	HolderID *string  `json:"holder_id,omitempty" binding:"omitempty,uuid"`
	Balance  *float64 `json:"balance,omitempty"`
}

// BankAccountResponse represents a single account in API responses.
type BankAccountResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	HolderID   string    `json:"holder_id"`
	HolderName string    `json:"holder_name"`
	Balance    string    `json:"balance"`
	CreatedAt  time.Time `json:"created_at"`
}

// BankAccountListResponse represents the response for listing accounts.
type BankAccountListResponse struct {
	BankAccounts []BankAccountResponse `json:"bank_accounts"`
}

// ToBankAccountResponse converts a BankAccountOutput to a BankAccountResponse DTO.
func ToBankAccountResponse(a *bankaccount.BankAccountOutput) BankAccountResponse {
	return BankAccountResponse{
		ID:         a.ID.String(),
		Name:       a.Name,
		HolderID:   a.HolderID.String(),
		HolderName: a.HolderName,
		Balance:    FormatMoney(a.Balance),
		CreatedAt:  a.CreatedAt,
	}
}

// ToBankAccountListResponse converts account outputs to a BankAccountListResponse DTO.
func ToBankAccountListResponse(accounts []*bankaccount.BankAccountOutput) BankAccountListResponse {
	response := BankAccountListResponse{BankAccounts: make([]BankAccountResponse, len(accounts))}
	for i, a := range accounts {
		response.BankAccounts[i] = ToBankAccountResponse(a)
	}
	return response
}
