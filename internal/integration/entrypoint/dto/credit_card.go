package dto

import (
	"time"

	creditcard "github.com/mycash/backend/internal/application/usecase/credit_card"
)

// CreateCreditCardRequest represents the request body for card creation.
type CreateCreditCardRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	HolderID    string  `json:"holder_id" binding:"required,uuid"`
	Limit       float64 `json:"limit" binding:"required,gt=0"`
	CurrentBill float64 `json:"current_bill" binding:"gte=0"`
	ClosingDay  int     `json:"closing_day" binding:"required,min=1,max=31"`
	DueDay      int     `json:"due_day" binding:"required,min=1,max=31"`
	Theme       string  `json:"theme,omitempty" binding:"omitempty,oneof=black lime white"`
	LastDigits  string  `json:"last_digits,omitempty" binding:"omitempty,len=4,numeric"`
}

// UpdateCreditCardRequest represents the request body for card update.
type UpdateCreditCardRequest struct {
	Name        *string  `json:"name,omitempty" binding:"omitempty,max=100"`
	HolderID    *string  `json:"holder_id,omitempty" binding:"omitempty,uuid"`
	Limit       *float64 `json:"limit,omitempty" binding:"omitempty,gt=0"`
	CurrentBill *float64 `json:"current_bill,omitempty" binding:"omitempty,gte=0"`
	ClosingDay  *int     `json:"closing_day,omitempty" binding:"omitempty,min=1,max=31"`
	DueDay      *int     `json:"due_day,omitempty" binding:"omitempty,min=1,max=31"`
	Theme       *string  `json:"theme,omitempty" binding:"omitempty,oneof=black lime white"`
	LastDigits  *string  `json:"last_digits,omitempty"`
}

// CreditCardResponse represents a single card in API responses.
type CreditCardResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	HolderID        string    `json:"holder_id"`
	HolderName      string    `json:"holder_name"`
	Limit           string    `json:"limit"`
	CurrentBill     string    `json:"current_bill"`
	AvailableLimit  string    `json:"available_limit"`
	UsagePercentage int       `json:"usage_percentage"`
	ClosingDay      int       `json:"closing_day"`
	DueDay          int       `json:"due_day"`
	Theme           string    `json:"theme"`
	LastDigits      string    `json:"last_digits,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// CreditCardListResponse represents the response for listing cards.
type CreditCardListResponse struct {
	CreditCards []CreditCardResponse `json:"credit_cards"`
}

// CreditCardDetailsResponse represents the card details view.
type CreditCardDetailsResponse struct {
	CreditCardResponse
	RecentExpenses []TransactionResponse `json:"recent_expenses"`
}

// ToCreditCardResponse converts a CreditCardOutput to a CreditCardResponse DTO.
func ToCreditCardResponse(c *creditcard.CreditCardOutput) CreditCardResponse {
	return CreditCardResponse{
		ID:              c.ID.String(),
		Name:            c.Name,
		HolderID:        c.HolderID.String(),
		HolderName:      c.HolderName,
		Limit:           FormatMoney(c.Limit),
		CurrentBill:     FormatMoney(c.CurrentBill),
		AvailableLimit:  FormatMoney(c.AvailableLimit),
		UsagePercentage: c.UsagePercentage,
		ClosingDay:      c.ClosingDay,
		DueDay:          c.DueDay,
		Theme:           string(c.Theme),
		LastDigits:      c.LastDigits,
		CreatedAt:       c.CreatedAt,
	}
}

// ToCreditCardListResponse converts card outputs to a CreditCardListResponse DTO.
func ToCreditCardListResponse(cards []*creditcard.CreditCardOutput) CreditCardListResponse {
	response := CreditCardListResponse{CreditCards: make([]CreditCardResponse, len(cards))}
	for i, c := range cards {
		response.CreditCards[i] = ToCreditCardResponse(c)
	}
	return response
}

// ToCreditCardDetailsResponse converts the details output to its DTO.
func ToCreditCardDetailsResponse(output *creditcard.GetCardDetailsOutput) CreditCardDetailsResponse {
	return CreditCardDetailsResponse{
		CreditCardResponse: ToCreditCardResponse(output.CreditCard),
		RecentExpenses:     ToTransactionResponses(output.RecentExpenses),
	}
}
