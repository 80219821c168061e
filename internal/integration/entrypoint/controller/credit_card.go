package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	creditcard "github.com/mycash/backend/internal/application/usecase/credit_card"
	"github.com/mycash/backend/internal/domain/entity"
	"github.com/mycash/backend/internal/integration/entrypoint/dto"
)

// CreditCardController handles credit card endpoints.
type CreditCardController struct {
	listUseCase    *creditcard.ListCreditCardsUseCase
	createUseCase  *creditcard.CreateCreditCardUseCase
	detailsUseCase *creditcard.GetCardDetailsUseCase
	updateUseCase  *creditcard.UpdateCreditCardUseCase
	deleteUseCase  *creditcard.DeleteCreditCardUseCase
}

// NewCreditCardController creates a new credit card controller instance.
func NewCreditCardController(
	listUseCase *creditcard.ListCreditCardsUseCase,
	createUseCase *creditcard.CreateCreditCardUseCase,
	detailsUseCase *creditcard.GetCardDetailsUseCase,
	updateUseCase *creditcard.UpdateCreditCardUseCase,
	deleteUseCase *creditcard.DeleteCreditCardUseCase,
) *CreditCardController {
	return &CreditCardController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		detailsUseCase: detailsUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
	}
}

// List handles GET /credit-cards requests.
func (c *CreditCardController) List(ctx *gin.Context) {
	var input creditcard.ListCreditCardsInput
	if raw := ctx.Query("holder_id"); raw != "" {
		holderID, err := dto.ParseOptionalUUID(&raw)
		if err != nil {
			respondInvalidQuery(ctx, err)
			return
		}
		input.HolderID = holderID
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCreditCardListResponse(output.CreditCards))
}

// Create handles POST /credit-cards requests.
func (c *CreditCardController) Create(ctx *gin.Context) {
	var req dto.CreateCreditCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	holderID, err := uuid.Parse(req.HolderID)
	if err != nil {
		respondInvalidField(ctx, "holder_id", err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), creditcard.CreateCreditCardInput{
		Name:        req.Name,
		HolderID:    holderID,
		Limit:       dto.Money(req.Limit),
		CurrentBill: dto.Money(req.CurrentBill),
		ClosingDay:  req.ClosingDay,
		DueDay:      req.DueDay,
		Theme:       entity.CardTheme(req.Theme),
		LastDigits:  req.LastDigits,
	})
	if err != nil {
		handleAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCreditCardResponse(output.CreditCard))
}

// Get handles GET /credit-cards/:id requests with the card details view.
func (c *CreditCardController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "credit card")
	if !ok {
		return
	}

	output, err := c.detailsUseCase.Execute(ctx.Request.Context(), creditcard.GetCardDetailsInput{CardID: id})
	if err != nil {
		handleAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCreditCardDetailsResponse(output))
}

// Update handles PATCH /credit-cards/:id requests.
func (c *CreditCardController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "credit card")
	if !ok {
		return
	}

	var req dto.UpdateCreditCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	input := creditcard.UpdateCreditCardInput{
		CardID:      id,
		Name:        req.Name,
		Limit:       dto.OptionalMoney(req.Limit),
		CurrentBill: dto.OptionalMoney(req.CurrentBill),
		ClosingDay:  req.ClosingDay,
		DueDay:      req.DueDay,
		LastDigits:  req.LastDigits,
	}
	if req.Theme != nil {
		theme := entity.CardTheme(*req.Theme)
		input.Theme = &theme
	}
	holderID, err := dto.ParseOptionalUUID(req.HolderID)
	if err != nil {
		respondInvalidField(ctx, "holder_id", err)
		return
	}
	input.HolderID = holderID

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCreditCardResponse(output.CreditCard))
}

// Delete handles DELETE /credit-cards/:id requests.
func (c *CreditCardController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "credit card")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), creditcard.DeleteCreditCardInput{CardID: id}); err != nil {
		handleAccountError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
