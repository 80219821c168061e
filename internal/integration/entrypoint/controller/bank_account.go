package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mycash/backend/internal/application/usecase/bankaccount"
	domainerror "github.com/mycash/backend/internal/domain/error"
	"github.com/mycash/backend/internal/integration/entrypoint/dto"
)

// BankAccountController handles bank account endpoints.
type BankAccountController struct {
	listUseCase   *bankaccount.ListBankAccountsUseCase
	createUseCase *bankaccount.CreateBankAccountUseCase
	updateUseCase *bankaccount.UpdateBankAccountUseCase
	deleteUseCase *bankaccount.DeleteBankAccountUseCase
}

// NewBankAccountController creates a new bank account controller instance.
func NewBankAccountController(
	listUseCase *bankaccount.ListBankAccountsUseCase,
	createUseCase *bankaccount.CreateBankAccountUseCase,
	updateUseCase *bankaccount.UpdateBankAccountUseCase,
	deleteUseCase *bankaccount.DeleteBankAccountUseCase,
) *BankAccountController {
	return &BankAccountController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /bank-accounts requests.
func (c *BankAccountController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBankAccountListResponse(output))
}

// Create handles POST /bank-accounts requests.
func (c *BankAccountController) Create(ctx *gin.Context) {
	var req dto.CreateBankAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	holderID, err := uuid.Parse(req.HolderID)
	if err != nil {
		respondInvalidField(ctx, "holder_id", err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), bankaccount.CreateBankAccountInput{
		Name:     req.Name,
		HolderID: holderID,
		Balance:  dto.Money(req.Balance),
	})
	if err != nil {
		handleAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBankAccountResponse(output))
}

// Update handles PATCH /bank-accounts/:id requests.
func (c *BankAccountController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "bank account")
	if !ok {
		return
	}

	var req dto.UpdateBankAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	holderID, err := dto.ParseOptionalUUID(req.HolderID)
	if err != nil {
		respondInvalidField(ctx, "holder_id", err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), bankaccount.UpdateBankAccountInput{
		AccountID: id,
		Name:      req.Name,
		HolderID:  holderID,
		Balance:   dto.OptionalMoney(req.Balance),
	})
	if err != nil {
		handleAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBankAccountResponse(output))
}

// Delete handles DELETE /bank-accounts/:id requests.
func (c *BankAccountController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "bank account")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		handleAccountError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleAccountError handles bank account and credit card errors.
func handleAccountError(ctx *gin.Context, err error) {
	var accErr *domainerror.AccountError
	if errors.As(err, &accErr) {
		ctx.JSON(getStatusCodeForAccountError(accErr.Code), dto.ErrorResponse{
			Error: accErr.Message,
			Code:  string(accErr.Code),
		})
		return
	}

	respondInternal(ctx, err)
}

// getStatusCodeForAccountError maps account error codes to HTTP status codes.
func getStatusCodeForAccountError(code domainerror.AccountErrorCode) int {
	switch code {
	case domainerror.ErrCodeBankAccountNotFound, domainerror.ErrCodeCreditCardNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeAccountHolderNotFound:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeAccountInUse:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
