package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mycash/backend/internal/application/usecase/transaction"
	"github.com/mycash/backend/internal/domain/entity"
	domainerror "github.com/mycash/backend/internal/domain/error"
	"github.com/mycash/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase     *transaction.ListTransactionsUseCase
	createUseCase   *transaction.CreateTransactionUseCase
	updateUseCase   *transaction.UpdateTransactionUseCase
	deleteUseCase   *transaction.DeleteTransactionUseCase
	markPaidUseCase *transaction.MarkPaidUseCase
	pendingUseCase  *transaction.ListPendingUseCase
	loc             *time.Location
}

// NewTransactionController creates a new transaction controller instance.
// Calendar dates in requests are read in loc.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	markPaidUseCase *transaction.MarkPaidUseCase,
	pendingUseCase *transaction.ListPendingUseCase,
	loc *time.Location,
) *TransactionController {
	return &TransactionController{
		listUseCase:     listUseCase,
		createUseCase:   createUseCase,
		updateUseCase:   updateUseCase,
		deleteUseCase:   deleteUseCase,
		markPaidUseCase: markPaidUseCase,
		pendingUseCase:  pendingUseCase,
		loc:             loc,
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	var query dto.ListTransactionsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		respondInvalidQuery(ctx, err)
		return
	}

	input := transaction.ListTransactionsInput{
		Search:   query.Search,
		Type:     entity.TransactionTypeFilter(query.Type),
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	var err error
	if input.CategoryID, err = dto.ParseOptionalUUID(&query.CategoryID); err != nil {
		respondInvalidQuery(ctx, err)
		return
	}
	if input.MemberID, err = dto.ParseOptionalUUID(&query.MemberID); err != nil {
		respondInvalidQuery(ctx, err)
		return
	}
	if query.AccountID != "" {
		if query.AccountType == "" {
			respondInvalidQuery(ctx, errors.New("account_type is required with account_id"))
			return
		}
		accountID, err := uuid.Parse(query.AccountID)
		if err != nil {
			respondInvalidQuery(ctx, err)
			return
		}
		input.Account = &entity.AccountRef{Kind: entity.AccountKind(query.AccountType), ID: accountID}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	date, err := dto.ParseDate(req.Date, c.loc)
	if err != nil {
		respondInvalidField(ctx, "date", err)
		return
	}
	dueDate, err := dto.ParseOptionalDate(req.DueDate, c.loc)
	if err != nil {
		respondInvalidField(ctx, "due_date", err)
		return
	}
	memberID, err := dto.ParseOptionalUUID(req.MemberID)
	if err != nil {
		respondInvalidField(ctx, "member_id", err)
		return
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		respondInvalidField(ctx, "category_id", err)
		return
	}
	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		respondInvalidField(ctx, "account_id", err)
		return
	}

	input := transaction.CreateTransactionInput{
		Type:               entity.TransactionType(req.Type),
		Description:        req.Description,
		Amount:             req.Amount.Decimal(),
		CategoryID:         categoryID,
		Account:            entity.AccountRef{Kind: entity.AccountKind(req.AccountType), ID: accountID},
		MemberID:           memberID,
		Date:               date,
		DueDate:            dueDate,
		Installments:       req.Installments,
		CurrentInstallment: req.CurrentInstallment,
		Status:             entity.TransactionStatus(req.Status),
		IsRecurring:        req.IsRecurring,
		IsPaid:             req.IsPaid,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Update handles PATCH /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "transaction")
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	input := transaction.UpdateTransactionInput{
		TransactionID:      id,
		Description:        req.Description,
		Amount:             dto.OptionalAmount(req.Amount),
		ClearMember:        req.ClearMember,
		ClearDueDate:       req.ClearDueDate,
		Installments:       req.Installments,
		CurrentInstallment: req.CurrentInstallment,
		IsRecurring:        req.IsRecurring,
		IsPaid:             req.IsPaid,
	}
	if req.Type != nil {
		t := entity.TransactionType(*req.Type)
		input.Type = &t
	}
	if req.Status != nil {
		s := entity.TransactionStatus(*req.Status)
		input.Status = &s
	}

	var err error
	if input.CategoryID, err = dto.ParseOptionalUUID(req.CategoryID); err != nil {
		respondInvalidField(ctx, "category_id", err)
		return
	}
	if input.MemberID, err = dto.ParseOptionalUUID(req.MemberID); err != nil {
		respondInvalidField(ctx, "member_id", err)
		return
	}
	if input.Date, err = dto.ParseOptionalDate(req.Date, c.loc); err != nil {
		respondInvalidField(ctx, "date", err)
		return
	}
	if input.DueDate, err = dto.ParseOptionalDate(req.DueDate, c.loc); err != nil {
		respondInvalidField(ctx, "due_date", err)
		return
	}
	if (req.AccountType == nil) != (req.AccountID == nil) {
		respondInvalidField(ctx, "account", errors.New("account_type and account_id must be sent together"))
		return
	}
	if req.AccountID != nil {
		accountID, err := uuid.Parse(*req.AccountID)
		if err != nil {
			respondInvalidField(ctx, "account_id", err)
			return
		}
		input.Account = &entity.AccountRef{Kind: entity.AccountKind(*req.AccountType), ID: accountID}
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "transaction")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{TransactionID: id}); err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// MarkPaid handles POST /transactions/:id/pay requests.
func (c *TransactionController) MarkPaid(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "transaction")
	if !ok {
		return
	}

	output, err := c.markPaidUseCase.Execute(ctx.Request.Context(), transaction.MarkPaidInput{TransactionID: id})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Pending handles GET /transactions/pending requests.
func (c *TransactionController) Pending(ctx *gin.Context) {
	var input transaction.ListPendingInput
	if raw := ctx.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			respondInvalidQuery(ctx, err)
			return
		}
		input.Limit = limit
	}

	output, err := c.pendingUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PendingListResponse{
		Transactions: dto.ToTransactionResponses(output.Transactions),
		Total:        output.Total,
	})
}

// handleTransactionError handles transaction errors and returns appropriate HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(c.getStatusCodeForTransactionError(txnErr.Code), dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	respondInternal(ctx, err)
}

// getStatusCodeForTransactionError maps transaction error codes to HTTP status codes.
func (c *TransactionController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeTxnCategoryNotFound,
		domainerror.ErrCodeTxnAccountNotFound,
		domainerror.ErrCodeTxnMemberNotFound:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}
