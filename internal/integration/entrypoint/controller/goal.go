package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mycash/backend/internal/application/usecase/goal"
	domainerror "github.com/mycash/backend/internal/domain/error"
	"github.com/mycash/backend/internal/integration/entrypoint/dto"
)

// GoalController handles goal endpoints.
type GoalController struct {
	listUseCase   *goal.ListGoalsUseCase
	createUseCase *goal.CreateGoalUseCase
	getUseCase    *goal.GetGoalUseCase
	updateUseCase *goal.UpdateGoalUseCase
	deleteUseCase *goal.DeleteGoalUseCase
	loc           *time.Location
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	createUseCase *goal.CreateGoalUseCase,
	getUseCase *goal.GetGoalUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
	loc *time.Location,
) *GoalController {
	return &GoalController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		loc:           loc,
	}
}

// List handles GET /goals requests. ?member_id= narrows to one member and
// ?family=true to family goals.
func (c *GoalController) List(ctx *gin.Context) {
	var input goal.ListGoalsInput
	if raw := ctx.Query("member_id"); raw != "" {
		memberID, err := dto.ParseOptionalUUID(&raw)
		if err != nil {
			respondInvalidQuery(ctx, err)
			return
		}
		input.MemberID = memberID
	}
	input.FamilyOnly = ctx.Query("family") == "true"

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output.Goals))
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	deadline, err := dto.ParseOptionalDate(req.Deadline, c.loc)
	if err != nil {
		respondInvalidField(ctx, "deadline", err)
		return
	}
	memberID, err := dto.ParseOptionalUUID(req.MemberID)
	if err != nil {
		respondInvalidField(ctx, "member_id", err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), goal.CreateGoalInput{
		Name:          req.Name,
		Description:   req.Description,
		TargetAmount:  dto.Money(req.TargetAmount),
		CurrentAmount: dto.Money(req.CurrentAmount),
		Deadline:      deadline,
		MemberID:      memberID,
		IconName:      req.IconName,
		Color:         req.Color,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal))
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "goal")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{GoalID: id})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output))
}

// Update handles PATCH /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "goal")
	if !ok {
		return
	}

	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	input := goal.UpdateGoalInput{
		GoalID:        id,
		Name:          req.Name,
		Description:   req.Description,
		TargetAmount:  dto.OptionalMoney(req.TargetAmount),
		CurrentAmount: dto.OptionalMoney(req.CurrentAmount),
		ClearDeadline: req.ClearDeadline,
		ClearMember:   req.ClearMember,
		IconName:      req.IconName,
		Color:         req.Color,
	}
	var err error
	if input.Deadline, err = dto.ParseOptionalDate(req.Deadline, c.loc); err != nil {
		respondInvalidField(ctx, "deadline", err)
		return
	}
	if input.MemberID, err = dto.ParseOptionalUUID(req.MemberID); err != nil {
		respondInvalidField(ctx, "member_id", err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "goal")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), goal.DeleteGoalInput{GoalID: id}); err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleGoalError handles goal errors and returns appropriate HTTP responses.
func (c *GoalController) handleGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		ctx.JSON(c.getStatusCodeForGoalError(goalErr.Code), dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	respondInternal(ctx, err)
}

// getStatusCodeForGoalError maps goal error codes to HTTP status codes.
func (c *GoalController) getStatusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeGoalMemberNotFound:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}
