package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mycash/backend/internal/application/usecase/member"
	domainerror "github.com/mycash/backend/internal/domain/error"
	"github.com/mycash/backend/internal/integration/entrypoint/dto"
)

// MemberController handles family member endpoints.
type MemberController struct {
	listUseCase   *member.ListMembersUseCase
	createUseCase *member.CreateMemberUseCase
	updateUseCase *member.UpdateMemberUseCase
	deleteUseCase *member.DeleteMemberUseCase
}

// NewMemberController creates a new member controller instance.
func NewMemberController(
	listUseCase *member.ListMembersUseCase,
	createUseCase *member.CreateMemberUseCase,
	updateUseCase *member.UpdateMemberUseCase,
	deleteUseCase *member.DeleteMemberUseCase,
) *MemberController {
	return &MemberController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /members requests.
func (c *MemberController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleMemberError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMemberListResponse(output))
}

// Create handles POST /members requests.
func (c *MemberController) Create(ctx *gin.Context) {
	var req dto.CreateMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), member.CreateMemberInput{
		Name:          req.Name,
		Role:          req.Role,
		AvatarURL:     req.AvatarURL,
		Email:         req.Email,
		MonthlyIncome: dto.OptionalMoney(req.MonthlyIncome),
	})
	if err != nil {
		c.handleMemberError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToMemberResponse(output))
}

// Update handles PATCH /members/:id requests.
func (c *MemberController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "member")
	if !ok {
		return
	}

	var req dto.UpdateMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), member.UpdateMemberInput{
		MemberID:           id,
		Name:               req.Name,
		Role:               req.Role,
		AvatarURL:          req.AvatarURL,
		Email:              req.Email,
		MonthlyIncome:      dto.OptionalMoney(req.MonthlyIncome),
		ClearMonthlyIncome: req.ClearMonthlyIncome,
	})
	if err != nil {
		c.handleMemberError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMemberResponse(output))
}

// Delete handles DELETE /members/:id requests.
func (c *MemberController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "member")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		c.handleMemberError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleMemberError handles member errors and returns appropriate HTTP responses.
func (c *MemberController) handleMemberError(ctx *gin.Context, err error) {
	var mbrErr *domainerror.MemberError
	if errors.As(err, &mbrErr) {
		ctx.JSON(c.getStatusCodeForMemberError(mbrErr.Code), dto.ErrorResponse{
			Error: mbrErr.Message,
			Code:  string(mbrErr.Code),
		})
		return
	}

	respondInternal(ctx, err)
}

// getStatusCodeForMemberError maps member error codes to HTTP status codes.
func (c *MemberController) getStatusCodeForMemberError(code domainerror.MemberErrorCode) int {
	switch code {
	case domainerror.ErrCodeMemberNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMemberInUse:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
