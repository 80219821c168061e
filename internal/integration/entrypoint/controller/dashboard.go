package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/mycash/backend/internal/application/usecase/dashboard"
	"github.com/mycash/backend/internal/domain/entity"
	domainerror "github.com/mycash/backend/internal/domain/error"
	"github.com/mycash/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard and global filter endpoints.
type DashboardController struct {
	summaryUseCase       *dashboard.GetSummaryUseCase
	breakdownUseCase     *dashboard.GetCategoryBreakdownUseCase
	flowChartUseCase     *dashboard.GetFlowChartUseCase
	percentageUseCase    *dashboard.GetCategoryPercentageUseCase
	getFiltersUseCase    *dashboard.GetFiltersUseCase
	updateFiltersUseCase *dashboard.UpdateFiltersUseCase
	resetFiltersUseCase  *dashboard.ResetFiltersUseCase
	loc                  *time.Location
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	summaryUseCase *dashboard.GetSummaryUseCase,
	breakdownUseCase *dashboard.GetCategoryBreakdownUseCase,
	flowChartUseCase *dashboard.GetFlowChartUseCase,
	percentageUseCase *dashboard.GetCategoryPercentageUseCase,
	getFiltersUseCase *dashboard.GetFiltersUseCase,
	updateFiltersUseCase *dashboard.UpdateFiltersUseCase,
	resetFiltersUseCase *dashboard.ResetFiltersUseCase,
	loc *time.Location,
) *DashboardController {
	return &DashboardController{
		summaryUseCase:       summaryUseCase,
		breakdownUseCase:     breakdownUseCase,
		flowChartUseCase:     flowChartUseCase,
		percentageUseCase:    percentageUseCase,
		getFiltersUseCase:    getFiltersUseCase,
		updateFiltersUseCase: updateFiltersUseCase,
		resetFiltersUseCase:  resetFiltersUseCase,
		loc:                  loc,
	}
}

// Summary handles GET /dashboard/summary requests.
func (c *DashboardController) Summary(ctx *gin.Context) {
	output, err := c.summaryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// ExpensesByCategory handles GET /dashboard/expenses-by-category requests.
func (c *DashboardController) ExpensesByCategory(ctx *gin.Context) {
	output, err := c.breakdownUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(output))
}

// FlowChart handles GET /dashboard/flow-chart requests.
func (c *DashboardController) FlowChart(ctx *gin.Context) {
	output, err := c.flowChartUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFlowChartResponse(output))
}

// CategoryPercentage handles GET /dashboard/category-percentage?total= requests.
func (c *DashboardController) CategoryPercentage(ctx *gin.Context) {
	raw := ctx.Query("total")
	if raw == "" {
		respondInvalidQuery(ctx, errors.New("total is required"))
		return
	}
	total, err := decimal.NewFromString(raw)
	if err != nil {
		respondInvalidQuery(ctx, err)
		return
	}

	output, err := c.percentageUseCase.Execute(ctx.Request.Context(), dashboard.GetCategoryPercentageInput{
		Total: total,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CategoryPercentageResponse{Percentage: dto.Percent(output.Percentage)})
}

// GetFilters handles GET /filters requests.
func (c *DashboardController) GetFilters(ctx *gin.Context) {
	filters, err := c.getFiltersUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFiltersResponse(filters))
}

// UpdateFilters handles PATCH /filters requests.
func (c *DashboardController) UpdateFilters(ctx *gin.Context) {
	var req dto.FiltersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	input := dashboard.UpdateFiltersInput{
		ClearMember: req.ClearMember,
		SearchText:  req.Search,
	}
	var err error
	if input.MemberID, err = dto.ParseOptionalUUID(req.MemberID); err != nil {
		respondInvalidField(ctx, "member_id", err)
		return
	}
	if input.StartDate, err = dto.ParseOptionalDate(req.StartDate, c.loc); err != nil {
		c.handleDashboardError(ctx, invalidDateError("start_date"))
		return
	}
	if input.EndDate, err = dto.ParseOptionalDate(req.EndDate, c.loc); err != nil {
		c.handleDashboardError(ctx, invalidDateError("end_date"))
		return
	}
	if req.Type != nil {
		transactionType := entity.TransactionTypeFilter(*req.Type)
		input.TransactionType = &transactionType
	}

	filters, err := c.updateFiltersUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFiltersResponse(filters))
}

// ResetFilters handles DELETE /filters requests.
func (c *DashboardController) ResetFilters(ctx *gin.Context) {
	filters, err := c.resetFiltersUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFiltersResponse(filters))
}

func invalidDateError(field string) error {
	return domainerror.NewDashboardError(
		domainerror.ErrCodeInvalidDateFormat,
		field+" must use the YYYY-MM-DD format",
		domainerror.ErrInvalidDateFormat,
	)
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dshErr *domainerror.DashboardError
	if errors.As(err, &dshErr) {
		ctx.JSON(c.getStatusCodeForDashboardError(dshErr.Code), dto.ErrorResponse{
			Error: dshErr.Message,
			Code:  string(dshErr.Code),
		})
		return
	}

	respondInternal(ctx, err)
}

// getStatusCodeForDashboardError maps dashboard error codes to HTTP status codes.
func (c *DashboardController) getStatusCodeForDashboardError(code domainerror.DashboardErrorCode) int {
	switch code {
	case domainerror.ErrCodeFilterMemberNotFound:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeDashboardInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
