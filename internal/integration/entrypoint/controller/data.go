package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mycash/backend/internal/application/usecase/data"
	domainerror "github.com/mycash/backend/internal/domain/error"
	"github.com/mycash/backend/internal/integration/entrypoint/dto"
)

// DataController handles whole-store endpoints: export, clear and reseed.
type DataController struct {
	exportUseCase *data.ExportDataUseCase
	clearUseCase  *data.ClearDataUseCase
	reseedUseCase *data.ReseedDataUseCase
}

// NewDataController creates a new data controller instance.
func NewDataController(
	exportUseCase *data.ExportDataUseCase,
	clearUseCase *data.ClearDataUseCase,
	reseedUseCase *data.ReseedDataUseCase,
) *DataController {
	return &DataController{
		exportUseCase: exportUseCase,
		clearUseCase:  clearUseCase,
		reseedUseCase: reseedUseCase,
	}
}

// Export handles GET /data/export?format= requests and returns the document as an attachment.
func (c *DataController) Export(ctx *gin.Context) {
	output, err := c.exportUseCase.Execute(ctx.Request.Context(), data.ExportDataInput{
		Format: data.ExportFormat(ctx.Query("format")),
	})
	if err != nil {
		c.handleDataError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.FileName))
	ctx.Data(http.StatusOK, output.ContentType, output.Body)
}

// Clear handles DELETE /data requests.
func (c *DataController) Clear(ctx *gin.Context) {
	if err := c.clearUseCase.Execute(ctx.Request.Context()); err != nil {
		c.handleDataError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Seed handles POST /data/seed requests.
func (c *DataController) Seed(ctx *gin.Context) {
	output, err := c.reseedUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleDataError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ReseedResponse{
		Message: "Store reseeded with sample data",
		Counts:  output.Counts,
	})
}

// handleDataError handles data errors and returns appropriate HTTP responses.
func (c *DataController) handleDataError(ctx *gin.Context, err error) {
	var datErr *domainerror.DataError
	if errors.As(err, &datErr) && datErr.Code == domainerror.ErrCodeInvalidExportFormat {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: datErr.Message,
			Code:  string(datErr.Code),
		})
		return
	}

	respondInternal(ctx, err)
}
