// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/mycash/backend/internal/domain/error"
	"github.com/mycash/backend/internal/integration/entrypoint/dto"
)

// parseIDParam reads a UUID path parameter, answering 400 when it is malformed.
func parseIDParam(ctx *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + label + " ID format",
			Code:  string(domainerror.ErrCodeInvalidID),
		})
		return uuid.Nil, false
	}
	return id, true
}

func respondInvalidBody(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid request body",
		Code:    string(domainerror.ErrCodeInvalidRequestBody),
		Details: err.Error(),
	})
}

func respondInvalidQuery(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid query parameters",
		Code:    string(domainerror.ErrCodeInvalidQuery),
		Details: err.Error(),
	})
}

func respondInvalidField(ctx *gin.Context, field string, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid " + field,
		Code:    string(domainerror.ErrCodeInvalidRequestBody),
		Details: err.Error(),
	})
}

func respondInternal(ctx *gin.Context, err error) {
	slog.ErrorContext(ctx.Request.Context(), "request failed",
		"method", ctx.Request.Method,
		"path", ctx.FullPath(),
		"error", err,
	)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeInternal),
	})
}
