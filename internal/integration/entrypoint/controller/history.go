// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rooseveltalej/WealthTrackAPI/internal/application/usecase/history"
	domainerror "github.com/rooseveltalej/WealthTrackAPI/internal/domain/error"
	"github.com/rooseveltalej/WealthTrackAPI/internal/integration/entrypoint/dto"
)

// HistoryController handles the month-bucketed history endpoint.
type HistoryController struct {
	getUseCase *history.GetHistoryUseCase
}

// NewHistoryController creates a new history controller instance.
func NewHistoryController(getUseCase *history.GetHistoryUseCase) *HistoryController {
	return &HistoryController{getUseCase: getUseCase}
}

// Get handles GET /history?email&period&data_type requests.
func (c *HistoryController) Get(ctx *gin.Context) {
	// Parse query parameters
	email := ctx.Query("email")
	if email == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "email query parameter is required",
		})
		return
	}

	period, err := strconv.Atoi(ctx.Query("period"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "period must be an integer",
			Code:  string(domainerror.ErrCodeInvalidPeriod),
		})
		return
	}

	// Execute use case
	input := history.GetHistoryInput{
		Email:        email,
		PeriodMonths: period,
		DataType:     history.DataType(ctx.Query("data_type")),
	}
	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleHistoryError(ctx, err)
		return
	}

	// Build response
	if output.Simple != nil {
		ctx.JSON(http.StatusOK, dto.ToSimpleHistoryResponse(output.Simple))
		return
	}
	ctx.JSON(http.StatusOK, dto.ToGoalHistoryResponse(output.Goals))
}

// handleHistoryError handles history errors and returns appropriate HTTP responses.
func (c *HistoryController) handleHistoryError(ctx *gin.Context, err error) {
	var histErr *domainerror.HistoryError
	if errors.As(err, &histErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: histErr.Message,
			Code:  string(histErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrUserNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "User not found",
			Code:  string(domainerror.ErrCodeUserNotFound),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
