// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rooseveltalej/WealthTrackAPI/internal/application/usecase/dashboard"
	domainerror "github.com/rooseveltalej/WealthTrackAPI/internal/domain/error"
	"github.com/rooseveltalej/WealthTrackAPI/internal/integration/entrypoint/dto"
)

// DashboardController handles the current-month snapshot endpoint.
type DashboardController struct {
	getUseCase *dashboard.GetDashboardUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(getUseCase *dashboard.GetDashboardUseCase) *DashboardController {
	return &DashboardController{getUseCase: getUseCase}
}

// Get handles GET /dashboard requests. The target user comes as a JSON body
// with the email, mirroring the web client's existing contract.
func (c *DashboardController) Get(ctx *gin.Context) {
	// Parse request body
	var req dto.DashboardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	// Execute use case
	output, err := c.getUseCase.Execute(ctx.Request.Context(), dashboard.GetDashboardInput{Email: req.Email})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
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
