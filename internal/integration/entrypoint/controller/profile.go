// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rooseveltalej/WealthTrackAPI/internal/application/usecase/user"
	domainerror "github.com/rooseveltalej/WealthTrackAPI/internal/domain/error"
	"github.com/rooseveltalej/WealthTrackAPI/internal/integration/entrypoint/dto"
)

// ProfileController handles the profile view and profile update endpoints.
type ProfileController struct {
	getUseCase    *user.GetProfileUseCase
	updateUseCase *user.UpdateProfileUseCase
}

// NewProfileController creates a new profile controller instance.
func NewProfileController(
	getUseCase *user.GetProfileUseCase,
	updateUseCase *user.UpdateProfileUseCase,
) *ProfileController {
	return &ProfileController{
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
	}
}

// Get handles GET /profile/:id requests.
func (c *ProfileController) Get(ctx *gin.Context) {
	// Parse user ID from URL
	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID format",
		})
		return
	}

	// Execute use case
	output, err := c.getUseCase.Execute(ctx.Request.Context(), user.GetProfileInput{UserID: userID})
	if err != nil {
		c.handleProfileError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output))
}

// Update handles PUT /profile/:id requests.
func (c *ProfileController) Update(ctx *gin.Context) {
	// Parse user ID from URL
	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID format",
		})
		return
	}

	// Parse request body
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingUserFields),
		})
		return
	}

	// Execute use case
	input := user.UpdateProfileInput{
		UserID:   userID,
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	}
	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleProfileError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// handleProfileError handles profile errors and returns appropriate HTTP responses.
func (c *ProfileController) handleProfileError(ctx *gin.Context, err error) {
	var userErr *domainerror.UserError
	if errors.As(err, &userErr) {
		ctx.JSON(statusCodeForUserError(userErr.Code), dto.ErrorResponse{
			Error: userErr.Message,
			Code:  string(userErr.Code),
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
