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

// UserController handles registration, login and user lookup endpoints.
type UserController struct {
	registerUseCase *user.RegisterUserUseCase
	loginUseCase    *user.LoginUserUseCase
	getUseCase      *user.GetUserUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	registerUseCase *user.RegisterUserUseCase,
	loginUseCase *user.LoginUserUseCase,
	getUseCase *user.GetUserUseCase,
) *UserController {
	return &UserController{
		registerUseCase: registerUseCase,
		loginUseCase:    loginUseCase,
		getUseCase:      getUseCase,
	}
}

// Register handles POST /users/register requests.
func (c *UserController) Register(ctx *gin.Context) {
	// Parse request body
	var req dto.RegisterUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingUserFields),
		})
		return
	}

	// Execute use case
	input := user.RegisterUserInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	}
	output, err := c.registerUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusCreated, dto.ToUserResponse(output.User))
}

// Login handles POST /auth/login requests.
func (c *UserController) Login(ctx *gin.Context) {
	// Parse request body
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingUserFields),
		})
		return
	}

	// Execute use case
	input := user.LoginUserInput{
		Email:    req.Email,
		Password: req.Password,
	}
	output, err := c.loginUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// Get handles GET /users/:id requests.
func (c *UserController) Get(ctx *gin.Context) {
	// Parse user ID from URL
	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID format",
		})
		return
	}

	// Execute use case
	output, err := c.getUseCase.Execute(ctx.Request.Context(), user.GetUserInput{UserID: userID})
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// handleUserError handles user errors and returns appropriate HTTP responses.
func (c *UserController) handleUserError(ctx *gin.Context, err error) {
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

// statusCodeForUserError maps user error codes to HTTP status codes.
func statusCodeForUserError(code domainerror.UserErrorCode) int {
	switch code {
	case domainerror.ErrCodeUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeEmailAlreadyRegistered:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidCredentials:
		return http.StatusUnauthorized
	case domainerror.ErrCodeMissingUserFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
