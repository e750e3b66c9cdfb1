// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rooseveltalej/WealthTrackAPI/internal/application/usecase/goal"
	"github.com/rooseveltalej/WealthTrackAPI/internal/domain/entity"
	domainerror "github.com/rooseveltalej/WealthTrackAPI/internal/domain/error"
	"github.com/rooseveltalej/WealthTrackAPI/internal/integration/entrypoint/dto"
)

// GoalController handles monthly-goal endpoints.
type GoalController struct {
	upsertUseCase *goal.UpsertGoalUseCase
	createUseCase *goal.CreateGoalUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	upsertUseCase *goal.UpsertGoalUseCase,
	createUseCase *goal.CreateGoalUseCase,
) *GoalController {
	return &GoalController{
		upsertUseCase: upsertUseCase,
		createUseCase: createUseCase,
	}
}

// Upsert returns the handler for POST /goals/{kind} requests. The row for the
// (user, calendar month) pair is created or overwritten.
func (c *GoalController) Upsert(kind entity.GoalKind) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		req, userID, ok := c.bindGoalRequest(ctx)
		if !ok {
			return
		}

		// Execute use case
		input := goal.UpsertGoalInput{
			UserID: userID,
			Kind:   kind,
			Date:   req.Date,
			Value:  decimal.NewFromFloat(req.Value),
		}
		output, err := c.upsertUseCase.Execute(ctx.Request.Context(), input)
		if err != nil {
			c.handleGoalError(ctx, err)
			return
		}

		// Build response
		ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
	}
}

// CreateStrict returns the handler for POST /goals/{kind}/strict requests.
// Unlike Upsert, an existing row for the month is a conflict.
func (c *GoalController) CreateStrict(kind entity.GoalKind) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		req, userID, ok := c.bindGoalRequest(ctx)
		if !ok {
			return
		}

		// Execute use case
		input := goal.CreateGoalInput{
			UserID: userID,
			Kind:   kind,
			Date:   req.Date,
			Value:  decimal.NewFromFloat(req.Value),
		}
		output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
		if err != nil {
			c.handleGoalError(ctx, err)
			return
		}

		// Build response
		ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal))
	}
}

func (c *GoalController) bindGoalRequest(ctx *gin.Context) (dto.GoalRequest, uuid.UUID, bool) {
	// Parse request body
	var req dto.GoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return req, uuid.Nil, false
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID format",
		})
		return req, uuid.Nil, false
	}

	return req, userID, true
}

// handleGoalError handles goal errors and returns appropriate HTTP responses.
func (c *GoalController) handleGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		ctx.JSON(statusCodeForGoalError(goalErr.Code), dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
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

// statusCodeForGoalError maps goal error codes to HTTP status codes.
func statusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeGoalAlreadyExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidGoalKind,
		domainerror.ErrCodeInvalidGoalValue,
		domainerror.ErrCodeMissingGoalFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
