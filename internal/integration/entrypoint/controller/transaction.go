// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rooseveltalej/WealthTrackAPI/internal/application/usecase/transaction"
	"github.com/rooseveltalej/WealthTrackAPI/internal/domain/entity"
	domainerror "github.com/rooseveltalej/WealthTrackAPI/internal/domain/error"
	"github.com/rooseveltalej/WealthTrackAPI/internal/integration/entrypoint/dto"
)

// TransactionController handles the income and ledger-record endpoints.
type TransactionController struct {
	upsertIncomeUseCase *transaction.UpsertIncomeUseCase
	createUseCase       *transaction.CreateTransactionUseCase
	updateUseCase       *transaction.UpdateTransactionUseCase
	deleteUseCase       *transaction.DeleteTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	upsertIncomeUseCase *transaction.UpsertIncomeUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		upsertIncomeUseCase: upsertIncomeUseCase,
		createUseCase:       createUseCase,
		updateUseCase:       updateUseCase,
		deleteUseCase:       deleteUseCase,
	}
}

// UpsertIncome handles POST /income requests. Any income rows already stored
// for the user's calendar month are replaced.
func (c *TransactionController) UpsertIncome(ctx *gin.Context) {
	// Parse request body
	var req dto.CreateIncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTransactionBody),
		})
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID format",
		})
		return
	}

	// Execute use case
	input := transaction.UpsertIncomeInput{
		UserID: userID,
		Date:   req.Date,
		Amount: decimal.NewFromFloat(req.Amount),
	}
	output, err := c.upsertIncomeUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Create returns the handler for POST /{expense|saving|investment} requests.
func (c *TransactionController) Create(kind entity.TransactionKind) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// Parse request body
		var req dto.CreateTransactionRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid request body: " + err.Error(),
				Code:  string(domainerror.ErrCodeMissingTransactionBody),
			})
			return
		}

		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid user ID format",
			})
			return
		}

		// Execute use case
		input := transaction.CreateTransactionInput{
			UserID:   userID,
			Kind:     kind,
			Date:     req.Date,
			Amount:   decimal.NewFromFloat(req.Amount),
			Category: req.Category,
		}
		output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
		if err != nil {
			c.handleTransactionError(ctx, err)
			return
		}

		// Build response
		ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
	}
}

// Update returns the handler for PUT /{expense|saving|investment}/:id requests.
func (c *TransactionController) Update(kind entity.TransactionKind) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// Parse record ID from URL
		recordID, err := uuid.Parse(ctx.Param("id"))
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid record ID format",
			})
			return
		}

		// Parse request body
		var req dto.UpdateTransactionRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid request body: " + err.Error(),
				Code:  string(domainerror.ErrCodeMissingTransactionBody),
			})
			return
		}

		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid user ID format",
			})
			return
		}

		// Execute use case
		input := transaction.UpdateTransactionInput{
			ID:       recordID,
			UserID:   userID,
			Kind:     kind,
			Date:     req.Date,
			Category: req.Category,
		}
		if req.Amount != nil {
			amount := decimal.NewFromFloat(*req.Amount)
			input.Amount = &amount
		}
		output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
		if err != nil {
			c.handleTransactionError(ctx, err)
			return
		}

		// Build response
		ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
	}
}

// Delete returns the handler for DELETE /{expense|saving|investment}/:id requests.
func (c *TransactionController) Delete(kind entity.TransactionKind) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// Parse record ID from URL
		recordID, err := uuid.Parse(ctx.Param("id"))
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid record ID format",
			})
			return
		}

		userID, err := uuid.Parse(ctx.Query("user_id"))
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid user ID format",
			})
			return
		}

		// Execute use case
		input := transaction.DeleteTransactionInput{
			ID:     recordID,
			UserID: userID,
			Kind:   kind,
		}
		if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
			c.handleTransactionError(ctx, err)
			return
		}

		ctx.Status(http.StatusNoContent)
	}
}

// handleTransactionError handles transaction errors and returns appropriate HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(statusCodeForTransactionError(txnErr.Code), dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrTransactionNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Record not found",
			Code:  string(domainerror.ErrCodeTransactionNotFound),
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

// statusCodeForTransactionError maps transaction error codes to HTTP status codes.
func statusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNegativeAmount,
		domainerror.ErrCodeInvalidDateFormat,
		domainerror.ErrCodeInvalidCategory,
		domainerror.ErrCodeInvalidTransactionKind,
		domainerror.ErrCodeMissingTransactionBody:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
