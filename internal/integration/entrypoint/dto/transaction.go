// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/rooseveltalej/WealthTrackAPI/internal/domain/entity"
)

// CreateIncomeRequest represents the request body for recording monthly income.
type CreateIncomeRequest struct {
	UserID string  `json:"user_id" binding:"required,uuid"`
	Date   string  `json:"date" binding:"required"`
	Amount float64 `json:"amount"`
}

// CreateTransactionRequest represents the request body for creating an
// expense/saving/investment record.
type CreateTransactionRequest struct {
	UserID   string  `json:"user_id" binding:"required,uuid"`
	Date     string  `json:"date" binding:"required"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category" binding:"required"`
}

// UpdateTransactionRequest represents the request body for updating a record.
type UpdateTransactionRequest struct {
	UserID   string   `json:"user_id" binding:"required,uuid"`
	Date     *string  `json:"date,omitempty"`
	Amount   *float64 `json:"amount,omitempty"`
	Category *string  `json:"category,omitempty"`
}

// TransactionResponse represents a ledger record in API responses.
type TransactionResponse struct {
	ID       string  `json:"id"`
	UserID   string  `json:"user_id"`
	Date     string  `json:"date"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category,omitempty"`
	Kind     string  `json:"kind"`
}

// ToTransactionResponse converts a Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:       txn.ID.String(),
		UserID:   txn.UserID.String(),
		Date:     txn.Date.Format("2006-01-02"),
		Amount:   txn.Amount.InexactFloat64(),
		Category: txn.Category,
		Kind:     string(txn.Kind),
	}
}
