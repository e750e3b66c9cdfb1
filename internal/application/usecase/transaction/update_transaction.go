// Package transaction contains ledger-record use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rooseveltalej/WealthTrackAPI/internal/application/adapter"
	"github.com/rooseveltalej/WealthTrackAPI/internal/domain/entity"
	domainerror "github.com/rooseveltalej/WealthTrackAPI/internal/domain/error"
)

// UpdateTransactionInput represents the input for updating a record.
// Nil fields keep their stored value.
type UpdateTransactionInput struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Kind     entity.TransactionKind
	Date     *string
	Amount   *decimal.Decimal
	Category *string
}

// UpdateTransactionOutput represents the output of updating a record.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles updates of expense/saving/investment records.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute applies the provided field changes to the stored record.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	txn, err := uc.transactionRepo.FindByID(ctx, input.Kind, input.ID)
	if err != nil {
		return nil, err
	}

	if txn.UserID != input.UserID {
		return nil, domainerror.ErrTransactionNotFound
	}

	date := txn.Date.Format("2006-01-02")
	if input.Date != nil {
		date = *input.Date
	}
	amount := txn.Amount
	if input.Amount != nil {
		amount = *input.Amount
	}
	category := txn.Category
	if input.Category != nil {
		category = *input.Category
	}

	parsedDate, err := validateRecord(input.Kind, date, amount, category)
	if err != nil {
		return nil, err
	}

	txn.Date = parsedDate
	txn.Amount = amount
	txn.Category = category

	if err := uc.transactionRepo.Update(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to update %s record: %w", input.Kind, err)
	}

	return &UpdateTransactionOutput{Transaction: txn}, nil
}
