// Package transaction contains ledger-record use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rooseveltalej/WealthTrackAPI/internal/application/adapter"
	"github.com/rooseveltalej/WealthTrackAPI/internal/domain/entity"
	domainerror "github.com/rooseveltalej/WealthTrackAPI/internal/domain/error"
)

// DeleteTransactionInput represents the input for deleting a record.
type DeleteTransactionInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Kind   entity.TransactionKind
}

// DeleteTransactionUseCase handles deletion of expense/saving/investment records.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(transactionRepo adapter.TransactionRepository) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute deletes the record after verifying ownership.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	txn, err := uc.transactionRepo.FindByID(ctx, input.Kind, input.ID)
	if err != nil {
		return err
	}

	if txn.UserID != input.UserID {
		return domainerror.ErrTransactionNotFound
	}

	if err := uc.transactionRepo.Delete(ctx, input.Kind, input.ID); err != nil {
		return fmt.Errorf("failed to delete %s record: %w", input.Kind, err)
	}

	return nil
}
