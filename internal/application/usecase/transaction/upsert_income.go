// Package transaction contains ledger-record use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rooseveltalej/WealthTrackAPI/internal/application/adapter"
	"github.com/rooseveltalej/WealthTrackAPI/internal/domain/entity"
)

// UpsertIncomeInput represents the input for recording monthly income.
type UpsertIncomeInput struct {
	UserID uuid.UUID
	Date   string
	Amount decimal.Decimal
}

// UpsertIncomeOutput represents the output of recording monthly income.
type UpsertIncomeOutput struct {
	Transaction *entity.Transaction
}

// UpsertIncomeUseCase records income under the one-value-per-month policy:
// any existing income rows for the user's calendar month are replaced.
type UpsertIncomeUseCase struct {
	transactionRepo adapter.TransactionRepository
	userRepo        adapter.UserRepository
}

// NewUpsertIncomeUseCase creates a new UpsertIncomeUseCase instance.
func NewUpsertIncomeUseCase(transactionRepo adapter.TransactionRepository, userRepo adapter.UserRepository) *UpsertIncomeUseCase {
	return &UpsertIncomeUseCase{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
	}
}

// Execute replaces the user's income for the month of input.Date.
func (uc *UpsertIncomeUseCase) Execute(ctx context.Context, input UpsertIncomeInput) (*UpsertIncomeOutput, error) {
	date, err := validateRecord(entity.TransactionKindIncome, input.Date, input.Amount, "")
	if err != nil {
		return nil, err
	}

	if _, err := uc.userRepo.FindByID(ctx, input.UserID); err != nil {
		return nil, err
	}

	txn := entity.NewTransaction(input.UserID, entity.TransactionKindIncome, date, input.Amount, "")
	if err := uc.transactionRepo.ReplaceIncomeForMonth(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to upsert income: %w", err)
	}

	return &UpsertIncomeOutput{Transaction: txn}, nil
}
