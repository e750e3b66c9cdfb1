// Package transaction contains ledger-record use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rooseveltalej/WealthTrackAPI/internal/application/adapter"
	"github.com/rooseveltalej/WealthTrackAPI/internal/domain/entity"
	domainerror "github.com/rooseveltalej/WealthTrackAPI/internal/domain/error"
)

// CreateTransactionInput represents the input for creating an
// expense/saving/investment record.
type CreateTransactionInput struct {
	UserID   uuid.UUID
	Kind     entity.TransactionKind
	Date     string
	Amount   decimal.Decimal
	Category string
}

// CreateTransactionOutput represents the output of creating a record.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles creation of categorized ledger records.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	userRepo        adapter.UserRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository, userRepo adapter.UserRepository) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
	}
}

// Execute creates a new expense, saving or investment record.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	date, err := validateRecord(input.Kind, input.Date, input.Amount, input.Category)
	if err != nil {
		return nil, err
	}

	if _, err := uc.userRepo.FindByID(ctx, input.UserID); err != nil {
		return nil, err
	}

	txn := entity.NewTransaction(input.UserID, input.Kind, date, input.Amount, input.Category)
	if err := uc.transactionRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create %s record: %w", input.Kind, err)
	}

	return &CreateTransactionOutput{Transaction: txn}, nil
}

// validateRecord checks date format, amount sign and category membership for
// categorized kinds. Income passes with an empty category.
func validateRecord(kind entity.TransactionKind, rawDate string, amount decimal.Decimal, category string) (time.Time, error) {
	if !entity.ValidTransactionKind(kind) {
		return time.Time{}, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionKind,
			"kind must be: income, expense, saving or investment",
			domainerror.ErrInvalidTransactionKind,
		)
	}

	date, err := time.Parse("2006-01-02", rawDate)
	if err != nil {
		return time.Time{}, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidDateFormat,
			"date must be in YYYY-MM-DD format",
			domainerror.ErrInvalidDateFormat,
		)
	}

	if amount.IsNegative() {
		return time.Time{}, domainerror.NewTransactionError(
			domainerror.ErrCodeNegativeAmount,
			"amount cannot be negative",
			domainerror.ErrNegativeAmount,
		)
	}

	if kind != entity.TransactionKindIncome && !entity.ValidCategory(kind, category) {
		return time.Time{}, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidCategory,
			fmt.Sprintf("category %q is not valid for kind %s", category, kind),
			domainerror.ErrInvalidCategory,
		)
	}

	return date, nil
}
