// Package adapter defines interfaces for external dependencies (repositories, services).
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rooseveltalej/WealthTrackAPI/internal/domain/entity"
)

// TransactionRepository defines the interface for ledger persistence and aggregation.
// All sums use exact decimal arithmetic; a month with no rows sums to zero.
type TransactionRepository interface {
	// Create creates a new ledger record.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a record of the given kind by its ID.
	FindByID(ctx context.Context, kind entity.TransactionKind, id uuid.UUID) (*entity.Transaction, error)

	// Update updates an existing record.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a record of the given kind by its ID.
	Delete(ctx context.Context, kind entity.TransactionKind, id uuid.UUID) error

	// ReplaceIncomeForMonth deletes the user's income rows for the record's
	// calendar month and inserts the record, enforcing one value per month.
	ReplaceIncomeForMonth(ctx context.Context, transaction *entity.Transaction) error

	// SumForMonth returns the summed amount of the kind for one calendar month.
	SumForMonth(ctx context.Context, kind entity.TransactionKind, userID uuid.UUID, year int, month time.Month) (decimal.Decimal, error)

	// MonthlyTotals returns per-month sums for records with date >= since,
	// ordered by (year, month) ascending. Months with no rows are omitted.
	MonthlyTotals(ctx context.Context, kind entity.TransactionKind, userID uuid.UUID, since time.Time) ([]entity.MonthlyTotal, error)

	// CategoryTotals returns per-category sums for one calendar month.
	// Categories with no rows are absent from the result.
	CategoryTotals(ctx context.Context, kind entity.TransactionKind, userID uuid.UUID, year int, month time.Month) ([]entity.CategoryTotal, error)

	// ListForMonth returns the individual records of the kind for one calendar month.
	ListForMonth(ctx context.Context, kind entity.TransactionKind, userID uuid.UUID, year int, month time.Month) ([]*entity.Transaction, error)
}
