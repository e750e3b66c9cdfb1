// Package adapter defines interfaces for external dependencies (repositories, services).
package adapter

import (
	"context"

	"github.com/rooseveltalej/WealthTrackAPI/internal/domain/entity"
)

// ImportRepository defines the interface for batch CSV persistence.
// Every method runs as one all-or-nothing transaction: any failure rolls the
// whole batch back.
type ImportRepository interface {
	// ImportTransactions inserts expense/saving/investment rows as one batch.
	ImportTransactions(ctx context.Context, kind entity.TransactionKind, transactions []*entity.Transaction) error

	// ImportIncome applies the one-value-per-month policy for each row:
	// existing income rows for the row's (user, month) are deleted first.
	ImportIncome(ctx context.Context, transactions []*entity.Transaction) error

	// ImportGoals upserts each goal row by (user, year, month).
	ImportGoals(ctx context.Context, kind entity.GoalKind, goals []*entity.Goal) error
}
