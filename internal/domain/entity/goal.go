// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalKind represents the kind of monthly goal.
type GoalKind string

const (
	GoalKindExpense    GoalKind = "expense"
	GoalKindSaving     GoalKind = "saving"
	GoalKindInvestment GoalKind = "investment"
)

// ValidGoalKind reports whether kind is one of the three goal kinds.
func ValidGoalKind(kind GoalKind) bool {
	switch kind {
	case GoalKindExpense, GoalKindSaving, GoalKindInvestment:
		return true
	}
	return false
}

// TransactionKind returns the ledger kind whose actuals this goal is compared against.
func (k GoalKind) TransactionKind() TransactionKind {
	switch k {
	case GoalKindExpense:
		return TransactionKindExpense
	case GoalKindSaving:
		return TransactionKindSaving
	default:
		return TransactionKindInvestment
	}
}

// Goal represents a monthly target in the WealthTrack system.
// Value is stored as a percentage of the month's total income.
// At most one row exists per (user, calendar month, kind).
type Goal struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Kind      GoalKind
	Date      time.Time
	Value     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewGoal creates a new Goal entity.
func NewGoal(userID uuid.UUID, kind GoalKind, date time.Time, value decimal.Decimal) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:        uuid.New(),
		UserID:    userID,
		Kind:      kind,
		Date:      date,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
