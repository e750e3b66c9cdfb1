// Package adapter defines interfaces for external dependencies (repositories, services).
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rooseveltalej/WealthTrackAPI/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
// Goals are keyed by (user, calendar month, kind): at most one row per month.
type GoalRepository interface {
	// Create inserts a new goal row.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByUserAndMonth retrieves the goal row for a (user, year, month), if any.
	// Returns nil without error when no row exists.
	FindByUserAndMonth(ctx context.Context, kind entity.GoalKind, userID uuid.UUID, year int, month time.Month) (*entity.Goal, error)

	// FindLatest retrieves the user's most recent goal row of the kind, if any.
	// Returns nil without error when the user has no goals of the kind.
	FindLatest(ctx context.Context, kind entity.GoalKind, userID uuid.UUID) (*entity.Goal, error)

	// Upsert overwrites the date and value of the existing row for the goal's
	// (user, year, month), or inserts a new row. Returns the resulting row.
	Upsert(ctx context.Context, goal *entity.Goal) (*entity.Goal, error)

	// FindSince returns goal rows with date >= since, ordered by (year, month) ascending.
	FindSince(ctx context.Context, kind entity.GoalKind, userID uuid.UUID, since time.Time) ([]*entity.Goal, error)
}
