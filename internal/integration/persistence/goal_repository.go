// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rooseveltalej/WealthTrackAPI/internal/application/adapter"
	"github.com/rooseveltalej/WealthTrackAPI/internal/domain/entity"
	"github.com/rooseveltalej/WealthTrackAPI/internal/integration/persistence/model"
)

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// Create inserts a new goal row in the database.
func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	result := r.db.WithContext(ctx).Create(model.GoalFromEntity(goal))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUserAndMonth retrieves the goal row for a (user, year, month), if any.
func (r *goalRepository) FindByUserAndMonth(ctx context.Context, kind entity.GoalKind, userID uuid.UUID, year int, month time.Month) (*entity.Goal, error) {
	return findGoal(r.db.WithContext(ctx).
		Where("user_id = ? AND year = ? AND month = ?", userID, year, int(month)), kind)
}

// FindLatest retrieves the user's most recent goal row of the kind, if any.
func (r *goalRepository) FindLatest(ctx context.Context, kind entity.GoalKind, userID uuid.UUID) (*entity.Goal, error) {
	return findGoal(r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("year DESC, month DESC"), kind)
}

// Upsert overwrites the existing row for the goal's (user, year, month) or
// inserts a new one, inside a transaction. The unique index on
// (user_id, year, month) backs the check-then-write against races.
func (r *goalRepository) Upsert(ctx context.Context, goal *entity.Goal) (*entity.Goal, error) {
	var result *entity.Goal
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		upserted, err := upsertGoal(tx, goal)
		if err != nil {
			return err
		}
		result = upserted
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// FindSince returns goal rows with date >= since, ordered by (year, month).
func (r *goalRepository) FindSince(ctx context.Context, kind entity.GoalKind, userID uuid.UUID, since time.Time) ([]*entity.Goal, error) {
	q := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, since).
		Order("year ASC, month ASC")

	switch kind {
	case entity.GoalKindExpense:
		var models []model.ExpenseGoalModel
		if err := q.Find(&models).Error; err != nil {
			return nil, err
		}
		goals := make([]*entity.Goal, len(models))
		for i := range models {
			goals[i] = models[i].ToEntity()
		}
		return goals, nil
	case entity.GoalKindSaving:
		var models []model.SavingGoalModel
		if err := q.Find(&models).Error; err != nil {
			return nil, err
		}
		goals := make([]*entity.Goal, len(models))
		for i := range models {
			goals[i] = models[i].ToEntity()
		}
		return goals, nil
	default:
		var models []model.InvestmentGoalModel
		if err := q.Find(&models).Error; err != nil {
			return nil, err
		}
		goals := make([]*entity.Goal, len(models))
		for i := range models {
			goals[i] = models[i].ToEntity()
		}
		return goals, nil
	}
}

// findGoal runs First on the kind's table, mapping ErrRecordNotFound to a
// nil goal without error.
func findGoal(q *gorm.DB, kind entity.GoalKind) (*entity.Goal, error) {
	var (
		goal *entity.Goal
		err  error
	)
	switch kind {
	case entity.GoalKindExpense:
		var m model.ExpenseGoalModel
		if err = q.First(&m).Error; err == nil {
			goal = m.ToEntity()
		}
	case entity.GoalKindSaving:
		var m model.SavingGoalModel
		if err = q.First(&m).Error; err == nil {
			goal = m.ToEntity()
		}
	default:
		var m model.InvestmentGoalModel
		if err = q.First(&m).Error; err == nil {
			goal = m.ToEntity()
		}
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return goal, nil
}

// upsertGoal applies the insert-or-overwrite rule within tx. Shared with the
// CSV import path so both write paths behave identically.
func upsertGoal(tx *gorm.DB, goal *entity.Goal) (*entity.Goal, error) {
	existing, err := findGoal(tx.
		Where("user_id = ? AND year = ? AND month = ?", goal.UserID, goal.Date.Year(), int(goal.Date.Month())), goal.Kind)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.Date = goal.Date
		existing.Value = goal.Value
		existing.UpdatedAt = time.Now().UTC()
		if err := tx.Save(model.GoalFromEntity(existing)).Error; err != nil {
			return nil, err
		}
		return existing, nil
	}

	if err := tx.Create(model.GoalFromEntity(goal)).Error; err != nil {
		return nil, err
	}
	return goal, nil
}
