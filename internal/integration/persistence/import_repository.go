// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/rooseveltalej/WealthTrackAPI/internal/application/adapter"
	"github.com/rooseveltalej/WealthTrackAPI/internal/domain/entity"
	"github.com/rooseveltalej/WealthTrackAPI/internal/integration/persistence/model"
)

// importRepository implements the adapter.ImportRepository interface.
// Each method runs one gorm transaction so a batch commits fully or not at all.
type importRepository struct {
	db *gorm.DB
}

// NewImportRepository creates a new import repository instance.
func NewImportRepository(db *gorm.DB) adapter.ImportRepository {
	return &importRepository{
		db: db,
	}
}

// ImportTransactions inserts expense/saving/investment rows as one batch.
func (r *importRepository) ImportTransactions(ctx context.Context, kind entity.TransactionKind, transactions []*entity.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, txn := range transactions {
			if err := tx.Create(model.LedgerFromEntity(txn)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ImportIncome replaces the income rows of each record's calendar month
// before inserting it, preserving the one-value-per-month policy.
func (r *importRepository) ImportIncome(ctx context.Context, transactions []*entity.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, txn := range transactions {
			start, end := monthRange(txn.Date.Year(), txn.Date.Month())
			if err := tx.
				Where("user_id = ? AND date >= ? AND date < ?", txn.UserID, start, end).
				Delete(&model.IncomeModel{}).Error; err != nil {
				return err
			}
			if err := tx.Create(model.LedgerFromEntity(txn)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ImportGoals upserts each goal row by (user, year, month).
func (r *importRepository) ImportGoals(ctx context.Context, kind entity.GoalKind, goals []*entity.Goal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, goal := range goals {
			if _, err := upsertGoal(tx, goal); err != nil {
				return err
			}
		}
		return nil
	})
}
