// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rooseveltalej/WealthTrackAPI/internal/application/adapter"
	"github.com/rooseveltalej/WealthTrackAPI/internal/domain/entity"
	domainerror "github.com/rooseveltalej/WealthTrackAPI/internal/domain/error"
	"github.com/rooseveltalej/WealthTrackAPI/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
// Grouped sums are computed in-process over decimal values so currency
// arithmetic stays exact on every SQL dialect.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new ledger record in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	result := r.db.WithContext(ctx).Create(model.LedgerFromEntity(transaction))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a record of the given kind by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, kind entity.TransactionKind, id uuid.UUID) (*entity.Transaction, error) {
	q := r.db.WithContext(ctx).Where("id = ?", id)

	var (
		txn *entity.Transaction
		err error
	)
	switch kind {
	case entity.TransactionKindIncome:
		var m model.IncomeModel
		if err = q.First(&m).Error; err == nil {
			txn = m.ToEntity()
		}
	case entity.TransactionKindExpense:
		var m model.ExpenseModel
		if err = q.First(&m).Error; err == nil {
			txn = m.ToEntity()
		}
	case entity.TransactionKindSaving:
		var m model.SavingModel
		if err = q.First(&m).Error; err == nil {
			txn = m.ToEntity()
		}
	default:
		var m model.InvestmentModel
		if err = q.First(&m).Error; err == nil {
			txn = m.ToEntity()
		}
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, err
	}
	return txn, nil
}

// Update updates an existing record in the database.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	result := r.db.WithContext(ctx).Save(model.LedgerFromEntity(transaction))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a record of the given kind by its ID.
func (r *transactionRepository) Delete(ctx context.Context, kind entity.TransactionKind, id uuid.UUID) error {
	var result *gorm.DB
	switch kind {
	case entity.TransactionKindIncome:
		result = r.db.WithContext(ctx).Delete(&model.IncomeModel{}, "id = ?", id)
	case entity.TransactionKindExpense:
		result = r.db.WithContext(ctx).Delete(&model.ExpenseModel{}, "id = ?", id)
	case entity.TransactionKindSaving:
		result = r.db.WithContext(ctx).Delete(&model.SavingModel{}, "id = ?", id)
	default:
		result = r.db.WithContext(ctx).Delete(&model.InvestmentModel{}, "id = ?", id)
	}
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// ReplaceIncomeForMonth deletes the user's income rows for the record's
// calendar month and inserts the record, all in one transaction.
func (r *transactionRepository) ReplaceIncomeForMonth(ctx context.Context, transaction *entity.Transaction) error {
	start, end := monthRange(transaction.Date.Year(), transaction.Date.Month())
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("user_id = ? AND date >= ? AND date < ?", transaction.UserID, start, end).
			Delete(&model.IncomeModel{}).Error; err != nil {
			return err
		}
		return tx.Create(model.LedgerFromEntity(transaction)).Error
	})
}

// SumForMonth returns the exact decimal sum of the kind for one calendar month.
func (r *transactionRepository) SumForMonth(ctx context.Context, kind entity.TransactionKind, userID uuid.UUID, year int, month time.Month) (decimal.Decimal, error) {
	start, end := monthRange(year, month)
	rows, err := r.findInRange(ctx, kind, userID, &start, &end)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Amount)
	}
	return total, nil
}

// MonthlyTotals returns per-month sums for date >= since, ordered by
// (year, month) ascending. Months with no rows are omitted.
func (r *transactionRepository) MonthlyTotals(ctx context.Context, kind entity.TransactionKind, userID uuid.UUID, since time.Time) ([]entity.MonthlyTotal, error) {
	rows, err := r.findInRange(ctx, kind, userID, &since, nil)
	if err != nil {
		return nil, err
	}

	type monthKey struct {
		year  int
		month int
	}
	buckets := make(map[monthKey]decimal.Decimal)
	for _, row := range rows {
		key := monthKey{row.Date.Year(), int(row.Date.Month())}
		buckets[key] = buckets[key].Add(row.Amount)
	}

	totals := make([]entity.MonthlyTotal, 0, len(buckets))
	for key, total := range buckets {
		totals = append(totals, entity.MonthlyTotal{Year: key.year, Month: key.month, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Year != totals[j].Year {
			return totals[i].Year < totals[j].Year
		}
		return totals[i].Month < totals[j].Month
	})
	return totals, nil
}

// CategoryTotals returns per-category sums for one calendar month, ordered by
// category name. Categories with no rows are absent.
func (r *transactionRepository) CategoryTotals(ctx context.Context, kind entity.TransactionKind, userID uuid.UUID, year int, month time.Month) ([]entity.CategoryTotal, error) {
	start, end := monthRange(year, month)
	rows, err := r.findInRange(ctx, kind, userID, &start, &end)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]decimal.Decimal)
	for _, row := range rows {
		buckets[row.Category] = buckets[row.Category].Add(row.Amount)
	}

	totals := make([]entity.CategoryTotal, 0, len(buckets))
	for category, total := range buckets {
		totals = append(totals, entity.CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Category < totals[j].Category
	})
	return totals, nil
}

// ListForMonth returns the individual records for one calendar month,
// ordered by date.
func (r *transactionRepository) ListForMonth(ctx context.Context, kind entity.TransactionKind, userID uuid.UUID, year int, month time.Month) ([]*entity.Transaction, error) {
	start, end := monthRange(year, month)
	return r.findInRange(ctx, kind, userID, &start, &end)
}

// findInRange fetches the kind's rows for a user with date in [from, to),
// ordered by date ascending. Nil bounds are open.
func (r *transactionRepository) findInRange(ctx context.Context, kind entity.TransactionKind, userID uuid.UUID, from, to *time.Time) ([]*entity.Transaction, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("date ASC, created_at ASC")
	if from != nil {
		q = q.Where("date >= ?", *from)
	}
	if to != nil {
		q = q.Where("date < ?", *to)
	}

	switch kind {
	case entity.TransactionKindIncome:
		var models []model.IncomeModel
		if err := q.Find(&models).Error; err != nil {
			return nil, err
		}
		txns := make([]*entity.Transaction, len(models))
		for i := range models {
			txns[i] = models[i].ToEntity()
		}
		return txns, nil
	case entity.TransactionKindExpense:
		var models []model.ExpenseModel
		if err := q.Find(&models).Error; err != nil {
			return nil, err
		}
		txns := make([]*entity.Transaction, len(models))
		for i := range models {
			txns[i] = models[i].ToEntity()
		}
		return txns, nil
	case entity.TransactionKindSaving:
		var models []model.SavingModel
		if err := q.Find(&models).Error; err != nil {
			return nil, err
		}
		txns := make([]*entity.Transaction, len(models))
		for i := range models {
			txns[i] = models[i].ToEntity()
		}
		return txns, nil
	default:
		var models []model.InvestmentModel
		if err := q.Find(&models).Error; err != nil {
			return nil, err
		}
		txns := make([]*entity.Transaction, len(models))
		for i := range models {
			txns[i] = models[i].ToEntity()
		}
		return txns, nil
	}
}

// monthRange returns the [start, end) bounds of a calendar month in UTC.
func monthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
