// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rooseveltalej/WealthTrackAPI/internal/domain/entity"
)

// IncomeModel represents the incomes table. Income has no category; the
// one-value-per-calendar-month policy is enforced by the repository.
type IncomeModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date      time.Time       `gorm:"type:date;not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the IncomeModel.
func (IncomeModel) TableName() string {
	return "incomes"
}

// ExpenseModel represents the expenses table.
type ExpenseModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date      time.Time       `gorm:"type:date;not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Category  string          `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// SavingModel represents the savings table.
type SavingModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date      time.Time       `gorm:"type:date;not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Category  string          `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SavingModel.
func (SavingModel) TableName() string {
	return "savings"
}

// InvestmentModel represents the investments table.
type InvestmentModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date      time.Time       `gorm:"type:date;not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Category  string          `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the InvestmentModel.
func (InvestmentModel) TableName() string {
	return "investments"
}

// ToEntity converts an IncomeModel to a domain Transaction entity.
func (m *IncomeModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:        m.ID,
		UserID:    m.UserID,
		Kind:      entity.TransactionKindIncome,
		Date:      m.Date,
		Amount:    m.Amount,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ToEntity converts an ExpenseModel to a domain Transaction entity.
func (m *ExpenseModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:        m.ID,
		UserID:    m.UserID,
		Kind:      entity.TransactionKindExpense,
		Date:      m.Date,
		Amount:    m.Amount,
		Category:  m.Category,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ToEntity converts a SavingModel to a domain Transaction entity.
func (m *SavingModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:        m.ID,
		UserID:    m.UserID,
		Kind:      entity.TransactionKindSaving,
		Date:      m.Date,
		Amount:    m.Amount,
		Category:  m.Category,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ToEntity converts an InvestmentModel to a domain Transaction entity.
func (m *InvestmentModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:        m.ID,
		UserID:    m.UserID,
		Kind:      entity.TransactionKindInvestment,
		Date:      m.Date,
		Amount:    m.Amount,
		Category:  m.Category,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// LedgerFromEntity creates the kind's table model from a domain Transaction.
func LedgerFromEntity(txn *entity.Transaction) any {
	switch txn.Kind {
	case entity.TransactionKindIncome:
		return &IncomeModel{
			ID:        txn.ID,
			UserID:    txn.UserID,
			Date:      txn.Date,
			Amount:    txn.Amount,
			CreatedAt: txn.CreatedAt,
			UpdatedAt: txn.UpdatedAt,
		}
	case entity.TransactionKindExpense:
		return &ExpenseModel{
			ID:        txn.ID,
			UserID:    txn.UserID,
			Date:      txn.Date,
			Amount:    txn.Amount,
			Category:  txn.Category,
			CreatedAt: txn.CreatedAt,
			UpdatedAt: txn.UpdatedAt,
		}
	case entity.TransactionKindSaving:
		return &SavingModel{
			ID:        txn.ID,
			UserID:    txn.UserID,
			Date:      txn.Date,
			Amount:    txn.Amount,
			Category:  txn.Category,
			CreatedAt: txn.CreatedAt,
			UpdatedAt: txn.UpdatedAt,
		}
	default:
		return &InvestmentModel{
			ID:        txn.ID,
			UserID:    txn.UserID,
			Date:      txn.Date,
			Amount:    txn.Amount,
			Category:  txn.Category,
			CreatedAt: txn.CreatedAt,
			UpdatedAt: txn.UpdatedAt,
		}
	}
}
