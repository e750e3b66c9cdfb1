// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rooseveltalej/WealthTrackAPI/internal/domain/entity"
)

// ExpenseGoalModel represents the expensegoals table. Year and Month are
// derived from Date so the one-row-per-month rule can be a unique index.
type ExpenseGoalModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_expensegoals_user_month"`
	Year      int             `gorm:"not null;uniqueIndex:idx_expensegoals_user_month"`
	Month     int             `gorm:"not null;uniqueIndex:idx_expensegoals_user_month"`
	Date      time.Time       `gorm:"type:date;not null"`
	Value     decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ExpenseGoalModel.
func (ExpenseGoalModel) TableName() string {
	return "expensegoals"
}

// SavingGoalModel represents the savinggoals table.
type SavingGoalModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_savinggoals_user_month"`
	Year      int             `gorm:"not null;uniqueIndex:idx_savinggoals_user_month"`
	Month     int             `gorm:"not null;uniqueIndex:idx_savinggoals_user_month"`
	Date      time.Time       `gorm:"type:date;not null"`
	Value     decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SavingGoalModel.
func (SavingGoalModel) TableName() string {
	return "savinggoals"
}

// InvestmentGoalModel represents the investmentgoals table.
type InvestmentGoalModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_investmentgoals_user_month"`
	Year      int             `gorm:"not null;uniqueIndex:idx_investmentgoals_user_month"`
	Month     int             `gorm:"not null;uniqueIndex:idx_investmentgoals_user_month"`
	Date      time.Time       `gorm:"type:date;not null"`
	Value     decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the InvestmentGoalModel.
func (InvestmentGoalModel) TableName() string {
	return "investmentgoals"
}

// ToEntity converts an ExpenseGoalModel to a domain Goal entity.
func (m *ExpenseGoalModel) ToEntity() *entity.Goal {
	return goalEntity(entity.GoalKindExpense, m.ID, m.UserID, m.Date, m.Value, m.CreatedAt, m.UpdatedAt)
}

// ToEntity converts a SavingGoalModel to a domain Goal entity.
func (m *SavingGoalModel) ToEntity() *entity.Goal {
	return goalEntity(entity.GoalKindSaving, m.ID, m.UserID, m.Date, m.Value, m.CreatedAt, m.UpdatedAt)
}

// ToEntity converts an InvestmentGoalModel to a domain Goal entity.
func (m *InvestmentGoalModel) ToEntity() *entity.Goal {
	return goalEntity(entity.GoalKindInvestment, m.ID, m.UserID, m.Date, m.Value, m.CreatedAt, m.UpdatedAt)
}

func goalEntity(kind entity.GoalKind, id, userID uuid.UUID, date time.Time, value decimal.Decimal, createdAt, updatedAt time.Time) *entity.Goal {
	return &entity.Goal{
		ID:        id,
		UserID:    userID,
		Kind:      kind,
		Date:      date,
		Value:     value,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// GoalFromEntity creates the kind's table model from a domain Goal.
func GoalFromEntity(goal *entity.Goal) any {
	switch goal.Kind {
	case entity.GoalKindExpense:
		return &ExpenseGoalModel{
			ID:        goal.ID,
			UserID:    goal.UserID,
			Year:      goal.Date.Year(),
			Month:     int(goal.Date.Month()),
			Date:      goal.Date,
			Value:     goal.Value,
			CreatedAt: goal.CreatedAt,
			UpdatedAt: goal.UpdatedAt,
		}
	case entity.GoalKindSaving:
		return &SavingGoalModel{
			ID:        goal.ID,
			UserID:    goal.UserID,
			Year:      goal.Date.Year(),
			Month:     int(goal.Date.Month()),
			Date:      goal.Date,
			Value:     goal.Value,
			CreatedAt: goal.CreatedAt,
			UpdatedAt: goal.UpdatedAt,
		}
	default:
		return &InvestmentGoalModel{
			ID:        goal.ID,
			UserID:    goal.UserID,
			Year:      goal.Date.Year(),
			Month:     int(goal.Date.Month()),
			Date:      goal.Date,
			Value:     goal.Value,
			CreatedAt: goal.CreatedAt,
			UpdatedAt: goal.UpdatedAt,
		}
	}
}
