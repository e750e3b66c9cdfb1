// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind represents the kind of ledger record.
type TransactionKind string

const (
	TransactionKindIncome     TransactionKind = "income"
	TransactionKindExpense    TransactionKind = "expense"
	TransactionKindSaving     TransactionKind = "saving"
	TransactionKindInvestment TransactionKind = "investment"
)

// ExpenseCategories is the closed set of valid expense categories.
var ExpenseCategories = []string{
	"vivienda",
	"alimentación",
	"transporte",
	"salud",
	"educación",
	"entretenimiento",
	"ropa",
	"otros",
}

// SavingCategories is the closed set of valid saving categories.
var SavingCategories = []string{
	"fondo de emergencia",
	"jubilación",
	"vacaciones",
	"mantenimiento",
	"otros",
}

// InvestmentCategories is the closed set of valid investment categories.
var InvestmentCategories = []string{
	"fondo de inversión",
	"acciones",
	"bienes raíces",
	"cripto",
	"negocio",
	"otros",
}

// CategoriesForKind returns the valid categories for a transaction kind.
// Income carries no category, so it returns nil.
func CategoriesForKind(kind TransactionKind) []string {
	switch kind {
	case TransactionKindExpense:
		return ExpenseCategories
	case TransactionKindSaving:
		return SavingCategories
	case TransactionKindInvestment:
		return InvestmentCategories
	default:
		return nil
	}
}

// ValidCategory reports whether category is valid for the given kind.
func ValidCategory(kind TransactionKind, category string) bool {
	for _, c := range CategoriesForKind(kind) {
		if c == category {
			return true
		}
	}
	return false
}

// ValidTransactionKind reports whether kind is one of the four ledger kinds.
func ValidTransactionKind(kind TransactionKind) bool {
	switch kind {
	case TransactionKindIncome, TransactionKindExpense, TransactionKindSaving, TransactionKindInvestment:
		return true
	}
	return false
}

// Transaction represents a ledger record in the WealthTrack system.
// Income records carry no category.
type Transaction struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Kind      TransactionKind
	Date      time.Time
	Amount    decimal.Decimal
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(userID uuid.UUID, kind TransactionKind, date time.Time, amount decimal.Decimal, category string) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:        uuid.New(),
		UserID:    userID,
		Kind:      kind,
		Date:      date,
		Amount:    amount,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// MonthlyTotal represents the summed amount of one calendar month.
type MonthlyTotal struct {
	Year  int
	Month int
	Total decimal.Decimal
}

// CategoryTotal represents the summed amount of one category within a month.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}
