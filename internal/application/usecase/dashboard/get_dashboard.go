// Package dashboard contains the current-month dashboard use case.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rooseveltalej/WealthTrackAPI/internal/application/adapter"
	"github.com/rooseveltalej/WealthTrackAPI/internal/domain/entity"
)

// GetDashboardInput represents the input for the dashboard snapshot.
type GetDashboardInput struct {
	Email string
}

// RecordEntry is one raw ledger record in the dashboard listings.
type RecordEntry struct {
	Date     time.Time
	Amount   decimal.Decimal
	Category string
}

// CategoryEntry is one category's summed amount for the month.
type CategoryEntry struct {
	Category string
	Total    decimal.Decimal
}

// GetDashboardOutput is the current-month snapshot: kind totals, raw stored
// goal percents, per-record listings and category breakdowns. Income has no
// categories, so it gets no listing or breakdown.
type GetDashboardOutput struct {
	IncomeTotal     decimal.Decimal
	ExpenseTotal    decimal.Decimal
	SavingTotal     decimal.Decimal
	InvestmentTotal decimal.Decimal

	ExpenseGoalPercent    decimal.Decimal
	SavingGoalPercent     decimal.Decimal
	InvestmentGoalPercent decimal.Decimal

	Expenses    []RecordEntry
	Savings     []RecordEntry
	Investments []RecordEntry

	CategoryExpenses    []CategoryEntry
	CategorySavings     []CategoryEntry
	CategoryInvestments []CategoryEntry
}

// GetDashboardUseCase composes the aggregator and the stored goal values into
// one snapshot for the current calendar month.
type GetDashboardUseCase struct {
	userRepo        adapter.UserRepository
	transactionRepo adapter.TransactionRepository
	goalRepo        adapter.GoalRepository
	now             func() time.Time
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(
	userRepo adapter.UserRepository,
	transactionRepo adapter.TransactionRepository,
	goalRepo adapter.GoalRepository,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		goalRepo:        goalRepo,
		now:             time.Now,
	}
}

// Execute builds the dashboard snapshot for the user's current month.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	today := uc.now()
	year, month := today.Year(), today.Month()

	output := &GetDashboardOutput{}

	kindTotals := []struct {
		kind entity.TransactionKind
		dst  *decimal.Decimal
	}{
		{entity.TransactionKindIncome, &output.IncomeTotal},
		{entity.TransactionKindExpense, &output.ExpenseTotal},
		{entity.TransactionKindSaving, &output.SavingTotal},
		{entity.TransactionKindInvestment, &output.InvestmentTotal},
	}
	for _, kt := range kindTotals {
		total, err := uc.transactionRepo.SumForMonth(ctx, kt.kind, user.ID, year, month)
		if err != nil {
			return nil, fmt.Errorf("failed to sum %s for month: %w", kt.kind, err)
		}
		*kt.dst = total
	}

	// Goal percents come straight from the stored row for the month. The
	// dashboard shows the raw percentage, not the income-derived amount.
	goalPercents := []struct {
		kind entity.GoalKind
		dst  *decimal.Decimal
	}{
		{entity.GoalKindExpense, &output.ExpenseGoalPercent},
		{entity.GoalKindSaving, &output.SavingGoalPercent},
		{entity.GoalKindInvestment, &output.InvestmentGoalPercent},
	}
	for _, gp := range goalPercents {
		row, err := uc.goalRepo.FindByUserAndMonth(ctx, gp.kind, user.ID, year, month)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s goal: %w", gp.kind, err)
		}
		if row != nil {
			*gp.dst = row.Value
		} else {
			*gp.dst = decimal.Zero
		}
	}

	listings := []struct {
		kind       entity.TransactionKind
		records    *[]RecordEntry
		categories *[]CategoryEntry
	}{
		{entity.TransactionKindExpense, &output.Expenses, &output.CategoryExpenses},
		{entity.TransactionKindSaving, &output.Savings, &output.CategorySavings},
		{entity.TransactionKindInvestment, &output.Investments, &output.CategoryInvestments},
	}
	for _, l := range listings {
		rows, err := uc.transactionRepo.ListForMonth(ctx, l.kind, user.ID, year, month)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s records: %w", l.kind, err)
		}
		*l.records = make([]RecordEntry, 0, len(rows))
		for _, row := range rows {
			*l.records = append(*l.records, RecordEntry{
				Date:     row.Date,
				Amount:   row.Amount,
				Category: row.Category,
			})
		}

		totals, err := uc.transactionRepo.CategoryTotals(ctx, l.kind, user.ID, year, month)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s category totals: %w", l.kind, err)
		}
		*l.categories = make([]CategoryEntry, 0, len(totals))
		for _, t := range totals {
			*l.categories = append(*l.categories, CategoryEntry{
				Category: t.Category,
				Total:    t.Total,
			})
		}
	}

	return output, nil
}
