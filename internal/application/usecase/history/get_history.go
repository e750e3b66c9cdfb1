// Package history contains the month-bucketed history use case.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rooseveltalej/WealthTrackAPI/internal/application/adapter"
	"github.com/rooseveltalej/WealthTrackAPI/internal/application/usecase/goal"
	"github.com/rooseveltalej/WealthTrackAPI/internal/domain/entity"
	domainerror "github.com/rooseveltalej/WealthTrackAPI/internal/domain/error"
)

// DataType discriminates what a history request is about: one of the four
// ledger kinds or one of the three goal kinds.
type DataType string

const (
	DataTypeIncome          DataType = "income"
	DataTypeExpenses        DataType = "expenses"
	DataTypeSavings         DataType = "savings"
	DataTypeInvestments     DataType = "investments"
	DataTypeExpenseGoals    DataType = "expense_goals"
	DataTypeSavingGoals     DataType = "saving_goals"
	DataTypeInvestmentGoals DataType = "investment_goals"
)

// ValidPeriods is the closed set of accepted window lengths in months.
var ValidPeriods = []int{1, 6, 12, 36, 60}

// GetHistoryInput represents the input for a history request.
type GetHistoryInput struct {
	Email        string
	PeriodMonths int
	DataType     DataType
}

// SimpleEntry is one month of a transaction-kind series.
type SimpleEntry struct {
	Year  int
	Month int
	Total decimal.Decimal
}

// SimpleSeries is the month-bucketed series for a transaction kind.
// Months with no rows are omitted; entries are ordered by (year, month).
type SimpleSeries struct {
	Entries  []SimpleEntry
	TotalSum decimal.Decimal
	Average  decimal.Decimal
}

// GoalEntry is one month of a goal-kind series. GoalValue is the effective
// absolute amount derived from the stored percentage and that month's income.
type GoalEntry struct {
	Year        int
	Month       int
	GoalValue   decimal.Decimal
	ActualValue decimal.Decimal
	Met         bool
}

// GoalSeries is the month-bucketed series for a goal kind, covering every
// month in the window that has a goal row.
type GoalSeries struct {
	Entries           []GoalEntry
	TotalGoalValue    decimal.Decimal
	AverageGoalValue  decimal.Decimal
	GoalMetPercentage decimal.Decimal
}

// GetHistoryOutput represents the output of a history request.
// Exactly one of Simple and Goals is set, matching the requested data type.
type GetHistoryOutput struct {
	Simple *SimpleSeries
	Goals  *GoalSeries
}

// GetHistoryUseCase builds month-bucketed history over the last N months.
type GetHistoryUseCase struct {
	userRepo        adapter.UserRepository
	transactionRepo adapter.TransactionRepository
	goalRepo        adapter.GoalRepository
	now             func() time.Time
}

// NewGetHistoryUseCase creates a new GetHistoryUseCase instance.
func NewGetHistoryUseCase(
	userRepo adapter.UserRepository,
	transactionRepo adapter.TransactionRepository,
	goalRepo adapter.GoalRepository,
) *GetHistoryUseCase {
	return &GetHistoryUseCase{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		goalRepo:        goalRepo,
		now:             time.Now,
	}
}

// Execute builds the requested history series.
func (uc *GetHistoryUseCase) Execute(ctx context.Context, input GetHistoryInput) (*GetHistoryOutput, error) {
	if err := validatePeriod(input.PeriodMonths); err != nil {
		return nil, err
	}

	transactionKind, goalKind, err := resolveDataType(input.DataType)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	start := windowStart(uc.now(), input.PeriodMonths)

	if goalKind == nil {
		series, err := uc.buildSimpleSeries(ctx, *transactionKind, user, start)
		if err != nil {
			return nil, err
		}
		return &GetHistoryOutput{Simple: series}, nil
	}

	series, err := uc.buildGoalSeries(ctx, *goalKind, user, start)
	if err != nil {
		return nil, err
	}
	return &GetHistoryOutput{Goals: series}, nil
}

func (uc *GetHistoryUseCase) buildSimpleSeries(
	ctx context.Context,
	kind entity.TransactionKind,
	user *entity.User,
	start time.Time,
) (*SimpleSeries, error) {
	totals, err := uc.transactionRepo.MonthlyTotals(ctx, kind, user.ID, start)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly totals: %w", err)
	}

	series := &SimpleSeries{
		Entries:  make([]SimpleEntry, 0, len(totals)),
		TotalSum: decimal.Zero,
		Average:  decimal.Zero,
	}

	for _, t := range totals {
		series.Entries = append(series.Entries, SimpleEntry{
			Year:  t.Year,
			Month: t.Month,
			Total: t.Total,
		})
		series.TotalSum = series.TotalSum.Add(t.Total)
	}

	if len(series.Entries) > 0 {
		series.Average = series.TotalSum.
			Div(decimal.NewFromInt(int64(len(series.Entries)))).
			Round(2)
	}

	return series, nil
}

func (uc *GetHistoryUseCase) buildGoalSeries(
	ctx context.Context,
	kind entity.GoalKind,
	user *entity.User,
	start time.Time,
) (*GoalSeries, error) {
	goals, err := uc.goalRepo.FindSince(ctx, kind, user.ID, start)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	actuals, err := uc.monthlyTotalMap(ctx, kind.TransactionKind(), user, start)
	if err != nil {
		return nil, err
	}

	incomes, err := uc.monthlyTotalMap(ctx, entity.TransactionKindIncome, user, start)
	if err != nil {
		return nil, err
	}

	series := &GoalSeries{
		Entries:           make([]GoalEntry, 0, len(goals)),
		TotalGoalValue:    decimal.Zero,
		AverageGoalValue:  decimal.Zero,
		GoalMetPercentage: decimal.Zero,
	}

	metCount := 0
	for _, g := range goals {
		key := monthKey{g.Date.Year(), int(g.Date.Month())}

		income := decimal.Zero
		if v, ok := incomes[key]; ok {
			income = v
		}
		actual := decimal.Zero
		if v, ok := actuals[key]; ok {
			actual = v
		}

		goalValue := goal.EffectiveGoalValue(income, g.Value)
		met := goal.Met(actual, goalValue)
		if met {
			metCount++
		}

		series.Entries = append(series.Entries, GoalEntry{
			Year:        key.year,
			Month:       key.month,
			GoalValue:   goalValue,
			ActualValue: actual,
			Met:         met,
		})
		series.TotalGoalValue = series.TotalGoalValue.Add(goalValue)
	}

	series.TotalGoalValue = series.TotalGoalValue.Round(2)
	if n := len(series.Entries); n > 0 {
		count := decimal.NewFromInt(int64(n))
		series.AverageGoalValue = series.TotalGoalValue.Div(count).Round(2)
		series.GoalMetPercentage = decimal.NewFromInt(int64(metCount)).
			Mul(decimal.NewFromInt(100)).
			Div(count).
			Round(1)
	}

	return series, nil
}

type monthKey struct {
	year  int
	month int
}

func (uc *GetHistoryUseCase) monthlyTotalMap(
	ctx context.Context,
	kind entity.TransactionKind,
	user *entity.User,
	start time.Time,
) (map[monthKey]decimal.Decimal, error) {
	totals, err := uc.transactionRepo.MonthlyTotals(ctx, kind, user.ID, start)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly totals: %w", err)
	}

	m := make(map[monthKey]decimal.Decimal, len(totals))
	for _, t := range totals {
		m[monthKey{t.Year, t.Month}] = t.Total
	}
	return m, nil
}

// windowStart returns the first day of the month that lies periodMonths
// before today. Computed on the (year, month) pair only, so a long month's
// trailing days never shift the window.
func windowStart(today time.Time, periodMonths int) time.Time {
	months := today.Year()*12 + int(today.Month()) - 1 - periodMonths
	return time.Date(months/12, time.Month(months%12+1), 1, 0, 0, 0, 0, time.UTC)
}

func validatePeriod(periodMonths int) error {
	for _, p := range ValidPeriods {
		if p == periodMonths {
			return nil
		}
	}
	return domainerror.NewHistoryError(
		domainerror.ErrCodeInvalidPeriod,
		"period must be one of: 1, 6, 12, 36, 60",
		domainerror.ErrInvalidPeriod,
	)
}

// resolveDataType maps a data type to either a transaction kind or a goal kind.
func resolveDataType(dataType DataType) (*entity.TransactionKind, *entity.GoalKind, error) {
	switch dataType {
	case DataTypeIncome:
		k := entity.TransactionKindIncome
		return &k, nil, nil
	case DataTypeExpenses:
		k := entity.TransactionKindExpense
		return &k, nil, nil
	case DataTypeSavings:
		k := entity.TransactionKindSaving
		return &k, nil, nil
	case DataTypeInvestments:
		k := entity.TransactionKindInvestment
		return &k, nil, nil
	case DataTypeExpenseGoals:
		g := entity.GoalKindExpense
		return nil, &g, nil
	case DataTypeSavingGoals:
		g := entity.GoalKindSaving
		return nil, &g, nil
	case DataTypeInvestmentGoals:
		g := entity.GoalKindInvestment
		return nil, &g, nil
	default:
		return nil, nil, domainerror.NewHistoryError(
			domainerror.ErrCodeInvalidDataType,
			"data_type must be one of: income, expenses, savings, investments, expense_goals, saving_goals, investment_goals",
			domainerror.ErrInvalidDataType,
		)
	}
}
