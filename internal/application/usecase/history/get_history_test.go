// Package history contains the month-bucketed history use case.
package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rooseveltalej/WealthTrackAPI/internal/domain/entity"
	domainerror "github.com/rooseveltalej/WealthTrackAPI/internal/domain/error"
)

type stubUserRepo struct {
	user *entity.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }

func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, domainerror.ErrUserNotFound
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if s.user != nil && s.user.Email == email {
		return s.user, nil
	}
	return nil, domainerror.ErrUserNotFound
}

func (s *stubUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }

func (s *stubUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.user != nil && s.user.Email == email, nil
}

type stubTransactionRepo struct {
	totals map[entity.TransactionKind][]entity.MonthlyTotal
}

func (s *stubTransactionRepo) Create(ctx context.Context, txn *entity.Transaction) error {
	return nil
}

func (s *stubTransactionRepo) FindByID(ctx context.Context, kind entity.TransactionKind, id uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (s *stubTransactionRepo) Update(ctx context.Context, txn *entity.Transaction) error {
	return nil
}

func (s *stubTransactionRepo) Delete(ctx context.Context, kind entity.TransactionKind, id uuid.UUID) error {
	return nil
}

func (s *stubTransactionRepo) ReplaceIncomeForMonth(ctx context.Context, txn *entity.Transaction) error {
	return nil
}

func (s *stubTransactionRepo) SumForMonth(ctx context.Context, kind entity.TransactionKind, userID uuid.UUID, year int, month time.Month) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (s *stubTransactionRepo) MonthlyTotals(ctx context.Context, kind entity.TransactionKind, userID uuid.UUID, since time.Time) ([]entity.MonthlyTotal, error) {
	return s.totals[kind], nil
}

func (s *stubTransactionRepo) CategoryTotals(ctx context.Context, kind entity.TransactionKind, userID uuid.UUID, year int, month time.Month) ([]entity.CategoryTotal, error) {
	return nil, nil
}

func (s *stubTransactionRepo) ListForMonth(ctx context.Context, kind entity.TransactionKind, userID uuid.UUID, year int, month time.Month) ([]*entity.Transaction, error) {
	return nil, nil
}

type stubGoalRepo struct {
	goals map[entity.GoalKind][]*entity.Goal
}

func (s *stubGoalRepo) Create(ctx context.Context, goal *entity.Goal) error { return nil }

func (s *stubGoalRepo) FindByUserAndMonth(ctx context.Context, kind entity.GoalKind, userID uuid.UUID, year int, month time.Month) (*entity.Goal, error) {
	return nil, nil
}

func (s *stubGoalRepo) FindLatest(ctx context.Context, kind entity.GoalKind, userID uuid.UUID) (*entity.Goal, error) {
	return nil, nil
}

func (s *stubGoalRepo) Upsert(ctx context.Context, goal *entity.Goal) (*entity.Goal, error) {
	return goal, nil
}

func (s *stubGoalRepo) FindSince(ctx context.Context, kind entity.GoalKind, userID uuid.UUID, since time.Time) ([]*entity.Goal, error) {
	return s.goals[kind], nil
}

func newHistoryFixture(totals map[entity.TransactionKind][]entity.MonthlyTotal, goals map[entity.GoalKind][]*entity.Goal) (*GetHistoryUseCase, *entity.User) {
	user := entity.NewUser("ana@example.com", "ana", "hash")
	uc := NewGetHistoryUseCase(
		&stubUserRepo{user: user},
		&stubTransactionRepo{totals: totals},
		&stubGoalRepo{goals: goals},
	)
	uc.now = func() time.Time {
		return time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	}
	return uc, user
}

func TestGetHistoryUseCase_Validation(t *testing.T) {
	uc, _ := newHistoryFixture(nil, nil)

	t.Run("rejects an unknown period", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetHistoryInput{
			Email:        "ana@example.com",
			PeriodMonths: 7,
			DataType:     DataTypeExpenses,
		})

		var histErr *domainerror.HistoryError
		if !errors.As(err, &histErr) {
			t.Fatalf("expected a history error, got %v", err)
		}
		if histErr.Code != domainerror.ErrCodeInvalidPeriod {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidPeriod, histErr.Code)
		}
	})

	t.Run("rejects an unknown data type", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetHistoryInput{
			Email:        "ana@example.com",
			PeriodMonths: 12,
			DataType:     "expenditure",
		})

		var histErr *domainerror.HistoryError
		if !errors.As(err, &histErr) {
			t.Fatalf("expected a history error, got %v", err)
		}
		if histErr.Code != domainerror.ErrCodeInvalidDataType {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidDataType, histErr.Code)
		}
	})

	t.Run("rejects an unknown email", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetHistoryInput{
			Email:        "nobody@example.com",
			PeriodMonths: 12,
			DataType:     DataTypeExpenses,
		})

		if !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected user-not-found, got %v", err)
		}
	})
}

func TestGetHistoryUseCase_SimpleSeries(t *testing.T) {
	totals := map[entity.TransactionKind][]entity.MonthlyTotal{
		entity.TransactionKindExpense: {
			{Year: 2025, Month: 4, Total: decimal.NewFromFloat(100.50)},
			{Year: 2025, Month: 5, Total: decimal.NewFromFloat(200.25)},
		},
	}
	uc, _ := newHistoryFixture(totals, nil)

	output, err := uc.Execute(context.Background(), GetHistoryInput{
		Email:        "ana@example.com",
		PeriodMonths: 12,
		DataType:     DataTypeExpenses,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Simple == nil {
		t.Fatal("expected a simple series")
	}

	series := output.Simple
	if len(series.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(series.Entries))
	}
	if series.Entries[0].Year != 2025 || series.Entries[0].Month != 4 {
		t.Errorf("expected first entry 2025-04, got %d-%02d", series.Entries[0].Year, series.Entries[0].Month)
	}
	if want := decimal.NewFromFloat(300.75); !series.TotalSum.Equal(want) {
		t.Errorf("expected total %s, got %s", want, series.TotalSum)
	}
	// 300.75 / 2 = 150.375, rounded to 150.38
	if want := decimal.NewFromFloat(150.38); !series.Average.Equal(want) {
		t.Errorf("expected average %s, got %s", want, series.Average)
	}
}

func TestGetHistoryUseCase_SimpleSeriesEmpty(t *testing.T) {
	uc, _ := newHistoryFixture(nil, nil)

	output, err := uc.Execute(context.Background(), GetHistoryInput{
		Email:        "ana@example.com",
		PeriodMonths: 6,
		DataType:     DataTypeSavings,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	series := output.Simple
	if len(series.Entries) != 0 {
		t.Errorf("expected no entries, got %d", len(series.Entries))
	}
	if !series.TotalSum.IsZero() {
		t.Errorf("expected zero total, got %s", series.TotalSum)
	}
	if !series.Average.IsZero() {
		t.Errorf("expected zero average, got %s", series.Average)
	}
}

func TestGetHistoryUseCase_GoalSeries(t *testing.T) {
	userID := uuid.New()

	t.Run("derives the absolute goal from income and marks misses", func(t *testing.T) {
		totals := map[entity.TransactionKind][]entity.MonthlyTotal{
			entity.TransactionKindIncome: {
				{Year: 2025, Month: 5, Total: decimal.NewFromInt(1000)},
			},
			entity.TransactionKindSaving: {
				{Year: 2025, Month: 5, Total: decimal.NewFromInt(150)},
			},
		}
		goals := map[entity.GoalKind][]*entity.Goal{
			entity.GoalKindSaving: {
				entity.NewGoal(userID, entity.GoalKindSaving,
					time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
					decimal.NewFromInt(60)),
			},
		}
		uc, _ := newHistoryFixture(totals, goals)

		output, err := uc.Execute(context.Background(), GetHistoryInput{
			Email:        "ana@example.com",
			PeriodMonths: 12,
			DataType:     DataTypeSavingGoals,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goals == nil {
			t.Fatal("expected a goal series")
		}

		series := output.Goals
		if len(series.Entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(series.Entries))
		}

		entry := series.Entries[0]
		if want := decimal.NewFromInt(600); !entry.GoalValue.Equal(want) {
			t.Errorf("expected goal value %s, got %s", want, entry.GoalValue)
		}
		if want := decimal.NewFromInt(150); !entry.ActualValue.Equal(want) {
			t.Errorf("expected actual value %s, got %s", want, entry.ActualValue)
		}
		if entry.Met {
			t.Error("expected the goal to be missed")
		}
		if !series.GoalMetPercentage.IsZero() {
			t.Errorf("expected 0%% met, got %s", series.GoalMetPercentage)
		}
	})

	t.Run("computes the met percentage across months", func(t *testing.T) {
		totals := map[entity.TransactionKind][]entity.MonthlyTotal{
			entity.TransactionKindIncome: {
				{Year: 2025, Month: 4, Total: decimal.NewFromInt(1000)},
				{Year: 2025, Month: 5, Total: decimal.NewFromInt(1000)},
			},
			entity.TransactionKindSaving: {
				{Year: 2025, Month: 4, Total: decimal.NewFromInt(250)},
				{Year: 2025, Month: 5, Total: decimal.NewFromInt(100)},
			},
		}
		goals := map[entity.GoalKind][]*entity.Goal{
			entity.GoalKindSaving: {
				entity.NewGoal(userID, entity.GoalKindSaving,
					time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
					decimal.NewFromInt(20)),
				entity.NewGoal(userID, entity.GoalKindSaving,
					time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
					decimal.NewFromInt(20)),
			},
		}
		uc, _ := newHistoryFixture(totals, goals)

		output, err := uc.Execute(context.Background(), GetHistoryInput{
			Email:        "ana@example.com",
			PeriodMonths: 12,
			DataType:     DataTypeSavingGoals,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		series := output.Goals
		if len(series.Entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(series.Entries))
		}
		if !series.Entries[0].Met {
			t.Error("expected April's goal to be met")
		}
		if series.Entries[1].Met {
			t.Error("expected May's goal to be missed")
		}
		if want := decimal.NewFromInt(400); !series.TotalGoalValue.Equal(want) {
			t.Errorf("expected total goal value %s, got %s", want, series.TotalGoalValue)
		}
		if want := decimal.NewFromInt(200); !series.AverageGoalValue.Equal(want) {
			t.Errorf("expected average goal value %s, got %s", want, series.AverageGoalValue)
		}
		if want := decimal.NewFromInt(50); !series.GoalMetPercentage.Equal(want) {
			t.Errorf("expected 50%% met, got %s", series.GoalMetPercentage)
		}
	})

	t.Run("a month without income yields a zero goal that is always met", func(t *testing.T) {
		totals := map[entity.TransactionKind][]entity.MonthlyTotal{}
		goals := map[entity.GoalKind][]*entity.Goal{
			entity.GoalKindExpense: {
				entity.NewGoal(userID, entity.GoalKindExpense,
					time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
					decimal.NewFromInt(30)),
			},
		}
		uc, _ := newHistoryFixture(totals, goals)

		output, err := uc.Execute(context.Background(), GetHistoryInput{
			Email:        "ana@example.com",
			PeriodMonths: 12,
			DataType:     DataTypeExpenseGoals,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		entry := output.Goals.Entries[0]
		if !entry.GoalValue.IsZero() {
			t.Errorf("expected zero goal value, got %s", entry.GoalValue)
		}
		if !entry.Met {
			t.Error("expected a zero goal to count as met")
		}
	})
}

func TestWindowStart(t *testing.T) {
	t.Run("steps back whole months to the first day", func(t *testing.T) {
		today := time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)

		got := windowStart(today, 12)

		want := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("is not skewed by long months", func(t *testing.T) {
		today := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)

		got := windowStart(today, 1)

		want := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("crosses year boundaries", func(t *testing.T) {
		today := time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)

		got := windowStart(today, 6)

		want := time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})
}
