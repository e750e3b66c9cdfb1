// Package importer contains the CSV bulk-import use case.
package importer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

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

type recordingImportRepo struct {
	transactions []*entity.Transaction
	incomes      []*entity.Transaction
	goals        []*entity.Goal
	calls        int
}

func (r *recordingImportRepo) ImportTransactions(ctx context.Context, kind entity.TransactionKind, transactions []*entity.Transaction) error {
	r.calls++
	r.transactions = append(r.transactions, transactions...)
	return nil
}

func (r *recordingImportRepo) ImportIncome(ctx context.Context, transactions []*entity.Transaction) error {
	r.calls++
	r.incomes = append(r.incomes, transactions...)
	return nil
}

func (r *recordingImportRepo) ImportGoals(ctx context.Context, kind entity.GoalKind, goals []*entity.Goal) error {
	r.calls++
	r.goals = append(r.goals, goals...)
	return nil
}

func newImportFixture() (*ImportCSVUseCase, *recordingImportRepo) {
	user := entity.NewUser("ana@example.com", "ana", "hash")
	repo := &recordingImportRepo{}
	return NewImportCSVUseCase(&stubUserRepo{user: user}, repo), repo
}

func TestImportCSVUseCase_Expenses(t *testing.T) {
	uc, repo := newImportFixture()

	content := strings.Join([]string{
		"date,amount,category",
		"2025-05-01,120.50,vivienda",
		"2025-05-02,35.00,transporte",
	}, "\n")

	output, err := uc.Execute(context.Background(), ImportCSVInput{
		Email:    "ana@example.com",
		DataType: DataTypeExpenses,
		Content:  []byte(content),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Imported != 2 {
		t.Errorf("expected 2 imported rows, got %d", output.Imported)
	}
	if output.Message != "Expenses imported successfully" {
		t.Errorf("unexpected message: %q", output.Message)
	}
	if len(repo.transactions) != 2 {
		t.Fatalf("expected 2 persisted rows, got %d", len(repo.transactions))
	}
	if repo.transactions[0].Category != "vivienda" {
		t.Errorf("expected category vivienda, got %q", repo.transactions[0].Category)
	}
}

func TestImportCSVUseCase_Income(t *testing.T) {
	uc, repo := newImportFixture()

	content := "date,amount\n2025-05-01,2500.00\n2025-06-01,2600.00"

	output, err := uc.Execute(context.Background(), ImportCSVInput{
		Email:    "ana@example.com",
		DataType: DataTypeIncome,
		Content:  []byte(content),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Imported != 2 {
		t.Errorf("expected 2 imported rows, got %d", output.Imported)
	}
	if len(repo.incomes) != 2 {
		t.Errorf("expected 2 income rows, got %d", len(repo.incomes))
	}
}

func TestImportCSVUseCase_Goals(t *testing.T) {
	uc, repo := newImportFixture()

	content := "date,value\n2025-05-01,20"

	output, err := uc.Execute(context.Background(), ImportCSVInput{
		Email:    "ana@example.com",
		DataType: DataTypeSavingGoals,
		Content:  []byte(content),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Imported != 1 {
		t.Errorf("expected 1 imported row, got %d", output.Imported)
	}
	if output.Message != "Saving goals imported successfully" {
		t.Errorf("unexpected message: %q", output.Message)
	}
	if len(repo.goals) != 1 {
		t.Errorf("expected 1 goal row, got %d", len(repo.goals))
	}
}

func TestImportCSVUseCase_RowErrors(t *testing.T) {
	t.Run("wrong column count names the failing row", func(t *testing.T) {
		uc, repo := newImportFixture()

		content := "date,amount,category\n2025-05-01,120.50,vivienda,extra"

		_, err := uc.Execute(context.Background(), ImportCSVInput{
			Email:    "ana@example.com",
			DataType: DataTypeExpenses,
			Content:  []byte(content),
		})

		var importErr *domainerror.ImportError
		if !errors.As(err, &importErr) {
			t.Fatalf("expected an import error, got %v", err)
		}
		if importErr.Row != 2 {
			t.Errorf("expected row 2, got %d", importErr.Row)
		}
		if !strings.Contains(importErr.Message, "row 2") {
			t.Errorf("expected the message to name row 2, got %q", importErr.Message)
		}
		if repo.calls != 0 {
			t.Errorf("expected no writes after a row failure, got %d", repo.calls)
		}
	})

	t.Run("a bad row after a good one aborts the whole batch", func(t *testing.T) {
		uc, repo := newImportFixture()

		content := strings.Join([]string{
			"date,amount,category",
			"2025-05-01,120.50,vivienda",
			"05/02/2025,35.00,transporte",
		}, "\n")

		_, err := uc.Execute(context.Background(), ImportCSVInput{
			Email:    "ana@example.com",
			DataType: DataTypeExpenses,
			Content:  []byte(content),
		})

		var importErr *domainerror.ImportError
		if !errors.As(err, &importErr) {
			t.Fatalf("expected an import error, got %v", err)
		}
		if importErr.Row != 3 {
			t.Errorf("expected row 3, got %d", importErr.Row)
		}
		if repo.calls != 0 {
			t.Errorf("expected no writes after a row failure, got %d", repo.calls)
		}
	})

	t.Run("unknown category is a row error", func(t *testing.T) {
		uc, _ := newImportFixture()

		content := "date,amount,category\n2025-05-01,120.50,groceries"

		_, err := uc.Execute(context.Background(), ImportCSVInput{
			Email:    "ana@example.com",
			DataType: DataTypeExpenses,
			Content:  []byte(content),
		})

		var importErr *domainerror.ImportError
		if !errors.As(err, &importErr) {
			t.Fatalf("expected an import error, got %v", err)
		}
		if importErr.Row != 2 {
			t.Errorf("expected row 2, got %d", importErr.Row)
		}
	})
}

func TestImportCSVUseCase_InputValidation(t *testing.T) {
	t.Run("empty file is rejected", func(t *testing.T) {
		uc, _ := newImportFixture()

		_, err := uc.Execute(context.Background(), ImportCSVInput{
			Email:    "ana@example.com",
			DataType: DataTypeExpenses,
			Content:  []byte(""),
		})

		var importErr *domainerror.ImportError
		if !errors.As(err, &importErr) {
			t.Fatalf("expected an import error, got %v", err)
		}
		if importErr.Code != domainerror.ErrCodeEmptyCSVFile {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeEmptyCSVFile, importErr.Code)
		}
	})

	t.Run("non-UTF-8 content is rejected", func(t *testing.T) {
		uc, _ := newImportFixture()

		_, err := uc.Execute(context.Background(), ImportCSVInput{
			Email:    "ana@example.com",
			DataType: DataTypeExpenses,
			Content:  []byte{0xff, 0xfe, 0xfd},
		})

		var importErr *domainerror.ImportError
		if !errors.As(err, &importErr) {
			t.Fatalf("expected an import error, got %v", err)
		}
		if importErr.Code != domainerror.ErrCodeInvalidEncoding {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidEncoding, importErr.Code)
		}
	})

	t.Run("unknown data type is rejected", func(t *testing.T) {
		uc, _ := newImportFixture()

		_, err := uc.Execute(context.Background(), ImportCSVInput{
			Email:    "ana@example.com",
			DataType: "loans",
			Content:  []byte("date,amount\n2025-05-01,10"),
		})

		var importErr *domainerror.ImportError
		if !errors.As(err, &importErr) {
			t.Fatalf("expected an import error, got %v", err)
		}
		if importErr.Code != domainerror.ErrCodeInvalidImportDataType {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidImportDataType, importErr.Code)
		}
	})

	t.Run("unknown email is rejected before parsing", func(t *testing.T) {
		uc, _ := newImportFixture()

		_, err := uc.Execute(context.Background(), ImportCSVInput{
			Email:    "nobody@example.com",
			DataType: DataTypeExpenses,
			Content:  []byte("date,amount,category\n2025-05-01,1,vivienda"),
		})

		if !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected user-not-found, got %v", err)
		}
	})
}
