// Package user contains user, auth and profile use cases.
package user

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

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[uuid.UUID]*entity.User{}}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, domainerror.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.FindByEmail(ctx, email)
	return err == nil, nil
}

type fakePasswordService struct{}

func (fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

type fakeGoalRepo struct {
	byMonth map[entity.GoalKind]*entity.Goal
	latest  map[entity.GoalKind]*entity.Goal
}

func (f *fakeGoalRepo) Create(ctx context.Context, goal *entity.Goal) error { return nil }

func (f *fakeGoalRepo) FindByUserAndMonth(ctx context.Context, kind entity.GoalKind, userID uuid.UUID, year int, month time.Month) (*entity.Goal, error) {
	return f.byMonth[kind], nil
}

func (f *fakeGoalRepo) FindLatest(ctx context.Context, kind entity.GoalKind, userID uuid.UUID) (*entity.Goal, error) {
	return f.latest[kind], nil
}

func (f *fakeGoalRepo) Upsert(ctx context.Context, goal *entity.Goal) (*entity.Goal, error) {
	return goal, nil
}

func (f *fakeGoalRepo) FindSince(ctx context.Context, kind entity.GoalKind, userID uuid.UUID, since time.Time) ([]*entity.Goal, error) {
	return nil, nil
}

func TestRegisterUserUseCase(t *testing.T) {
	t.Run("registers a user with a hashed password", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := NewRegisterUserUseCase(repo, fakePasswordService{})

		output, err := uc.Execute(context.Background(), RegisterUserInput{
			Email:    "ana@example.com",
			Username: "ana",
			Password: "s3cret-pass",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.User.PasswordHash != "hashed:s3cret-pass" {
			t.Errorf("expected the stored password to be hashed, got %q", output.User.PasswordHash)
		}
		if _, ok := repo.users[output.User.ID]; !ok {
			t.Error("expected the user to be persisted")
		}
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		uc := NewRegisterUserUseCase(newFakeUserRepo(), fakePasswordService{})

		_, err := uc.Execute(context.Background(), RegisterUserInput{Email: "ana@example.com"})

		var userErr *domainerror.UserError
		if !errors.As(err, &userErr) {
			t.Fatalf("expected a user error, got %v", err)
		}
		if userErr.Code != domainerror.ErrCodeMissingUserFields {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeMissingUserFields, userErr.Code)
		}
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		existing := entity.NewUser("ana@example.com", "ana", "hashed:x")
		uc := NewRegisterUserUseCase(newFakeUserRepo(existing), fakePasswordService{})

		_, err := uc.Execute(context.Background(), RegisterUserInput{
			Email:    "ana@example.com",
			Password: "whatever",
		})

		var userErr *domainerror.UserError
		if !errors.As(err, &userErr) {
			t.Fatalf("expected a user error, got %v", err)
		}
		if userErr.Code != domainerror.ErrCodeEmailAlreadyRegistered {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeEmailAlreadyRegistered, userErr.Code)
		}
	})
}

func TestLoginUserUseCase(t *testing.T) {
	existing := entity.NewUser("ana@example.com", "ana", "hashed:right-pass")

	t.Run("accepts valid credentials", func(t *testing.T) {
		uc := NewLoginUserUseCase(newFakeUserRepo(existing), fakePasswordService{})

		output, err := uc.Execute(context.Background(), LoginUserInput{
			Email:    "ana@example.com",
			Password: "right-pass",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.User.ID != existing.ID {
			t.Error("expected the stored user to be returned")
		}
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		uc := NewLoginUserUseCase(newFakeUserRepo(existing), fakePasswordService{})

		_, err := uc.Execute(context.Background(), LoginUserInput{
			Email:    "ana@example.com",
			Password: "wrong-pass",
		})

		var userErr *domainerror.UserError
		if !errors.As(err, &userErr) {
			t.Fatalf("expected a user error, got %v", err)
		}
		if userErr.Code != domainerror.ErrCodeInvalidCredentials {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidCredentials, userErr.Code)
		}
	})

	t.Run("an unknown email looks like bad credentials", func(t *testing.T) {
		uc := NewLoginUserUseCase(newFakeUserRepo(existing), fakePasswordService{})

		_, err := uc.Execute(context.Background(), LoginUserInput{
			Email:    "nobody@example.com",
			Password: "right-pass",
		})

		var userErr *domainerror.UserError
		if !errors.As(err, &userErr) {
			t.Fatalf("expected a user error, got %v", err)
		}
		if userErr.Code != domainerror.ErrCodeInvalidCredentials {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidCredentials, userErr.Code)
		}
	})
}

func TestGetProfileUseCase(t *testing.T) {
	existing := entity.NewUser("ana@example.com", "ana", "hash")
	march := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	may := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)

	t.Run("prefers the current month's goal", func(t *testing.T) {
		goals := &fakeGoalRepo{
			byMonth: map[entity.GoalKind]*entity.Goal{
				entity.GoalKindSaving: entity.NewGoal(existing.ID, entity.GoalKindSaving, may, decimal.NewFromInt(20)),
			},
			latest: map[entity.GoalKind]*entity.Goal{
				entity.GoalKindSaving: entity.NewGoal(existing.ID, entity.GoalKindSaving, march, decimal.NewFromInt(10)),
			},
		}
		uc := NewGetProfileUseCase(newFakeUserRepo(existing), goals)
		uc.now = func() time.Time { return time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC) }

		output, err := uc.Execute(context.Background(), GetProfileInput{UserID: existing.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.SavingGoal == nil {
			t.Fatal("expected a saving goal")
		}
		if want := decimal.NewFromInt(20); !output.SavingGoal.Value.Equal(want) {
			t.Errorf("expected value %s, got %s", want, output.SavingGoal.Value)
		}
	})

	t.Run("falls back to the most recent goal", func(t *testing.T) {
		goals := &fakeGoalRepo{
			latest: map[entity.GoalKind]*entity.Goal{
				entity.GoalKindExpense: entity.NewGoal(existing.ID, entity.GoalKindExpense, march, decimal.NewFromInt(40)),
			},
		}
		uc := NewGetProfileUseCase(newFakeUserRepo(existing), goals)
		uc.now = func() time.Time { return time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC) }

		output, err := uc.Execute(context.Background(), GetProfileInput{UserID: existing.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.ExpenseGoal == nil {
			t.Fatal("expected an expense goal from the fallback")
		}
		if want := decimal.NewFromInt(40); !output.ExpenseGoal.Value.Equal(want) {
			t.Errorf("expected value %s, got %s", want, output.ExpenseGoal.Value)
		}
		if output.SavingGoal != nil || output.InvestmentGoal != nil {
			t.Error("expected nil goals for kinds without rows")
		}
	})
}

func TestUpdateProfileUseCase(t *testing.T) {
	t.Run("updates fields and re-hashes the password", func(t *testing.T) {
		existing := entity.NewUser("ana@example.com", "ana", "hashed:old")
		repo := newFakeUserRepo(existing)
		uc := NewUpdateProfileUseCase(repo, fakePasswordService{})

		username := "ana.r"
		password := "new-pass"
		output, err := uc.Execute(context.Background(), UpdateProfileInput{
			UserID:   existing.ID,
			Username: &username,
			Password: &password,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.User.Username != "ana.r" {
			t.Errorf("expected username ana.r, got %q", output.User.Username)
		}
		if output.User.PasswordHash != "hashed:new-pass" {
			t.Errorf("expected a re-hashed password, got %q", output.User.PasswordHash)
		}
	})

	t.Run("rejects an email already in use", func(t *testing.T) {
		existing := entity.NewUser("ana@example.com", "ana", "hash")
		other := entity.NewUser("luis@example.com", "luis", "hash")
		uc := NewUpdateProfileUseCase(newFakeUserRepo(existing, other), fakePasswordService{})

		email := "luis@example.com"
		_, err := uc.Execute(context.Background(), UpdateProfileInput{
			UserID: existing.ID,
			Email:  &email,
		})

		var userErr *domainerror.UserError
		if !errors.As(err, &userErr) {
			t.Fatalf("expected a user error, got %v", err)
		}
		if userErr.Code != domainerror.ErrCodeEmailAlreadyRegistered {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeEmailAlreadyRegistered, userErr.Code)
		}
	})
}
