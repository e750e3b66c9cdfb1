// Package user contains user, auth and profile use cases.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rooseveltalej/WealthTrackAPI/internal/application/adapter"
	"github.com/rooseveltalej/WealthTrackAPI/internal/domain/entity"
)

// GetProfileInput represents the input for fetching a profile.
type GetProfileInput struct {
	UserID uuid.UUID
}

// GoalInfo is a goal's date and stored percentage value as shown on the profile.
type GoalInfo struct {
	Date  time.Time
	Value decimal.Decimal
}

// GetProfileOutput represents a user's profile: identity plus the goal for
// the current month per kind, falling back to the most recent goal row.
type GetProfileOutput struct {
	ID       uuid.UUID
	Email    string
	Username string

	ExpenseGoal    *GoalInfo
	SavingGoal     *GoalInfo
	InvestmentGoal *GoalInfo
}

// GetProfileUseCase builds the profile view.
type GetProfileUseCase struct {
	userRepo adapter.UserRepository
	goalRepo adapter.GoalRepository
	now      func() time.Time
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(userRepo adapter.UserRepository, goalRepo adapter.GoalRepository) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo: userRepo,
		goalRepo: goalRepo,
		now:      time.Now,
	}
}

// Execute fetches the profile with per-kind goal info.
func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	output := &GetProfileOutput{
		ID:       user.ID,
		Email:    user.Email,
		Username: user.DisplayName(),
	}

	today := uc.now()
	kinds := []struct {
		kind entity.GoalKind
		dst  **GoalInfo
	}{
		{entity.GoalKindExpense, &output.ExpenseGoal},
		{entity.GoalKindSaving, &output.SavingGoal},
		{entity.GoalKindInvestment, &output.InvestmentGoal},
	}
	for _, k := range kinds {
		info, err := uc.currentOrLatestGoal(ctx, k.kind, user.ID, today)
		if err != nil {
			return nil, err
		}
		*k.dst = info
	}

	return output, nil
}

// currentOrLatestGoal prefers the current month's goal row and falls back to
// the user's most recent one of the kind.
func (uc *GetProfileUseCase) currentOrLatestGoal(ctx context.Context, kind entity.GoalKind, userID uuid.UUID, today time.Time) (*GoalInfo, error) {
	current, err := uc.goalRepo.FindByUserAndMonth(ctx, kind, userID, today.Year(), today.Month())
	if err != nil {
		return nil, fmt.Errorf("failed to load %s goal: %w", kind, err)
	}
	if current != nil {
		return &GoalInfo{Date: current.Date, Value: current.Value}, nil
	}

	latest, err := uc.goalRepo.FindLatest(ctx, kind, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load latest %s goal: %w", kind, err)
	}
	if latest != nil {
		return &GoalInfo{Date: latest.Date, Value: latest.Value}, nil
	}

	return nil, nil
}
