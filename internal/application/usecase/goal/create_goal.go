// Package goal contains monthly-goal use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rooseveltalej/WealthTrackAPI/internal/application/adapter"
	"github.com/rooseveltalej/WealthTrackAPI/internal/domain/entity"
	domainerror "github.com/rooseveltalej/WealthTrackAPI/internal/domain/error"
)

// CreateGoalInput represents the input for the create-only goal path.
type CreateGoalInput struct {
	UserID uuid.UUID
	Kind   entity.GoalKind
	Date   string
	Value  decimal.Decimal
}

// CreateGoalOutput represents the output of the create-only goal path.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles the legacy create-only goal path: the write is
// rejected when the (user, calendar month, kind) already has a row.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	userRepo adapter.UserRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository, userRepo adapter.UserRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
		userRepo: userRepo,
	}
}

// Execute creates a goal row, failing if one already exists for the month.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	date, err := validateGoalInput(input.Kind, input.Date, input.Value)
	if err != nil {
		return nil, err
	}

	if _, err := uc.userRepo.FindByID(ctx, input.UserID); err != nil {
		return nil, err
	}

	existing, err := uc.goalRepo.FindByUserAndMonth(ctx, input.Kind, input.UserID, date.Year(), date.Month())
	if err != nil {
		return nil, fmt.Errorf("failed to check existing goal: %w", err)
	}
	if existing != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalAlreadyExists,
			"a goal already exists for this month and user",
			domainerror.ErrGoalAlreadyExists,
		)
	}

	goal := entity.NewGoal(input.UserID, input.Kind, date, input.Value)
	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{Goal: goal}, nil
}
