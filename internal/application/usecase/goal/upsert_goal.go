// Package goal contains monthly-goal use cases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rooseveltalej/WealthTrackAPI/internal/application/adapter"
	"github.com/rooseveltalej/WealthTrackAPI/internal/domain/entity"
	domainerror "github.com/rooseveltalej/WealthTrackAPI/internal/domain/error"
)

// UpsertGoalInput represents the input for upserting a monthly goal.
type UpsertGoalInput struct {
	UserID uuid.UUID
	Kind   entity.GoalKind
	Date   string
	Value  decimal.Decimal
}

// UpsertGoalOutput represents the output of upserting a monthly goal.
type UpsertGoalOutput struct {
	Goal *entity.Goal
}

// UpsertGoalUseCase handles the canonical goal write path: the single row for
// the (user, calendar month, kind) is created or overwritten.
type UpsertGoalUseCase struct {
	goalRepo adapter.GoalRepository
	userRepo adapter.UserRepository
}

// NewUpsertGoalUseCase creates a new UpsertGoalUseCase instance.
func NewUpsertGoalUseCase(goalRepo adapter.GoalRepository, userRepo adapter.UserRepository) *UpsertGoalUseCase {
	return &UpsertGoalUseCase{
		goalRepo: goalRepo,
		userRepo: userRepo,
	}
}

// Execute upserts the goal row for the month of input.Date.
func (uc *UpsertGoalUseCase) Execute(ctx context.Context, input UpsertGoalInput) (*UpsertGoalOutput, error) {
	date, err := validateGoalInput(input.Kind, input.Date, input.Value)
	if err != nil {
		return nil, err
	}

	if _, err := uc.userRepo.FindByID(ctx, input.UserID); err != nil {
		return nil, err
	}

	goal := entity.NewGoal(input.UserID, input.Kind, date, input.Value)
	upserted, err := uc.goalRepo.Upsert(ctx, goal)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert goal: %w", err)
	}

	return &UpsertGoalOutput{Goal: upserted}, nil
}

// validateGoalInput checks kind, date format and value sign for goal writes.
func validateGoalInput(kind entity.GoalKind, rawDate string, value decimal.Decimal) (time.Time, error) {
	if !entity.ValidGoalKind(kind) {
		return time.Time{}, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalKind,
			"goal kind must be: expense, saving or investment",
			domainerror.ErrInvalidGoalKind,
		)
	}

	date, err := time.Parse("2006-01-02", rawDate)
	if err != nil {
		return time.Time{}, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			"date must be in YYYY-MM-DD format",
			domainerror.ErrInvalidDateFormat,
		)
	}

	if value.IsNegative() {
		return time.Time{}, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalValue,
			"goal value cannot be negative",
			domainerror.ErrInvalidGoalValue,
		)
	}

	return date, nil
}
