// Package user contains user, auth and profile use cases.
package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/rooseveltalej/WealthTrackAPI/internal/application/adapter"
	"github.com/rooseveltalej/WealthTrackAPI/internal/domain/entity"
)

// GetUserInput represents the input for fetching a user.
type GetUserInput struct {
	UserID uuid.UUID
}

// GetUserOutput represents the output of fetching a user.
type GetUserOutput struct {
	User *entity.User
}

// GetUserUseCase retrieves a user by ID.
type GetUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetUserUseCase creates a new GetUserUseCase instance.
func NewGetUserUseCase(userRepo adapter.UserRepository) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
	}
}

// Execute fetches the user.
func (uc *GetUserUseCase) Execute(ctx context.Context, input GetUserInput) (*GetUserOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetUserOutput{User: user}, nil
}
