// Package user contains user, auth and profile use cases.
package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/rooseveltalej/WealthTrackAPI/internal/application/adapter"
	"github.com/rooseveltalej/WealthTrackAPI/internal/domain/entity"
	domainerror "github.com/rooseveltalej/WealthTrackAPI/internal/domain/error"
)

// UpdateProfileInput represents the input for updating a profile.
// Nil fields keep their stored value.
type UpdateProfileInput struct {
	UserID   uuid.UUID
	Email    *string
	Username *string
	Password *string
}

// UpdateProfileOutput represents the output of updating a profile.
type UpdateProfileOutput struct {
	User *entity.User
}

// UpdateProfileUseCase handles profile updates.
type UpdateProfileUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(userRepo adapter.UserRepository, passwordService adapter.PasswordService) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute applies the provided profile changes.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Email != nil && *input.Email != "" && *input.Email != user.Email {
		exists, err := uc.userRepo.ExistsByEmail(ctx, *input.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		if exists {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeEmailAlreadyRegistered,
				"another user already uses this email",
				domainerror.ErrEmailAlreadyRegistered,
			)
		}
		user.Email = strings.TrimSpace(*input.Email)
	}

	if input.Username != nil {
		user.Username = strings.TrimSpace(*input.Username)
	}

	if input.Password != nil && *input.Password != "" {
		hash, err := uc.passwordService.HashPassword(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &UpdateProfileOutput{User: user}, nil
}
