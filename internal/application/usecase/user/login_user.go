// Package user contains user, auth and profile use cases.
package user

import (
	"context"
	"errors"

	"github.com/rooseveltalej/WealthTrackAPI/internal/application/adapter"
	"github.com/rooseveltalej/WealthTrackAPI/internal/domain/entity"
	domainerror "github.com/rooseveltalej/WealthTrackAPI/internal/domain/error"
)

// LoginUserInput represents the input for login.
type LoginUserInput struct {
	Email    string
	Password string
}

// LoginUserOutput represents the output of a successful login.
type LoginUserOutput struct {
	User *entity.User
}

// LoginUserUseCase verifies credentials and returns the user record.
// There is no session or token layer; the caller only learns who logged in.
type LoginUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(userRepo adapter.UserRepository, passwordService adapter.PasswordService) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute checks the credentials against the stored hash.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	invalid := domainerror.NewUserError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid credentials",
		domainerror.ErrInvalidCredentials,
	)

	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, invalid
		}
		return nil, err
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, invalid
	}

	return &LoginUserOutput{User: user}, nil
}
