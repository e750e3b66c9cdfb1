// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/rooseveltalej/WealthTrackAPI/internal/application/usecase/user"
	"github.com/rooseveltalej/WealthTrackAPI/internal/domain/entity"
)

// RegisterUserRequest represents the request body for user registration.
type RegisterUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username,omitempty" binding:"omitempty,max=50"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest represents the request body for profile updates.
type UpdateProfileRequest struct {
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Username *string `json:"username,omitempty" binding:"omitempty,max=50"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=8"`
}

// UserResponse represents a user in API responses. The password hash is
// never part of a response.
type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username,omitempty"`
}

// GoalInfoResponse is a goal's date and stored value on the profile view.
type GoalInfoResponse struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// ProfileResponse represents the profile view in API responses.
type ProfileResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`

	ExpenseGoal    *GoalInfoResponse `json:"expense_goal"`
	SavingGoal     *GoalInfoResponse `json:"saving_goal"`
	InvestmentGoal *GoalInfoResponse `json:"investment_goal"`
}

// ToUserResponse converts a User entity to a UserResponse DTO.
func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:       u.ID.String(),
		Email:    u.Email,
		Username: u.Username,
	}
}

// ToProfileResponse converts a GetProfileOutput to a ProfileResponse DTO.
func ToProfileResponse(output *user.GetProfileOutput) ProfileResponse {
	return ProfileResponse{
		ID:             output.ID.String(),
		Email:          output.Email,
		Username:       output.Username,
		ExpenseGoal:    toGoalInfoResponse(output.ExpenseGoal),
		SavingGoal:     toGoalInfoResponse(output.SavingGoal),
		InvestmentGoal: toGoalInfoResponse(output.InvestmentGoal),
	}
}

func toGoalInfoResponse(info *user.GoalInfo) *GoalInfoResponse {
	if info == nil {
		return nil
	}
	return &GoalInfoResponse{
		Date:  info.Date.Format("2006-01-02"),
		Value: info.Value.InexactFloat64(),
	}
}
