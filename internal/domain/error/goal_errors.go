// Package error defines domain-specific errors for the WealthTrack application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when no goal row exists for the month.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrGoalAlreadyExists is returned by the create-only path when the month already has a goal.
	ErrGoalAlreadyExists = errors.New("goal already exists for this month and user")

	// ErrInvalidGoalKind is returned when the goal kind is not recognized.
	ErrInvalidGoalKind = errors.New("invalid goal kind")

	// ErrInvalidGoalValue is returned when the goal value is negative.
	ErrInvalidGoalValue = errors.New("goal value cannot be negative")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound      GoalErrorCode = "GOL-010001"
	ErrCodeGoalAlreadyExists GoalErrorCode = "GOL-010002"
	ErrCodeInvalidGoalKind   GoalErrorCode = "GOL-010003"
	ErrCodeInvalidGoalValue  GoalErrorCode = "GOL-010004"
	ErrCodeMissingGoalFields GoalErrorCode = "GOL-010005"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
