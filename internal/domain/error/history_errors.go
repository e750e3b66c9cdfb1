// Package error defines domain-specific errors for the WealthTrack application.
package error

import "errors"

// History domain errors.
var (
	// ErrInvalidPeriod is returned when the period is not 1, 6, 12, 36 or 60 months.
	ErrInvalidPeriod = errors.New("period must be one of: 1, 6, 12, 36, 60")

	// ErrInvalidDataType is returned when the data_type is not recognized.
	ErrInvalidDataType = errors.New("invalid data_type")
)

// HistoryErrorCode defines error codes for history errors.
// Format: HST-XXYYYY where XX is category and YYYY is specific error.
type HistoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPeriod   HistoryErrorCode = "HST-010001"
	ErrCodeInvalidDataType HistoryErrorCode = "HST-010002"
)

// HistoryError represents a history error with code and message.
type HistoryError struct {
	Code    HistoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HistoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *HistoryError) Unwrap() error {
	return e.Err
}

// NewHistoryError creates a new HistoryError with the given code and message.
func NewHistoryError(code HistoryErrorCode, message string, err error) *HistoryError {
	return &HistoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
