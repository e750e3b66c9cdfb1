// Package error defines domain-specific errors for the WealthTrack application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a ledger record is not found.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNegativeAmount is returned when the amount is negative.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidDateFormat is returned when a date does not parse as YYYY-MM-DD.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidCategory is returned when the category is not in the kind's closed set.
	ErrInvalidCategory = errors.New("invalid category for this transaction kind")

	// ErrInvalidTransactionKind is returned when the kind is not recognized.
	ErrInvalidTransactionKind = errors.New("invalid transaction kind")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeTransactionNotFound    TransactionErrorCode = "TXN-010001"
	ErrCodeNegativeAmount         TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidDateFormat      TransactionErrorCode = "TXN-010003"
	ErrCodeInvalidCategory        TransactionErrorCode = "TXN-010004"
	ErrCodeInvalidTransactionKind TransactionErrorCode = "TXN-010005"
	ErrCodeMissingTransactionBody TransactionErrorCode = "TXN-010006"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
