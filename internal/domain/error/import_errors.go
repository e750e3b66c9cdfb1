// Package error defines domain-specific errors for the WealthTrack application.
package error

import (
	"errors"
	"fmt"
)

// Import domain errors.
var (
	// ErrEmptyCSVFile is returned when the uploaded CSV has no header row.
	ErrEmptyCSVFile = errors.New("csv file is empty")

	// ErrInvalidEncoding is returned when the file is not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid file encoding, expected UTF-8")

	// ErrInvalidImportDataType is returned when the data_type is not importable.
	ErrInvalidImportDataType = errors.New("invalid import data type")
)

// ImportErrorCode defines error codes for import errors.
// Format: IMP-XXYYYY where XX is category and YYYY is specific error.
type ImportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyCSVFile          ImportErrorCode = "IMP-010001"
	ErrCodeInvalidEncoding       ImportErrorCode = "IMP-010002"
	ErrCodeInvalidImportDataType ImportErrorCode = "IMP-010003"
	ErrCodeBadRow                ImportErrorCode = "IMP-010004"

	// Internal errors (99XXXX)
	ErrCodeImportFailed ImportErrorCode = "IMP-990001"
)

// ImportError represents an import error with code and message.
// Row is the 1-based CSV row the failure occurred on (0 when not row-specific).
type ImportError struct {
	Code    ImportErrorCode
	Message string
	Row     int
	Err     error
}

// Error implements the error interface.
func (e *ImportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ImportError) Unwrap() error {
	return e.Err
}

// NewImportError creates a new ImportError with the given code and message.
func NewImportError(code ImportErrorCode, message string, err error) *ImportError {
	return &ImportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewRowError creates an ImportError for a specific CSV row.
func NewRowError(row int, format string, args ...any) *ImportError {
	return &ImportError{
		Code:    ErrCodeBadRow,
		Message: fmt.Sprintf("row %d: %s", row, fmt.Sprintf(format, args...)),
		Row:     row,
	}
}
