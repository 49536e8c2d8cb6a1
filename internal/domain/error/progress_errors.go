package error

import "errors"

// Progress analytics domain errors.
var (
	// ErrInvalidDataType is returned when dataType is not weight, strength or workouts.
	ErrInvalidDataType = errors.New("dataType must be: weight, strength, or workouts")

	// ErrInvalidPeriod is returned when a period parameter is not recognized.
	ErrInvalidPeriod = errors.New("period must be: week, month, or year")
)

// ProgressErrorCode defines error codes for progress analytics errors.
// Format: PRG-XXYYYY where XX is category and YYYY is specific error.
type ProgressErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDataType ProgressErrorCode = "PRG-010001"
	ErrCodeInvalidPeriod   ProgressErrorCode = "PRG-010002"

	// Internal errors (99XXXX)
	ErrCodeProgressInternalError ProgressErrorCode = "PRG-990001"
)

// ProgressError represents a progress analytics error with code and message.
type ProgressError struct {
	Code    ProgressErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProgressError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProgressError) Unwrap() error {
	return e.Err
}

// NewProgressError creates a new ProgressError with the given code and message.
func NewProgressError(code ProgressErrorCode, message string, err error) *ProgressError {
	return &ProgressError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
