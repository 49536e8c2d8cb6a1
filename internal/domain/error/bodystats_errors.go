package error

import "errors"

// Body stats domain errors.
var (
	// ErrMissingBodyStatFields is returned when weight or date is absent.
	ErrMissingBodyStatFields = errors.New("weight and date are required")

	// ErrInvalidBodyStatDate is returned when the date cannot be parsed.
	ErrInvalidBodyStatDate = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidWeight is returned when weight is not a positive number.
	ErrInvalidWeight = errors.New("weight must be greater than zero")

	// ErrInvalidBodyFat is returned when body fat percentage is out of range.
	ErrInvalidBodyFat = errors.New("body fat percentage must be between 0 and 100")

	// ErrInvalidHistoryPeriod is returned for unknown body-stats history periods.
	ErrInvalidHistoryPeriod = errors.New("period must be: latest, week, month, or year")
)

// BodyStatsErrorCode defines error codes for body stats errors.
// Format: BST-XXYYYY where XX is category and YYYY is specific error.
type BodyStatsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingBodyStatFields BodyStatsErrorCode = "BST-010001"
	ErrCodeInvalidBodyStatDate   BodyStatsErrorCode = "BST-010002"
	ErrCodeInvalidWeight         BodyStatsErrorCode = "BST-010003"
	ErrCodeInvalidBodyFat        BodyStatsErrorCode = "BST-010004"
	ErrCodeInvalidHistoryPeriod  BodyStatsErrorCode = "BST-010005"

	// Internal errors (99XXXX)
	ErrCodeBodyStatsInternalError BodyStatsErrorCode = "BST-990001"
)

// BodyStatsError represents a body stats error with code and message.
type BodyStatsError struct {
	Code    BodyStatsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BodyStatsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BodyStatsError) Unwrap() error {
	return e.Err
}

// NewBodyStatsError creates a new BodyStatsError with the given code and message.
func NewBodyStatsError(code BodyStatsErrorCode, message string, err error) *BodyStatsError {
	return &BodyStatsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
