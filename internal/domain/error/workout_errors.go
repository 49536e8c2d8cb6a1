package error

import "errors"

// Workout session domain errors.
var (
	// ErrSessionNotFound is returned when the session does not exist or
	// belongs to another user.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionAlreadyCompleted is returned when completing a session that
	// already has an end time.
	ErrSessionAlreadyCompleted = errors.New("session already completed")

	// ErrInvalidSetData is returned when a recorded set has a non-positive
	// weight or rep count.
	ErrInvalidSetData = errors.New("weight and reps must be greater than zero")

	// ErrInvalidHistoryLimit is returned when the history limit is not a
	// positive integer.
	ErrInvalidHistoryLimit = errors.New("limit must be a positive integer")
)

// WorkoutErrorCode defines error codes for workout session errors.
// Format: WKT-XXYYYY where XX is category and YYYY is specific error.
type WorkoutErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidSetData      WorkoutErrorCode = "WKT-010001"
	ErrCodeInvalidHistoryLimit WorkoutErrorCode = "WKT-010002"

	// Not found / state errors (02XXXX)
	ErrCodeSessionNotFound         WorkoutErrorCode = "WKT-020001"
	ErrCodeSessionAlreadyCompleted WorkoutErrorCode = "WKT-020002"

	// Internal errors (99XXXX)
	ErrCodeWorkoutInternalError WorkoutErrorCode = "WKT-990001"
)

// WorkoutError represents a workout session error with code and message.
type WorkoutError struct {
	Code    WorkoutErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *WorkoutError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *WorkoutError) Unwrap() error {
	return e.Err
}

// NewWorkoutError creates a new WorkoutError with the given code and message.
func NewWorkoutError(code WorkoutErrorCode, message string, err error) *WorkoutError {
	return &WorkoutError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
