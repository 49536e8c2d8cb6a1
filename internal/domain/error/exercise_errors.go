package error

// ExerciseErrorCode defines error codes for exercise catalog errors.
// Format: EXC-XXYYYY where XX is category and YYYY is specific error.
type ExerciseErrorCode string

const (
	// Internal errors (99XXXX)
	ErrCodeExerciseInternalError ExerciseErrorCode = "EXC-990001"
)

// ExerciseError represents an exercise catalog error with code and message.
type ExerciseError struct {
	Code    ExerciseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExerciseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExerciseError) Unwrap() error {
	return e.Err
}

// NewExerciseError creates a new ExerciseError with the given code and message.
func NewExerciseError(code ExerciseErrorCode, message string, err error) *ExerciseError {
	return &ExerciseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
