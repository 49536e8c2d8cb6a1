package error

// HomeErrorCode defines error codes for home summary errors.
// Format: HOM-XXYYYY where XX is category and YYYY is specific error.
type HomeErrorCode string

const (
	// Internal errors (99XXXX)
	ErrCodeHomeInternalError HomeErrorCode = "HOM-990001"
)

// HomeError represents a home summary error with code and message.
type HomeError struct {
	Code    HomeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HomeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *HomeError) Unwrap() error {
	return e.Err
}

// NewHomeError creates a new HomeError with the given code and message.
func NewHomeError(code HomeErrorCode, message string, err error) *HomeError {
	return &HomeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
