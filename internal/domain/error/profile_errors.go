package error

import "errors"

// User profile domain errors.
var (
	// ErrUserNotFound is returned when the authenticated user has no row.
	ErrUserNotFound = errors.New("user not found")

	// ErrProfileNameRequired is returned when a profile update carries an
	// empty name.
	ErrProfileNameRequired = errors.New("name is required")

	// ErrInvalidDocumentType is returned for unknown legal document types.
	ErrInvalidDocumentType = errors.New("document type must be: privacy_policy or terms_of_service")

	// ErrDocumentNotFound is returned when no published document exists for
	// the requested type.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrInvalidReminderTime is returned when the reminder time is not an
	// HH:MM wall-clock string.
	ErrInvalidReminderTime = errors.New("reminder time must be in HH:MM format")
)

// ProfileErrorCode defines error codes for user profile errors.
// Format: USR-XXYYYY where XX is category and YYYY is specific error.
type ProfileErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeProfileNameRequired ProfileErrorCode = "USR-010001"
	ErrCodeInvalidDocumentType ProfileErrorCode = "USR-010002"
	ErrCodeInvalidReminderTime ProfileErrorCode = "USR-010003"

	// Not found errors (02XXXX)
	ErrCodeUserNotFound     ProfileErrorCode = "USR-020001"
	ErrCodeDocumentNotFound ProfileErrorCode = "USR-020002"

	// Internal errors (99XXXX)
	ErrCodeProfileInternalError ProfileErrorCode = "USR-990001"
)

// ProfileError represents a user profile error with code and message.
type ProfileError struct {
	Code    ProfileErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProfileError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProfileError) Unwrap() error {
	return e.Err
}

// NewProfileError creates a new ProfileError with the given code and message.
func NewProfileError(code ProfileErrorCode, message string, err error) *ProfileError {
	return &ProfileError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
