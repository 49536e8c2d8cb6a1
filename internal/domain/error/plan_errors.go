package error

import "errors"

// Training plan domain errors.
var (
	// ErrPlanNameRequired is returned when a plan is created without a name.
	ErrPlanNameRequired = errors.New("plan name is required")

	// ErrPlanNotFound is returned when the requested plan does not exist
	// or belongs to another user.
	ErrPlanNotFound = errors.New("plan not found")

	// ErrTrainingDayNotFound is returned when a day number has no entry
	// in the plan.
	ErrTrainingDayNotFound = errors.New("training day not found")

	// ErrInvalidDayNumber is returned when the day number is outside 1-7.
	ErrInvalidDayNumber = errors.New("day number must be between 1 and 7")

	// ErrInvalidRepRange is returned when a planned exercise carries a
	// malformed rep range.
	ErrInvalidRepRange = errors.New("rep range must be a number or min-max")
)

// PlanErrorCode defines error codes for training plan errors.
// Format: PLN-XXYYYY where XX is category and YYYY is specific error.
type PlanErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodePlanNameRequired PlanErrorCode = "PLN-010001"
	ErrCodeInvalidDayNumber PlanErrorCode = "PLN-010002"
	ErrCodeInvalidRepRange  PlanErrorCode = "PLN-010003"

	// Not found errors (02XXXX)
	ErrCodePlanNotFound        PlanErrorCode = "PLN-020001"
	ErrCodeTrainingDayNotFound PlanErrorCode = "PLN-020002"

	// Internal errors (99XXXX)
	ErrCodePlanInternalError PlanErrorCode = "PLN-990001"
)

// PlanError represents a training plan error with code and message.
type PlanError struct {
	Code    PlanErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PlanError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PlanError) Unwrap() error {
	return e.Err
}

// NewPlanError creates a new PlanError with the given code and message.
func NewPlanError(code PlanErrorCode, message string, err error) *PlanError {
	return &PlanError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
