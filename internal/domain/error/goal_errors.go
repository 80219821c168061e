package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the store.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrGoalNameRequired is returned when the goal name is blank.
	ErrGoalNameRequired = errors.New("goal name is required")

	// ErrGoalNameTooLong is returned when the goal name exceeds the maximum length.
	ErrGoalNameTooLong = errors.New("goal name too long")

	// ErrGoalDescriptionTooLong is returned when the goal description exceeds the maximum length.
	ErrGoalDescriptionTooLong = errors.New("goal description too long")

	// ErrInvalidGoalTarget is returned when the target amount is not strictly positive.
	ErrInvalidGoalTarget = errors.New("invalid goal target amount")

	// ErrInvalidGoalCurrentAmount is returned when the saved amount is negative.
	ErrInvalidGoalCurrentAmount = errors.New("invalid goal current amount")

	// ErrGoalMemberNotFound is returned when the goal owner does not exist.
	ErrGoalMemberNotFound = errors.New("member not found")

	// ErrInvalidGoalColor is returned when the color is not a #RRGGBB value.
	ErrInvalidGoalColor = errors.New("invalid goal color")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound             GoalErrorCode = "GOL-010001"
	ErrCodeGoalNameRequired         GoalErrorCode = "GOL-010002"
	ErrCodeGoalNameTooLong          GoalErrorCode = "GOL-010003"
	ErrCodeGoalDescriptionTooLong   GoalErrorCode = "GOL-010004"
	ErrCodeInvalidGoalTarget        GoalErrorCode = "GOL-010005"
	ErrCodeInvalidGoalCurrentAmount GoalErrorCode = "GOL-010006"
	ErrCodeGoalMemberNotFound       GoalErrorCode = "GOL-010007"
	ErrCodeInvalidGoalColor         GoalErrorCode = "GOL-010008"
	ErrCodeMissingGoalFields        GoalErrorCode = "GOL-010009"
)

// GoalError represents a goal error with code and message.
type GoalError = CodedError[GoalErrorCode]

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return newCodedError(code, message, err)
}
