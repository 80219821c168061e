package error

import "errors"

// Family member domain errors.
var (
	// ErrMemberNotFound is returned when a family member is not found in the store.
	ErrMemberNotFound = errors.New("family member not found")

	// ErrMemberNameRequired is returned when the member name is blank.
	ErrMemberNameRequired = errors.New("member name is required")

	// ErrMemberNameTooLong is returned when the member name exceeds the maximum length.
	ErrMemberNameTooLong = errors.New("member name too long")

	// ErrMemberRoleRequired is returned when the member role is blank.
	ErrMemberRoleRequired = errors.New("member role is required")

	// ErrInvalidMemberEmail is returned when the email is not a valid address.
	ErrInvalidMemberEmail = errors.New("invalid member email")

	// ErrInvalidMonthlyIncome is returned when the monthly income is negative.
	ErrInvalidMonthlyIncome = errors.New("monthly income cannot be negative")

	// ErrMemberInUse is returned when deleting a member that other records still reference.
	ErrMemberInUse = errors.New("member is in use")
)

// MemberErrorCode defines error codes for family member errors.
// Format: MBR-XXYYYY where XX is category and YYYY is specific error.
type MemberErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMemberNotFound       MemberErrorCode = "MBR-010001"
	ErrCodeMemberNameRequired   MemberErrorCode = "MBR-010002"
	ErrCodeMemberNameTooLong    MemberErrorCode = "MBR-010003"
	ErrCodeMemberRoleRequired   MemberErrorCode = "MBR-010004"
	ErrCodeInvalidMemberEmail   MemberErrorCode = "MBR-010005"
	ErrCodeInvalidMonthlyIncome MemberErrorCode = "MBR-010006"
	ErrCodeMissingMemberFields  MemberErrorCode = "MBR-010007"

	// Conflict errors (02XXXX)
	ErrCodeMemberInUse MemberErrorCode = "MBR-020001"
)

// MemberError represents a family member error with code and message.
type MemberError = CodedError[MemberErrorCode]

// NewMemberError creates a new MemberError with the given code and message.
func NewMemberError(code MemberErrorCode, message string, err error) *MemberError {
	return newCodedError(code, message, err)
}
