package error

import "errors"

// Dashboard and filter domain errors.
var (
	// ErrInvalidDateRange is returned when the end date is before the start date.
	ErrInvalidDateRange = errors.New("end_date must not be before start_date")

	// ErrInvalidDateFormat is returned when a date is not formatted as YYYY-MM-DD.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidTypeFilter is returned when the type filter is not all, income or expense.
	ErrInvalidTypeFilter = errors.New("type filter must be: all, income, or expense")

	// ErrFilterMemberNotFound is returned when the selected member does not exist.
	ErrFilterMemberNotFound = errors.New("selected member not found")

	// ErrInvalidPercentageTotal is returned when the amount to compare is negative.
	ErrInvalidPercentageTotal = errors.New("total must not be negative")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDateRange       DashboardErrorCode = "DSH-010001"
	ErrCodeInvalidDateFormat      DashboardErrorCode = "DSH-010002"
	ErrCodeInvalidTypeFilter      DashboardErrorCode = "DSH-010003"
	ErrCodeFilterMemberNotFound   DashboardErrorCode = "DSH-010004"
	ErrCodeInvalidPercentageTotal DashboardErrorCode = "DSH-010005"

	// Internal errors (99XXXX)
	ErrCodeDashboardInternal DashboardErrorCode = "DSH-990001"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError = CodedError[DashboardErrorCode]

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return newCodedError(code, message, err)
}
