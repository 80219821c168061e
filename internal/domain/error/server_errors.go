package error

import "errors"

// Transport errors not tied to a domain area.
var (
	// ErrInvalidRequest is returned when a request body, path or query cannot be parsed.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrRateLimited is returned when a client exceeds its request budget.
	ErrRateLimited = errors.New("too many requests")
)

// ServerErrorCode defines error codes for transport level failures.
// Format: SRV-XXYYYY where XX is category and YYYY is specific error.
type ServerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidRequestBody ServerErrorCode = "SRV-010001"
	ErrCodeInvalidID          ServerErrorCode = "SRV-010002"
	ErrCodeInvalidQuery       ServerErrorCode = "SRV-010003"

	// Throttling errors (03XXXX)
	ErrCodeRateLimited ServerErrorCode = "SRV-030001"

	// Internal errors (99XXXX)
	ErrCodeInternal ServerErrorCode = "SRV-990001"
)

// ServerError represents a transport error with code and message.
type ServerError = CodedError[ServerErrorCode]

// NewServerError creates a new ServerError with the given code and message.
func NewServerError(code ServerErrorCode, message string, err error) *ServerError {
	return newCodedError(code, message, err)
}
