// Package error defines domain-specific errors for the mycash+ finance backend.
package error

// CodedError carries a stable error code alongside a human readable message.
// Each domain area instantiates it with its own code type.
type CodedError[C ~string] struct {
	Code    C
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CodedError[C]) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CodedError[C]) Unwrap() error {
	return e.Err
}

// ErrorCode returns the code as a plain string.
func (e *CodedError[C]) ErrorCode() string {
	return string(e.Code)
}

func newCodedError[C ~string](code C, message string, err error) *CodedError[C] {
	return &CodedError[C]{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
