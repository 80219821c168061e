package error

import "errors"

// Data management domain errors.
var (
	// ErrInvalidExportFormat is returned when the export format is not json or xlsx.
	ErrInvalidExportFormat = errors.New("export format must be: json or xlsx")

	// ErrExportFailed is returned when the workbook cannot be produced.
	ErrExportFailed = errors.New("failed to export data")
)

// DataErrorCode defines error codes for export and reset errors.
// Format: DAT-XXYYYY where XX is category and YYYY is specific error.
type DataErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidExportFormat DataErrorCode = "DAT-010001"

	// Internal errors (99XXXX)
	ErrCodeExportFailed DataErrorCode = "DAT-990001"
)

// DataError represents a data management error with code and message.
type DataError = CodedError[DataErrorCode]

// NewDataError creates a new DataError with the given code and message.
func NewDataError(code DataErrorCode, message string, err error) *DataError {
	return newCodedError(code, message, err)
}
