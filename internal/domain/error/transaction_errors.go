package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the store.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is not income or expense.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionStatus is returned when the status is not completed or pending.
	ErrInvalidTransactionStatus = errors.New("invalid transaction status")

	// ErrInvalidTransactionAmount is returned when the amount is not strictly positive.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrInvalidTransactionDate is returned when the transaction date is missing.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrDescriptionRequired is returned when the description is blank.
	ErrDescriptionRequired = errors.New("description is required")

	// ErrDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")

	// ErrCategoryNotFoundForTransaction is returned when the referenced category does not exist.
	ErrCategoryNotFoundForTransaction = errors.New("category not found")

	// ErrCategoryTypeMismatch is returned when the category type differs from the transaction type.
	ErrCategoryTypeMismatch = errors.New("category type does not match transaction type")

	// ErrAccountNotFoundForTransaction is returned when the account reference does not resolve.
	ErrAccountNotFoundForTransaction = errors.New("account not found")

	// ErrMemberNotFoundForTransaction is returned when the referenced member does not exist.
	ErrMemberNotFoundForTransaction = errors.New("member not found")

	// ErrInvalidInstallments is returned when installments is lower than one.
	ErrInvalidInstallments = errors.New("installments must be at least 1")

	// ErrInvalidCurrentInstallment is returned when the current installment is out of range.
	ErrInvalidCurrentInstallment = errors.New("current installment must be between 1 and installments")

	// ErrInvalidPagination is returned when page or page size is out of range.
	ErrInvalidPagination = errors.New("invalid pagination")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType    TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionStatus  TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionAmount  TransactionErrorCode = "TXN-010003"
	ErrCodeTransactionNotFound       TransactionErrorCode = "TXN-010004"
	ErrCodeInvalidTransactionDate    TransactionErrorCode = "TXN-010005"
	ErrCodeDescriptionRequired       TransactionErrorCode = "TXN-010006"
	ErrCodeDescriptionTooLong        TransactionErrorCode = "TXN-010007"
	ErrCodeTxnCategoryNotFound       TransactionErrorCode = "TXN-010008"
	ErrCodeTxnCategoryTypeMismatch   TransactionErrorCode = "TXN-010009"
	ErrCodeTxnAccountNotFound        TransactionErrorCode = "TXN-010010"
	ErrCodeTxnMemberNotFound         TransactionErrorCode = "TXN-010011"
	ErrCodeInvalidInstallments       TransactionErrorCode = "TXN-010012"
	ErrCodeInvalidCurrentInstallment TransactionErrorCode = "TXN-010013"
	ErrCodeInvalidTransactionPage    TransactionErrorCode = "TXN-010014"
	ErrCodeMissingTransactionFields  TransactionErrorCode = "TXN-010015"
)

// TransactionError represents a transaction error with code and message.
type TransactionError = CodedError[TransactionErrorCode]

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return newCodedError(code, message, err)
}
