package error

import "errors"

// Bank account and credit card domain errors.
var (
	// ErrBankAccountNotFound is returned when a bank account is not found in the store.
	ErrBankAccountNotFound = errors.New("bank account not found")

	// ErrCreditCardNotFound is returned when a credit card is not found in the store.
	ErrCreditCardNotFound = errors.New("credit card not found")

	// ErrAccountNameRequired is returned when the account or card name is blank.
	ErrAccountNameRequired = errors.New("account name is required")

	// ErrAccountNameTooLong is returned when the account or card name exceeds the maximum length.
	ErrAccountNameTooLong = errors.New("account name too long")

	// ErrAccountHolderNotFound is returned when the holder member does not exist.
	ErrAccountHolderNotFound = errors.New("account holder not found")

	// ErrInvalidAccountKind is returned when an account reference has an unknown kind.
	ErrInvalidAccountKind = errors.New("invalid account kind")

	// ErrInvalidCardLimit is returned when the card limit is not strictly positive.
	ErrInvalidCardLimit = errors.New("invalid card limit")

	// ErrInvalidCardBill is returned when the current bill is negative.
	ErrInvalidCardBill = errors.New("invalid card bill")

	// ErrInvalidClosingDay is returned when the closing day is outside 1-31.
	ErrInvalidClosingDay = errors.New("closing day must be between 1 and 31")

	// ErrInvalidDueDay is returned when the due day is outside 1-31.
	ErrInvalidDueDay = errors.New("due day must be between 1 and 31")

	// ErrInvalidCardTheme is returned when the theme is not black, lime or white.
	ErrInvalidCardTheme = errors.New("invalid card theme")

	// ErrInvalidLastDigits is returned when the last digits are not four numeric characters.
	ErrInvalidLastDigits = errors.New("last digits must be 4 numeric characters")

	// ErrAccountInUse is returned when deleting an account or card that transactions still reference.
	ErrAccountInUse = errors.New("account is in use")
)

// AccountErrorCode defines error codes for bank account and credit card errors.
// Format: ACC-XXYYYY where XX is category and YYYY is specific error.
type AccountErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeBankAccountNotFound   AccountErrorCode = "ACC-010001"
	ErrCodeCreditCardNotFound    AccountErrorCode = "ACC-010002"
	ErrCodeAccountNameRequired   AccountErrorCode = "ACC-010003"
	ErrCodeAccountNameTooLong    AccountErrorCode = "ACC-010004"
	ErrCodeAccountHolderNotFound AccountErrorCode = "ACC-010005"
	ErrCodeInvalidAccountKind    AccountErrorCode = "ACC-010006"
	ErrCodeInvalidCardLimit      AccountErrorCode = "ACC-010007"
	ErrCodeInvalidCardBill       AccountErrorCode = "ACC-010008"
	ErrCodeInvalidClosingDay     AccountErrorCode = "ACC-010009"
	ErrCodeInvalidDueDay         AccountErrorCode = "ACC-010010"
	ErrCodeInvalidCardTheme      AccountErrorCode = "ACC-010011"
	ErrCodeInvalidLastDigits     AccountErrorCode = "ACC-010012"
	ErrCodeMissingAccountFields  AccountErrorCode = "ACC-010013"

	// Conflict errors (02XXXX)
	ErrCodeAccountInUse AccountErrorCode = "ACC-020001"
)

// AccountError represents a bank account or credit card error with code and message.
type AccountError = CodedError[AccountErrorCode]

// NewAccountError creates a new AccountError with the given code and message.
func NewAccountError(code AccountErrorCode, message string, err error) *AccountError {
	return newCodedError(code, message, err)
}
