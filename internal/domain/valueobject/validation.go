package valueobject

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// MaxNameLength is the maximum length of any display name.
	MaxNameLength = 100
	// MaxDescriptionLength is the maximum length of free-text descriptions.
	MaxDescriptionLength = 255
)

var (
	hexColorPattern   = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	lastDigitsPattern = regexp.MustCompile(`^[0-9]{4}$`)
)

// IsHexColor reports whether s is a "#RRGGBB" color.
func IsHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsLastDigits reports whether s holds exactly four digits.
func IsLastDigits(s string) bool {
	return lastDigitsPattern.MatchString(s)
}

// IsBlank reports whether s is empty after trimming spaces.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// TextLength counts characters rather than bytes, so accented names are measured fairly.
func TextLength(s string) int {
	return utf8.RuneCountInString(s)
}
