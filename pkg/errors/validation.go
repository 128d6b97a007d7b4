package errors

import (
	"strings"
	"unicode"
)

// MaxInputLength bounds the size of any text the toolkit parses.
const MaxInputLength = 1024

// ValidatePartitionText performs the cheap safety checks on partition text
// before it reaches the parser.
//
// The validation rules are intentionally conservative:
//   - No empty input
//   - Maximum length of [MaxInputLength] bytes
//   - No control characters (tabs and spaces are fine)
//   - Only digits, commas and whitespace
//
// Monotonicity and positivity are checked by the partition package.
func ValidatePartitionText(text string) error {
	if strings.TrimSpace(text) == "" {
		return New(ErrCodeInvalidPartition, "partition cannot be empty")
	}

	if len(text) > MaxInputLength {
		return New(ErrCodeInvalidPartition, "partition too long (max %d characters)", MaxInputLength)
	}

	for _, r := range text {
		if r == '\t' || r == ' ' {
			continue
		}
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPartition, "partition contains invalid control characters")
		}
		if r != ',' && (r < '0' || r > '9') {
			return New(ErrCodeInvalidPartition, "partition contains invalid character %q", r)
		}
	}

	return nil
}

// ValidateFormat checks that format is one of the allowed values.
func ValidateFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "invalid format %q (must be one of: %s)", format, strings.Join(allowed, ", "))
}
