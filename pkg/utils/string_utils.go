package utils

import "strings"

// NewNullString is a helper for string pointers, returning nil if string is empty.
// Useful for fields that are optional and should be NULL in DB if not provided.
func NewNullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// TrimToNull trims surrounding whitespace and returns nil for values that are
// empty afterwards. Item SKU, description and serial fields go through this so
// blank form inputs land as NULL rather than "".
func TrimToNull(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
