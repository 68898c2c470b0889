package utils

import "strings"

// SplitList splits a comma-separated input into trimmed segments,
// dropping blanks. "A, ,B," yields ["A", "B"].
func SplitList(input string) []string {
	if strings.TrimSpace(input) == "" {
		return nil
	}

	var items []string
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			items = append(items, part)
		}
	}
	return items
}

// NullIfBlank trims the value and returns nil for empty input, so
// optional columns fall back to NULL instead of empty strings.
func NullIfBlank(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// StrOrEmpty dereferences an optional string for display.
func StrOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
