package utils

import (
	"regexp"
	"strings"
)

// EscapeSQLWildcards escapes SQL LIKE/ILIKE wildcard characters so user
// input cannot inject pattern syntax into search queries.
func EscapeSQLWildcards(input string) string {
	input = strings.ReplaceAll(input, "\\", "\\\\")
	input = strings.ReplaceAll(input, "%", "\\%")
	input = strings.ReplaceAll(input, "_", "\\_")
	return input
}

// SanitizeSearchQuery prepares a search string for safe ILIKE usage
// Returns the sanitized term wrapped with % for partial matching
func SanitizeSearchQuery(input string) string {
	input = strings.TrimSpace(input)
	if len(input) > 100 {
		input = input[:100]
	}
	input = EscapeSQLWildcards(input)
	return "%" + input + "%"
}

// ValidateUsername checks if username contains only allowed characters
// Returns true if valid
func ValidateUsername(username string) bool {
	// Allow alphanumeric, underscores, hyphens. 3-30 characters
	re := regexp.MustCompile(`^[a-zA-Z0-9_-]{3,30}$`)
	return re.MatchString(username)
}
