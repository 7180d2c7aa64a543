// Package normalize provides helper functions for consistent string normalization
// across the application. Use these helpers instead of scattered strings.ToLower
// and strings.TrimSpace calls to ensure consistent behavior.
package normalize

import "strings"

// Email normalizes an email address by trimming whitespace and converting to lowercase.
// This is the canonical way to normalize emails before comparison or sending upstream.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name normalizes a display name by trimming whitespace.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Status normalizes a status value by trimming whitespace and converting to lowercase.
func Status(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Role normalizes a role value by trimming whitespace and converting to lowercase.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// QueryParam normalizes a query parameter by trimming whitespace.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}

// Slug normalizes a URL slug: trimmed, lowercased, spaces collapsed to hyphens.
func Slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	fields := strings.Fields(s)
	return strings.Join(fields, "-")
}
