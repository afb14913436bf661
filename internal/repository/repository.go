package repository

import "strings"

// isUniqueViolation reports whether err is a unique constraint violation
// (works for both SQLite and PostgreSQL)
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "UNIQUE constraint failed") ||
		strings.Contains(errStr, "constraint failed: UNIQUE") ||
		strings.Contains(errStr, "duplicate key value")
}
