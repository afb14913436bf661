package validation

import (
	"errors"
	"strings"
)

// ValidateUsername validates a registration username.
// Comparison against existing users is byte-exact and case-sensitive.
func ValidateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return errors.New("username cannot be empty")
	}

	if len(username) > 100 {
		return errors.New("username is too long (max 100 characters)")
	}

	return nil
}
