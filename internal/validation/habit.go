package validation

import (
	"errors"
	"strings"
)

// ValidateHabitName validates a habit name. Names are not unique per user.
func ValidateHabitName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("habit name is required")
	}

	return nil
}
