package validation

import (
	"errors"
	"time"
)

// ValidateDate validates a calendar date in "YYYY-MM-DD" form.
func ValidateDate(date string) error {
	_, err := time.Parse("2006-01-02", date)
	if err != nil {
		return errors.New("date must be in YYYY-MM-DD format")
	}

	return nil
}
