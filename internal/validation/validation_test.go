package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, ValidateUsername("alice"))
	assert.Error(t, ValidateUsername(""))
	assert.Error(t, ValidateUsername("   "))
	assert.Error(t, ValidateUsername(strings.Repeat("a", 101)))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("secret1"))
	assert.NoError(t, ValidatePassword("123456"))
	assert.Error(t, ValidatePassword("12345"))
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword(strings.Repeat("a", 73)))
}

func TestValidateHabitName(t *testing.T) {
	assert.NoError(t, ValidateHabitName("Morning run"))
	assert.Error(t, ValidateHabitName(""))
	assert.Error(t, ValidateHabitName("  \t "))
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate("2026-08-28"))
	assert.NoError(t, ValidateDate("2026-02-28"))
	assert.Error(t, ValidateDate("2026-13-01"))
	assert.Error(t, ValidateDate("28-08-2026"))
	assert.Error(t, ValidateDate("2026-08-28T00:00:00Z"))
	assert.Error(t, ValidateDate(""))
}
