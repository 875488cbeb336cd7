package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty("  x  "))
}

func TestIsValidEmail(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidEmail("juan@example.com"))
	assert.True(t, IsValidEmail("juan.dela-cruz+hr@example.co.uk"))
	assert.False(t, IsValidEmail("juan@example"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	date, ok := IsValidDate("2025-08-15")
	assert.True(t, ok)
	assert.Equal(t, 2025, date.Year())

	_, ok = IsValidDate("15-08-2025")
	assert.False(t, ok)

	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)
}

func TestIsValidDateTime(t *testing.T) {
	t.Parallel()

	_, ok := IsValidDateTime("2025-08-15T08:30:00+08:00")
	assert.True(t, ok)

	_, ok = IsValidDateTime("2025-08-15T08:30:00.123456789Z")
	assert.True(t, ok)

	_, ok = IsValidDateTime("2025-08-15 08:30")
	assert.False(t, ok)
}

func TestIsInSlice(t *testing.T) {
	t.Parallel()

	assert.True(t, IsInSlice("pending", []string{"pending", "processed", "paid"}))
	assert.False(t, IsInSlice("draft", []string{"pending", "processed", "paid"}))
	assert.False(t, IsInSlice("", nil))
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "name", Message: "is required"},
		{Field: "amount", Message: "must be positive"},
	}

	assert.Equal(t, "name: is required; amount: must be positive", errs.Error())
	assert.Equal(t, map[string]string{
		"name":   "is required",
		"amount": "must be positive",
	}, errs.ToMap())
}
