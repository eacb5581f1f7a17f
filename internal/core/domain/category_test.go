package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	for _, raw := range []string{"STUDENT", "TEACHER", "LIBRARIAN"} {
		got, err := ParseCategory(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, got.String())
	}

	for _, raw := range []string{"", "student", "Student", "ADMIN", "PROFESSOR"} {
		_, err := ParseCategory(raw)
		require.Error(t, err, "raw=%q", raw)
		assert.True(t, IsValidationError(err))
	}
}

func TestCategoryLoanPeriodDays(t *testing.T) {
	assert.Equal(t, 10, CategoryStudent.LoanPeriodDays())
	assert.Equal(t, 30, CategoryTeacher.LoanPeriodDays())
	assert.Equal(t, 60, CategoryLibrarian.LoanPeriodDays())
}
