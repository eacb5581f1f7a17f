package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var yearNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func TestNewBookYear(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		wantErr bool
	}{
		{name: "lower boundary", year: 1000},
		{name: "below lower boundary", year: 999, wantErr: true},
		{name: "current year", year: yearNow.Year()},
		{name: "next year", year: yearNow.Year() + 1},
		{name: "two years ahead", year: yearNow.Year() + 2, wantErr: true},
		{name: "ordinary year", year: 1937},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewBookYear(tt.year, yearNow)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.year, got.Int())
		})
	}
}

func TestBookYearClassicCutoff(t *testing.T) {
	classic, err := NewBookYear(1949, yearNow)
	require.NoError(t, err)
	assert.True(t, classic.IsClassic())
	assert.False(t, classic.IsModern())

	modern, err := NewBookYear(1950, yearNow)
	require.NoError(t, err)
	assert.False(t, modern.IsClassic())
	assert.True(t, modern.IsModern())
}
