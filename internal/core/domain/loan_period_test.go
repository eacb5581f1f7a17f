package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var periodStart = time.Date(2026, time.January, 10, 9, 30, 0, 0, time.UTC)

func TestNewLoanPeriod(t *testing.T) {
	p := NewLoanPeriod(periodStart, 10)

	assert.Equal(t, periodStart, p.LoanDate)
	assert.Equal(t, periodStart.AddDate(0, 0, 10), p.ReturnDate)
	assert.Equal(t, 10, p.TotalDays())
}

func TestLoanPeriodDaysRemaining(t *testing.T) {
	p := NewLoanPeriod(periodStart, 10)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{name: "at loan date", now: periodStart, want: 10},
		{name: "partial day counts as remaining", now: periodStart.Add(12 * time.Hour), want: 10},
		{name: "halfway through", now: periodStart.AddDate(0, 0, 5), want: 5},
		{name: "at return date", now: p.ReturnDate, want: 0},
		{name: "past return date clamps to zero", now: p.ReturnDate.AddDate(0, 0, 3), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.DaysRemaining(tt.now))
		})
	}
}

func TestLoanPeriodIsOverdue(t *testing.T) {
	p := NewLoanPeriod(periodStart, 10)

	assert.False(t, p.IsOverdue(periodStart))
	assert.False(t, p.IsOverdue(p.ReturnDate))
	assert.True(t, p.IsOverdue(p.ReturnDate.Add(time.Second)))

	// pure function of its inputs: repeated calls agree
	late := p.ReturnDate.AddDate(0, 0, 1)
	for i := 0; i < 3; i++ {
		assert.True(t, p.IsOverdue(late))
	}
}
