package domain

import "time"

// LoanPeriod pairs a loan date with its computed return date
type LoanPeriod struct {
	LoanDate   time.Time
	ReturnDate time.Time
}

// NewLoanPeriod computes the return date as loanDate plus the given
// number of calendar days.
func NewLoanPeriod(loanDate time.Time, days int) LoanPeriod {
	return LoanPeriod{
		LoanDate:   loanDate,
		ReturnDate: loanDate.AddDate(0, 0, days),
	}
}

// DaysRemaining returns the whole days left until the return date,
// clamped to zero once the period has elapsed.
func (p LoanPeriod) DaysRemaining(now time.Time) int {
	diff := p.ReturnDate.Sub(now)
	days := int(diff.Hours() / 24)
	if diff > 0 && diff%(24*time.Hour) != 0 {
		days++ // partial day still counts as remaining
	}
	if days < 0 {
		return 0
	}
	return days
}

// IsOverdue reports whether now is past the return date
func (p LoanPeriod) IsOverdue(now time.Time) bool {
	return now.After(p.ReturnDate)
}

// TotalDays returns the full length of the period in days
func (p LoanPeriod) TotalDays() int {
	return int(p.ReturnDate.Sub(p.LoanDate).Hours() / 24)
}
