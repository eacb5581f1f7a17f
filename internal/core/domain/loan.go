package domain

import "time"

// LoanStatus represents the lifecycle state of a loan
type LoanStatus string

const (
	LoanStatusActive   LoanStatus = "ACTIVE"
	LoanStatusReturned LoanStatus = "RETURNED"
	LoanStatusOverdue  LoanStatus = "OVERDUE"
)

// ParseLoanStatus validates raw against the known statuses
func ParseLoanStatus(raw string) (LoanStatus, error) {
	switch LoanStatus(raw) {
	case LoanStatusActive, LoanStatusReturned, LoanStatusOverdue:
		return LoanStatus(raw), nil
	default:
		return "", NewValidationError("status", "must be ACTIVE, RETURNED or OVERDUE")
	}
}

// Loan represents a book checked out by a user. It references user and
// book by identifier only. RETURNED and OVERDUE are terminal: Return and
// MarkOverdue reject any loan that is no longer ACTIVE.
type Loan struct {
	ID         string
	UserID     string
	BookID     string
	LoanDate   time.Time
	ReturnDate time.Time
	Status     LoanStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewLoan creates an ACTIVE loan. The return date is computed from the
// borrower's category and frozen into the record; later changes to the
// category table never alter existing loans.
func NewLoan(id, userID, bookID string, category Category, now time.Time) *Loan {
	period := NewLoanPeriod(now, category.LoanPeriodDays())

	return &Loan{
		ID:         id,
		UserID:     userID,
		BookID:     bookID,
		LoanDate:   period.LoanDate,
		ReturnDate: period.ReturnDate,
		Status:     LoanStatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Period returns the loan's date pair as a value object
func (l *Loan) Period() LoanPeriod {
	return LoanPeriod{LoanDate: l.LoanDate, ReturnDate: l.ReturnDate}
}

// Return transitions ACTIVE -> RETURNED. Terminal loans are rejected
// with ErrLoanNotActive.
func (l *Loan) Return(now time.Time) error {
	if l.Status != LoanStatusActive {
		return ErrLoanNotActive
	}
	l.Status = LoanStatusReturned
	l.UpdatedAt = now
	return nil
}

// MarkOverdue transitions ACTIVE -> OVERDUE. Terminal loans are rejected
// with ErrLoanNotActive.
func (l *Loan) MarkOverdue(now time.Time) error {
	if l.Status != LoanStatusActive {
		return ErrLoanNotActive
	}
	l.Status = LoanStatusOverdue
	l.UpdatedAt = now
	return nil
}

// IsOverdue reports whether the loan is ACTIVE and past its return date.
// A returned loan is never overdue, even if it came back late.
func (l *Loan) IsOverdue(now time.Time) bool {
	return l.Status == LoanStatusActive && now.After(l.ReturnDate)
}
