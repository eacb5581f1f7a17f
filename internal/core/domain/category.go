package domain

// Category represents a borrower category
type Category string

const (
	CategoryStudent   Category = "STUDENT"
	CategoryTeacher   Category = "TEACHER"
	CategoryLibrarian Category = "LIBRARIAN"
)

// Loan period per category, in calendar days. The period is frozen into
// the loan at creation time; changing this table never touches existing
// loans.
const (
	studentLoanDays   = 10
	teacherLoanDays   = 30
	librarianLoanDays = 60
)

// ParseCategory validates raw against the known categories
func ParseCategory(raw string) (Category, error) {
	switch Category(raw) {
	case CategoryStudent, CategoryTeacher, CategoryLibrarian:
		return Category(raw), nil
	default:
		return "", NewValidationError("category", "must be STUDENT, TEACHER or LIBRARIAN")
	}
}

// LoanPeriodDays returns the loan period for the category
func (c Category) LoanPeriodDays() int {
	switch c {
	case CategoryTeacher:
		return teacherLoanDays
	case CategoryLibrarian:
		return librarianLoanDays
	default:
		return studentLoanDays
	}
}

func (c Category) String() string {
	return string(c)
}
