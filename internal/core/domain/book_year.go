package domain

import (
	"fmt"
	"strconv"
	"time"
)

const (
	minBookYear   = 1000
	classicCutoff = 1950
	maxYearsAhead = 1
)

// BookYear is a validated publication year. Construct via NewBookYear.
type BookYear int

// NewBookYear validates year against the allowed range. The upper bound
// is next year relative to now, so pre-release catalog entries pass.
func NewBookYear(year int, now time.Time) (BookYear, error) {
	maxYear := now.Year() + maxYearsAhead

	if year < minBookYear {
		return 0, NewValidationError("year", fmt.Sprintf("must be at least %d", minBookYear))
	}
	if year > maxYear {
		return 0, NewValidationError("year", fmt.Sprintf("cannot be greater than %d", maxYear))
	}

	return BookYear(year), nil
}

// IsClassic reports whether the book predates the 1950 cutoff
func (y BookYear) IsClassic() bool {
	return y < classicCutoff
}

// IsModern reports whether the book is from 1950 onwards
func (y BookYear) IsModern() bool {
	return y >= classicCutoff
}

func (y BookYear) Int() int {
	return int(y)
}

func (y BookYear) String() string {
	return strconv.Itoa(int(y))
}
