package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Letters (including accented Latin) and spaces only
var namePattern = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s]+$`)

const (
	nameMinLen = 2
	nameMaxLen = 100
)

// Name is a validated person name. Construct via ParseName.
type Name string

// ParseName trims the raw input and validates length and character set.
func ParseName(raw string) (Name, error) {
	trimmed := strings.TrimSpace(raw)

	if len([]rune(trimmed)) < nameMinLen {
		return "", NewValidationError("name", fmt.Sprintf("must be at least %d characters", nameMinLen))
	}
	if len([]rune(trimmed)) > nameMaxLen {
		return "", NewValidationError("name", fmt.Sprintf("must be at most %d characters", nameMaxLen))
	}
	if !namePattern.MatchString(trimmed) {
		return "", NewValidationError("name", "contains invalid characters")
	}

	return Name(trimmed), nil
}

func (n Name) String() string {
	return string(n)
}
