package domain

import (
	"time"

	"github.com/google/uuid"
)

// Clock supplies the current instant. Services take a Clock instead of
// calling time.Now directly so tests can freeze time.
type Clock func() time.Time

// Now returns the current instant, falling back to the real clock when
// the Clock is nil.
func (c Clock) Now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

// IDGenerator produces unique identifiers for new entities
type IDGenerator func() string

// NewID generates an identifier, falling back to a random UUID when the
// generator is nil.
func (g IDGenerator) NewID() string {
	if g == nil {
		return uuid.NewString()
	}
	return g()
}
