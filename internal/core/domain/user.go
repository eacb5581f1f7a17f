package domain

import "time"

// User represents a registered borrower
type User struct {
	ID        string
	Name      Name
	City      string
	Category  Category
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser creates a user with a freshly assigned identity. Name and
// category must already be validated value objects.
func NewUser(id string, name Name, city string, category Category, now time.Time) *User {
	return &User{
		ID:        id,
		Name:      name,
		City:      city,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
