package domain

import "time"

// Book represents a cataloged book
type Book struct {
	ID        string
	Name      string
	Year      BookYear
	Publisher string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBook creates a book with a freshly assigned identity. Year must
// already be a validated value object.
func NewBook(id, name string, year BookYear, publisher string, now time.Time) *Book {
	return &Book{
		ID:        id,
		Name:      name,
		Year:      year,
		Publisher: publisher,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
