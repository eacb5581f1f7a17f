package services

import (
	"context"
	"strings"

	"libraryhub/internal/core/domain"
)

// BookService handles catalog management
type BookService struct {
	books BookStore
	clock domain.Clock
	idGen domain.IDGenerator
}

// NewBookService creates a new book service
func NewBookService(books BookStore) *BookService {
	return &BookService{books: books}
}

// RegisterBookInput represents register book input
type RegisterBookInput struct {
	Name      string `json:"name" validate:"required"`
	Year      int    `json:"year" validate:"required"`
	Publisher string `json:"publisher" validate:"required"`
}

// Register validates the input and persists a new book
func (s *BookService) Register(ctx context.Context, input *RegisterBookInput) (*domain.Book, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domain.NewValidationError("name", "must not be empty")
	}
	if strings.TrimSpace(input.Publisher) == "" {
		return nil, domain.NewValidationError("publisher", "must not be empty")
	}

	now := s.clock.Now()

	year, err := domain.NewBookYear(input.Year, now)
	if err != nil {
		return nil, err
	}

	book := domain.NewBook(s.idGen.NewID(), input.Name, year, input.Publisher, now)

	if err := s.books.Create(ctx, book); err != nil {
		return nil, err
	}

	return book, nil
}

// GetByID gets a book by ID
func (s *BookService) GetByID(ctx context.Context, id string) (*domain.Book, error) {
	return s.books.GetByID(ctx, id)
}

// List lists all books
func (s *BookService) List(ctx context.Context) ([]*domain.Book, error) {
	return s.books.List(ctx)
}

// Search finds books whose name contains term, case-insensitively.
// An empty term returns the whole catalog; no matches returns an empty
// slice, never an error.
func (s *BookService) Search(ctx context.Context, term string) ([]*domain.Book, error) {
	return s.books.Search(ctx, term)
}

// UpdateBookInput represents update book input
type UpdateBookInput struct {
	Name      *string `json:"name"`
	Year      *int    `json:"year"`
	Publisher *string `json:"publisher"`
}

// Update revalidates the changed fields and refreshes the book
func (s *BookService) Update(ctx context.Context, id string, input *UpdateBookInput) (*domain.Book, error) {
	book, err := s.books.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, domain.NewValidationError("name", "must not be empty")
		}
		book.Name = *input.Name
	}
	if input.Year != nil {
		year, err := domain.NewBookYear(*input.Year, now)
		if err != nil {
			return nil, err
		}
		book.Year = year
	}
	if input.Publisher != nil {
		if strings.TrimSpace(*input.Publisher) == "" {
			return nil, domain.NewValidationError("publisher", "must not be empty")
		}
		book.Publisher = *input.Publisher
	}

	book.UpdatedAt = now

	if err := s.books.Update(ctx, book); err != nil {
		return nil, err
	}

	return book, nil
}

// Delete deletes a book
func (s *BookService) Delete(ctx context.Context, id string) error {
	if _, err := s.books.GetByID(ctx, id); err != nil {
		return err
	}
	return s.books.Delete(ctx, id)
}
