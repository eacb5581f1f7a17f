package services

import (
	"context"
	"time"

	"libraryhub/internal/core/domain"
)

// Store contracts the policies depend on. Implementations live in
// internal/adapters/persistence/repositories; tests use in-memory fakes.
// Lookups return the domain not-found sentinels; other storage faults
// pass through unchanged.

// UserStore defines user persistence operations
type UserStore interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}

// BookStore defines book persistence operations
type BookStore interface {
	Create(ctx context.Context, book *domain.Book) error
	GetByID(ctx context.Context, id string) (*domain.Book, error)
	List(ctx context.Context) ([]*domain.Book, error)
	// Search matches name case-insensitively as a substring. An empty
	// term matches the whole catalog; no match returns an empty slice.
	Search(ctx context.Context, term string) ([]*domain.Book, error)
	Update(ctx context.Context, book *domain.Book) error
	Delete(ctx context.Context, id string) error
}

// LoanStore defines loan persistence operations. Create must uphold the
// one-active-loan-per-book invariant at the storage boundary and return
// domain.ErrBookAlreadyLoaned when it would be violated.
type LoanStore interface {
	Create(ctx context.Context, loan *domain.Loan) error
	GetByID(ctx context.Context, id string) (*domain.Loan, error)
	List(ctx context.Context) ([]*domain.Loan, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Loan, error)
	ListByBook(ctx context.Context, bookID string) ([]*domain.Loan, error)
	// FindActiveByBook returns (nil, nil) when the book has no active loan
	FindActiveByBook(ctx context.Context, bookID string) (*domain.Loan, error)
	ListActiveDueBefore(ctx context.Context, t time.Time) ([]*domain.Loan, error)
	Update(ctx context.Context, loan *domain.Loan) error
	Delete(ctx context.Context, id string) error
}
