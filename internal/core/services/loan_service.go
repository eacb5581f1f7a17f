package services

import (
	"context"

	"libraryhub/internal/core/domain"
)

// LoanService handles the loan lifecycle and eligibility policy
type LoanService struct {
	users UserStore
	books BookStore
	loans LoanStore
	clock domain.Clock
	idGen domain.IDGenerator
}

// NewLoanService creates a new loan service
func NewLoanService(users UserStore, books BookStore, loans LoanStore) *LoanService {
	return &LoanService{
		users: users,
		books: books,
		loans: loans,
	}
}

// CreateLoanInput represents create loan input
type CreateLoanInput struct {
	UserID string `json:"user_id" validate:"required"`
	BookID string `json:"book_id" validate:"required"`
}

// Create runs the eligibility checks in order and persists a new ACTIVE
// loan. Each gate stops the operation on first failure; the only
// state-changing step is the final store call. The return date comes
// from the borrower's category at creation time.
func (s *LoanService) Create(ctx context.Context, input *CreateLoanInput) (*domain.Loan, error) {
	user, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if _, err := s.books.GetByID(ctx, input.BookID); err != nil {
		return nil, err
	}

	active, err := s.loans.FindActiveByBook(ctx, input.BookID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, domain.ErrBookAlreadyLoaned
	}

	loan := domain.NewLoan(s.idGen.NewID(), user.ID, input.BookID, user.Category, s.clock.Now())

	// The store re-checks the invariant transactionally; a concurrent
	// create for the same book loses here with ErrBookAlreadyLoaned.
	if err := s.loans.Create(ctx, loan); err != nil {
		return nil, err
	}

	return loan, nil
}

// GetByID gets a loan by ID
func (s *LoanService) GetByID(ctx context.Context, id string) (*domain.Loan, error) {
	return s.loans.GetByID(ctx, id)
}

// List lists all loans
func (s *LoanService) List(ctx context.Context) ([]*domain.Loan, error) {
	return s.loans.List(ctx)
}

// ListByUser lists loans made by a user
func (s *LoanService) ListByUser(ctx context.Context, userID string) ([]*domain.Loan, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.loans.ListByUser(ctx, userID)
}

// ListByBook lists loans taken on a book
func (s *LoanService) ListByBook(ctx context.Context, bookID string) ([]*domain.Loan, error) {
	if _, err := s.books.GetByID(ctx, bookID); err != nil {
		return nil, err
	}
	return s.loans.ListByBook(ctx, bookID)
}

// Return transitions a loan to RETURNED. Loans that are no longer
// ACTIVE are rejected with domain.ErrLoanNotActive.
func (s *LoanService) Return(ctx context.Context, id string) (*domain.Loan, error) {
	loan, err := s.loans.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := loan.Return(s.clock.Now()); err != nil {
		return nil, err
	}

	if err := s.loans.Update(ctx, loan); err != nil {
		return nil, err
	}

	return loan, nil
}

// MarkOverdue transitions a loan to OVERDUE. Loans that are no longer
// ACTIVE are rejected with domain.ErrLoanNotActive.
func (s *LoanService) MarkOverdue(ctx context.Context, id string) (*domain.Loan, error) {
	loan, err := s.loans.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := loan.MarkOverdue(s.clock.Now()); err != nil {
		return nil, err
	}

	if err := s.loans.Update(ctx, loan); err != nil {
		return nil, err
	}

	return loan, nil
}
