package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"libraryhub/internal/core/domain"
)

// In-memory store fakes backing the service tests.

func fixedClock(t time.Time) domain.Clock {
	return func() time.Time { return t }
}

func sequenceIDs(prefix string) domain.IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

type fakeUserStore struct {
	users map[string]*domain.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*domain.User)}
}

func (s *fakeUserStore) Create(_ context.Context, user *domain.User) error {
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *fakeUserStore) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}

func (s *fakeUserStore) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(s.users))
	for _, user := range s.users {
		cp := *user
		out = append(out, &cp)
	}
	return out, nil
}

func (s *fakeUserStore) Update(_ context.Context, user *domain.User) error {
	if _, ok := s.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *fakeUserStore) Delete(_ context.Context, id string) error {
	delete(s.users, id)
	return nil
}

type fakeBookStore struct {
	books map[string]*domain.Book
}

func newFakeBookStore() *fakeBookStore {
	return &fakeBookStore{books: make(map[string]*domain.Book)}
}

func (s *fakeBookStore) Create(_ context.Context, book *domain.Book) error {
	cp := *book
	s.books[book.ID] = &cp
	return nil
}

func (s *fakeBookStore) GetByID(_ context.Context, id string) (*domain.Book, error) {
	book, ok := s.books[id]
	if !ok {
		return nil, domain.ErrBookNotFound
	}
	cp := *book
	return &cp, nil
}

func (s *fakeBookStore) List(_ context.Context) ([]*domain.Book, error) {
	return s.Search(context.Background(), "")
}

func (s *fakeBookStore) Search(_ context.Context, term string) ([]*domain.Book, error) {
	out := make([]*domain.Book, 0, len(s.books))
	for _, book := range s.books {
		if strings.Contains(strings.ToLower(book.Name), strings.ToLower(term)) {
			cp := *book
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *fakeBookStore) Update(_ context.Context, book *domain.Book) error {
	if _, ok := s.books[book.ID]; !ok {
		return domain.ErrBookNotFound
	}
	cp := *book
	s.books[book.ID] = &cp
	return nil
}

func (s *fakeBookStore) Delete(_ context.Context, id string) error {
	delete(s.books, id)
	return nil
}

type fakeLoanStore struct {
	loans map[string]*domain.Loan
}

func newFakeLoanStore() *fakeLoanStore {
	return &fakeLoanStore{loans: make(map[string]*domain.Loan)}
}

func (s *fakeLoanStore) Create(_ context.Context, loan *domain.Loan) error {
	if loan.Status == domain.LoanStatusActive {
		for _, existing := range s.loans {
			if existing.BookID == loan.BookID && existing.Status == domain.LoanStatusActive {
				return domain.ErrBookAlreadyLoaned
			}
		}
	}
	cp := *loan
	s.loans[loan.ID] = &cp
	return nil
}

func (s *fakeLoanStore) GetByID(_ context.Context, id string) (*domain.Loan, error) {
	loan, ok := s.loans[id]
	if !ok {
		return nil, domain.ErrLoanNotFound
	}
	cp := *loan
	return &cp, nil
}

func (s *fakeLoanStore) List(_ context.Context) ([]*domain.Loan, error) {
	out := make([]*domain.Loan, 0, len(s.loans))
	for _, loan := range s.loans {
		cp := *loan
		out = append(out, &cp)
	}
	return out, nil
}

func (s *fakeLoanStore) ListByUser(_ context.Context, userID string) ([]*domain.Loan, error) {
	var out []*domain.Loan
	for _, loan := range s.loans {
		if loan.UserID == userID {
			cp := *loan
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *fakeLoanStore) ListByBook(_ context.Context, bookID string) ([]*domain.Loan, error) {
	var out []*domain.Loan
	for _, loan := range s.loans {
		if loan.BookID == bookID {
			cp := *loan
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *fakeLoanStore) FindActiveByBook(_ context.Context, bookID string) (*domain.Loan, error) {
	for _, loan := range s.loans {
		if loan.BookID == bookID && loan.Status == domain.LoanStatusActive {
			cp := *loan
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *fakeLoanStore) ListActiveDueBefore(_ context.Context, t time.Time) ([]*domain.Loan, error) {
	var out []*domain.Loan
	for _, loan := range s.loans {
		if loan.Status == domain.LoanStatusActive && loan.ReturnDate.Before(t) {
			cp := *loan
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *fakeLoanStore) Update(_ context.Context, loan *domain.Loan) error {
	if _, ok := s.loans[loan.ID]; !ok {
		return domain.ErrLoanNotFound
	}
	cp := *loan
	s.loans[loan.ID] = &cp
	return nil
}

func (s *fakeLoanStore) Delete(_ context.Context, id string) error {
	delete(s.loans, id)
	return nil
}
