package services

import (
	"context"
	"testing"
	"time"

	"libraryhub/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.April, 2, 14, 0, 0, 0, time.UTC)

type loanFixture struct {
	users *fakeUserStore
	books *fakeBookStore
	loans *fakeLoanStore
	svc   *LoanService
}

func newLoanFixture(t *testing.T) *loanFixture {
	t.Helper()

	f := &loanFixture{
		users: newFakeUserStore(),
		books: newFakeBookStore(),
		loans: newFakeLoanStore(),
	}
	f.svc = NewLoanService(f.users, f.books, f.loans)
	f.svc.clock = fixedClock(testNow)
	f.svc.idGen = sequenceIDs("loan")
	return f
}

func (f *loanFixture) addUser(t *testing.T, id, rawName, city, category string) *domain.User {
	t.Helper()

	name, err := domain.ParseName(rawName)
	require.NoError(t, err)
	cat, err := domain.ParseCategory(category)
	require.NoError(t, err)

	user := domain.NewUser(id, name, city, cat, testNow)
	require.NoError(t, f.users.Create(context.Background(), user))
	return user
}

func (f *loanFixture) addBook(t *testing.T, id, name string, year int, publisher string) *domain.Book {
	t.Helper()

	bookYear, err := domain.NewBookYear(year, testNow)
	require.NoError(t, err)

	book := domain.NewBook(id, name, bookYear, publisher, testNow)
	require.NoError(t, f.books.Create(context.Background(), book))
	return book
}

func TestCreateLoanStudentPeriod(t *testing.T) {
	f := newLoanFixture(t)
	user := f.addUser(t, "user-1", "João Silva", "São Paulo", "STUDENT")
	book := f.addBook(t, "book-1", "O Hobbit", 1937, "Allen & Unwin")

	loan, err := f.svc.Create(context.Background(), &CreateLoanInput{UserID: user.ID, BookID: book.ID})
	require.NoError(t, err)

	assert.Equal(t, "loan-1", loan.ID)
	assert.Equal(t, domain.LoanStatusActive, loan.Status)
	assert.Equal(t, testNow, loan.LoanDate)
	assert.Equal(t, testNow.AddDate(0, 0, 10), loan.ReturnDate)

	stored, err := f.loans.GetByID(context.Background(), loan.ID)
	require.NoError(t, err)
	assert.Equal(t, loan, stored)
}

func TestCreateLoanPeriodsByCategory(t *testing.T) {
	f := newLoanFixture(t)
	teacher := f.addUser(t, "user-1", "Ana Souza", "Recife", "TEACHER")
	librarian := f.addUser(t, "user-2", "Bruno Costa", "Salvador", "LIBRARIAN")
	bookA := f.addBook(t, "book-1", "Dom Casmurro", 1899, "Livraria Garnier")
	bookB := f.addBook(t, "book-2", "Vidas Secas", 1938, "José Olympio")

	teacherLoan, err := f.svc.Create(context.Background(), &CreateLoanInput{UserID: teacher.ID, BookID: bookA.ID})
	require.NoError(t, err)
	assert.Equal(t, testNow.AddDate(0, 0, 30), teacherLoan.ReturnDate)

	librarianLoan, err := f.svc.Create(context.Background(), &CreateLoanInput{UserID: librarian.ID, BookID: bookB.ID})
	require.NoError(t, err)
	assert.Equal(t, testNow.AddDate(0, 0, 60), librarianLoan.ReturnDate)
}

func TestCreateLoanBookAlreadyLoaned(t *testing.T) {
	f := newLoanFixture(t)
	first := f.addUser(t, "user-1", "João Silva", "São Paulo", "STUDENT")
	second := f.addUser(t, "user-2", "Maria Lima", "Curitiba", "TEACHER")
	book := f.addBook(t, "book-1", "O Hobbit", 1937, "Allen & Unwin")

	_, err := f.svc.Create(context.Background(), &CreateLoanInput{UserID: first.ID, BookID: book.ID})
	require.NoError(t, err)

	_, err = f.svc.Create(context.Background(), &CreateLoanInput{UserID: second.ID, BookID: book.ID})
	assert.ErrorIs(t, err, domain.ErrBookAlreadyLoaned)

	// only the first loan exists
	all, err := f.loans.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCreateLoanAfterReturnSucceeds(t *testing.T) {
	f := newLoanFixture(t)
	user := f.addUser(t, "user-1", "João Silva", "São Paulo", "STUDENT")
	book := f.addBook(t, "book-1", "O Hobbit", 1937, "Allen & Unwin")

	loan, err := f.svc.Create(context.Background(), &CreateLoanInput{UserID: user.ID, BookID: book.ID})
	require.NoError(t, err)

	_, err = f.svc.Return(context.Background(), loan.ID)
	require.NoError(t, err)

	_, err = f.svc.Create(context.Background(), &CreateLoanInput{UserID: user.ID, BookID: book.ID})
	require.NoError(t, err)
}

func TestCreateLoanUserNotFound(t *testing.T) {
	f := newLoanFixture(t)
	book := f.addBook(t, "book-1", "O Hobbit", 1937, "Allen & Unwin")

	_, err := f.svc.Create(context.Background(), &CreateLoanInput{UserID: "missing", BookID: book.ID})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	// the gate fails before any state change
	active, err := f.loans.FindActiveByBook(context.Background(), book.ID)
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestCreateLoanBookNotFound(t *testing.T) {
	f := newLoanFixture(t)
	user := f.addUser(t, "user-1", "João Silva", "São Paulo", "STUDENT")

	_, err := f.svc.Create(context.Background(), &CreateLoanInput{UserID: user.ID, BookID: "missing"})
	assert.ErrorIs(t, err, domain.ErrBookNotFound)
}

func TestReturnLoan(t *testing.T) {
	f := newLoanFixture(t)
	user := f.addUser(t, "user-1", "João Silva", "São Paulo", "STUDENT")
	book := f.addBook(t, "book-1", "O Hobbit", 1937, "Allen & Unwin")

	loan, err := f.svc.Create(context.Background(), &CreateLoanInput{UserID: user.ID, BookID: book.ID})
	require.NoError(t, err)

	returned, err := f.svc.Return(context.Background(), loan.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LoanStatusReturned, returned.Status)

	// terminal loans are rejected, not silently ignored
	_, err = f.svc.Return(context.Background(), loan.ID)
	assert.ErrorIs(t, err, domain.ErrLoanNotActive)

	_, err = f.svc.MarkOverdue(context.Background(), loan.ID)
	assert.ErrorIs(t, err, domain.ErrLoanNotActive)
}

func TestReturnLoanNotFound(t *testing.T) {
	f := newLoanFixture(t)

	_, err := f.svc.Return(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrLoanNotFound)
}

func TestListByUserAndBook(t *testing.T) {
	f := newLoanFixture(t)
	user := f.addUser(t, "user-1", "João Silva", "São Paulo", "STUDENT")
	book := f.addBook(t, "book-1", "O Hobbit", 1937, "Allen & Unwin")

	_, err := f.svc.Create(context.Background(), &CreateLoanInput{UserID: user.ID, BookID: book.ID})
	require.NoError(t, err)

	byUser, err := f.svc.ListByUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Len(t, byUser, 1)

	byBook, err := f.svc.ListByBook(context.Background(), book.ID)
	require.NoError(t, err)
	assert.Len(t, byBook, 1)

	_, err = f.svc.ListByUser(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = f.svc.ListByBook(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrBookNotFound)
}
