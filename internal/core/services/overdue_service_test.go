package services

import (
	"context"
	"testing"

	"libraryhub/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverdueSweep(t *testing.T) {
	loans := newFakeLoanStore()
	svc := NewOverdueService(loans)
	svc.clock = fixedClock(testNow)

	ctx := context.Background()

	// due 10 days before the sweep runs
	expired := domain.NewLoan("loan-1", "user-1", "book-1", domain.CategoryStudent, testNow.AddDate(0, 0, -20))
	require.NoError(t, loans.Create(ctx, expired))

	// still inside its 30-day window
	current := domain.NewLoan("loan-2", "user-2", "book-2", domain.CategoryTeacher, testNow.AddDate(0, 0, -20))
	require.NoError(t, loans.Create(ctx, current))

	// expired but already returned
	returned := domain.NewLoan("loan-3", "user-3", "book-3", domain.CategoryStudent, testNow.AddDate(0, 0, -30))
	require.NoError(t, returned.Return(testNow.AddDate(0, 0, -25)))
	require.NoError(t, loans.Create(ctx, returned))

	marked, err := svc.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, marked)

	got, err := loans.GetByID(ctx, "loan-1")
	require.NoError(t, err)
	assert.Equal(t, domain.LoanStatusOverdue, got.Status)
	assert.Equal(t, testNow, got.UpdatedAt)

	got, err = loans.GetByID(ctx, "loan-2")
	require.NoError(t, err)
	assert.Equal(t, domain.LoanStatusActive, got.Status)

	got, err = loans.GetByID(ctx, "loan-3")
	require.NoError(t, err)
	assert.Equal(t, domain.LoanStatusReturned, got.Status)
}

func TestOverdueSweepIdempotent(t *testing.T) {
	loans := newFakeLoanStore()
	svc := NewOverdueService(loans)
	svc.clock = fixedClock(testNow)

	ctx := context.Background()

	expired := domain.NewLoan("loan-1", "user-1", "book-1", domain.CategoryStudent, testNow.AddDate(0, 0, -20))
	require.NoError(t, loans.Create(ctx, expired))

	marked, err := svc.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, marked)

	// already OVERDUE, nothing left to mark
	marked, err = svc.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, marked)
}

func TestOverdueSweepEmpty(t *testing.T) {
	loans := newFakeLoanStore()
	svc := NewOverdueService(loans)
	svc.clock = fixedClock(testNow)

	marked, err := svc.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, marked)
}
