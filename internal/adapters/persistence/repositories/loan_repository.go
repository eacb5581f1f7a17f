package repositories

import (
	"context"
	"errors"
	"time"

	"libraryhub/internal/adapters/persistence/models"
	"libraryhub/internal/core/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LoanRepository handles loan data access
type LoanRepository struct {
	db *gorm.DB
}

// NewLoanRepository creates a new loan repository
func NewLoanRepository(db *gorm.DB) *LoanRepository {
	return &LoanRepository{db: db}
}

// Create creates a new loan. For ACTIVE loans the "one active loan per
// book" invariant is re-checked inside a transaction with a locking
// read, so concurrent creates for the same book serialize here and the
// loser gets domain.ErrBookAlreadyLoaned.
func (r *LoanRepository) Create(ctx context.Context, loan *domain.Loan) error {
	record := models.LoanRecordFromDomain(loan)

	if loan.Status != domain.LoanStatusActive {
		return r.db.WithContext(ctx).Create(record).Error
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.LoanRecord{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("book_id = ? AND status = ?", loan.BookID, string(domain.LoanStatusActive)).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrBookAlreadyLoaned
		}
		return tx.Create(record).Error
	})
}

// GetByID gets a loan by ID
func (r *LoanRepository) GetByID(ctx context.Context, id string) (*domain.Loan, error) {
	var record models.LoanRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLoanNotFound
		}
		return nil, err
	}
	return record.ToDomain()
}

// List lists all loans
func (r *LoanRepository) List(ctx context.Context) ([]*domain.Loan, error) {
	var records []*models.LoanRecord
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return toDomainLoans(records)
}

// ListByUser lists loans made by a user
func (r *LoanRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Loan, error) {
	var records []*models.LoanRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return toDomainLoans(records)
}

// ListByBook lists loans taken on a book
func (r *LoanRepository) ListByBook(ctx context.Context, bookID string) ([]*domain.Loan, error) {
	var records []*models.LoanRecord
	err := r.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return toDomainLoans(records)
}

// FindActiveByBook returns the book's active loan, or (nil, nil) when
// the book is not currently checked out.
func (r *LoanRepository) FindActiveByBook(ctx context.Context, bookID string) (*domain.Loan, error) {
	var record models.LoanRecord
	err := r.db.WithContext(ctx).
		Where("book_id = ? AND status = ?", bookID, string(domain.LoanStatusActive)).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return record.ToDomain()
}

// ListActiveDueBefore lists ACTIVE loans whose return date is before t
func (r *LoanRepository) ListActiveDueBefore(ctx context.Context, t time.Time) ([]*domain.Loan, error) {
	var records []*models.LoanRecord
	err := r.db.WithContext(ctx).
		Where("status = ? AND return_date < ?", string(domain.LoanStatusActive), t).
		Order("return_date ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return toDomainLoans(records)
}

// Update updates a loan
func (r *LoanRepository) Update(ctx context.Context, loan *domain.Loan) error {
	return r.db.WithContext(ctx).Save(models.LoanRecordFromDomain(loan)).Error
}

// Delete deletes a loan
func (r *LoanRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.LoanRecord{}, "id = ?", id).Error
}

func toDomainLoans(records []*models.LoanRecord) ([]*domain.Loan, error) {
	loans := make([]*domain.Loan, 0, len(records))
	for _, record := range records {
		loan, err := record.ToDomain()
		if err != nil {
			return nil, err
		}
		loans = append(loans, loan)
	}
	return loans, nil
}
