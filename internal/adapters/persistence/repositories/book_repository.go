package repositories

import (
	"context"
	"errors"

	"libraryhub/internal/adapters/persistence/models"
	"libraryhub/internal/core/domain"

	"gorm.io/gorm"
)

// BookRepository handles book data access
type BookRepository struct {
	db *gorm.DB
}

// NewBookRepository creates a new book repository
func NewBookRepository(db *gorm.DB) *BookRepository {
	return &BookRepository{db: db}
}

// Create creates a new book
func (r *BookRepository) Create(ctx context.Context, book *domain.Book) error {
	return r.db.WithContext(ctx).Create(models.BookRecordFromDomain(book)).Error
}

// GetByID gets a book by ID
func (r *BookRepository) GetByID(ctx context.Context, id string) (*domain.Book, error) {
	var record models.BookRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookNotFound
		}
		return nil, err
	}
	return record.ToDomain()
}

// List lists all books
func (r *BookRepository) List(ctx context.Context) ([]*domain.Book, error) {
	var records []*models.BookRecord
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return toDomainBooks(records)
}

// Search finds books whose name contains term, case-insensitively.
// An empty term matches every book.
func (r *BookRepository) Search(ctx context.Context, term string) ([]*domain.Book, error) {
	var records []*models.BookRecord
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE LOWER(?)", "%"+term+"%").
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return toDomainBooks(records)
}

// Update updates a book
func (r *BookRepository) Update(ctx context.Context, book *domain.Book) error {
	return r.db.WithContext(ctx).Save(models.BookRecordFromDomain(book)).Error
}

// Delete deletes a book
func (r *BookRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.BookRecord{}, "id = ?", id).Error
}

func toDomainBooks(records []*models.BookRecord) ([]*domain.Book, error) {
	books := make([]*domain.Book, 0, len(records))
	for _, record := range records {
		book, err := record.ToDomain()
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	return books, nil
}
