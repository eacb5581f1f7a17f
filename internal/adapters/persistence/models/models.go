package models

import (
	"time"

	"libraryhub/internal/core/domain"

	"gorm.io/gorm"
)

// UserRecord represents the users table
type UserRecord struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	City      string    `gorm:"size:100" json:"city"`
	Category  string    `gorm:"size:20;not null" json:"category"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserRecord) TableName() string {
	return "users"
}

// UserRecordFromDomain maps a domain user to its persistence record
func UserRecordFromDomain(u *domain.User) *UserRecord {
	return &UserRecord{
		ID:        u.ID,
		Name:      u.Name.String(),
		City:      u.City,
		Category:  u.Category.String(),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToDomain rebuilds the domain user, re-validating the value objects
func (r *UserRecord) ToDomain() (*domain.User, error) {
	name, err := domain.ParseName(r.Name)
	if err != nil {
		return nil, err
	}
	category, err := domain.ParseCategory(r.Category)
	if err != nil {
		return nil, err
	}

	return &domain.User{
		ID:        r.ID,
		Name:      name,
		City:      r.City,
		Category:  category,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}

// BookRecord represents the books table
type BookRecord struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:255;not null;index" json:"name"`
	Year      int       `gorm:"not null" json:"year"`
	Publisher string    `gorm:"size:255;not null" json:"publisher"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (BookRecord) TableName() string {
	return "books"
}

// BookRecordFromDomain maps a domain book to its persistence record
func BookRecordFromDomain(b *domain.Book) *BookRecord {
	return &BookRecord{
		ID:        b.ID,
		Name:      b.Name,
		Year:      b.Year.Int(),
		Publisher: b.Publisher,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// ToDomain rebuilds the domain book, re-validating the year
func (r *BookRecord) ToDomain() (*domain.Book, error) {
	year, err := domain.NewBookYear(r.Year, time.Now())
	if err != nil {
		return nil, err
	}

	return &domain.Book{
		ID:        r.ID,
		Name:      r.Name,
		Year:      year,
		Publisher: r.Publisher,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}

// LoanRecord represents the loans table. The (book_id, status) index
// backs the active-loan exclusivity check.
type LoanRecord struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	UserID     string    `gorm:"size:36;not null;index" json:"user_id"`
	BookID     string    `gorm:"size:36;not null;index:idx_loans_book_status" json:"book_id"`
	LoanDate   time.Time `gorm:"not null" json:"loan_date"`
	ReturnDate time.Time `gorm:"not null;index" json:"return_date"`
	Status     string    `gorm:"size:20;not null;index:idx_loans_book_status" json:"status"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Back-references by identifier only; loaded on demand
	User *UserRecord `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Book *BookRecord `gorm:"foreignKey:BookID" json:"book,omitempty"`
}

func (LoanRecord) TableName() string {
	return "loans"
}

// LoanRecordFromDomain maps a domain loan to its persistence record
func LoanRecordFromDomain(l *domain.Loan) *LoanRecord {
	return &LoanRecord{
		ID:         l.ID,
		UserID:     l.UserID,
		BookID:     l.BookID,
		LoanDate:   l.LoanDate,
		ReturnDate: l.ReturnDate,
		Status:     string(l.Status),
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}

// ToDomain rebuilds the domain loan, re-validating the status
func (r *LoanRecord) ToDomain() (*domain.Loan, error) {
	status, err := domain.ParseLoanStatus(r.Status)
	if err != nil {
		return nil, err
	}

	return &domain.Loan{
		ID:         r.ID,
		UserID:     r.UserID,
		BookID:     r.BookID,
		LoanDate:   r.LoanDate,
		ReturnDate: r.ReturnDate,
		Status:     status,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}, nil
}

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserRecord{},
		&BookRecord{},
		&LoanRecord{},
	)
}
