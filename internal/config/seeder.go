package config

import (
	"log"
	"time"

	"libraryhub/internal/adapters/persistence/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders. Development only; the catalog seed is
// skipped as soon as any book exists.
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedCatalog(); err != nil {
		log.Printf("⚠️ Catalog seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedCatalog seeds a small demo catalog
func (s *Seeder) seedCatalog() error {
	var count int64
	s.db.Model(&models.BookRecord{}).Count(&count)
	if count > 0 {
		return nil // catalog already populated
	}

	now := time.Now()
	books := []*models.BookRecord{
		{ID: uuid.NewString(), Name: "O Hobbit", Year: 1937, Publisher: "Allen & Unwin", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.NewString(), Name: "O Senhor dos Anéis", Year: 1954, Publisher: "Allen & Unwin", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.NewString(), Name: "Dom Casmurro", Year: 1899, Publisher: "Livraria Garnier", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.NewString(), Name: "Grande Sertão Veredas", Year: 1956, Publisher: "José Olympio", CreatedAt: now, UpdatedAt: now},
	}

	if err := s.db.Create(&books).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded %d demo books", len(books))
	return nil
}
