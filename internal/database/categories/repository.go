// Package categories provides database operations for book categories.
//
// Categories have no mutating HTTP endpoints; Create exists for the seeder
// and for tests.
package categories

import (
	"gorm.io/gorm"

	"github.com/hondana/hondana/internal/entities"
)

// Repository handles all category database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new categories repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every category ordered by name ascending.
func (r *Repository) List() ([]entities.Category, error) {
	var cats []entities.Category
	err := r.db.Order("name ASC").Find(&cats).Error
	return cats, err
}

// Create inserts a category and returns it with the store-assigned id.
func (r *Repository) Create(name string) (*entities.Category, error) {
	cat := entities.Category{Name: name}
	if err := r.db.Create(&cat).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}
