// Package books provides database operations for catalog book records.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	all, err := repo.List()
package books

import (
	"errors"
	"strconv"

	"gorm.io/gorm"

	"github.com/hondana/hondana/internal/entities"
)

// Fields is the explicit field bag for insert and update. Every descriptive
// column is replaced on every write; there is no partial patch.
type Fields struct {
	Title         string
	Hepburn       string
	Author        string
	PublishedDate string
	Release       string
	URL           string
	Summary       string
	CategoryID    *uint
}

// NormalizeCategoryID turns raw form input into a nullable category
// reference: empty or unparseable input means "no category" (NULL), never a
// zero sentinel.
func NormalizeCategoryID(raw string) *uint {
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	cid := uint(id)
	return &cid
}

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every book ordered by id ascending, with the referenced
// category loaded for display.
func (r *Repository) List() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Preload("Category").Order("id ASC").Find(&books).Error
	return books, err
}

// Get returns a single book with its category loaded, or (nil, nil) when no
// row matches the id. Absence is not an error.
func (r *Repository) Get(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Preload("Category").First(&book, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// Insert writes a new row; the store assigns the id.
func (r *Repository) Insert(f Fields) error {
	book := entities.Book{
		Title:         f.Title,
		Hepburn:       f.Hepburn,
		Author:        f.Author,
		PublishedDate: f.PublishedDate,
		Release:       f.Release,
		URL:           f.URL,
		Summary:       f.Summary,
		CategoryID:    f.CategoryID,
	}
	return r.db.Create(&book).Error
}

// Update replaces all mutable columns of the row matching id. A column map is
// used so empty strings and a NULL category are written, not skipped. Zero
// rows matched is not an error.
func (r *Repository) Update(id uint, f Fields) error {
	columns := map[string]any{
		"title":          f.Title,
		"hepburn":        f.Hepburn,
		"author":         f.Author,
		"published_date": f.PublishedDate,
		"release":        f.Release,
		"url":            f.URL,
		"summary":        f.Summary,
		"category_id":    f.CategoryID,
	}
	return r.db.Model(&entities.Book{}).Where("id = ?", id).Updates(columns).Error
}

// Delete removes the row matching id; a no-op when nothing matches.
func (r *Repository) Delete(id uint) error {
	return r.db.Delete(&entities.Book{}, id).Error
}
