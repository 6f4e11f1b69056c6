package http

import (
	"github.com/hondana/hondana/internal/database/books"
	"github.com/hondana/hondana/internal/entities"
)

// BookStore is the record-store surface the catalog controller needs.
// Implemented by books.Repository.
type BookStore interface {
	List() ([]entities.Book, error)
	Get(id uint) (*entities.Book, error)
	Insert(f books.Fields) error
	Update(id uint, f books.Fields) error
	Delete(id uint) error
}

// CategoryStore lists categories for the form dropdown.
// Implemented by categories.Repository.
type CategoryStore interface {
	List() ([]entities.Category, error)
}
