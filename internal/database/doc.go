// Package database provides the data access layer for the catalog.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup and schema migration
//	├── books/           # Book CRUD operations
//	└── categories/      # Category listing (read-mostly)
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	// Initialize database connection
//	db, err := database.NewDatabase("./catalog.db")
//
//	// Create domain-specific repositories
//	booksRepo := books.NewRepository(db.DB)
//	catsRepo := categories.NewRepository(db.DB)
//
//	// Use repositories
//	book, err := booksRepo.Get(123)
//	cats, err := catsRepo.List()
//
// # Interface Implementations
//
//   - books.Repository: implements http.BookStore
//   - categories.Repository: implements http.CategoryStore
//
// Every repository operation is a single auto-committed statement on the
// shared handle; connections are pooled by database/sql underneath, so each
// call acquires and releases its own connection. There are no transactions
// spanning multiple operations.
package database
