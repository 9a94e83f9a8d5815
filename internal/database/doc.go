// Package database provides the data access layer for the catalog.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup, foreign keys, migrations
//	├── errors.go        # ErrNotFound, ConstraintError, Classify
//	├── authors/         # Author CRUD with books preloaded
//	└── books/           # Book CRUD with the author preloaded
//
// # Using Sub-packages
//
//	db, err := database.NewDatabase("./catalog.db")
//
//	authorsRepo := authors.NewRepository(db.DB)
//	booksRepo := books.NewRepository(db.DB)
//
//	author, err := authorsRepo.GetByID(ctx, 1)
//	if errors.Is(err, database.ErrNotFound) { ... }
//
// # Referential integrity
//
// Book.AuthorID carries an ON DELETE CASCADE foreign key. SQLite only enforces
// it when PRAGMA foreign_keys is on, which NewDatabase sets through the DSN so
// that it applies to every connection in the pool.
//
// # Adding a New Domain
//
//  1. Create a new sub-package: internal/database/<domain>/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Pass every error through database.Classify
//  5. Add compile-time interface check in internal/interfaces
package database
