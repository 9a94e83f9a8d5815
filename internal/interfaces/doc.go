// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - AuthorStore: Author persistence used by the author service (internal/services/interfaces.go)
//   - BookStore: Book persistence used by the book service (internal/services/interfaces.go)
//   - AuthorChecker: Existence check the book service runs before writes (internal/services/interfaces.go)
//   - Counter: Row totals for the UI home page (internal/services/interfaces.go)
//
// ## HTTP Layer Interfaces
//
//   - AuthorService, BookService: What controllers and UI pages need (internal/http/stores.go)
//
// ## Background Work Interfaces
//
//   - CatalogResetter: Enqueues a demo catalog reset (internal/scheduler/demo_reset.go)
//
// # Adding a New Catalog Entity
//
// To add a new entity (e.g., publishers):
//
//  1. Add the GORM model to internal/entities/ and register it in
//     database.NewDatabase's AutoMigrate call.
//
//  2. Create sub-package: internal/database/publishers/
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Add input types and rules to internal/schema/ and a service to
//     internal/services/ that depends on a narrow store interface.
//
//  4. Add a controller in internal/http/ and register its routes in router.go.
//
//  5. Add compile-time checks:
//
//     var _ services.PublisherStore = (*publishers.Repository)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// This pattern is used throughout the codebase. See checks.go for examples.
package interfaces
