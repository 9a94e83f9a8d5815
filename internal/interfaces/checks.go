package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/catalog/internal/database/authors"
	"github.com/mrlokans/catalog/internal/database/books"
	"github.com/mrlokans/catalog/internal/http"
	"github.com/mrlokans/catalog/internal/scheduler"
	"github.com/mrlokans/catalog/internal/services"
	"github.com/mrlokans/catalog/internal/tasks"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// AuthorStore implementations
var _ services.AuthorStore = (*authors.Repository)(nil)
var _ services.AuthorChecker = (*authors.Repository)(nil)

// BookStore implementations
var _ services.BookStore = (*books.Repository)(nil)
var _ services.Counter = (*books.Repository)(nil)

// =============================================================================
// Domain Services
// =============================================================================

var _ http.AuthorService = (*services.AuthorService)(nil)
var _ http.BookService = (*services.BookService)(nil)

// =============================================================================
// Background Work
// =============================================================================

// CatalogResetter implementations
var _ scheduler.CatalogResetter = (*tasks.Client)(nil)
