package services

import (
	"context"

	"github.com/mrlokans/catalog/internal/entities"
	"github.com/mrlokans/catalog/internal/schema"
)

// AuthorStore is the persistence contract the author service depends on.
type AuthorStore interface {
	List(ctx context.Context) ([]entities.Author, error)
	GetByID(ctx context.Context, id uint) (*entities.Author, error)
	Create(ctx context.Context, in schema.CreateAuthorInput) (*entities.Author, error)
	Update(ctx context.Context, id uint, patch schema.UpdateAuthorInput) (*entities.Author, error)
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// BookStore is the persistence contract the book service depends on.
type BookStore interface {
	List(ctx context.Context) ([]entities.Book, error)
	ListByAuthor(ctx context.Context, authorID uint) ([]entities.Book, error)
	GetByID(ctx context.Context, id uint) (*entities.Book, error)
	Create(ctx context.Context, in schema.CreateBookInput) (*entities.Book, error)
	Update(ctx context.Context, id uint, patch schema.UpdateBookInput) (*entities.Book, error)
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// AuthorChecker answers whether an author exists. The book service only
// needs this much of the author store.
type AuthorChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// Counter reports how many rows a store holds.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// CatalogStats holds the totals shown on the UI home page.
type CatalogStats struct {
	Authors int64 `json:"authors"`
	Books   int64 `json:"books"`
}
