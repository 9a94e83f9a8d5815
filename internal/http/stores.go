package http

import (
	"context"

	"github.com/mrlokans/catalog/internal/entities"
	"github.com/mrlokans/catalog/internal/schema"
	"github.com/mrlokans/catalog/internal/services"
)

// AuthorService is what the author endpoints and UI pages need.
type AuthorService interface {
	List(ctx context.Context) ([]entities.Author, error)
	Get(ctx context.Context, id uint) (*entities.Author, error)
	Create(ctx context.Context, in schema.CreateAuthorInput) (*entities.Author, error)
	Update(ctx context.Context, id uint, patch schema.UpdateAuthorInput) (*entities.Author, error)
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context) (services.CatalogStats, error)
}

// BookService is what the book endpoints and UI pages need.
type BookService interface {
	List(ctx context.Context) ([]entities.Book, error)
	ListByAuthor(ctx context.Context, authorID uint) ([]entities.Book, error)
	Get(ctx context.Context, id uint) (*entities.Book, error)
	Create(ctx context.Context, in schema.CreateBookInput) (*entities.Book, error)
	Update(ctx context.Context, id uint, patch schema.UpdateBookInput) (*entities.Book, error)
	Delete(ctx context.Context, id uint) error
}
