package services

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/mrlokans/catalog/internal/database"
	"github.com/mrlokans/catalog/internal/entities"
	"github.com/mrlokans/catalog/internal/schema"
)

type AuthorService struct {
	authors AuthorStore
	books   Counter
}

func NewAuthorService(authors AuthorStore, books Counter) *AuthorService {
	return &AuthorService{authors: authors, books: books}
}

func (s *AuthorService) List(ctx context.Context) ([]entities.Author, error) {
	return s.authors.List(ctx)
}

// Get returns the author with its books or a *NotFoundError.
func (s *AuthorService) Get(ctx context.Context, id uint) (*entities.Author, error) {
	author, err := s.authors.GetByID(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, authorNotFound(id)
	}
	return author, err
}

func (s *AuthorService) Create(ctx context.Context, in schema.CreateAuthorInput) (*entities.Author, error) {
	author, err := s.authors.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	log.Info().Uint("author_id", author.ID).Msg("Author created")
	return author, nil
}

func (s *AuthorService) Update(ctx context.Context, id uint, patch schema.UpdateAuthorInput) (*entities.Author, error) {
	if err := s.mustExist(ctx, id); err != nil {
		return nil, err
	}
	author, err := s.authors.Update(ctx, id, patch)
	if errors.Is(err, database.ErrNotFound) {
		return nil, authorNotFound(id)
	}
	return author, err
}

// Delete removes the author. Its books go with it through the storage cascade.
func (s *AuthorService) Delete(ctx context.Context, id uint) error {
	if err := s.mustExist(ctx, id); err != nil {
		return err
	}
	err := s.authors.Delete(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return authorNotFound(id)
	}
	if err != nil {
		return err
	}
	log.Info().Uint("author_id", id).Msg("Author deleted")
	return nil
}

// Stats returns catalog totals.
func (s *AuthorService) Stats(ctx context.Context) (CatalogStats, error) {
	authors, err := s.authors.Count(ctx)
	if err != nil {
		return CatalogStats{}, err
	}
	books, err := s.books.Count(ctx)
	if err != nil {
		return CatalogStats{}, err
	}
	return CatalogStats{Authors: authors, Books: books}, nil
}

func (s *AuthorService) mustExist(ctx context.Context, id uint) error {
	exists, err := s.authors.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return authorNotFound(id)
	}
	return nil
}
