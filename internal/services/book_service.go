package services

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/mrlokans/catalog/internal/database"
	"github.com/mrlokans/catalog/internal/entities"
	"github.com/mrlokans/catalog/internal/schema"
)

// BookService validates that every book points at a stored author before
// writing it. The check and the write are separate statements; a concurrent
// author delete in between is caught by the foreign key and reported the
// same way.
type BookService struct {
	books   BookStore
	authors AuthorChecker
}

func NewBookService(books BookStore, authors AuthorChecker) *BookService {
	return &BookService{books: books, authors: authors}
}

func (s *BookService) List(ctx context.Context) ([]entities.Book, error) {
	return s.books.List(ctx)
}

// ListByAuthor returns the books of one author, newest first.
func (s *BookService) ListByAuthor(ctx context.Context, authorID uint) ([]entities.Book, error) {
	return s.books.ListByAuthor(ctx, authorID)
}

func (s *BookService) Get(ctx context.Context, id uint) (*entities.Book, error) {
	book, err := s.books.GetByID(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, bookNotFound(id)
	}
	return book, err
}

func (s *BookService) Create(ctx context.Context, in schema.CreateBookInput) (*entities.Book, error) {
	if err := s.authorMustExist(ctx, in.AuthorID); err != nil {
		return nil, err
	}
	book, err := s.books.Create(ctx, in)
	if isForeignKeyViolation(err) {
		return nil, unknownAuthor(in.AuthorID)
	}
	if err != nil {
		return nil, err
	}
	log.Info().Uint("book_id", book.ID).Uint("author_id", book.AuthorID).Msg("Book created")
	return book, nil
}

func (s *BookService) Update(ctx context.Context, id uint, patch schema.UpdateBookInput) (*entities.Book, error) {
	if err := s.mustExist(ctx, id); err != nil {
		return nil, err
	}
	if patch.AuthorID != nil {
		if err := s.authorMustExist(ctx, *patch.AuthorID); err != nil {
			return nil, err
		}
	}

	book, err := s.books.Update(ctx, id, patch)
	switch {
	case errors.Is(err, database.ErrNotFound):
		return nil, bookNotFound(id)
	case isForeignKeyViolation(err) && patch.AuthorID != nil:
		return nil, unknownAuthor(*patch.AuthorID)
	}
	return book, err
}

func (s *BookService) Delete(ctx context.Context, id uint) error {
	if err := s.mustExist(ctx, id); err != nil {
		return err
	}
	err := s.books.Delete(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return bookNotFound(id)
	}
	if err != nil {
		return err
	}
	log.Info().Uint("book_id", id).Msg("Book deleted")
	return nil
}

func (s *BookService) mustExist(ctx context.Context, id uint) error {
	exists, err := s.books.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return bookNotFound(id)
	}
	return nil
}

func (s *BookService) authorMustExist(ctx context.Context, authorID uint) error {
	exists, err := s.authors.Exists(ctx, authorID)
	if err != nil {
		return err
	}
	if !exists {
		return unknownAuthor(authorID)
	}
	return nil
}

func isForeignKeyViolation(err error) bool {
	var constraintErr *database.ConstraintError
	return errors.As(err, &constraintErr) && constraintErr.ForeignKey()
}
