// Package books provides database operations for catalog books.
//
// Every read preloads the book's author. Errors are passed through
// database.Classify; writes that reference a missing author surface as a
// *database.ConstraintError whose ForeignKey method reports true.
package books

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrlokans/catalog/internal/database"
	"github.com/mrlokans/catalog/internal/entities"
	"github.com/mrlokans/catalog/internal/schema"
)

const newestFirst = "created_at DESC, id DESC"

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) withAuthor(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Author")
}

// List returns every book, newest first, with its author.
func (r *Repository) List(ctx context.Context) ([]entities.Book, error) {
	books := []entities.Book{}
	err := r.withAuthor(ctx).Order(newestFirst).Find(&books).Error
	return books, database.Classify(err)
}

// ListByAuthor returns the books written by one author, newest first.
func (r *Repository) ListByAuthor(ctx context.Context, authorID uint) ([]entities.Book, error) {
	books := []entities.Book{}
	err := r.withAuthor(ctx).Where("author_id = ?", authorID).Order(newestFirst).Find(&books).Error
	return books, database.Classify(err)
}

// GetByID returns the book with its author, or database.ErrNotFound.
func (r *Repository) GetByID(ctx context.Context, id uint) (*entities.Book, error) {
	var book entities.Book
	if err := r.withAuthor(ctx).First(&book, id).Error; err != nil {
		return nil, database.Classify(err)
	}
	return &book, nil
}

// Create inserts a new book and returns it with its author loaded.
func (r *Repository) Create(ctx context.Context, in schema.CreateBookInput) (*entities.Book, error) {
	book := entities.Book{
		Title:         in.Title,
		AuthorID:      in.AuthorID,
		Description:   in.Description,
		PublishedYear: in.PublishedYear,
	}
	if err := r.db.WithContext(ctx).Omit("Author").Create(&book).Error; err != nil {
		return nil, database.Classify(err)
	}
	return r.GetByID(ctx, book.ID)
}

// Update applies the non-nil fields of the patch. It returns
// database.ErrNotFound if no book has the given id.
func (r *Repository) Update(ctx context.Context, id uint, patch schema.UpdateBookInput) (*entities.Book, error) {
	if id == 0 {
		return nil, database.ErrNotFound
	}
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	changes := map[string]any{}
	if patch.Title != nil {
		changes["title"] = *patch.Title
	}
	if patch.AuthorID != nil {
		changes["author_id"] = *patch.AuthorID
	}
	if patch.Description != nil {
		changes["description"] = *patch.Description
	}
	if patch.PublishedYear != nil {
		changes["published_year"] = *patch.PublishedYear
	}

	result := r.db.WithContext(ctx).Model(&entities.Book{ID: id}).Updates(changes)
	if result.Error != nil {
		return nil, database.Classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, database.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *Repository) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return database.ErrNotFound
	}
	result := r.db.WithContext(ctx).Delete(&entities.Book{}, id)
	if result.Error != nil {
		return database.Classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

// Exists reports whether a book with the given id is stored.
func (r *Repository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Book{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, database.Classify(err)
	}
	return count > 0, nil
}

// Count returns the number of stored books.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Book{}).Count(&count).Error
	return count, database.Classify(err)
}
