// Package authors provides database operations for catalog authors.
//
// Every read preloads the author's books, newest first. Errors are passed
// through database.Classify, so callers check database.ErrNotFound with
// errors.Is.
package authors

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrlokans/catalog/internal/database"
	"github.com/mrlokans/catalog/internal/entities"
	"github.com/mrlokans/catalog/internal/schema"
)

const newestFirst = "created_at DESC, id DESC"

// Repository handles all author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) withBooks(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Books", func(db *gorm.DB) *gorm.DB {
		return db.Order(newestFirst)
	})
}

// List returns every author, newest first, with their books.
func (r *Repository) List(ctx context.Context) ([]entities.Author, error) {
	authors := []entities.Author{}
	err := r.withBooks(ctx).Order(newestFirst).Find(&authors).Error
	return authors, database.Classify(err)
}

// GetByID returns the author with its books, or database.ErrNotFound.
func (r *Repository) GetByID(ctx context.Context, id uint) (*entities.Author, error) {
	var author entities.Author
	if err := r.withBooks(ctx).First(&author, id).Error; err != nil {
		return nil, database.Classify(err)
	}
	return &author, nil
}

// Create inserts a new author and returns it as stored.
func (r *Repository) Create(ctx context.Context, in schema.CreateAuthorInput) (*entities.Author, error) {
	author := entities.Author{
		Name: in.Name,
		Bio:  in.Bio,
	}
	if err := r.db.WithContext(ctx).Create(&author).Error; err != nil {
		return nil, database.Classify(err)
	}
	return r.GetByID(ctx, author.ID)
}

// Update applies the non-nil fields of the patch. It returns
// database.ErrNotFound if no author has the given id.
func (r *Repository) Update(ctx context.Context, id uint, patch schema.UpdateAuthorInput) (*entities.Author, error) {
	if id == 0 {
		return nil, database.ErrNotFound
	}
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	changes := map[string]any{}
	if patch.Name != nil {
		changes["name"] = *patch.Name
	}
	if patch.Bio != nil {
		changes["bio"] = *patch.Bio
	}

	result := r.db.WithContext(ctx).Model(&entities.Author{ID: id}).Updates(changes)
	if result.Error != nil {
		return nil, database.Classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, database.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes the author; its books are removed by the foreign key cascade.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return database.ErrNotFound
	}
	result := r.db.WithContext(ctx).Delete(&entities.Author{}, id)
	if result.Error != nil {
		return database.Classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

// Exists reports whether an author with the given id is stored.
func (r *Repository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Author{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, database.Classify(err)
	}
	return count > 0, nil
}

// Count returns the number of stored authors.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Author{}).Count(&count).Error
	return count, database.Classify(err)
}
