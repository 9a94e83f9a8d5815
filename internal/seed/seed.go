// Package seed resets the catalog to a small known data set, used for local
// development and for periodic resets of the public demo.
package seed

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/mrlokans/catalog/internal/entities"
)

// Result reports how many rows a seed run inserted.
type Result struct {
	Authors int
	Books   int
}

// Catalog returns the sample authors, each with its books.
func Catalog() []entities.Author {
	return []entities.Author{
		{
			Name: "Jiang Rong",
			Bio:  "Jiang Rong is a Chinese writer",
			Books: []entities.Book{{
				Title:         "Wolf Totem",
				Description:   "Wolf Totem is a novel by Jiang Rong, published in 2004.",
				PublishedYear: 2004,
			}},
		},
		{
			Name: "Alex Haley",
			Bio:  "Alex Haley is an American writer",
			Books: []entities.Book{{
				Title:         "Roots: The Saga of an American Family",
				Description:   "Roots is a novel by Alex Haley, published in 1976.",
				PublishedYear: 1976,
			}},
		},
	}
}

// Seed wipes every book and author and inserts Catalog in one transaction.
func Seed(ctx context.Context, db *gorm.DB) (Result, error) {
	var result Result

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entities.Book{}).Error; err != nil {
			return errors.Wrap(err, "delete books")
		}
		if err := tx.Where("1 = 1").Delete(&entities.Author{}).Error; err != nil {
			return errors.Wrap(err, "delete authors")
		}

		for _, author := range Catalog() {
			if err := tx.Create(&author).Error; err != nil {
				return errors.Wrapf(err, "create author %q", author.Name)
			}
			result.Authors++
			result.Books += len(author.Books)
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	log.Info().Int("authors", result.Authors).Int("books", result.Books).Msg("Catalog seeded")
	return result, nil
}
