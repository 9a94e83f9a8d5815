package tasks

import (
	"context"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/mrlokans/catalog/internal/seed"
)

// ResetCatalogTask restores the sample catalog, discarding whatever visitors
// changed. Enqueued by the demo scheduler.
type ResetCatalogTask struct {
	Reason string `json:"reason"`
}

// Config returns the queue configuration for catalog resets.
func (t ResetCatalogTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "reset_catalog",
		MaxAttempts: 2,
		Backoff:     10 * time.Second,
		Timeout:     time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// ResetCatalogProcessor creates a processor function for ResetCatalogTask.
func ResetCatalogProcessor(db *gorm.DB) backlite.QueueProcessor[ResetCatalogTask] {
	return func(ctx context.Context, task ResetCatalogTask) error {
		if db == nil {
			return errors.New("catalog database not configured")
		}

		result, err := seed.Seed(ctx, db)
		if err != nil {
			return errors.Wrap(err, "reset catalog")
		}

		log.Info().
			Str("reason", task.Reason).
			Int("authors", result.Authors).
			Int("books", result.Books).
			Msg("Catalog reset")
		return nil
	}
}

// NewResetCatalogQueue creates a backlite queue for catalog resets.
func NewResetCatalogQueue(db *gorm.DB) backlite.Queue {
	return backlite.NewQueue(ResetCatalogProcessor(db))
}

// EnqueueResetCatalog adds one reset task and returns its id.
func (c *Client) EnqueueResetCatalog(reason string) (string, error) {
	ids, err := c.Add(ResetCatalogTask{Reason: reason}).Save()
	if err != nil {
		return "", errors.Wrap(err, "enqueue catalog reset")
	}
	if len(ids) == 0 {
		return "", errors.New("enqueue catalog reset: no task id returned")
	}
	return ids[0], nil
}
