package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// CatalogResetter enqueues a background catalog reset.
type CatalogResetter interface {
	EnqueueResetCatalog(reason string) (string, error)
}

// DemoResetScheduler periodically enqueues a catalog reset so the public demo
// returns to its sample data.
type DemoResetScheduler struct {
	resetter CatalogResetter
	schedule string

	cron      *cron.Cron
	entryID   cron.EntryID
	mu        sync.RWMutex
	isRunning bool
	done      chan struct{}
}

func newParser() cron.Parser {
	return cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}

// ValidateSchedule checks a five-field cron expression or an @descriptor.
func ValidateSchedule(schedule string) error {
	_, err := newParser().Parse(schedule)
	return err
}

// NewDemoResetScheduler creates a new scheduler instance
func NewDemoResetScheduler(resetter CatalogResetter, schedule string) *DemoResetScheduler {
	return &DemoResetScheduler{
		resetter: resetter,
		schedule: schedule,
		cron:     cron.New(cron.WithParser(newParser())),
	}
}

// Start schedules the reset job. It stops on its own when ctx is cancelled.
func (s *DemoResetScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if err := ValidateSchedule(s.schedule); err != nil {
		return errors.Wrapf(err, "invalid cron schedule '%s'", s.schedule)
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.runReset("scheduled")
	})
	if err != nil {
		return errors.Wrap(err, "failed to schedule reset job")
	}
	s.entryID = entryID

	s.cron.Start()
	s.isRunning = true
	s.done = make(chan struct{})

	log.Info().
		Str("schedule", s.schedule).
		Time("next_run", s.cron.Entry(entryID).Next).
		Msg("Demo reset scheduler started")

	go func(done <-chan struct{}) {
		select {
		case <-ctx.Done():
			s.Stop()
		case <-done:
		}
	}(s.done)

	return nil
}

// Stop waits for a running job to finish and removes the schedule.
func (s *DemoResetScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	<-s.cron.Stop().Done()
	s.cron.Remove(s.entryID)
	close(s.done)
	s.isRunning = false

	log.Info().Msg("Demo reset scheduler stopped")
}

// RunNow enqueues a reset immediately, outside the schedule.
func (s *DemoResetScheduler) RunNow() error {
	return s.runReset("manual")
}

// IsRunning returns whether the scheduler is active
func (s *DemoResetScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRun returns when the next reset will be enqueued
func (s *DemoResetScheduler) NextRun() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}
	next := s.cron.Entry(s.entryID).Next
	return &next
}

func (s *DemoResetScheduler) runReset(reason string) error {
	id, err := s.resetter.EnqueueResetCatalog(reason)
	if err != nil {
		log.Error().Err(err).Str("reason", reason).Msg("Demo reset: enqueue failed")
		return err
	}
	log.Info().Str("task_id", id).Str("reason", reason).Msg("Demo reset: enqueued")
	return nil
}
