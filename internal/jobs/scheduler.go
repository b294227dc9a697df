// Package jobs runs the background maintenance schedule.
package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// TokenPurger removes refresh tokens whose expiry has passed.
type TokenPurger interface {
	DeleteExpiredTokens(ctx context.Context) (int64, error)
}

type Scheduler struct {
	cron   *cron.Cron
	purger TokenPurger
	log    zerolog.Logger
}

func NewScheduler(purger TokenPurger, log zerolog.Logger) *Scheduler {
	return &Scheduler{cron: cron.New(), purger: purger, log: log}
}

// Start registers the jobs and launches the cron loop. Runs every day at
// 00:05.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc("5 0 * * *", func() {
		s.PurgeExpiredTokens(context.Background())
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop halts the cron loop and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) PurgeExpiredTokens(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	n, err := s.purger.DeleteExpiredTokens(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("purge expired refresh tokens")
		return
	}
	if n > 0 {
		s.log.Info().Int64("purged", n).Msg("expired refresh tokens removed")
	}
}
