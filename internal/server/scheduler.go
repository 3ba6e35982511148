package server

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/finplan/finplan/internal/economic"
)

// Scheduler refreshes the shared economic-indicator snapshot on a cron
// schedule so daytime requests never pay the fetch latency.
type Scheduler struct {
	cron       *cron.Cron
	indicators *economic.Cache
	log        zerolog.Logger
}

// NewScheduler creates the scheduler without starting it.
func NewScheduler(indicators *economic.Cache, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:       cron.New(),
		indicators: indicators,
		log:        log.With().Str("component", "scheduler").Logger(),
	}
}

// Start registers the daily refresh job and begins the cron loop.
func (s *Scheduler) Start(spec string) error {
	if spec == "" {
		spec = "0 6 * * *"
	}
	if _, err := s.cron.AddFunc(spec, s.refresh); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info().Str("schedule", spec).Msg("indicator refresh scheduled")
	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	ind := s.indicators.Refresh(ctx)
	s.log.Info().Bool("fallback", ind.IsFallback).Msg("refreshed indicators")
}
