package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"adminpanel/api/internal/audit"
)

type Scheduler struct {
	cron  *cron.Cron
	audit *audit.Recorder
	log   zerolog.Logger
}

func NewScheduler(recorder *audit.Recorder, log zerolog.Logger) *Scheduler {
	c := cron.New(cron.WithSeconds())
	return &Scheduler{
		cron:  c,
		audit: recorder,
		log:   log,
	}
}

func (s *Scheduler) Start() error {
	if s.audit == nil {
		return nil
	}

	if _, err := s.cron.AddFunc("0 0 0 * * *", s.trimAudit); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop waits for running jobs to finish, up to five seconds.
func (s *Scheduler) Stop() {
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(5 * time.Second):
		s.log.Warn().Msg("scheduler stop timed out")
	}
}

func (s *Scheduler) trimAudit() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.audit.Trim(ctx); err != nil {
		s.log.Error().Err(err).Msg("audit trim failed")
	}
}
