// Package audit appends admin mutations to a redis stream so operators
// can reconstruct who changed which account. Recording is best-effort:
// an unavailable stream logs a warning and never fails the mutation.
package audit

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/segmentio/ksuid"

	"adminpanel/api/internal/config"
)

const (
	ActionUserCreated = "user.created"
	ActionUserUpdated = "user.updated"
	ActionUserDeleted = "user.deleted"
)

type Recorder struct {
	queue *redis.Client
	cfg   config.AuditConfig
	log   zerolog.Logger
}

func NewRecorder(queue *redis.Client, cfg config.AuditConfig, log zerolog.Logger) *Recorder {
	return &Recorder{
		queue: queue,
		cfg:   cfg,
		log:   log,
	}
}

func (r *Recorder) Record(ctx context.Context, actorID int64, action string, subjectID int64) {
	if r == nil || r.queue == nil {
		return
	}

	_, err := r.queue.XAdd(ctx, &redis.XAddArgs{
		Stream: r.cfg.Stream,
		Values: map[string]any{
			"event_id": ksuid.New().String(),
			"actor_id": actorID,
			"action":   action,
			"subject":  subjectID,
		},
	}).Result()
	if err != nil {
		r.log.Warn().Err(err).Str("action", action).Msg("audit record failed")
	}
}

// Trim caps the stream at the configured size. Called by the scheduler.
func (r *Recorder) Trim(ctx context.Context) error {
	if r == nil || r.queue == nil {
		return nil
	}
	return r.queue.XTrimMaxLenApprox(ctx, r.cfg.Stream, r.cfg.MaxEntries, 0).Err()
}
