// Package idempotency удаляет просроченные ключи идемпотентности.
package idempotency

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
)

const (
	defaultInterval  = 10 * time.Minute
	defaultBatchSize = 500
)

var (
	cleanupRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_idempotency_cleanup_runs_total",
		Help: "Idempotency cleanup runs by result.",
	}, []string{"result"})
	cleanupDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_idempotency_cleanup_deleted_total",
		Help: "Expired idempotency keys removed by cleanup.",
	})
)

// CleanupOption настраивает CleanupWorker.
type CleanupOption func(*CleanupWorker)

func WithLogger(logger *log.Entry) CleanupOption {
	return func(w *CleanupWorker) { w.logger = logger }
}

func WithInterval(interval time.Duration) CleanupOption {
	return func(w *CleanupWorker) { w.interval = interval }
}

// WithBatchSize ограничивает число ключей, удаляемых одним запросом.
func WithBatchSize(size int) CleanupOption {
	return func(w *CleanupWorker) { w.batchSize = size }
}

// WithGrace оставляет ключи жить ещё grace после истечения TTL.
func WithGrace(grace time.Duration) CleanupOption {
	return func(w *CleanupWorker) { w.grace = grace }
}

func WithClock(now func() time.Time) CleanupOption {
	return func(w *CleanupWorker) { w.now = now }
}

// CleanupWorker по таймеру вычищает ключи, чей TTL истёк раньше now-grace.
type CleanupWorker struct {
	repo      domain.IdempotencyRepository
	logger    *log.Entry
	interval  time.Duration
	batchSize int
	grace     time.Duration
	now       func() time.Time
}

func NewCleanupWorker(repo domain.IdempotencyRepository, options ...CleanupOption) *CleanupWorker {
	w := &CleanupWorker{
		repo:      repo,
		interval:  defaultInterval,
		batchSize: defaultBatchSize,
		now:       time.Now,
	}
	for _, option := range options {
		option(w)
	}

	if w.logger == nil {
		w.logger = log.WithField("component", "idempotency-cleanup")
	}
	if w.interval <= 0 {
		w.interval = defaultInterval
	}
	if w.batchSize <= 0 {
		w.batchSize = defaultBatchSize
	}
	w.grace = max(w.grace, 0)
	if w.now == nil {
		w.now = time.Now
	}
	return w
}

// Run чистит ключи сразу и затем каждые interval до отмены ctx.
func (w *CleanupWorker) Run(ctx context.Context) {
	if w.repo == nil {
		w.logger.Warn("idempotency cleanup disabled: repository is missing")
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.sweep(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (w *CleanupWorker) sweep(ctx context.Context) {
	before := w.cutoff()
	deleted, err := w.DeleteExpired(ctx, before)
	switch {
	case errors.Is(err, context.Canceled):
		return
	case err != nil:
		cleanupRuns.WithLabelValues("error").Inc()
		w.logger.WithError(err).WithField("deleted", deleted).Warn("idempotency cleanup failed")
		return
	}

	cleanupRuns.WithLabelValues("ok").Inc()
	if deleted > 0 {
		w.logger.WithFields(log.Fields{
			"deleted": deleted,
			"before":  before.Format(time.RFC3339),
		}).Info("expired idempotency keys removed")
	}
}

func (w *CleanupWorker) cutoff() time.Time {
	return w.now().UTC().Add(-w.grace)
}

// DeleteExpired удаляет ключи с ttl_at <= before пачками, пока очередная пачка не окажется неполной.
// Нулевой before заменяется на now-grace.
func (w *CleanupWorker) DeleteExpired(ctx context.Context, before time.Time) (int, error) {
	if before.IsZero() {
		before = w.cutoff()
	}

	total := 0
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		n, err := w.repo.DeleteExpired(ctx, before, w.batchSize)
		if err != nil {
			return total, err
		}
		total += n
		cleanupDeleted.Add(float64(n))
		if n < w.batchSize {
			return total, nil
		}
	}
}
