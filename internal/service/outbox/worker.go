// Package outbox доставляет события каталога из transactional outbox в брокер.
package outbox

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
)

const (
	defaultPollInterval   = time.Second
	defaultBatchSize      = 100
	defaultMaxAttempts    = 3
	defaultRetryBaseDelay = 50 * time.Millisecond
	maxRetryDelay         = 5 * time.Second
)

// Option настраивает Worker.
type Option func(*Worker)

// WithLogger задаёт logger воркера.
func WithLogger(logger *log.Entry) Option {
	return func(w *Worker) { w.logger = logger }
}

// WithDLQPublisher включает отправку недоставленных событий в DLQ.
func WithDLQPublisher(publisher domain.OutboxPublisher) Option {
	return func(w *Worker) { w.dlq = publisher }
}

// WithPollInterval задаёт период опроса outbox.
func WithPollInterval(interval time.Duration) Option {
	return func(w *Worker) { w.pollInterval = interval }
}

// WithBatchSize ограничивает число событий за один цикл.
func WithBatchSize(size int) Option {
	return func(w *Worker) { w.batchSize = size }
}

// WithMaxAttempts задаёт число попыток публикации одного события.
func WithMaxAttempts(attempts int) Option {
	return func(w *Worker) { w.maxAttempts = attempts }
}

// WithRetryBaseDelay задаёт первую паузу между попытками; дальше она удваивается.
func WithRetryBaseDelay(delay time.Duration) Option {
	return func(w *Worker) { w.retryDelay = delay }
}

// Result подводит итог одного цикла ProcessOnce.
type Result struct {
	Sent   int
	Failed int
}

// Worker вычитывает pending-события и публикует их.
// Событие отмечается sent после успешной публикации и failed после исчерпания попыток.
type Worker struct {
	repo      domain.OutboxRepository
	publisher domain.OutboxPublisher
	dlq       domain.OutboxPublisher
	logger    *log.Entry
	now       func() time.Time

	pollInterval time.Duration
	batchSize    int
	maxAttempts  int
	retryDelay   time.Duration
}

// NewWorker создаёт воркер; некорректные значения опций заменяются значениями по умолчанию.
func NewWorker(repo domain.OutboxRepository, publisher domain.OutboxPublisher, options ...Option) *Worker {
	w := &Worker{
		repo:         repo,
		publisher:    publisher,
		now:          time.Now,
		pollInterval: defaultPollInterval,
		batchSize:    defaultBatchSize,
		maxAttempts:  defaultMaxAttempts,
		retryDelay:   defaultRetryBaseDelay,
	}
	for _, option := range options {
		option(w)
	}

	if w.logger == nil {
		w.logger = log.WithField("component", "outbox-worker")
	}
	if w.pollInterval <= 0 {
		w.pollInterval = defaultPollInterval
	}
	if w.batchSize <= 0 {
		w.batchSize = defaultBatchSize
	}
	if w.maxAttempts <= 0 {
		w.maxAttempts = defaultMaxAttempts
	}
	if w.retryDelay < 0 {
		w.retryDelay = 0
	}
	return w
}

// Run опрашивает outbox до отмены ctx. Первый цикл выполняется сразу.
func (w *Worker) Run(ctx context.Context) {
	if w.repo == nil || w.publisher == nil {
		w.logger.Warn("outbox worker disabled: repository or publisher is missing")
		return
	}

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		result := w.ProcessOnce(ctx)
		if result.Sent+result.Failed > 0 {
			w.logger.WithFields(log.Fields{
				"sent":   result.Sent,
				"failed": result.Failed,
			}).Debug("outbox batch processed")
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// ProcessOnce публикует одну пачку pending-событий в порядке их записи.
func (w *Worker) ProcessOnce(ctx context.Context) Result {
	var result Result
	if ctx.Err() != nil {
		return result
	}

	w.refreshBacklog(ctx)
	defer w.refreshBacklog(ctx)

	events, err := w.repo.PullPending(ctx, w.batchSize)
	if err != nil {
		w.logger.WithError(err).Warn("pull pending outbox events")
		return result
	}

	// Отметки пишутся без отмены, чтобы остановка не оставила опубликованное событие pending.
	markCtx := context.WithoutCancel(ctx)
	for _, event := range events {
		if ctx.Err() != nil {
			break
		}
		entry := w.logger.WithFields(log.Fields{
			"outbox_id":    event.ID,
			"event_type":   event.EventType,
			"aggregate_id": event.AggregateID,
		})

		if err := w.deliver(ctx, event); err != nil {
			result.Failed++
			observeAttempt(event, resultFailed)
			entry.WithError(err).Error("outbox event not delivered")

			w.deadLetter(event, err, entry)
			if err := w.repo.MarkFailed(markCtx, event.ID); err != nil {
				entry.WithError(err).Warn("mark outbox event failed")
			}
			continue
		}

		result.Sent++
		if err := w.repo.MarkSent(markCtx, event.ID); err != nil {
			entry.WithError(err).Warn("mark outbox event sent")
		}
	}
	return result
}

func (w *Worker) deliver(ctx context.Context, event domain.OutboxMessage) error {
	var err error
	for attempt := 1; attempt <= w.maxAttempts; attempt++ {
		if err = w.publisher.Publish(event); err == nil {
			observeAttempt(event, resultSent)
			return nil
		}
		observeAttempt(event, resultRetry)
		if attempt == w.maxAttempts {
			break
		}

		if delay := w.backoff(attempt); delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}
	}
	return fmt.Errorf("publish after %d attempts: %w", w.maxAttempts, err)
}

// backoff возвращает паузу перед попыткой attempt+1: base, 2*base, 4*base, но не больше maxRetryDelay.
func (w *Worker) backoff(attempt int) time.Duration {
	if w.retryDelay <= 0 {
		return 0
	}
	delay := w.retryDelay
	for i := 1; i < attempt; i++ {
		if delay >= maxRetryDelay/2 {
			return maxRetryDelay
		}
		delay *= 2
	}
	return min(delay, maxRetryDelay)
}

func (w *Worker) deadLetter(event domain.OutboxMessage, cause error, entry *log.Entry) {
	if w.dlq == nil {
		return
	}
	msg, err := newDeadLetter(event, cause, w.now()).Message()
	if err == nil {
		err = w.dlq.Publish(msg)
	}
	if err != nil {
		observeAttempt(event, resultDLQFailed)
		entry.WithError(err).Warn("publish outbox event to dlq")
	}
}

func (w *Worker) refreshBacklog(ctx context.Context) {
	stats, err := w.repo.Stats(context.WithoutCancel(ctx))
	if err != nil {
		w.logger.WithError(err).Warn("collect outbox backlog stats")
		return
	}
	observeBacklog(stats, w.now())
}
