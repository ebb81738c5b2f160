package domain

import (
	"context"
	"time"
)

// OutboxMessage хранит событие каталога, ожидающее публикации в брокер.
type OutboxMessage struct {
	ID            string
	AggregateType string
	AggregateID   string
	EventType     string
	Payload       []byte
}

// Key возвращает ключ партиционирования: события одного агрегата попадают в одну партицию.
func (m OutboxMessage) Key() string {
	if m.AggregateID != "" {
		return m.AggregateID
	}
	return m.ID
}

// OutboxStats содержит размер backlog и время самой старой неотправленной записи.
type OutboxStats struct {
	PendingCount    int
	OldestPendingAt time.Time
}

// OldestAge возвращает возраст самой старой pending-записи; пустой backlog даёт ноль.
func (s OutboxStats) OldestAge(now time.Time) time.Duration {
	if s.PendingCount == 0 || s.OldestPendingAt.IsZero() {
		return 0
	}
	if age := now.Sub(s.OldestPendingAt); age > 0 {
		return age
	}
	return 0
}

// OutboxPublisher доставляет событие во внешний брокер.
type OutboxPublisher interface {
	Publish(event OutboxMessage) error
}

// OutboxRepository хранит события до подтверждения доставки.
type OutboxRepository interface {
	// Enqueue сохраняет событие со статусом pending; пустой ID заполняется автоматически.
	Enqueue(ctx context.Context, msg OutboxMessage) (OutboxMessage, error)
	// PullPending возвращает до limit самых старых pending-событий.
	PullPending(ctx context.Context, limit int) ([]OutboxMessage, error)
	Stats(ctx context.Context) (OutboxStats, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string) error
}
