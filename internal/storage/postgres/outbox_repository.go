package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
)

const defaultOutboxBatch = 100

// Статусы строки outbox_messages.
const (
	outboxPending = "pending"
	outboxSent    = "sent"
	outboxFailed  = "failed"
)

// outboxRepository работает через querier, поэтому внутри WithinTx событие
// фиксируется в одной транзакции с изменением позиции или заказа.
type outboxRepository struct {
	q querier
}

// NewOutboxRepository создаёт OutboxRepository поверх пула соединений store.
func NewOutboxRepository(store *Store) domain.OutboxRepository {
	return &outboxRepository{q: store.DB()}
}

func (r *outboxRepository) Enqueue(ctx context.Context, msg domain.OutboxMessage) (domain.OutboxMessage, error) {
	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	// status, seq и created_at заполняются значениями по умолчанию таблицы.
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO outbox_messages (id, aggregate_type, aggregate_id, event_type, payload)
		 VALUES ($1, $2, $3, $4, $5)`,
		msg.ID, msg.AggregateType, msg.AggregateID, msg.EventType, msg.Payload,
	)
	if err != nil {
		return domain.OutboxMessage{}, mapWriteError("enqueue outbox "+msg.EventType, err)
	}
	return msg, nil
}

func (r *outboxRepository) PullPending(ctx context.Context, limit int) (_ []domain.OutboxMessage, err error) {
	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	if limit <= 0 {
		limit = defaultOutboxBatch
	}
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, aggregate_type, aggregate_id, event_type, payload
		 FROM outbox_messages
		 WHERE status = $1
		 ORDER BY seq
		 LIMIT $2`,
		outboxPending, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("select pending outbox: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); err == nil && closeErr != nil {
			err = closeErr
		}
	}()

	var pending []domain.OutboxMessage
	for rows.Next() {
		var msg domain.OutboxMessage
		if err := rows.Scan(&msg.ID, &msg.AggregateType, &msg.AggregateID, &msg.EventType, &msg.Payload); err != nil {
			return nil, fmt.Errorf("scan outbox row: %w", err)
		}
		pending = append(pending, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outbox rows: %w", err)
	}
	return pending, nil
}

func (r *outboxRepository) Stats(ctx context.Context) (domain.OutboxStats, error) {
	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	var (
		count  int
		oldest sql.NullTime
	)
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*), MIN(created_at) FROM outbox_messages WHERE status = $1`,
		outboxPending,
	).Scan(&count, &oldest)
	if err != nil {
		return domain.OutboxStats{}, fmt.Errorf("outbox stats: %w", err)
	}

	stats := domain.OutboxStats{PendingCount: count}
	if oldest.Valid {
		stats.OldestPendingAt = oldest.Time.UTC()
	}
	return stats, nil
}

func (r *outboxRepository) MarkSent(ctx context.Context, id string) error {
	return r.setStatus(ctx, id, outboxSent)
}

func (r *outboxRepository) MarkFailed(ctx context.Context, id string) error {
	return r.setStatus(ctx, id, outboxFailed)
}

func (r *outboxRepository) setStatus(ctx context.Context, id, status string) error {
	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	res, err := r.q.ExecContext(ctx,
		`UPDATE outbox_messages
		 SET status = $2, attempt_count = attempt_count + 1, updated_at = NOW()
		 WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("mark outbox %s %s: %w", id, status, err)
	}
	affected, err := rowsAffected(res)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("mark outbox %s: %w", id, domain.ErrOutboxMessageNotFound)
	}
	return nil
}

var _ domain.OutboxRepository = (*outboxRepository)(nil)
