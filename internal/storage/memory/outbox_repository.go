package memory

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
)

const (
	outboxStatusPending = "pending"
	outboxStatusSent    = "sent"
	outboxStatusFailed  = "failed"
)

// outboxRepository реализует transactional outbox в памяти. Записи живут в общем состоянии
// хранилища, поэтому событие фиксируется вместе с изменением сущности.
type outboxRepository struct {
	scope scope
}

// NewOutboxRepository создаёт outbox поверх состояния хранилища.
func NewOutboxRepository(store *Store) domain.OutboxRepository {
	return store.Repositories().Outbox
}

// Enqueue сохраняет событие со статусом `pending` и возвращает его идентификатор.
func (r *outboxRepository) Enqueue(_ context.Context, msg domain.OutboxMessage) (domain.OutboxMessage, error) {
	err := r.scope.write(func(st *state) error {
		if msg.ID == "" {
			msg.ID = uuid.NewString()
		}
		now := time.Now().UTC()
		st.outbox[msg.ID] = outboxRecord{
			msg:       msg,
			status:    outboxStatusPending,
			seq:       st.nextSeq(),
			createdAt: now,
			updatedAt: now,
		}
		return nil
	})
	if err != nil {
		return domain.OutboxMessage{}, err
	}
	return msg, nil
}

// PullPending возвращает до limit самых старых сообщений со статусом `pending`.
func (r *outboxRepository) PullPending(_ context.Context, limit int) ([]domain.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}

	var result []domain.OutboxMessage
	err := r.scope.read(func(st *state) error {
		pending := pendingRecords(st)
		if len(pending) > limit {
			pending = pending[:limit]
		}
		result = make([]domain.OutboxMessage, 0, len(pending))
		for _, rec := range pending {
			result = append(result, rec.msg)
		}
		return nil
	})
	return result, err
}

// Stats возвращает размер backlog и время самого старого pending-сообщения.
func (r *outboxRepository) Stats(_ context.Context) (domain.OutboxStats, error) {
	var stats domain.OutboxStats
	err := r.scope.read(func(st *state) error {
		pending := pendingRecords(st)
		stats.PendingCount = len(pending)
		if len(pending) > 0 {
			stats.OldestPendingAt = pending[0].createdAt
		}
		return nil
	})
	return stats, err
}

// MarkSent обновляет статус события после успешной публикации.
func (r *outboxRepository) MarkSent(_ context.Context, id string) error {
	return r.markStatus(id, outboxStatusSent)
}

// MarkFailed фиксирует ошибку публикации.
func (r *outboxRepository) MarkFailed(_ context.Context, id string) error {
	return r.markStatus(id, outboxStatusFailed)
}

func (r *outboxRepository) markStatus(id, status string) error {
	return r.scope.write(func(st *state) error {
		rec, ok := st.outbox[id]
		if !ok {
			return domain.ErrOutboxMessageNotFound
		}
		rec.status = status
		rec.attemptCnt++
		rec.updatedAt = time.Now().UTC()
		st.outbox[id] = rec
		return nil
	})
}

func pendingRecords(st *state) []outboxRecord {
	pending := make([]outboxRecord, 0)
	for _, rec := range st.outbox {
		if rec.status == outboxStatusPending {
			pending = append(pending, rec)
		}
	}
	slices.SortFunc(pending, func(a, b outboxRecord) int { return cmp.Compare(a.seq, b.seq) })
	return pending
}

var _ domain.OutboxRepository = (*outboxRepository)(nil)
