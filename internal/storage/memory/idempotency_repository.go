package memory

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
)

// idempotencyStore живёт отдельно от Store: ключ не откатывается вместе с транзакцией каталога.
type idempotencyStore struct {
	mu      sync.Mutex
	records map[string]domain.IdempotencyRecord
	now     func() time.Time
}

func NewIdempotencyRepository() domain.IdempotencyRepository {
	return &idempotencyStore{
		records: make(map[string]domain.IdempotencyRecord),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// CreateProcessing занимает ключ; запись с истёкшим TTL перезаписывается.
func (s *idempotencyStore) CreateProcessing(_ context.Context, key, requestHash string, ttlAt time.Time) (domain.IdempotencyRecord, error) {
	now := s.now()
	fresh, err := domain.NewIdempotencyRecord(key, requestHash, ttlAt, now)
	if err != nil {
		return domain.IdempotencyRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if held, ok := s.records[fresh.Key]; ok && !held.Expired(now) {
		return copyRecord(held), held.Conflict(fresh.RequestHash)
	}
	s.records[fresh.Key] = fresh
	return copyRecord(fresh), nil
}

func (s *idempotencyStore) Get(_ context.Context, key string) (domain.IdempotencyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.lookup(key)
	if err != nil {
		return domain.IdempotencyRecord{}, err
	}
	return copyRecord(record), nil
}

func (s *idempotencyStore) MarkDone(_ context.Context, key string, body []byte, code int) error {
	return s.finish(key, domain.IdempotencyStatusDone, body, code)
}

func (s *idempotencyStore) MarkFailed(_ context.Context, key string, body []byte, code int) error {
	return s.finish(key, domain.IdempotencyStatusFailed, body, code)
}

// DeleteExpired удаляет до limit записей с TTL не позже before, начиная с самых старых.
// limit <= 0 снимает ограничение.
func (s *idempotencyStore) DeleteExpired(_ context.Context, before time.Time, limit int) (int, error) {
	if before.IsZero() {
		before = s.now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var expired []domain.IdempotencyRecord
	for _, record := range s.records {
		if record.Expired(before) {
			expired = append(expired, record)
		}
	}
	slices.SortFunc(expired, func(a, b domain.IdempotencyRecord) int { return a.TTLAt.Compare(b.TTLAt) })
	if limit > 0 && len(expired) > limit {
		expired = expired[:limit]
	}
	for _, record := range expired {
		delete(s.records, record.Key)
	}
	return len(expired), nil
}

func (s *idempotencyStore) finish(key string, status domain.IdempotencyStatus, body []byte, code int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.lookup(key)
	if err != nil {
		return err
	}
	record.Status = status
	record.ResponseBody = slices.Clone(body)
	record.StatusCode = code
	record.UpdatedAt = s.now()
	s.records[record.Key] = record
	return nil
}

// lookup вызывается под s.mu.
func (s *idempotencyStore) lookup(key string) (domain.IdempotencyRecord, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return domain.IdempotencyRecord{}, domain.ErrIdempotencyKeyRequired
	}
	record, ok := s.records[key]
	if !ok {
		return domain.IdempotencyRecord{}, domain.ErrIdempotencyKeyNotFound
	}
	return record, nil
}

func copyRecord(record domain.IdempotencyRecord) domain.IdempotencyRecord {
	record.ResponseBody = slices.Clone(record.ResponseBody)
	return record
}

var _ domain.IdempotencyRepository = (*idempotencyStore)(nil)
