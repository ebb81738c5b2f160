package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
)

const idempotencyColumns = `key, request_hash, response_body, status_code, status, ttl_at, created_at, updated_at`

// idempotencyRepository всегда пишет мимо транзакций каталога: ключ фиксируется до вызова движка.
type idempotencyRepository struct {
	db *sql.DB
}

func NewIdempotencyRepository(store *Store) domain.IdempotencyRepository {
	return &idempotencyRepository{db: store.DB()}
}

// CreateProcessing вставляет ключ или перезаписывает запись с истёкшим TTL.
// Для живой записи возвращается она сама и ошибка конфликта.
func (r *idempotencyRepository) CreateProcessing(ctx context.Context, key, requestHash string, ttlAt time.Time) (domain.IdempotencyRecord, error) {
	fresh, err := domain.NewIdempotencyRecord(key, requestHash, ttlAt, time.Now())
	if err != nil {
		return domain.IdempotencyRecord{}, err
	}

	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	var claimed string
	err = r.db.QueryRowContext(ctx, `
		INSERT INTO idempotency_keys (key, request_hash, status, ttl_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (key) DO UPDATE SET
			request_hash = EXCLUDED.request_hash,
			response_body = NULL,
			status_code = NULL,
			status = EXCLUDED.status,
			ttl_at = EXCLUDED.ttl_at,
			created_at = EXCLUDED.created_at,
			updated_at = EXCLUDED.updated_at
		WHERE idempotency_keys.ttl_at <= EXCLUDED.created_at
		RETURNING key`,
		fresh.Key, fresh.RequestHash, string(fresh.Status), fresh.TTLAt, fresh.CreatedAt,
	).Scan(&claimed)
	switch {
	case err == nil:
		return fresh, nil
	case !errors.Is(err, sql.ErrNoRows):
		return domain.IdempotencyRecord{}, fmt.Errorf("claim idempotency key %s: %w", fresh.Key, err)
	}

	// Ключ занят живой записью.
	held, err := r.Get(ctx, fresh.Key)
	if err != nil {
		return domain.IdempotencyRecord{}, fmt.Errorf("load held idempotency key %s: %w", fresh.Key, err)
	}
	return held, held.Conflict(fresh.RequestHash)
}

func (r *idempotencyRepository) Get(ctx context.Context, key string) (domain.IdempotencyRecord, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return domain.IdempotencyRecord{}, domain.ErrIdempotencyKeyRequired
	}

	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	record, err := scanIdempotency(r.db.QueryRowContext(ctx,
		`SELECT `+idempotencyColumns+` FROM idempotency_keys WHERE key = $1`, key))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.IdempotencyRecord{}, domain.ErrIdempotencyKeyNotFound
	}
	return record, err
}

func (r *idempotencyRepository) MarkDone(ctx context.Context, key string, body []byte, code int) error {
	return r.finish(ctx, key, domain.IdempotencyStatusDone, body, code)
}

func (r *idempotencyRepository) MarkFailed(ctx context.Context, key string, body []byte, code int) error {
	return r.finish(ctx, key, domain.IdempotencyStatusFailed, body, code)
}

// DeleteExpired удаляет до limit записей с ttl_at <= before, самые старые первыми.
func (r *idempotencyRepository) DeleteExpired(ctx context.Context, before time.Time, limit int) (int, error) {
	if before.IsZero() {
		before = time.Now().UTC()
	}

	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	// LIMIT NULL в PostgreSQL снимает ограничение.
	batch := sql.NullInt64{Int64: int64(limit), Valid: limit > 0}
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM idempotency_keys
		WHERE key IN (
			SELECT key FROM idempotency_keys
			WHERE ttl_at <= $1
			ORDER BY ttl_at
			LIMIT $2
		)`, before, batch)
	if err != nil {
		return 0, fmt.Errorf("delete expired idempotency keys: %w", err)
	}
	n, err := rowsAffected(res)
	return int(n), err
}

func (r *idempotencyRepository) finish(ctx context.Context, key string, status domain.IdempotencyStatus, body []byte, code int) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return domain.ErrIdempotencyKeyRequired
	}

	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `
		UPDATE idempotency_keys
		SET status = $2, response_body = $3, status_code = $4, updated_at = NOW()
		WHERE key = $1`,
		key, string(status), body, code,
	)
	if err != nil {
		return fmt.Errorf("mark idempotency key %s %s: %w", key, status, err)
	}
	n, err := rowsAffected(res)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrIdempotencyKeyNotFound
	}
	return nil
}

func scanIdempotency(row *sql.Row) (domain.IdempotencyRecord, error) {
	var (
		record domain.IdempotencyRecord
		status string
		code   sql.NullInt64
	)
	err := row.Scan(&record.Key, &record.RequestHash, &record.ResponseBody, &code, &status,
		&record.TTLAt, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return domain.IdempotencyRecord{}, err
	}

	record.Status = domain.IdempotencyStatus(status)
	if !record.Status.Valid() {
		return domain.IdempotencyRecord{}, fmt.Errorf("idempotency key %s has unknown status %q", record.Key, status)
	}
	record.StatusCode = int(code.Int64)
	record.TTLAt = record.TTLAt.UTC()
	record.CreatedAt = record.CreatedAt.UTC()
	record.UpdatedAt = record.UpdatedAt.UTC()
	return record, nil
}

var _ domain.IdempotencyRepository = (*idempotencyRepository)(nil)
