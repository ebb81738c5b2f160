package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
)

func openIdempotencyRepository(t *testing.T) domain.IdempotencyRepository {
	t.Helper()

	store := migratedTestStore(t)
	return NewIdempotencyRepository(store)
}

func TestIdempotencyRepository_PostgresLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := openIdempotencyRepository(t)
	ttl := time.Now().UTC().Add(2 * time.Hour).Round(time.Microsecond)

	created, err := repo.CreateProcessing(ctx, "CreateItem-42", "hash-1", ttl)
	require.NoError(t, err)
	assert.Equal(t, domain.IdempotencyStatusProcessing, created.Status)

	_, err = repo.CreateProcessing(ctx, "CreateItem-42", "hash-1", ttl)
	assert.ErrorIs(t, err, domain.ErrIdempotencyKeyAlreadyExists)

	existing, err := repo.CreateProcessing(ctx, "CreateItem-42", "hash-2", ttl)
	assert.ErrorIs(t, err, domain.ErrIdempotencyHashMismatch)
	assert.Equal(t, "hash-1", existing.RequestHash)

	require.NoError(t, repo.MarkDone(ctx, "CreateItem-42", []byte(`{"id":"item-42"}`), int(codes.OK)))

	got, err := repo.Get(ctx, "CreateItem-42")
	require.NoError(t, err)
	assert.Equal(t, domain.IdempotencyStatusDone, got.Status)
	assert.Equal(t, int(codes.OK), got.StatusCode)
	assert.JSONEq(t, `{"id":"item-42"}`, string(got.ResponseBody))
	assert.True(t, got.TTLAt.Equal(ttl), "ttl mismatch: expected %s, got %s", ttl, got.TTLAt)

	assert.ErrorIs(t, repo.MarkFailed(ctx, "missing", nil, int(codes.Internal)), domain.ErrIdempotencyKeyNotFound)
}

func TestIdempotencyRepository_PostgresExpiredKeyIsReused(t *testing.T) {
	ctx := context.Background()
	repo := openIdempotencyRepository(t)

	_, err := repo.CreateProcessing(ctx, "CreateOrder-7", "hash-old", time.Now().UTC().Add(-time.Minute))
	require.NoError(t, err)
	require.NoError(t, repo.MarkFailed(ctx, "CreateOrder-7", []byte(`{"code":5}`), int(codes.NotFound)))

	fresh, err := repo.CreateProcessing(ctx, "CreateOrder-7", "hash-new", time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "hash-new", fresh.RequestHash)

	got, err := repo.Get(ctx, "CreateOrder-7")
	require.NoError(t, err)
	assert.Equal(t, domain.IdempotencyStatusProcessing, got.Status)
	assert.Empty(t, got.ResponseBody)
	assert.Zero(t, got.StatusCode)
}

func TestIdempotencyRepository_PostgresDeleteExpired(t *testing.T) {
	ctx := context.Background()
	repo := openIdempotencyRepository(t)
	now := time.Now().UTC()

	for i, key := range []string{"expired-1", "expired-2", "expired-3"} {
		_, err := repo.CreateProcessing(ctx, key, "hash", now.Add(-time.Duration(5-i)*time.Minute))
		require.NoError(t, err)
	}
	_, err := repo.CreateProcessing(ctx, "active", "hash", now.Add(time.Hour))
	require.NoError(t, err)

	removed, err := repo.DeleteExpired(ctx, now, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	// Первыми удаляются самые старые ключи.
	_, err = repo.Get(ctx, "expired-3")
	require.NoError(t, err)

	removed, err = repo.DeleteExpired(ctx, now, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = repo.Get(ctx, "active")
	assert.NoError(t, err)
}
