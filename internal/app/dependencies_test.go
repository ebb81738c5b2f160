package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDependencies_Memory(t *testing.T) {
	cfg := DefaultConfig()
	cfg.KafkaBrokers = []string{" ", ""}

	deps, err := openDependencies(context.Background(), cfg, quietEntry())
	require.NoError(t, err)

	assert.NotNil(t, deps.store)
	assert.NotNil(t, deps.outboxRepo)
	assert.NotNil(t, deps.idempotencyRepo)
	assert.Nil(t, deps.storageChecker)
	assert.Nil(t, deps.producer)
	assert.Empty(t, deps.closers)

	deps.Close(quietEntry())
}

func TestOpenDependencies_Errors(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		dsn     string
		wantErr string
	}{
		{name: "postgres without dsn", driver: StorageDriverPostgres, dsn: "  ", wantErr: "dsn is required"},
		{name: "unknown driver", driver: "sqlite", wantErr: `unsupported storage driver "sqlite"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.StorageDriver = tt.driver
			cfg.PostgresDSN = tt.dsn

			_, err := openDependencies(context.Background(), cfg, quietEntry())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestOpenProducer_NoBrokers(t *testing.T) {
	for _, brokers := range [][]string{nil, {}, {" ", "\t"}} {
		producer, err := openProducer(brokers, "catalog-test", quietEntry())
		assert.NoError(t, err)
		assert.Nil(t, producer)
	}
}

func TestOpenProducer_UnreachableBroker(t *testing.T) {
	producer, err := openProducer([]string{" 127.0.0.1:1 "}, "catalog-test", quietEntry())
	assert.Error(t, err)
	assert.Nil(t, producer)
}

func TestDependencies_CloseOrder(t *testing.T) {
	var order []string
	deps := &dependencies{closers: []closer{
		{name: "postgres", close: func() error { order = append(order, "postgres"); return nil }},
		{name: "kafka producer", close: func() error { order = append(order, "kafka"); return errors.New("broker gone") }},
	}}

	deps.Close(quietEntry())
	assert.Equal(t, []string{"kafka", "postgres"}, order)

	// Повторный Close ничего не делает.
	deps.Close(quietEntry())
	assert.Len(t, order, 2)

	var none *dependencies
	none.Close(quietEntry())
}
