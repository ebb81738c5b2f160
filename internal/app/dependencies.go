package app

import (
	"context"
	"fmt"
	"slices"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/catalog/internal/health"
	"github.com/vladislavdragonenkov/catalog/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/catalog/internal/storage"
	"github.com/vladislavdragonenkov/catalog/internal/storage/memory"
	"github.com/vladislavdragonenkov/catalog/internal/storage/postgres"
)

type closer struct {
	name  string
	close func() error
}

// dependencies хранит внешние ресурсы процесса, выбранные конфигурацией.
type dependencies struct {
	store           storage.Store
	outboxRepo      domain.OutboxRepository
	idempotencyRepo domain.IdempotencyRepository
	// storageChecker пуст для памяти: проверять нечего.
	storageChecker healthcheck.Checker
	// producer == nil, если брокеры не заданы или недоступны.
	producer *kafka.Producer

	closers []closer
}

func openDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*dependencies, error) {
	deps := &dependencies{}
	if err := deps.openStorage(ctx, cfg, logger); err != nil {
		return nil, err
	}

	producer, err := openProducer(cfg.KafkaBrokers, cfg.KafkaClientID, logger)
	if err != nil {
		// Без брокера события копятся в outbox до следующего запуска.
		logger.WithError(err).Warn("kafka unavailable, outbox publishing disabled")
	}
	if producer != nil {
		deps.producer = producer
		deps.closers = append(deps.closers, closer{name: "kafka producer", close: producer.Close})
	}
	return deps, nil
}

func (d *dependencies) openStorage(ctx context.Context, cfg Config, logger *log.Entry) error {
	switch cfg.StorageDriver {
	case StorageDriverMemory:
		store := memory.NewStore()
		d.store = store
		d.outboxRepo = store.Repositories().Outbox
		d.idempotencyRepo = memory.NewIdempotencyRepository()
		logger.Info("storage: memory")
		return nil

	case StorageDriverPostgres:
		if strings.TrimSpace(cfg.PostgresDSN) == "" {
			return fmt.Errorf("storage %q: dsn is required", cfg.StorageDriver)
		}
		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return err
		}
		if cfg.PostgresAutoMigrate {
			if err := store.MigrateUp(ctx, 0); err != nil {
				_ = store.Close()
				return fmt.Errorf("apply migrations: %w", err)
			}
		}

		d.store = store
		d.outboxRepo = store.Repositories().Outbox
		d.idempotencyRepo = postgres.NewIdempotencyRepository(store)
		d.storageChecker = healthcheck.NewSimpleChecker("postgres", store.Ping)
		d.closers = append(d.closers, closer{name: "postgres", close: store.Close})
		logger.WithField("auto_migrate", cfg.PostgresAutoMigrate).Info("storage: postgres")
		return nil

	default:
		return fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

// openProducer возвращает nil, nil, если после очистки пробелов не осталось ни одного брокера.
func openProducer(brokers []string, clientID string, logger *log.Entry) (*kafka.Producer, error) {
	var list []string
	for _, broker := range brokers {
		if broker = strings.TrimSpace(broker); broker != "" {
			list = append(list, broker)
		}
	}
	if len(list) == 0 {
		return nil, nil
	}

	producer, err := kafka.NewProducer(list, clientID)
	if err != nil {
		return nil, err
	}
	logger.WithField("brokers", list).Info("kafka producer connected")
	return producer, nil
}

// Close освобождает ресурсы в обратном порядке открытия.
func (d *dependencies) Close(logger *log.Entry) {
	if d == nil {
		return
	}
	for _, c := range slices.Backward(d.closers) {
		if err := c.close(); err != nil {
			logger.WithError(err).WithField("resource", c.name).Warn("close failed")
			continue
		}
		logger.WithField("resource", c.name).Info("closed")
	}
	d.closers = nil
}
