package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vladislavdragonenkov/catalog/internal/service/ordering"
)

const (
	// StorageDriverMemory хранит данные в памяти процесса.
	StorageDriverMemory = "memory"
	// StorageDriverPostgres хранит данные в PostgreSQL.
	StorageDriverPostgres = "postgres"
)

// Config описывает настройки запуска приложения.
type Config struct {
	ServiceName string `yaml:"service_name"`
	GRPCAddr    string `yaml:"grpc_addr"`
	HTTPAddr    string `yaml:"http_addr"`
	MetricsAddr string `yaml:"metrics_addr"`

	StorageDriver       string `yaml:"storage_driver"`
	PostgresDSN         string `yaml:"postgres_dsn"`
	PostgresAutoMigrate bool   `yaml:"postgres_auto_migrate"`

	KafkaBrokers  []string `yaml:"kafka_brokers"`
	KafkaClientID string   `yaml:"kafka_client_id"`

	OutboxPollInterval time.Duration `yaml:"outbox_poll_interval"`
	OutboxBatchSize    int           `yaml:"outbox_batch_size"`
	OutboxMaxAttempts  int           `yaml:"outbox_max_attempts"`
	OutboxRetryDelay   time.Duration `yaml:"outbox_retry_delay"`
	// Размер backlog, после которого readiness сообщает degraded.
	OutboxMaxPending int `yaml:"outbox_max_pending"`

	IdempotencyCleanupInterval  time.Duration `yaml:"idempotency_cleanup_interval"`
	IdempotencyCleanupBatchSize int           `yaml:"idempotency_cleanup_batch_size"`
	IdempotencyCleanupGrace     time.Duration `yaml:"idempotency_cleanup_grace"`

	DisabledItemPolicy string `yaml:"disabled_item_policy"`
	TracingEndpoint    string `yaml:"tracing_endpoint"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// DefaultConfig возвращает настройки для локального запуска без внешних зависимостей.
func DefaultConfig() Config {
	return Config{
		ServiceName:                 "catalog-service",
		GRPCAddr:                    ":50051",
		HTTPAddr:                    ":8080",
		MetricsAddr:                 ":9090",
		StorageDriver:               StorageDriverMemory,
		PostgresAutoMigrate:         true,
		KafkaClientID:               "catalog-service",
		OutboxPollInterval:          time.Second,
		OutboxBatchSize:             100,
		OutboxMaxAttempts:           3,
		OutboxRetryDelay:            50 * time.Millisecond,
		OutboxMaxPending:            1000,
		IdempotencyCleanupInterval:  time.Minute,
		IdempotencyCleanupBatchSize: 500,
		DisabledItemPolicy:          string(ordering.DisabledItemPolicyAny),
		LogLevel:                    "info",
		LogFormat:                   "text",
	}
}

// LoadConfigFile читает YAML поверх DefaultConfig. Неизвестные ключи считаются ошибкой.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate проверяет согласованность настроек до запуска компонентов.
func (c Config) Validate() error {
	var problems []string

	switch c.StorageDriver {
	case StorageDriverMemory:
	case StorageDriverPostgres:
		if strings.TrimSpace(c.PostgresDSN) == "" {
			problems = append(problems, "postgres dsn is required for postgres storage driver")
		}
	default:
		problems = append(problems, fmt.Sprintf("unsupported storage driver %q", c.StorageDriver))
	}
	if strings.TrimSpace(c.GRPCAddr) == "" {
		problems = append(problems, "grpc addr is required")
	}
	if _, err := ordering.ParseDisabledItemPolicy(c.DisabledItemPolicy); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}
