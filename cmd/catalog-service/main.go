package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/catalog/internal/app"
	"github.com/vladislavdragonenkov/catalog/internal/version"
)

const (
	envConfigFile                  = "CATALOG_CONFIG_FILE"
	envGRPCAddr                    = "CATALOG_GRPC_ADDR"
	envHTTPAddr                    = "CATALOG_HTTP_ADDR"
	envMetricsAddr                 = "CATALOG_METRICS_ADDR"
	envStorageDriver               = "CATALOG_STORAGE_DRIVER"
	envPostgresDSN                 = "CATALOG_POSTGRES_DSN"
	envPostgresAutoMigrate         = "CATALOG_POSTGRES_AUTO_MIGRATE"
	envKafkaBrokers                = "CATALOG_KAFKA_BROKERS"
	envKafkaClientID               = "CATALOG_KAFKA_CLIENT_ID"
	envOutboxPollInterval          = "CATALOG_OUTBOX_POLL_INTERVAL"
	envOutboxBatchSize             = "CATALOG_OUTBOX_BATCH_SIZE"
	envOutboxMaxAttempts           = "CATALOG_OUTBOX_MAX_ATTEMPTS"
	envOutboxRetryDelay            = "CATALOG_OUTBOX_RETRY_DELAY"
	envOutboxMaxPending            = "CATALOG_OUTBOX_MAX_PENDING"
	envIdempotencyCleanupInterval  = "CATALOG_IDEMPOTENCY_CLEANUP_INTERVAL"
	envIdempotencyCleanupBatchSize = "CATALOG_IDEMPOTENCY_CLEANUP_BATCH_SIZE"
	envIdempotencyCleanupGrace     = "CATALOG_IDEMPOTENCY_CLEANUP_GRACE"
	envDisabledItemPolicy          = "CATALOG_DISABLED_ITEM_POLICY"
	envTracingEndpoint             = "CATALOG_TRACING_ENDPOINT"
	envLogLevel                    = "CATALOG_LOG_LEVEL"
	envLogFormat                   = "CATALOG_LOG_FORMAT"
)

type envLookup func(key string) (string, bool)

// setupLogger настраивает формат и уровень логирования для сервиса.
func setupLogger(cfg app.Config) []string {
	var warnings []string

	if strings.EqualFold(strings.TrimSpace(cfg.LogFormat), "json") {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	level, err := log.ParseLevel(strings.TrimSpace(cfg.LogLevel))
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("invalid %s=%q: %v", envLogLevel, cfg.LogLevel, err))
		level = log.InfoLevel
	}
	log.SetLevel(level)
	return warnings
}

// loadConfig читает YAML-файл из CATALOG_CONFIG_FILE, если он задан, и применяет переменные окружения поверх.
func loadConfig(lookup envLookup) (app.Config, []string, error) {
	cfg := app.DefaultConfig()
	if path, ok := lookupTrimmed(lookup, envConfigFile); ok {
		fileCfg, err := app.LoadConfigFile(path)
		if err != nil {
			return app.Config{}, nil, err
		}
		cfg = fileCfg
	}

	cfg, warnings := applyEnv(cfg, lookup)
	return cfg, warnings, nil
}

// readConfigFromEnv формирует конфигурацию из значений по умолчанию и переменных окружения.
// Некорректные значения пропускаются с предупреждением.
func readConfigFromEnv(lookup envLookup) (app.Config, []string) {
	return applyEnv(app.DefaultConfig(), lookup)
}

func applyEnv(cfg app.Config, lookup envLookup) (app.Config, []string) {
	var warnings []string
	warn := func(key, raw string, err error) {
		warnings = append(warnings, fmt.Sprintf("invalid %s=%q: %v", key, raw, err))
	}

	texts := []struct {
		key    string
		target *string
	}{
		{envGRPCAddr, &cfg.GRPCAddr},
		{envHTTPAddr, &cfg.HTTPAddr},
		{envMetricsAddr, &cfg.MetricsAddr},
		{envPostgresDSN, &cfg.PostgresDSN},
		{envKafkaClientID, &cfg.KafkaClientID},
		{envDisabledItemPolicy, &cfg.DisabledItemPolicy},
		{envTracingEndpoint, &cfg.TracingEndpoint},
		{envLogLevel, &cfg.LogLevel},
		{envLogFormat, &cfg.LogFormat},
	}
	for _, s := range texts {
		if v, ok := lookupTrimmed(lookup, s.key); ok {
			*s.target = v
		}
	}

	if v, ok := lookupTrimmed(lookup, envStorageDriver); ok {
		cfg.StorageDriver = toLower(v)
	}
	if v, ok := lookupTrimmed(lookup, envKafkaBrokers); ok {
		cfg.KafkaBrokers = splitList(v)
	}
	if v, ok := lookupTrimmed(lookup, envPostgresAutoMigrate); ok {
		if parsed, err := parseBool(v); err != nil {
			warn(envPostgresAutoMigrate, v, err)
		} else {
			cfg.PostgresAutoMigrate = parsed
		}
	}

	positive := func(v int) bool { return v > 0 }
	nonNegative := func(v int) bool { return v >= 0 }
	ints := []struct {
		key    string
		target *int
		valid  func(int) bool
		rule   string
	}{
		{envOutboxBatchSize, &cfg.OutboxBatchSize, positive, "must be > 0"},
		{envOutboxMaxAttempts, &cfg.OutboxMaxAttempts, positive, "must be > 0"},
		{envOutboxMaxPending, &cfg.OutboxMaxPending, nonNegative, "must be >= 0"},
		{envIdempotencyCleanupBatchSize, &cfg.IdempotencyCleanupBatchSize, positive, "must be > 0"},
	}
	for _, i := range ints {
		v, ok := lookupTrimmed(lookup, i.key)
		if !ok {
			continue
		}
		parsed, err := parseInt(v, i.valid, i.rule)
		if err != nil {
			warn(i.key, v, err)
			continue
		}
		*i.target = parsed
	}

	positiveDuration := func(v time.Duration) bool { return v > 0 }
	nonNegativeDuration := func(v time.Duration) bool { return v >= 0 }
	durations := []struct {
		key    string
		target *time.Duration
		valid  func(time.Duration) bool
		rule   string
	}{
		{envOutboxPollInterval, &cfg.OutboxPollInterval, positiveDuration, "must be > 0"},
		{envOutboxRetryDelay, &cfg.OutboxRetryDelay, nonNegativeDuration, "must be >= 0"},
		{envIdempotencyCleanupInterval, &cfg.IdempotencyCleanupInterval, positiveDuration, "must be > 0"},
		{envIdempotencyCleanupGrace, &cfg.IdempotencyCleanupGrace, nonNegativeDuration, "must be >= 0"},
	}
	for _, d := range durations {
		v, ok := lookupTrimmed(lookup, d.key)
		if !ok {
			continue
		}
		parsed, err := parseDuration(v, d.valid, d.rule)
		if err != nil {
			warn(d.key, v, err)
			continue
		}
		*d.target = parsed
	}

	return cfg, warnings
}

func lookupTrimmed(lookup envLookup, key string) (string, bool) {
	if lookup == nil {
		return "", false
	}
	v, ok := lookup(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func toLower(v string) string { return strings.ToLower(strings.TrimSpace(v)) }

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}

func parseBool(raw string) (bool, error) {
	switch toLower(raw) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("expected boolean value")
	}
}

func parseInt(raw string, valid func(int) bool, rule string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	if valid != nil && !valid(value) {
		return 0, errors.New(rule)
	}
	return value, nil
}

func parseDuration(raw string, valid func(time.Duration) bool, rule string) (time.Duration, error) {
	value, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	if valid != nil && !valid(value) {
		return 0, errors.New(rule)
	}
	return value, nil
}

func main() {
	cfg, warnings, err := loadConfig(os.LookupEnv)
	if err != nil {
		log.WithError(err).Fatal("не удалось прочитать конфигурацию")
	}
	warnings = append(warnings, setupLogger(cfg)...)
	for _, warning := range warnings {
		log.Warn(warning)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(log.Fields{
		"version":        version.String(),
		"grpc_addr":      cfg.GRPCAddr,
		"http_addr":      cfg.HTTPAddr,
		"metrics_addr":   cfg.MetricsAddr,
		"storage_driver": cfg.StorageDriver,
		"kafka_brokers":  cfg.KafkaBrokers,
	}).Info("запускаем CatalogService")

	if err := app.Run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Fatal("приложение завершилось с ошибкой")
	}

	log.Info("CatalogService остановлен")
}
