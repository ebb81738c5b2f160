package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	promgrpc "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/catalog/internal/health"
	"github.com/vladislavdragonenkov/catalog/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/catalog/internal/metrics"
	"github.com/vladislavdragonenkov/catalog/internal/service/catalog"
	grpcsvc "github.com/vladislavdragonenkov/catalog/internal/service/grpc"
	httpapi "github.com/vladislavdragonenkov/catalog/internal/service/http"
	"github.com/vladislavdragonenkov/catalog/internal/service/idempotency"
	"github.com/vladislavdragonenkov/catalog/internal/service/ordering"
	"github.com/vladislavdragonenkov/catalog/internal/service/outbox"
	"github.com/vladislavdragonenkov/catalog/internal/tracing"
	"github.com/vladislavdragonenkov/catalog/internal/version"
	catalogv1 "github.com/vladislavdragonenkov/catalog/proto/catalog/v1"
)

const shutdownTimeout = 5 * time.Second

// Run поднимает gRPC и REST API каталога, сервер метрик и фоновые воркеры,
// и блокируется до отмены ctx или падения одного из серверов.
func Run(ctx context.Context, cfg Config) error {
	logger := log.WithField("component", "app")

	if err := cfg.Validate(); err != nil {
		return err
	}
	policy, err := ordering.ParseDisabledItemPolicy(cfg.DisabledItemPolicy)
	if err != nil {
		return err
	}

	stopTracing := initTracing(cfg, logger)
	defer stopTracing()

	deps, err := openDependencies(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer deps.Close(logger)

	catalogMetrics := metrics.NewCatalogMetrics()
	items := catalog.NewService(deps.store,
		catalog.WithLogger(logger.WithField("layer", "catalog")),
		catalog.WithMetrics(catalogMetrics),
	)
	orders := ordering.NewService(deps.store,
		ordering.WithLogger(logger.WithField("layer", "ordering")),
		ordering.WithMetrics(catalogMetrics),
		ordering.WithDisabledItemPolicy(policy),
	)

	grpcServer, healthServer := newGRPCServer(items, orders, deps.idempotencyRepo, logger)
	apiServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewServer(items, orders, logger.WithField("layer", "http")).Engine(),
		ReadHeaderTimeout: shutdownTimeout,
	}

	healthHandler := healthcheck.NewHandler(version.GetVersion())
	if deps.storageChecker != nil {
		healthHandler.RegisterChecker("storage", deps.storageChecker)
	}
	healthHandler.RegisterChecker("outbox", healthcheck.NewBacklogChecker("outbox", cfg.OutboxMaxPending, func(ctx context.Context) (int, error) {
		stats, err := deps.outboxRepo.Stats(ctx)
		return stats.PendingCount, err
	}))

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen grpc: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	startMetricsServer(gctx, cfg.MetricsAddr, logger, healthHandler)

	g.Go(func() error {
		logger.Infof("gRPC сервер слушает %s", cfg.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("grpc server: %w", err)
		}
		return nil
	})

	if cfg.HTTPAddr != "" {
		g.Go(func() error {
			logger.Infof("REST API слушает %s", cfg.HTTPAddr)
			if err := apiServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("http api server: %w", err)
			}
			return nil
		})
	}

	if deps.producer != nil {
		worker := newOutboxWorker(cfg, deps.outboxRepo, deps.producer, logger)
		g.Go(func() error {
			worker.Run(gctx)
			return nil
		})
	} else {
		logger.Warn("kafka is not configured, outbox events stay pending")
	}

	cleanup := idempotency.NewCleanupWorker(deps.idempotencyRepo,
		idempotency.WithLogger(logger.WithField("layer", "idempotency-cleanup")),
		idempotency.WithInterval(cfg.IdempotencyCleanupInterval),
		idempotency.WithBatchSize(cfg.IdempotencyCleanupBatchSize),
		idempotency.WithGrace(cfg.IdempotencyCleanupGrace),
	)
	g.Go(func() error {
		cleanup.Run(gctx)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("получен сигнал остановки, останавливаем серверы")
		healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
		stopGRPC(grpcServer, logger)
		shutdownHTTP(apiServer, logger)
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func newGRPCServer(
	items grpcsvc.ItemService,
	orders grpcsvc.OrderService,
	idemRepo domain.IdempotencyRepository,
	logger *log.Entry,
) (*grpc.Server, *health.Server) {
	grpcMetrics := promgrpc.NewServerMetrics()
	if err := prometheus.Register(grpcMetrics); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok2 := are.ExistingCollector.(*promgrpc.ServerMetrics); ok2 {
				grpcMetrics = existing
			}
		} else {
			logger.WithError(err).Warn("failed to register grpc metrics")
		}
	}

	grpcLogger := logger.WithField("layer", "grpc")
	// Recovery стоит последним, чтобы метрики видели панику как codes.Internal.
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(
		grpcMetrics.UnaryServerInterceptor(),
		grpcsvc.RecoveryUnaryInterceptor(grpcLogger),
	))
	catalogv1.RegisterCatalogServiceServer(server, grpcsvc.NewCatalogService(items, orders, idemRepo, grpcLogger))

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(catalogv1.CatalogService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(server, healthServer)

	grpcMetrics.InitializeMetrics(server)
	return server, healthServer
}

func newOutboxWorker(cfg Config, repo domain.OutboxRepository, producer *kafka.Producer, logger *log.Entry) *outbox.Worker {
	return outbox.NewWorker(repo, kafka.NewOutboxPublisher(producer, kafka.TopicOrderEvents),
		outbox.WithLogger(logger.WithField("layer", "outbox")),
		outbox.WithDLQPublisher(kafka.NewTopicPublisher(producer, kafka.TopicDeadLetterQueue)),
		outbox.WithPollInterval(cfg.OutboxPollInterval),
		outbox.WithBatchSize(cfg.OutboxBatchSize),
		outbox.WithMaxAttempts(cfg.OutboxMaxAttempts),
		outbox.WithRetryBaseDelay(cfg.OutboxRetryDelay),
	)
}

// initTracing включает экспорт спанов, если задан endpoint. Возвращает функцию остановки.
func initTracing(cfg Config, logger *log.Entry) func() {
	if cfg.TracingEndpoint == "" {
		return func() {}
	}

	tp, err := tracing.InitTracerProvider(cfg.ServiceName, cfg.TracingEndpoint, logger.WithField("layer", "tracing"))
	if err != nil {
		logger.WithError(err).Warn("tracing is disabled")
		return func() {}
	}

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			logger.WithError(err).Warn("tracer provider shutdown with error")
		}
	}
}

// stopGRPC пытается остановить сервер штатно и обрывает соединения по таймауту.
func stopGRPC(server *grpc.Server, logger *log.Entry) {
	stopped := make(chan struct{})
	go func() {
		server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(shutdownTimeout):
		logger.Warn("graceful stop превысил таймаут, принудительно останавливаем")
		server.Stop()
	}
}

// startMetricsServer запускает HTTP-сервер с /metrics и health-эндпоинтами.
func startMetricsServer(ctx context.Context, addr string, logger *log.Entry, healthHandler *healthcheck.Handler) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/healthz", healthHandler)
	mux.HandleFunc("/livez", healthcheck.LivenessHandler)
	mux.HandleFunc("/readyz", healthHandler.ReadinessHandler)

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: shutdownTimeout}
	go func() {
		logger.Infof("метрики доступны по адресу %s/metrics", addr)
		logger.Infof("health checks: %s/healthz, %s/livez, %s/readyz", addr, addr, addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Warn("metrics server failed")
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownHTTP(srv, logger)
	}()

	return srv
}

// shutdownHTTP аккуратно останавливает HTTP-сервер.
func shutdownHTTP(srv *http.Server, logger *log.Entry) {
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Warn("http shutdown with error")
	}
}
