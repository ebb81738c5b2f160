package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
)

const (
	ResultSuccess      = "success"
	ResultNotFound     = "not_found"
	ResultConflict     = "conflict"
	ResultInvalidState = "invalid_state"
	ResultValidation   = "validation"
	ResultError        = "error"
)

// CatalogMetrics содержит метрики движков правил каталога и заказов.
type CatalogMetrics struct {
	operations        *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec

	// Отказы по бизнес-правилам с указанием причины.
	ruleRejections *prometheus.CounterVec

	outboxEvents prometheus.Counter
	ordersClosed prometheus.Counter
}

// NewCatalogMetrics создаёт метрики в глобальном реестре Prometheus.
func NewCatalogMetrics() *CatalogMetrics {
	return newCatalogMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewCatalogMetricsWithRegisterer создаёт метрики в указанном реестре.
func NewCatalogMetricsWithRegisterer(registerer prometheus.Registerer) *CatalogMetrics {
	return newCatalogMetricsWithRegisterer(registerer)
}

func newCatalogMetricsWithRegisterer(registerer prometheus.Registerer) *CatalogMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &CatalogMetrics{
		operations: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "catalog_operations_total",
			Help: "Total number of rule engine operations by result",
		}, []string{"operation", "result"}),
		operationDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "catalog_operation_duration_seconds",
			Help:    "Duration of rule engine operations in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}, []string{"operation"}),
		ruleRejections: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "catalog_rule_rejections_total",
			Help: "Total number of operations rejected by a business rule",
		}, []string{"reason"}),
		outboxEvents: registerCounter(registerer, prometheus.CounterOpts{
			Name: "catalog_outbox_events_enqueued_total",
			Help: "Total number of domain events written to the outbox",
		}),
		ordersClosed: registerCounter(registerer, prometheus.CounterOpts{
			Name: "catalog_orders_closed_total",
			Help: "Total number of orders moved to CLOSED",
		}),
	}
}

// ResultOf переводит ошибку операции в значение метки result.
func ResultOf(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case errors.Is(err, domain.ErrNotFound):
		return ResultNotFound
	case errors.Is(err, domain.ErrConflict):
		return ResultConflict
	case errors.Is(err, domain.ErrInvalidState):
		return ResultInvalidState
	case errors.Is(err, domain.ErrValidation):
		return ResultValidation
	default:
		return ResultError
	}
}

// ObserveOperation учитывает завершение операции и её длительность.
// Безопасен для nil-получателя.
func (m *CatalogMetrics) ObserveOperation(operation string, started time.Time, err error) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(operation, ResultOf(err)).Inc()
	m.operationDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())

	if derr, ok := domain.AsError(err); ok && derr.Reason != "" {
		m.ruleRejections.WithLabelValues(string(derr.Reason)).Inc()
	}
}

// RecordOutboxEvent увеличивает счётчик событий, записанных в outbox.
func (m *CatalogMetrics) RecordOutboxEvent() {
	if m == nil {
		return
	}
	m.outboxEvents.Inc()
}

// RecordOrderClosed увеличивает счётчик закрытых заказов.
func (m *CatalogMetrics) RecordOrderClosed() {
	if m == nil {
		return
	}
	m.ordersClosed.Inc()
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}
