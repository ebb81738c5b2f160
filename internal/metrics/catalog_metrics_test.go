package metrics

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
)

func counterValue(t *testing.T, vec *prometheus.CounterVec, labels ...string) float64 {
	t.Helper()
	var metric dto.Metric
	if err := vec.WithLabelValues(labels...).Write(&metric); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	return metric.GetCounter().GetValue()
}

func TestResultOf(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: nil, want: ResultSuccess},
		{err: domain.NewNotFound("missing"), want: ResultNotFound},
		{err: domain.NewConflict(domain.ReasonDuplicateItem, "dup"), want: ResultConflict},
		{err: domain.NewInvalidState("closed"), want: ResultInvalidState},
		{err: domain.NewValidation([]domain.FieldViolation{{Field: "name", Message: "must not be blank"}}), want: ResultValidation},
		{err: fmt.Errorf("wrap: %w", domain.ErrNotFound), want: ResultNotFound},
		{err: errors.New("db down"), want: ResultError},
	}

	for _, tt := range tests {
		if got := ResultOf(tt.err); got != tt.want {
			t.Fatalf("ResultOf(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestObserveOperation(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := newCatalogMetricsWithRegisterer(registry)

	m.ObserveOperation("create_item", time.Now(), nil)
	m.ObserveOperation("create_item", time.Now(), domain.NewConflict(domain.ReasonDuplicateItem, "dup"))
	m.ObserveOperation("create_item", time.Now(), domain.NewConflict(domain.ReasonDuplicateItem, "dup"))

	if got := counterValue(t, m.operations, "create_item", ResultSuccess); got != 1 {
		t.Fatalf("expected 1 success, got %v", got)
	}
	if got := counterValue(t, m.operations, "create_item", ResultConflict); got != 2 {
		t.Fatalf("expected 2 conflicts, got %v", got)
	}
	if got := counterValue(t, m.ruleRejections, string(domain.ReasonDuplicateItem)); got != 2 {
		t.Fatalf("expected 2 duplicate rejections, got %v", got)
	}

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	found := false
	for _, family := range families {
		if family.GetName() == "catalog_operation_duration_seconds" {
			found = true
			if count := family.GetMetric()[0].GetHistogram().GetSampleCount(); count != 3 {
				t.Fatalf("expected 3 duration samples, got %d", count)
			}
		}
	}
	if !found {
		t.Fatal("duration histogram is not registered")
	}
}

func TestCounters(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := newCatalogMetricsWithRegisterer(registry)

	m.RecordOutboxEvent()
	m.RecordOutboxEvent()
	m.RecordOrderClosed()

	var metric dto.Metric
	if err := m.outboxEvents.Write(&metric); err != nil {
		t.Fatalf("write: %v", err)
	}
	if metric.GetCounter().GetValue() != 2 {
		t.Fatalf("expected 2 outbox events, got %v", metric.GetCounter().GetValue())
	}
	metric.Reset()
	if err := m.ordersClosed.Write(&metric); err != nil {
		t.Fatalf("write: %v", err)
	}
	if metric.GetCounter().GetValue() != 1 {
		t.Fatalf("expected 1 closed order, got %v", metric.GetCounter().GetValue())
	}
}

func TestRegisterTwiceReusesCollectors(t *testing.T) {
	registry := prometheus.NewRegistry()
	first := newCatalogMetricsWithRegisterer(registry)
	second := newCatalogMetricsWithRegisterer(registry)

	first.RecordOrderClosed()
	var metric dto.Metric
	if err := second.ordersClosed.Write(&metric); err != nil {
		t.Fatalf("write: %v", err)
	}
	if metric.GetCounter().GetValue() != 1 {
		t.Fatal("second instance should share collectors with the first")
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *CatalogMetrics
	m.ObserveOperation("noop", time.Now(), nil)
	m.RecordOutboxEvent()
	m.RecordOrderClosed()
}
