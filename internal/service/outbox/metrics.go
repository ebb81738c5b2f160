package outbox

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
)

// Значения label result у catalog_outbox_publish_attempts_total.
const (
	resultSent      = "sent"
	resultRetry     = "retry_error"
	resultFailed    = "failed"
	resultDLQFailed = "dlq_failed"
)

var (
	publishAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_outbox_publish_attempts_total",
		Help: "Outbox publish attempts by aggregate and result.",
	}, []string{"aggregate", "result"})
	pendingRecords = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_outbox_pending_records",
		Help: "Pending records in the catalog outbox.",
	})
	oldestPendingAge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_outbox_oldest_pending_age_seconds",
		Help: "Age of the oldest pending outbox record in seconds.",
	})
)

func observeAttempt(event domain.OutboxMessage, result string) {
	publishAttempts.WithLabelValues(event.AggregateType, result).Inc()
}

func observeBacklog(stats domain.OutboxStats, now time.Time) {
	pendingRecords.Set(float64(stats.PendingCount))
	oldestPendingAge.Set(stats.OldestAge(now).Seconds())
}
