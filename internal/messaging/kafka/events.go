package kafka

import (
	"encoding/json"
	"time"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
)

// Topics для Kafka
const (
	TopicItemEvents      = "catalog.item.events"
	TopicOrderEvents     = "catalog.order.events"
	TopicDeadLetterQueue = "catalog.dlq"
)

// Kafka headers, дублирующие метаданные конверта.
const (
	HeaderOutboxID      = "x-outbox-id"
	HeaderEventType     = "x-event-type"
	HeaderAggregateType = "x-aggregate-type"
)

// Envelope содержит сообщение, которое получают подписчики топиков каталога.
type Envelope struct {
	ID            string          `json:"id"`
	AggregateType string          `json:"aggregate_type"`
	AggregateID   string          `json:"aggregate_id"`
	EventType     string          `json:"event_type"`
	Payload       json.RawMessage `json:"payload"`
	PublishedAt   time.Time       `json:"published_at"`
}

// TopicFor возвращает топик для типа агрегата; неизвестные типы уходят в fallback.
func TopicFor(aggregateType, fallback string) string {
	switch aggregateType {
	case domain.AggregateItem:
		return TopicItemEvents
	case domain.AggregateOrder:
		return TopicOrderEvents
	case domain.AggregateDeadLetter:
		return TopicDeadLetterQueue
	default:
		return fallback
	}
}

// NewEnvelope оборачивает outbox-событие; пустой payload кодируется как null.
func NewEnvelope(event domain.OutboxMessage, publishedAt time.Time) Envelope {
	payload := json.RawMessage(event.Payload)
	if len(payload) == 0 {
		payload = json.RawMessage("null")
	}
	return Envelope{
		ID:            event.ID,
		AggregateType: event.AggregateType,
		AggregateID:   event.AggregateID,
		EventType:     event.EventType,
		Payload:       payload,
		PublishedAt:   publishedAt.UTC(),
	}
}

// Headers дублирует метаданные конверта в заголовках Kafka.
func (e Envelope) Headers() map[string]string {
	return map[string]string{
		HeaderOutboxID:      e.ID,
		HeaderEventType:     e.EventType,
		HeaderAggregateType: e.AggregateType,
	}
}
