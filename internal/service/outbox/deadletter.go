package outbox

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
)

// DeadLetter хранит событие, которое не удалось доставить, вместе с причиной.
// Сериализуется в payload сообщения топика DLQ.
type DeadLetter struct {
	OutboxID       string          `json:"outbox_id"`
	AggregateType  string          `json:"aggregate_type"`
	AggregateID    string          `json:"aggregate_id"`
	EventType      string          `json:"event_type"`
	Payload        json.RawMessage `json:"payload"`
	PublishError   string          `json:"publish_error"`
	DLQPublishedAt time.Time       `json:"dlq_published_at"`
}

func newDeadLetter(event domain.OutboxMessage, cause error, now time.Time) DeadLetter {
	letter := DeadLetter{
		OutboxID:       event.ID,
		AggregateType:  event.AggregateType,
		AggregateID:    event.AggregateID,
		EventType:      event.EventType,
		Payload:        json.RawMessage(event.Payload),
		DLQPublishedAt: now.UTC(),
	}
	if cause != nil {
		letter.PublishError = cause.Error()
	}
	return letter
}

// Message упаковывает письмо в событие агрегата dead_letter.
func (d DeadLetter) Message() (domain.OutboxMessage, error) {
	payload, err := json.Marshal(d)
	if err != nil {
		return domain.OutboxMessage{}, fmt.Errorf("marshal dead letter %s: %w", d.OutboxID, err)
	}
	return domain.OutboxMessage{
		ID:            d.OutboxID,
		AggregateType: domain.AggregateDeadLetter,
		AggregateID:   d.AggregateID,
		EventType:     d.EventType,
		Payload:       payload,
	}, nil
}

// Original восстанавливает исходное событие для повторной публикации.
func (d DeadLetter) Original() domain.OutboxMessage {
	return domain.OutboxMessage{
		ID:            d.OutboxID,
		AggregateType: d.AggregateType,
		AggregateID:   d.AggregateID,
		EventType:     d.EventType,
		Payload:       []byte(d.Payload),
	}
}
