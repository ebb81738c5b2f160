package kafka

import (
	"errors"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
)

// OutboxPublisher публикует outbox-сообщения в топик, выбранный по типу агрегата.
type OutboxPublisher struct {
	producer *Producer
	fallback string
	fixed    bool
}

// NewOutboxPublisher создаёт паблишер, который раскладывает события item/order по своим топикам.
// События неизвестных агрегатов уходят в fallback (по умолчанию topic заказов).
func NewOutboxPublisher(producer *Producer, fallback string) *OutboxPublisher {
	if fallback == "" {
		fallback = TopicOrderEvents
	}
	return &OutboxPublisher{producer: producer, fallback: fallback}
}

// NewTopicPublisher создаёт паблишер в один фиксированный topic, например DLQ.
func NewTopicPublisher(producer *Producer, topic string) *OutboxPublisher {
	return &OutboxPublisher{producer: producer, fallback: topic, fixed: true}
}

// Topic возвращает topic, в который уйдёт событие.
func (p *OutboxPublisher) Topic(event domain.OutboxMessage) string {
	if p.fixed {
		return p.fallback
	}
	return TopicFor(event.AggregateType, p.fallback)
}

// Publish отправляет событие в конверте Envelope с ключом агрегата.
func (p *OutboxPublisher) Publish(event domain.OutboxMessage) error {
	if p == nil || p.producer == nil {
		return errors.New("kafka outbox publisher is not initialized")
	}

	envelope := NewEnvelope(event, p.producer.now())
	return p.producer.PublishEvent(p.Topic(event), event.Key(), envelope, envelope.Headers())
}

var _ domain.OutboxPublisher = (*OutboxPublisher)(nil)
