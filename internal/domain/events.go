package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Типы агрегатов в outbox.
const (
	AggregateItem  = "item"
	AggregateOrder = "order"

	// AggregateDeadLetter помечает события, не доставленные после всех попыток.
	AggregateDeadLetter = "dead_letter"
)

// EventType определяет тип доменного события.
type EventType string

const (
	EventItemCreated  EventType = "item.created"
	EventItemUpdated  EventType = "item.updated"
	EventItemDeleted  EventType = "item.deleted"
	EventOrderCreated EventType = "order.created"
	EventOrderUpdated EventType = "order.updated"
	EventOrderDeleted EventType = "order.deleted"
	EventOrderClosed  EventType = "order.closed"
)

// ItemEvent содержит полезную нагрузку событий позиции каталога.
type ItemEvent struct {
	ID         string          `json:"id"`
	Name       string          `json:"name,omitempty"`
	Type       ItemType        `json:"type,omitempty"`
	Price      decimal.Decimal `json:"price"`
	Status     ItemStatus      `json:"status,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// OrderLineEvent описывает позицию заказа в событии.
type OrderLineEvent struct {
	ID        string          `json:"id"`
	ItemID    string          `json:"item_id"`
	ItemType  ItemType        `json:"item_type"`
	Amount    int             `json:"amount"`
	ItemPrice decimal.Decimal `json:"item_price"`
}

// OrderEvent содержит полезную нагрузку событий заказа.
type OrderEvent struct {
	ID           string           `json:"id"`
	Status       OrderStatus      `json:"status"`
	Discount     decimal.Decimal  `json:"discount"`
	Items        []OrderLineEvent `json:"items,omitempty"`
	TotalService decimal.Decimal  `json:"total_service"`
	TotalProduct decimal.Decimal  `json:"total_product"`
	Total        decimal.Decimal  `json:"total"`
	OccurredAt   time.Time        `json:"occurred_at"`
}

// NewItemOutboxMessage сериализует событие позиции каталога в outbox-сообщение.
func NewItemOutboxMessage(eventType EventType, item Item) (OutboxMessage, error) {
	payload, err := json.Marshal(ItemEvent{
		ID:         item.ID,
		Name:       item.Name,
		Type:       item.Type,
		Price:      item.Price,
		Status:     item.Status,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return OutboxMessage{}, fmt.Errorf("marshal %s event: %w", eventType, err)
	}
	return OutboxMessage{
		AggregateType: AggregateItem,
		AggregateID:   item.ID,
		EventType:     string(eventType),
		Payload:       payload,
	}, nil
}

// NewOrderOutboxMessage сериализует событие заказа вместе с итогами в outbox-сообщение.
func NewOrderOutboxMessage(eventType EventType, order Order) (OutboxMessage, error) {
	totals := CalculateTotals(order)
	lines := make([]OrderLineEvent, 0, len(order.Items))
	for _, line := range order.Items {
		lines = append(lines, OrderLineEvent{
			ID:        line.ID,
			ItemID:    line.Item.ID,
			ItemType:  line.Item.Type,
			Amount:    line.Amount,
			ItemPrice: line.ItemPrice,
		})
	}

	payload, err := json.Marshal(OrderEvent{
		ID:           order.ID,
		Status:       order.Status,
		Discount:     order.Discount,
		Items:        lines,
		TotalService: totals.Service,
		TotalProduct: totals.Product,
		Total:        totals.Total,
		OccurredAt:   time.Now().UTC(),
	})
	if err != nil {
		return OutboxMessage{}, fmt.Errorf("marshal %s event: %w", eventType, err)
	}
	return OutboxMessage{
		AggregateType: AggregateOrder,
		AggregateID:   order.ID,
		EventType:     string(eventType),
		Payload:       payload,
	}, nil
}
