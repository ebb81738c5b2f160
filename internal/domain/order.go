package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus описывает жизненный цикл заказа.
type OrderStatus string

const (
	// Заказ можно редактировать и удалять.
	OrderStatusOpened OrderStatus = "OPENED"
	// Терминальный статус, заказ больше не меняется.
	OrderStatusClosed OrderStatus = "CLOSED"
)

// Valid проверяет, что статус относится к поддерживаемым значениям.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusOpened, OrderStatusClosed:
		return true
	default:
		return false
	}
}

// OrderItem представляет одну позицию заказа.
type OrderItem struct {
	// ID пуст, пока позиция не сохранена. Позиция без ID считается новой.
	ID string
	// Заказ-владелец позиции.
	OrderID string
	// Позиция каталога. Клиент передаёт только Item.ID, остальное подставляет движок правил.
	Item Item
	// Количество единиц, строго больше нуля.
	Amount int
	// ItemPrice фиксирует цену позиции каталога в момент первого сохранения и больше не пересчитывается.
	ItemPrice decimal.Decimal
	CreatedAt time.Time
}

// IsNew сообщает, что позиция ещё не сохранена.
func (oi OrderItem) IsNew() bool {
	return oi.ID == ""
}

// Order агрегирует состояние заказа и его позиции.
type Order struct {
	ID     string
	Status OrderStatus
	// Доля скидки на товары в диапазоне [0, 1].
	Discount  decimal.Decimal
	Items     []OrderItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsClosed сообщает, что заказ в терминальном статусе.
func (o Order) IsClosed() bool {
	return o.Status == OrderStatusClosed
}

// OrderFilter задаёт опциональные условия поиска заказов.
// Условия по позициям каталога выполняются, если им соответствует хотя бы одна позиция заказа.
type OrderFilter struct {
	ID         string
	Query      string
	ItemType   ItemType
	ItemStatus ItemStatus
	Status     OrderStatus
}
