package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemType различает товары и услуги каталога.
type ItemType string

const (
	// Физический товар; только на товары распространяется скидка заказа.
	ItemTypeProduct ItemType = "PRODUCT"
	// Услуга, всегда оплачивается по полной цене.
	ItemTypeService ItemType = "SERVICE"
)

// Valid проверяет, что тип относится к поддерживаемым значениям.
func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeProduct, ItemTypeService:
		return true
	default:
		return false
	}
}

// ItemStatus описывает доступность позиции каталога для новых заказов.
type ItemStatus string

const (
	// Позицию можно добавлять в заказы.
	ItemStatusActive ItemStatus = "ACTIVE"
	// Позиция снята с продажи.
	ItemStatusDisabled ItemStatus = "DISABLED"
)

// Valid проверяет, что статус относится к поддерживаемым значениям.
func (s ItemStatus) Valid() bool {
	switch s {
	case ItemStatusActive, ItemStatusDisabled:
		return true
	default:
		return false
	}
}

// Item описывает позицию каталога (товар или услугу).
type Item struct {
	ID     string
	Name   string
	Type   ItemType
	Price  decimal.Decimal
	Status ItemStatus
	// CreatedAt и UpdatedAt проставляет хранилище.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsDisabled сообщает, снята ли позиция с продажи.
func (i Item) IsDisabled() bool {
	return i.Status == ItemStatusDisabled
}

// ItemFilter задаёт опциональные условия поиска позиций каталога.
// Пустое поле означает отсутствие условия.
type ItemFilter struct {
	ID     string
	Query  string
	Type   ItemType
	Status ItemStatus
}
