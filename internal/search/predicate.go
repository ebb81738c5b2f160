// Package search строит предикаты поиска позиций каталога и заказов
// из опциональных полей фильтра.
//
// Предикат является конъюнкцией типизированных условий. Хранилище в памяти вычисляет
// его через Match, PostgreSQL компилирует Conditions в WHERE.
package search

import (
	"strings"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
)

// Kind задаёт вид условия предиката.
type Kind int

const (
	// Базовое условие "id is not null", истинно для любой записи.
	KindAlways Kind = iota + 1
	// Точное совпадение идентификатора сущности.
	KindIDEquals
	// Подстрока в имени позиции без учёта регистра и диакритики.
	KindNameContains
	// Точное совпадение типа позиции.
	KindTypeEquals
	// Точное совпадение статуса позиции.
	KindStatusEquals
	// Точное совпадение статуса заказа.
	KindOrderStatusEquals
	// Хотя бы одна позиция заказа содержит подстроку в имени.
	KindAnyItemNameContains
	// Хотя бы одна позиция заказа имеет указанный тип.
	KindAnyItemTypeEquals
	// Хотя бы одна позиция заказа имеет указанный статус.
	KindAnyItemStatusEquals
)

func (k Kind) String() string {
	switch k {
	case KindAlways:
		return "always"
	case KindIDEquals:
		return "id"
	case KindNameContains:
		return "name_contains"
	case KindTypeEquals:
		return "type"
	case KindStatusEquals:
		return "status"
	case KindOrderStatusEquals:
		return "order_status"
	case KindAnyItemNameContains:
		return "any_item_name_contains"
	case KindAnyItemTypeEquals:
		return "any_item_type"
	case KindAnyItemStatusEquals:
		return "any_item_status"
	default:
		return "unknown"
	}
}

// Condition описывает одно условие предиката.
type Condition struct {
	Kind  Kind
	Value string
}

var always = Condition{Kind: KindAlways}

// ItemPredicate отбирает позиции каталога.
type ItemPredicate struct {
	conditions []Condition
}

// ForItems строит предикат только из заданных полей фильтра.
func ForItems(f domain.ItemFilter) ItemPredicate {
	conds := []Condition{always}
	if id := strings.TrimSpace(f.ID); id != "" {
		conds = append(conds, Condition{Kind: KindIDEquals, Value: id})
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		conds = append(conds, Condition{Kind: KindNameContains, Value: q})
	}
	if f.Type != "" {
		conds = append(conds, Condition{Kind: KindTypeEquals, Value: string(f.Type)})
	}
	if f.Status != "" {
		conds = append(conds, Condition{Kind: KindStatusEquals, Value: string(f.Status)})
	}
	return ItemPredicate{conditions: conds}
}

// Conditions возвращает копию условий предиката.
func (p ItemPredicate) Conditions() []Condition {
	if len(p.conditions) == 0 {
		return []Condition{always}
	}
	return append([]Condition(nil), p.conditions...)
}

// Match вычисляет предикат для позиции каталога.
func (p ItemPredicate) Match(item domain.Item) bool {
	for _, c := range p.conditions {
		if !matchItem(c, item) {
			return false
		}
	}
	return true
}

func matchItem(c Condition, item domain.Item) bool {
	switch c.Kind {
	case KindAlways:
		return item.ID != ""
	case KindIDEquals:
		return item.ID == c.Value
	case KindNameContains:
		return Contains(item.Name, c.Value)
	case KindTypeEquals:
		return string(item.Type) == c.Value
	case KindStatusEquals:
		return string(item.Status) == c.Value
	default:
		return false
	}
}

// OrderPredicate отбирает заказы.
type OrderPredicate struct {
	conditions []Condition
}

// ForOrders строит предикат только из заданных полей фильтра.
// Условия по позициям каталога экзистенциальные: достаточно одной подходящей позиции заказа.
func ForOrders(f domain.OrderFilter) OrderPredicate {
	conds := []Condition{always}
	if id := strings.TrimSpace(f.ID); id != "" {
		conds = append(conds, Condition{Kind: KindIDEquals, Value: id})
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		conds = append(conds, Condition{Kind: KindAnyItemNameContains, Value: q})
	}
	if f.ItemType != "" {
		conds = append(conds, Condition{Kind: KindAnyItemTypeEquals, Value: string(f.ItemType)})
	}
	if f.ItemStatus != "" {
		conds = append(conds, Condition{Kind: KindAnyItemStatusEquals, Value: string(f.ItemStatus)})
	}
	if f.Status != "" {
		conds = append(conds, Condition{Kind: KindOrderStatusEquals, Value: string(f.Status)})
	}
	return OrderPredicate{conditions: conds}
}

// Conditions возвращает копию условий предиката.
func (p OrderPredicate) Conditions() []Condition {
	if len(p.conditions) == 0 {
		return []Condition{always}
	}
	return append([]Condition(nil), p.conditions...)
}

// Match вычисляет предикат для заказа с загруженными позициями каталога.
func (p OrderPredicate) Match(order domain.Order) bool {
	for _, c := range p.conditions {
		if !matchOrder(c, order) {
			return false
		}
	}
	return true
}

func matchOrder(c Condition, order domain.Order) bool {
	switch c.Kind {
	case KindAlways:
		return order.ID != ""
	case KindIDEquals:
		return order.ID == c.Value
	case KindOrderStatusEquals:
		return string(order.Status) == c.Value
	case KindAnyItemNameContains:
		return anyItem(order, func(it domain.Item) bool { return Contains(it.Name, c.Value) })
	case KindAnyItemTypeEquals:
		return anyItem(order, func(it domain.Item) bool { return string(it.Type) == c.Value })
	case KindAnyItemStatusEquals:
		return anyItem(order, func(it domain.Item) bool { return string(it.Status) == c.Value })
	default:
		return false
	}
}

func anyItem(order domain.Order, fn func(domain.Item) bool) bool {
	for _, line := range order.Items {
		if fn(line.Item) {
			return true
		}
	}
	return false
}
