package postgres

import (
	"fmt"
	"strings"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
	"github.com/vladislavdragonenkov/catalog/internal/search"
)

// argList накапливает позиционные параметры запроса.
type argList struct {
	values []any
}

func (a *argList) add(v any) string {
	a.values = append(a.values, v)
	return fmt.Sprintf("$%d", len(a.values))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern строит шаблон ILIKE для поиска подстроки.
func containsPattern(value string) string {
	return "%" + likeEscaper.Replace(value) + "%"
}

func nameContains(column string, args *argList, value string) string {
	return fmt.Sprintf("unaccent(%s) ILIKE unaccent(%s)", column, args.add(containsPattern(value)))
}

// itemWhere компилирует предикат позиций каталога в условие WHERE над алиасом i.
func itemWhere(p search.ItemPredicate, args *argList) string {
	conds := p.Conditions()
	parts := make([]string, 0, len(conds))
	for _, c := range conds {
		switch c.Kind {
		case search.KindAlways:
			parts = append(parts, "i.id IS NOT NULL")
		case search.KindIDEquals:
			parts = append(parts, "i.id = "+args.add(c.Value))
		case search.KindNameContains:
			parts = append(parts, nameContains("i.name", args, c.Value))
		case search.KindTypeEquals:
			parts = append(parts, "i.type = "+args.add(c.Value))
		case search.KindStatusEquals:
			parts = append(parts, "i.status = "+args.add(c.Value))
		default:
			parts = append(parts, "FALSE")
		}
	}
	return strings.Join(parts, " AND ")
}

// orderWhere компилирует предикат заказов в условие WHERE над алиасом o.
// Условия по позициям проверяются через EXISTS, каждое независимо.
func orderWhere(p search.OrderPredicate, args *argList) string {
	conds := p.Conditions()
	parts := make([]string, 0, len(conds))
	for _, c := range conds {
		switch c.Kind {
		case search.KindAlways:
			parts = append(parts, "o.id IS NOT NULL")
		case search.KindIDEquals:
			parts = append(parts, "o.id = "+args.add(c.Value))
		case search.KindOrderStatusEquals:
			parts = append(parts, "o.status = "+args.add(c.Value))
		case search.KindAnyItemNameContains:
			parts = append(parts, anyOrderItem(nameContains("it.name", args, c.Value)))
		case search.KindAnyItemTypeEquals:
			parts = append(parts, anyOrderItem("it.type = "+args.add(c.Value)))
		case search.KindAnyItemStatusEquals:
			parts = append(parts, anyOrderItem("it.status = "+args.add(c.Value)))
		default:
			parts = append(parts, "FALSE")
		}
	}
	return strings.Join(parts, " AND ")
}

func anyOrderItem(cond string) string {
	return `EXISTS (
		SELECT 1
		FROM order_items oi
		JOIN items it ON it.id = oi.item_id
		WHERE oi.order_id = o.id AND ` + cond + `
	)`
}

var (
	itemSortColumns = map[string]string{
		"id":        "i.id",
		"name":      "i.name",
		"type":      "i.type",
		"price":     "i.price",
		"status":    "i.status",
		"createdAt": "i.created_at",
		"updatedAt": "i.updated_at",
	}
	orderSortColumns = map[string]string{
		"id":        "o.id",
		"status":    "o.status",
		"discount":  "o.discount",
		"createdAt": "o.created_at",
		"updatedAt": "o.updated_at",
	}
)

// orderBy строит ORDER BY по белому списку колонок. Пустое поле означает
// порядок вставки, неизвестное сортирует по идентификатору.
func orderBy(page domain.PageRequest, columns map[string]string, alias string) string {
	if page.SortField == "" {
		return alias + ".seq ASC"
	}
	column, ok := columns[page.SortField]
	if !ok {
		column = alias + ".id"
	}
	direction := "ASC"
	if page.SortDirection == domain.SortDesc {
		direction = "DESC"
	}
	return fmt.Sprintf("%s %s, %s.id ASC", column, direction, alias)
}
