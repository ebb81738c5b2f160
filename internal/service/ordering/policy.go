package ordering

import (
	"fmt"
	"strings"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
)

// DisabledItemPolicy определяет, какие снятые с продажи позиции нельзя добавлять в заказ.
type DisabledItemPolicy string

const (
	// DisabledItemPolicyAny запрещает любую позицию в статусе DISABLED.
	DisabledItemPolicyAny DisabledItemPolicy = "any"
	// DisabledItemPolicyProduct запрещает только товары в статусе DISABLED.
	DisabledItemPolicyProduct DisabledItemPolicy = "product"
)

// ParseDisabledItemPolicy разбирает значение из конфигурации. Пустое значение означает "any".
func ParseDisabledItemPolicy(raw string) (DisabledItemPolicy, error) {
	switch DisabledItemPolicy(strings.ToLower(strings.TrimSpace(raw))) {
	case "", DisabledItemPolicyAny:
		return DisabledItemPolicyAny, nil
	case DisabledItemPolicyProduct:
		return DisabledItemPolicyProduct, nil
	default:
		return "", fmt.Errorf("unknown disabled item policy %q", raw)
	}
}

func (p DisabledItemPolicy) rejects(item domain.Item) bool {
	if !item.IsDisabled() {
		return false
	}
	if p == DisabledItemPolicyProduct {
		return item.Type == domain.ItemTypeProduct
	}
	return true
}
