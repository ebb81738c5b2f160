package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	minItemPrice    = decimal.RequireFromString("0.01")
	maxPriceInteger = decimal.New(1, 10)
	maxDiscount     = decimal.NewFromInt(1)
)

// ItemInput содержит данные позиции каталога, пришедшие от клиента.
type ItemInput struct {
	Name   string
	Type   ItemType
	Price  decimal.Decimal
	Status ItemStatus
}

// Normalize обрезает пробелы в имени и подставляет статус по умолчанию.
func (in ItemInput) Normalize() ItemInput {
	in.Name = strings.TrimSpace(in.Name)
	if in.Status == "" {
		in.Status = ItemStatusActive
	}
	return in
}

// Validate проверяет позицию каталога и возвращает ошибку вида ErrValidation.
func (in ItemInput) Validate() error {
	var violations []FieldViolation

	if strings.TrimSpace(in.Name) == "" {
		violations = append(violations, FieldViolation{Field: "name", Message: "must not be blank"})
	}
	if !in.Type.Valid() {
		violations = append(violations, FieldViolation{Field: "type", Message: "must be one of PRODUCT, SERVICE"})
	}
	if in.Price.LessThan(minItemPrice) {
		violations = append(violations, FieldViolation{Field: "price", Message: "must be greater than or equal to 0.01"})
	}
	if !hasDigits(in.Price, maxPriceInteger, 2) {
		violations = append(violations, FieldViolation{Field: "price", Message: "numeric value out of bounds (<10 digits>.<2 digits> expected)"})
	}
	if in.Status != "" && !in.Status.Valid() {
		violations = append(violations, FieldViolation{Field: "status", Message: "must be one of ACTIVE, DISABLED"})
	}

	if len(violations) > 0 {
		return NewValidation(violations)
	}
	return nil
}

// OrderItemInput описывает позицию заказа, пришедшую от клиента.
type OrderItemInput struct {
	// ID задан для уже существующей позиции заказа.
	ID     string
	ItemID string
	Amount int
}

// OrderInput описывает предлагаемое состояние заказа.
type OrderInput struct {
	Discount decimal.Decimal
	Items    []OrderItemInput
}

// Validate проверяет предлагаемый заказ и возвращает ошибку вида ErrValidation.
func (in OrderInput) Validate() error {
	var violations []FieldViolation

	if in.Discount.IsNegative() || in.Discount.GreaterThan(maxDiscount) {
		violations = append(violations, FieldViolation{Field: "discount", Message: "must be between 0.0 and 1.0"})
	} else if !hasDigits(in.Discount, decimal.New(1, 1), 2) {
		violations = append(violations, FieldViolation{Field: "discount", Message: "numeric value out of bounds (<1 digits>.<2 digits> expected)"})
	}
	if len(in.Items) == 0 {
		violations = append(violations, FieldViolation{Field: "orderItems", Message: "must not be empty"})
	}

	seen := make(map[string]struct{}, len(in.Items))
	for i, line := range in.Items {
		field := fmt.Sprintf("orderItems[%d]", i)
		if strings.TrimSpace(line.ItemID) == "" {
			violations = append(violations, FieldViolation{Field: field + ".item.id", Message: "must not be null"})
		}
		if line.Amount <= 0 {
			violations = append(violations, FieldViolation{Field: field + ".amount", Message: "must be greater than 0"})
		}
		if line.ID == "" {
			continue
		}
		if _, ok := seen[line.ID]; ok {
			violations = append(violations, FieldViolation{Field: field + ".id", Message: "duplicated order item id " + line.ID})
		}
		seen[line.ID] = struct{}{}
	}

	if len(violations) > 0 {
		return NewValidation(violations)
	}
	return nil
}

// ValidateStatusChange проверяет целевой статус: вручную заказ можно только закрыть.
func ValidateStatusChange(target OrderStatus) error {
	if target != OrderStatusClosed {
		return NewValidation([]FieldViolation{{Field: "status", Message: "only CLOSED status is allowed"}})
	}
	return nil
}

// hasDigits проверяет, что |d| < integerBound, а дробная часть без хвостовых нулей не длиннее fraction знаков.
func hasDigits(d decimal.Decimal, integerBound decimal.Decimal, fraction int32) bool {
	if d.Truncate(0).Abs().GreaterThanOrEqual(integerBound) {
		return false
	}
	return d.Equal(d.Truncate(fraction))
}
