package domain

import "github.com/shopspring/decimal"

// Totals содержит денежные итоги заказа.
type Totals struct {
	Service decimal.Decimal
	Product decimal.Decimal
	Total   decimal.Decimal
}

// CalculateTotals считает итоги заказа по зафиксированным ценам позиций.
// Скидка применяется только к товарам; каждая из трёх сумм округляется до копеек отдельно (half-up).
func CalculateTotals(order Order) Totals {
	service := decimal.Zero
	product := decimal.Zero

	for _, line := range order.Items {
		sum := line.ItemPrice.Mul(decimal.NewFromInt(int64(line.Amount)))
		switch line.Item.Type {
		case ItemTypeService:
			service = service.Add(sum)
		case ItemTypeProduct:
			product = product.Add(sum)
		}
	}

	totalService := service.Round(2)
	totalProduct := product.Mul(decimal.NewFromInt(1).Sub(order.Discount)).Round(2)

	return Totals{
		Service: totalService,
		Product: totalProduct,
		Total:   totalService.Add(totalProduct).Round(2),
	}
}
