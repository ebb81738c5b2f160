package grpcsvc

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
	catalogv1 "github.com/vladislavdragonenkov/catalog/proto/catalog/v1"
)

// Денежные значения и скидка передаются строками с двумя знаками после точки.
const decimalPlaces = 2

func formatDecimal(v decimal.Decimal) string {
	return v.StringFixed(decimalPlaces)
}

// decimalParser разбирает десятичные строки запроса и копит нарушения по полям.
type decimalParser struct {
	violations []domain.FieldViolation
}

// parse возвращает ноль для пустой строки: обязательность проверяют движки правил.
func (p *decimalParser) parse(field, raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		p.violations = append(p.violations, domain.FieldViolation{
			Field:   field,
			Message: "must be a decimal number",
		})
		return decimal.Zero
	}
	return v
}

func (p *decimalParser) err() error {
	if len(p.violations) == 0 {
		return nil
	}
	return domain.NewValidation(p.violations)
}

func clampInt32(v int) int32 {
	switch {
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	default:
		return int32(v)
	}
}

func toItem(item domain.Item) *catalogv1.Item {
	return &catalogv1.Item{
		Id:              item.ID,
		Name:            item.Name,
		Type:            string(item.Type),
		Price:           formatDecimal(item.Price),
		Status:          string(item.Status),
		CreatedAtUnixMs: item.CreatedAt.UnixMilli(),
		UpdatedAtUnixMs: item.UpdatedAt.UnixMilli(),
	}
}

func toOrder(order domain.Order) *catalogv1.Order {
	totals := domain.CalculateTotals(order)
	items := make([]*catalogv1.OrderItem, 0, len(order.Items))
	for _, line := range order.Items {
		items = append(items, &catalogv1.OrderItem{
			Id:        line.ID,
			Item:      toItem(line.Item),
			Amount:    clampInt32(line.Amount),
			ItemPrice: formatDecimal(line.ItemPrice),
		})
	}

	return &catalogv1.Order{
		Id:              order.ID,
		Status:          string(order.Status),
		Discount:        formatDecimal(order.Discount),
		Items:           items,
		TotalService:    formatDecimal(totals.Service),
		TotalProduct:    formatDecimal(totals.Product),
		Total:           formatDecimal(totals.Total),
		CreatedAtUnixMs: order.CreatedAt.UnixMilli(),
		UpdatedAtUnixMs: order.UpdatedAt.UnixMilli(),
	}
}

func toPageRequest(page *catalogv1.PageRequest) domain.PageRequest {
	return domain.PageRequest{
		Page:          int(page.GetPage()),
		PageSize:      int(page.GetPageSize()),
		SortDirection: domain.SortDirection(page.GetSortDirection()),
		SortField:     page.GetSortField(),
	}
}

func toItemInput(name, itemType, price, itemStatus string) (domain.ItemInput, error) {
	var p decimalParser
	in := domain.ItemInput{
		Name:   name,
		Type:   domain.ItemType(itemType),
		Price:  p.parse("price", price),
		Status: domain.ItemStatus(itemStatus),
	}
	return in, p.err()
}

func toOrderInput(discount string, lines []*catalogv1.OrderItemInput) (domain.OrderInput, error) {
	var p decimalParser
	input := domain.OrderInput{
		Discount: p.parse("discount", discount),
		Items:    make([]domain.OrderItemInput, 0, len(lines)),
	}
	for _, line := range lines {
		if line == nil {
			continue
		}
		input.Items = append(input.Items, domain.OrderItemInput{
			ID:     line.GetId(),
			ItemID: line.GetItemId(),
			Amount: int(line.GetAmount()),
		})
	}
	return input, p.err()
}
