package domain_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
)

func line(itemType domain.ItemType, price string, amount int) domain.OrderItem {
	return domain.OrderItem{
		Item:      domain.Item{ID: string(itemType) + "-" + price, Type: itemType},
		Amount:    amount,
		ItemPrice: decimal.RequireFromString(price),
	}
}

func TestCalculateTotals(t *testing.T) {
	tests := []struct {
		name        string
		discount    string
		items       []domain.OrderItem
		wantService string
		wantProduct string
		wantTotal   string
	}{
		{
			name:        "mixed order with discount",
			discount:    "0.10",
			items:       []domain.OrderItem{line(domain.ItemTypeService, "10.00", 2), line(domain.ItemTypeProduct, "5.00", 3)},
			wantService: "20",
			wantProduct: "13.5",
			wantTotal:   "33.5",
		},
		{
			name:        "services only ignore discount",
			discount:    "0.50",
			items:       []domain.OrderItem{line(domain.ItemTypeService, "3.33", 3)},
			wantService: "9.99",
			wantProduct: "0",
			wantTotal:   "9.99",
		},
		{
			name:        "half up rounding on product total",
			discount:    "0.15",
			items:       []domain.OrderItem{line(domain.ItemTypeProduct, "0.10", 1)},
			wantService: "0",
			wantProduct: "0.09",
			wantTotal:   "0.09",
		},
		{
			name:        "full discount",
			discount:    "1",
			items:       []domain.OrderItem{line(domain.ItemTypeProduct, "99.99", 7), line(domain.ItemTypeService, "1.01", 1)},
			wantService: "1.01",
			wantProduct: "0",
			wantTotal:   "1.01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := domain.CalculateTotals(domain.Order{
				Discount: decimal.RequireFromString(tt.discount),
				Items:    tt.items,
			})
			assertDecimal(t, "service", totals.Service, tt.wantService)
			assertDecimal(t, "product", totals.Product, tt.wantProduct)
			assertDecimal(t, "total", totals.Total, tt.wantTotal)
		})
	}
}

func TestCalculateTotals_UsesSnapshotPrice(t *testing.T) {
	l := line(domain.ItemTypeProduct, "5.00", 2)
	l.Item.Price = decimal.RequireFromString("100.00")

	totals := domain.CalculateTotals(domain.Order{Discount: decimal.Zero, Items: []domain.OrderItem{l}})
	assertDecimal(t, "product", totals.Product, "10")
}

func assertDecimal(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Fatalf("%s = %s, want %s", name, got, want)
	}
}

func TestPageRequestNormalize(t *testing.T) {
	p := domain.PageRequest{Page: -1, PageSize: 0, SortDirection: "desc", SortField: " name "}.Normalize()
	if p.Page != 0 || p.PageSize != domain.DefaultPageSize || p.SortDirection != domain.SortDesc || p.SortField != "name" {
		t.Fatalf("unexpected normalized page %+v", p)
	}

	big := domain.PageRequest{Page: 2, PageSize: 5000}.Normalize()
	if big.PageSize != domain.MaxPageSize || big.SortDirection != domain.SortAsc {
		t.Fatalf("unexpected normalized page %+v", big)
	}
	if big.Offset() != 2*domain.MaxPageSize {
		t.Fatalf("unexpected offset %d", big.Offset())
	}

	huge := domain.PageRequest{Page: math.MaxInt64 / 5, PageSize: 10}.Normalize()
	if huge.Page != math.MaxInt/10 {
		t.Fatalf("page must be clamped, got %d", huge.Page)
	}
	if offset := huge.Offset(); offset < 0 {
		t.Fatalf("offset overflowed: %d", offset)
	}
}

func TestNewPage(t *testing.T) {
	page := domain.NewPage[int](nil, domain.PageRequest{Page: 1, PageSize: 10}, 21)
	if page.TotalPages != 3 || page.TotalResults != 21 || page.Items == nil {
		t.Fatalf("unexpected page %+v", page)
	}
}

func TestNewOrderOutboxMessage(t *testing.T) {
	order := domain.Order{
		ID:       "order-1",
		Status:   domain.OrderStatusOpened,
		Discount: decimal.RequireFromString("0.10"),
		Items:    []domain.OrderItem{line(domain.ItemTypeProduct, "5.00", 3)},
	}

	msg, err := domain.NewOrderOutboxMessage(domain.EventOrderCreated, order)
	if err != nil {
		t.Fatalf("build message: %v", err)
	}
	if msg.AggregateType != domain.AggregateOrder || msg.AggregateID != "order-1" || msg.EventType != "order.created" {
		t.Fatalf("unexpected message header %+v", msg)
	}

	var payload domain.OrderEvent
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	assertDecimal(t, "total", payload.Total, "13.5")
	if len(payload.Items) != 1 || payload.Items[0].Amount != 3 {
		t.Fatalf("unexpected payload items %+v", payload.Items)
	}
}
