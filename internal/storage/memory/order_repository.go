package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
	"github.com/vladislavdragonenkov/catalog/internal/search"
	"github.com/vladislavdragonenkov/catalog/internal/storage"
)

type orderRepository struct {
	scope scope
}

func (r *orderRepository) FetchByID(_ context.Context, id string) (domain.Order, error) {
	var order domain.Order
	err := r.scope.read(func(st *state) error {
		rec, ok := st.orders[id]
		if !ok {
			return storage.ErrRecordNotFound
		}
		order = st.order(rec)
		return nil
	})
	return order, err
}

func (r *orderRepository) Save(_ context.Context, order domain.Order) (domain.Order, error) {
	var stored domain.Order
	err := r.scope.write(func(st *state) error {
		now := time.Now().UTC()
		if order.ID == "" {
			order.ID = uuid.NewString()
		}

		rec, exists := st.orders[order.ID]
		if !exists {
			rec = orderRecord{id: order.ID, seq: st.nextSeq(), createdAt: now}
		}
		rec.status = order.Status
		rec.discount = order.Discount
		rec.updatedAt = now
		st.orders[order.ID] = rec

		for position, line := range order.Items {
			if _, ok := st.items[line.Item.ID]; !ok {
				return fmt.Errorf("item %s: %w", line.Item.ID, storage.ErrRecordNotFound)
			}

			if line.ID == "" {
				id := uuid.NewString()
				st.orderItems[id] = orderItemRecord{
					id:        id,
					orderID:   order.ID,
					itemID:    line.Item.ID,
					amount:    line.Amount,
					itemPrice: line.ItemPrice,
					position:  position,
					createdAt: now,
				}
				continue
			}

			existing, ok := st.orderItems[line.ID]
			if !ok || existing.orderID != order.ID {
				return fmt.Errorf("order item %s: %w", line.ID, storage.ErrRecordNotFound)
			}
			existing.itemID = line.Item.ID
			existing.amount = line.Amount
			existing.position = position
			st.orderItems[line.ID] = existing
		}

		stored = st.order(rec)
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}
	return stored, nil
}

func (r *orderRepository) DeleteByID(_ context.Context, id string) error {
	return r.scope.write(func(st *state) error {
		if _, ok := st.orders[id]; !ok {
			return storage.ErrRecordNotFound
		}
		for lineID, line := range st.orderItems {
			if line.orderID == id {
				delete(st.orderItems, lineID)
			}
		}
		delete(st.orders, id)
		return nil
	})
}

func (r *orderRepository) Query(_ context.Context, predicate search.OrderPredicate, page domain.PageRequest) (domain.Page[domain.Order], error) {
	page = page.Normalize()

	var result domain.Page[domain.Order]
	err := r.scope.read(func(st *state) error {
		type row struct {
			order domain.Order
			seq   int64
		}

		rows := make([]row, 0, len(st.orders))
		for _, rec := range st.orders {
			order := st.order(rec)
			if predicate.Match(order) {
				rows = append(rows, row{order: order, seq: rec.seq})
			}
		}

		if page.SortField == "" {
			slices.SortFunc(rows, func(a, b row) int { return cmp.Compare(a.seq, b.seq) })
		} else {
			compare := compareOrders(page.SortField)
			slices.SortStableFunc(rows, func(a, b row) int {
				if c := applyDirection(compare(a.order, b.order), page.SortDirection); c != 0 {
					return c
				}
				return strings.Compare(a.order.ID, b.order.ID)
			})
		}

		orders := make([]domain.Order, 0, len(rows))
		for _, row := range rows {
			orders = append(orders, row.order)
		}
		result = paginate(orders, page)
		return nil
	})
	return result, err
}

func compareOrders(field string) func(a, b domain.Order) int {
	switch field {
	case "status":
		return func(a, b domain.Order) int { return strings.Compare(string(a.Status), string(b.Status)) }
	case "discount":
		return func(a, b domain.Order) int { return a.Discount.Cmp(b.Discount) }
	case "createdAt":
		return func(a, b domain.Order) int { return a.CreatedAt.Compare(b.CreatedAt) }
	case "updatedAt":
		return func(a, b domain.Order) int { return a.UpdatedAt.Compare(b.UpdatedAt) }
	default:
		return func(a, b domain.Order) int { return strings.Compare(a.ID, b.ID) }
	}
}

func (r *orderRepository) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) error {
	return r.scope.write(func(st *state) error {
		rec, ok := st.orders[id]
		if !ok {
			return storage.ErrRecordNotFound
		}
		rec.status = status
		rec.updatedAt = time.Now().UTC()
		st.orders[id] = rec
		return nil
	})
}

var _ storage.OrderRepository = (*orderRepository)(nil)
