package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
	"github.com/vladislavdragonenkov/catalog/internal/search"
	"github.com/vladislavdragonenkov/catalog/internal/storage"
)

const (
	orderColumns = `o.id, o.status, o.discount, o.created_at, o.updated_at`

	orderItemColumns = `
		oi.id, oi.order_id, oi.amount, oi.item_price, oi.created_at,
		it.id, it.name, it.type, it.price, it.status, it.created_at, it.updated_at`
)

type orderRepository struct {
	q querier
}

// NewOrderRepository создаёт PostgreSQL-реализацию OrderRepository.
func NewOrderRepository(store *Store) storage.OrderRepository {
	return &orderRepository{q: store.DB()}
}

func (r *orderRepository) FetchByID(ctx context.Context, id string) (domain.Order, error) {
	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	return fetchOrder(ctx, r.q, id)
}

func fetchOrder(ctx context.Context, q querier, id string) (domain.Order, error) {
	order, err := scanOrder(q.QueryRowContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders o
		WHERE o.id = $1
	`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, storage.ErrRecordNotFound
		}
		return domain.Order{}, fmt.Errorf("select order: %w", err)
	}

	lines, err := loadOrderItems(ctx, q, []string{order.ID})
	if err != nil {
		return domain.Order{}, err
	}
	order.Items = lines[order.ID]
	if order.Items == nil {
		order.Items = []domain.OrderItem{}
	}
	return order, nil
}

// Save записывает заказ и позиции атомарно. Цена существующих позиций не обновляется.
func (r *orderRepository) Save(ctx context.Context, order domain.Order) (domain.Order, error) {
	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	if order.ID == "" {
		order.ID = uuid.NewString()
	}

	var stored domain.Order
	err := atomically(ctx, r.q, func(q querier) error {
		now := time.Now().UTC()
		if _, err := q.ExecContext(ctx, `
			INSERT INTO orders (id, status, discount, created_at, updated_at)
			VALUES ($1,$2,$3,$4,$4)
			ON CONFLICT (id) DO UPDATE
			SET status = EXCLUDED.status,
			    discount = EXCLUDED.discount,
			    updated_at = EXCLUDED.updated_at
		`, order.ID, string(order.Status), order.Discount, now); err != nil {
			return mapWriteError("save order", err)
		}

		for position, line := range order.Items {
			if line.IsNew() {
				if _, err := q.ExecContext(ctx, `
					INSERT INTO order_items (id, order_id, item_id, amount, item_price, position, created_at)
					VALUES ($1,$2,$3,$4,$5,$6,$7)
				`, uuid.NewString(), order.ID, line.Item.ID, line.Amount, line.ItemPrice, position, now); err != nil {
					if isForeignKeyViolation(err) {
						return fmt.Errorf("item %s: %w", line.Item.ID, storage.ErrRecordNotFound)
					}
					return mapWriteError("insert order item", err)
				}
				continue
			}

			res, err := q.ExecContext(ctx, `
				UPDATE order_items
				SET item_id = $1,
				    amount = $2,
				    position = $3
				WHERE id = $4
				  AND order_id = $5
			`, line.Item.ID, line.Amount, position, line.ID, order.ID)
			if err != nil {
				if isForeignKeyViolation(err) {
					return fmt.Errorf("item %s: %w", line.Item.ID, storage.ErrRecordNotFound)
				}
				return mapWriteError("update order item", err)
			}
			affected, err := rowsAffected(res)
			if err != nil {
				return err
			}
			if affected == 0 {
				return fmt.Errorf("order item %s: %w", line.ID, storage.ErrRecordNotFound)
			}
		}

		var err error
		stored, err = fetchOrder(ctx, q, order.ID)
		return err
	})
	if err != nil {
		return domain.Order{}, err
	}
	return stored, nil
}

func (r *orderRepository) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	res, err := r.q.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return mapWriteError("delete order", err)
	}
	affected, err := rowsAffected(res)
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrRecordNotFound
	}
	return nil
}

func (r *orderRepository) Query(ctx context.Context, predicate search.OrderPredicate, page domain.PageRequest) (domain.Page[domain.Order], error) {
	page = page.Normalize()

	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	args := &argList{}
	where := orderWhere(predicate, args)

	var total int
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders o WHERE `+where, args.values...).Scan(&total); err != nil {
		return domain.Page[domain.Order]{}, fmt.Errorf("count orders: %w", err)
	}

	limit := args.add(page.PageSize)
	offset := args.add(page.Offset())
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders o
		WHERE `+where+`
		ORDER BY `+orderBy(page, orderSortColumns, "o")+`
		LIMIT `+limit+` OFFSET `+offset,
		args.values...,
	)
	if err != nil {
		return domain.Page[domain.Order]{}, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0, page.PageSize)
	ids := make([]string, 0, page.PageSize)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return domain.Page[domain.Order]{}, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, order)
		ids = append(ids, order.ID)
	}
	if err := rows.Err(); err != nil {
		return domain.Page[domain.Order]{}, fmt.Errorf("iterate order rows: %w", err)
	}

	lines, err := loadOrderItems(ctx, r.q, ids)
	if err != nil {
		return domain.Page[domain.Order]{}, err
	}
	for i := range orders {
		orders[i].Items = lines[orders[i].ID]
		if orders[i].Items == nil {
			orders[i].Items = []domain.OrderItem{}
		}
	}

	return domain.NewPage(orders, page, total), nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	res, err := r.q.ExecContext(ctx, `
		UPDATE orders
		SET status = $1,
		    updated_at = $2
		WHERE id = $3
	`, string(status), time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	affected, err := rowsAffected(res)
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrRecordNotFound
	}
	return nil
}

// loadOrderItems загружает позиции заказов, сгруппированные по заказу, в исходном порядке.
func loadOrderItems(ctx context.Context, q querier, orderIDs []string) (map[string][]domain.OrderItem, error) {
	result := make(map[string][]domain.OrderItem, len(orderIDs))
	if len(orderIDs) == 0 {
		return result, nil
	}

	rows, err := q.QueryContext(ctx, `
		SELECT `+orderItemColumns+`
		FROM order_items oi
		JOIN items it ON it.id = oi.item_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.order_id, oi.position, oi.id
	`, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		line, err := scanOrderItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		result[line.OrderID] = append(result[line.OrderID], line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order items: %w", err)
	}
	return result, nil
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var (
		order  domain.Order
		status string
	)
	if err := row.Scan(&order.ID, &status, &order.Discount, &order.CreatedAt, &order.UpdatedAt); err != nil {
		return domain.Order{}, err
	}
	order.Status = domain.OrderStatus(status)
	order.CreatedAt = order.CreatedAt.UTC()
	order.UpdatedAt = order.UpdatedAt.UTC()
	return order, nil
}

func scanOrderItem(row rowScanner) (domain.OrderItem, error) {
	var (
		line               domain.OrderItem
		itemPrice          decimal.Decimal
		itemType, itemStat string
	)
	if err := row.Scan(
		&line.ID, &line.OrderID, &line.Amount, &itemPrice, &line.CreatedAt,
		&line.Item.ID, &line.Item.Name, &itemType, &line.Item.Price, &itemStat,
		&line.Item.CreatedAt, &line.Item.UpdatedAt,
	); err != nil {
		return domain.OrderItem{}, err
	}
	line.ItemPrice = itemPrice
	line.Item.Type = domain.ItemType(itemType)
	line.Item.Status = domain.ItemStatus(itemStat)
	line.CreatedAt = line.CreatedAt.UTC()
	line.Item.CreatedAt = line.Item.CreatedAt.UTC()
	line.Item.UpdatedAt = line.Item.UpdatedAt.UTC()
	return line, nil
}

var _ storage.OrderRepository = (*orderRepository)(nil)
