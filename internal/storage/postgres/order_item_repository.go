package postgres

import (
	"context"
	"fmt"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
	"github.com/vladislavdragonenkov/catalog/internal/storage"
)

type orderItemRepository struct {
	q querier
}

func (r *orderItemRepository) ExistsByItemID(ctx context.Context, itemID string) (bool, error) {
	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	var exists bool
	if err := r.q.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM order_items WHERE item_id = $1)`, itemID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check order items by item: %w", err)
	}
	return exists, nil
}

func (r *orderItemRepository) FetchByIDs(ctx context.Context, ids []string) ([]domain.OrderItem, error) {
	ids = domain.SortedIDs(ids)
	if len(ids) == 0 {
		return []domain.OrderItem{}, nil
	}

	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	rows, err := r.q.QueryContext(ctx, `
		SELECT `+orderItemColumns+`
		FROM order_items oi
		JOIN items it ON it.id = oi.item_id
		WHERE oi.id = ANY($1)
		ORDER BY oi.id
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch order items: %w", err)
	}
	defer rows.Close()

	result := make([]domain.OrderItem, 0, len(ids))
	for rows.Next() {
		line, err := scanOrderItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		result = append(result, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order items: %w", err)
	}
	return result, nil
}

func (r *orderItemRepository) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	if _, err := r.q.ExecContext(ctx, `DELETE FROM order_items WHERE id = ANY($1)`, ids); err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}
	return nil
}

var _ storage.OrderItemRepository = (*orderItemRepository)(nil)
