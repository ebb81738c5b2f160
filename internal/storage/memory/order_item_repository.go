package memory

import (
	"context"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
	"github.com/vladislavdragonenkov/catalog/internal/storage"
)

type orderItemRepository struct {
	scope scope
}

func (r *orderItemRepository) ExistsByItemID(_ context.Context, itemID string) (bool, error) {
	var exists bool
	err := r.scope.read(func(st *state) error {
		for _, line := range st.orderItems {
			if line.itemID == itemID {
				exists = true
				return nil
			}
		}
		return nil
	})
	return exists, err
}

func (r *orderItemRepository) FetchByIDs(_ context.Context, ids []string) ([]domain.OrderItem, error) {
	var result []domain.OrderItem
	err := r.scope.read(func(st *state) error {
		result = make([]domain.OrderItem, 0, len(ids))
		for _, id := range domain.SortedIDs(ids) {
			if rec, ok := st.orderItems[id]; ok {
				result = append(result, st.orderItem(rec))
			}
		}
		return nil
	})
	return result, err
}

func (r *orderItemRepository) DeleteByIDs(_ context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.scope.write(func(st *state) error {
		for _, id := range ids {
			delete(st.orderItems, id)
		}
		return nil
	})
}

var _ storage.OrderItemRepository = (*orderItemRepository)(nil)
