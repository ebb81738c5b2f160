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

type itemRepository struct {
	scope scope
}

func (r *itemRepository) ExistsByID(_ context.Context, id string) (bool, error) {
	var exists bool
	err := r.scope.read(func(st *state) error {
		_, exists = st.items[id]
		return nil
	})
	return exists, err
}

func (r *itemRepository) ExistsByNameAndType(_ context.Context, name string, itemType domain.ItemType, excludeID string) (bool, error) {
	var exists bool
	err := r.scope.read(func(st *state) error {
		exists = hasItemNamed(st, name, itemType, excludeID)
		return nil
	})
	return exists, err
}

func hasItemNamed(st *state, name string, itemType domain.ItemType, excludeID string) bool {
	for id, rec := range st.items {
		if id != excludeID && rec.item.Name == name && rec.item.Type == itemType {
			return true
		}
	}
	return false
}

func (r *itemRepository) FetchByIDs(_ context.Context, ids []string) ([]domain.Item, error) {
	var result []domain.Item
	err := r.scope.read(func(st *state) error {
		result = make([]domain.Item, 0, len(ids))
		for _, id := range domain.SortedIDs(ids) {
			if rec, ok := st.items[id]; ok {
				result = append(result, rec.item)
			}
		}
		return nil
	})
	return result, err
}

func (r *itemRepository) FetchByID(_ context.Context, id string) (domain.Item, error) {
	var item domain.Item
	err := r.scope.read(func(st *state) error {
		rec, ok := st.items[id]
		if !ok {
			return storage.ErrRecordNotFound
		}
		item = rec.item
		return nil
	})
	return item, err
}

func (r *itemRepository) Save(_ context.Context, item domain.Item) (domain.Item, error) {
	err := r.scope.write(func(st *state) error {
		now := time.Now().UTC()
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		if hasItemNamed(st, item.Name, item.Type, item.ID) {
			return fmt.Errorf("item %s/%s: %w", item.Name, item.Type, storage.ErrDuplicate)
		}

		rec, exists := st.items[item.ID]
		if exists {
			item.CreatedAt = rec.item.CreatedAt
		} else {
			rec.seq = st.nextSeq()
			item.CreatedAt = now
		}
		item.UpdatedAt = now
		rec.item = item
		st.items[item.ID] = rec
		return nil
	})
	if err != nil {
		return domain.Item{}, err
	}
	return item, nil
}

func (r *itemRepository) DeleteByID(_ context.Context, id string) error {
	return r.scope.write(func(st *state) error {
		if _, ok := st.items[id]; !ok {
			return storage.ErrRecordNotFound
		}
		for _, line := range st.orderItems {
			if line.itemID == id {
				return fmt.Errorf("item %s: %w", id, storage.ErrReferenced)
			}
		}
		delete(st.items, id)
		return nil
	})
}

func (r *itemRepository) Query(_ context.Context, predicate search.ItemPredicate, page domain.PageRequest) (domain.Page[domain.Item], error) {
	page = page.Normalize()

	var result domain.Page[domain.Item]
	err := r.scope.read(func(st *state) error {
		rows := make([]itemRecord, 0, len(st.items))
		for _, rec := range st.items {
			if predicate.Match(rec.item) {
				rows = append(rows, rec)
			}
		}
		sortItems(rows, page)

		items := make([]domain.Item, 0, len(rows))
		for _, rec := range rows {
			items = append(items, rec.item)
		}
		result = paginate(items, page)
		return nil
	})
	return result, err
}

func sortItems(rows []itemRecord, page domain.PageRequest) {
	if page.SortField == "" {
		slices.SortFunc(rows, func(a, b itemRecord) int { return cmp.Compare(a.seq, b.seq) })
		return
	}

	compare := compareItems(page.SortField)
	slices.SortStableFunc(rows, func(a, b itemRecord) int {
		if c := applyDirection(compare(a.item, b.item), page.SortDirection); c != 0 {
			return c
		}
		return strings.Compare(a.item.ID, b.item.ID)
	})
}

func compareItems(field string) func(a, b domain.Item) int {
	switch field {
	case "name":
		return func(a, b domain.Item) int { return strings.Compare(a.Name, b.Name) }
	case "type", "itemType":
		return func(a, b domain.Item) int { return strings.Compare(string(a.Type), string(b.Type)) }
	case "price":
		return func(a, b domain.Item) int { return a.Price.Cmp(b.Price) }
	case "status":
		return func(a, b domain.Item) int { return strings.Compare(string(a.Status), string(b.Status)) }
	case "createdAt":
		return func(a, b domain.Item) int { return a.CreatedAt.Compare(b.CreatedAt) }
	case "updatedAt":
		return func(a, b domain.Item) int { return a.UpdatedAt.Compare(b.UpdatedAt) }
	default:
		return func(a, b domain.Item) int { return strings.Compare(a.ID, b.ID) }
	}
}

var _ storage.ItemRepository = (*itemRepository)(nil)
