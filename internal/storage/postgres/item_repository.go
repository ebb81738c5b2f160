package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
	"github.com/vladislavdragonenkov/catalog/internal/search"
	"github.com/vladislavdragonenkov/catalog/internal/storage"
)

const itemColumns = `i.id, i.name, i.type, i.price, i.status, i.created_at, i.updated_at`

type itemRepository struct {
	q querier
}

// NewItemRepository создаёт PostgreSQL-реализацию ItemRepository.
func NewItemRepository(store *Store) storage.ItemRepository {
	return &itemRepository{q: store.DB()}
}

func (r *itemRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	var exists bool
	if err := r.q.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM items WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check item exists: %w", err)
	}
	return exists, nil
}

func (r *itemRepository) ExistsByNameAndType(ctx context.Context, name string, itemType domain.ItemType, excludeID string) (bool, error) {
	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	var exists bool
	err := r.q.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM items
			WHERE name = $1
			  AND type = $2
			  AND id <> $3
		)
	`, name, string(itemType), excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check item name and type: %w", err)
	}
	return exists, nil
}

func (r *itemRepository) FetchByIDs(ctx context.Context, ids []string) ([]domain.Item, error) {
	ids = domain.SortedIDs(ids)
	if len(ids) == 0 {
		return []domain.Item{}, nil
	}

	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	rows, err := r.q.QueryContext(ctx, `
		SELECT `+itemColumns+`
		FROM items i
		WHERE i.id = ANY($1)
		ORDER BY i.id
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows, len(ids))
}

func (r *itemRepository) FetchByID(ctx context.Context, id string) (domain.Item, error) {
	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	item, err := scanItem(r.q.QueryRowContext(ctx, `
		SELECT `+itemColumns+`
		FROM items i
		WHERE i.id = $1
	`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Item{}, storage.ErrRecordNotFound
		}
		return domain.Item{}, fmt.Errorf("select item: %w", err)
	}
	return item, nil
}

func (r *itemRepository) Save(ctx context.Context, item domain.Item) (domain.Item, error) {
	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	now := time.Now().UTC()

	err := r.q.QueryRowContext(ctx, `
		INSERT INTO items (id, name, type, price, status, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$6)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    type = EXCLUDED.type,
		    price = EXCLUDED.price,
		    status = EXCLUDED.status,
		    updated_at = EXCLUDED.updated_at
		RETURNING created_at, updated_at
	`,
		item.ID, item.Name, string(item.Type), item.Price, string(item.Status), now,
	).Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return domain.Item{}, mapWriteError("save item", err)
	}

	item.CreatedAt = item.CreatedAt.UTC()
	item.UpdatedAt = item.UpdatedAt.UTC()
	return item, nil
}

func (r *itemRepository) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	res, err := r.q.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return mapWriteError("delete item", err)
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

func (r *itemRepository) Query(ctx context.Context, predicate search.ItemPredicate, page domain.PageRequest) (domain.Page[domain.Item], error) {
	page = page.Normalize()

	ctx, cancel := withOpTimeout(ctx)
	defer cancel()

	args := &argList{}
	where := itemWhere(predicate, args)

	var total int
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM items i WHERE `+where, args.values...).Scan(&total); err != nil {
		return domain.Page[domain.Item]{}, fmt.Errorf("count items: %w", err)
	}

	limit := args.add(page.PageSize)
	offset := args.add(page.Offset())
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+itemColumns+`
		FROM items i
		WHERE `+where+`
		ORDER BY `+orderBy(page, itemSortColumns, "i")+`
		LIMIT `+limit+` OFFSET `+offset,
		args.values...,
	)
	if err != nil {
		return domain.Page[domain.Item]{}, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	items, err := scanItems(rows, page.PageSize)
	if err != nil {
		return domain.Page[domain.Item]{}, err
	}
	return domain.NewPage(items, page, total), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (domain.Item, error) {
	var (
		item           domain.Item
		itemType, stat string
	)
	if err := row.Scan(&item.ID, &item.Name, &itemType, &item.Price, &stat, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return domain.Item{}, err
	}
	item.Type = domain.ItemType(itemType)
	item.Status = domain.ItemStatus(stat)
	item.CreatedAt = item.CreatedAt.UTC()
	item.UpdatedAt = item.UpdatedAt.UTC()
	return item, nil
}

func scanItems(rows *sql.Rows, capacity int) ([]domain.Item, error) {
	items := make([]domain.Item, 0, capacity)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate item rows: %w", err)
	}
	return items, nil
}

var _ storage.ItemRepository = (*itemRepository)(nil)
