package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
	"github.com/vladislavdragonenkov/catalog/internal/search"
	"github.com/vladislavdragonenkov/catalog/internal/storage"
)

func savePostgresItem(t *testing.T, repos storage.Repositories, name string, itemType domain.ItemType, price string) domain.Item {
	t.Helper()
	item, err := repos.Items.Save(context.Background(), domain.Item{
		Name:   name,
		Type:   itemType,
		Price:  decimal.RequireFromString(price),
		Status: domain.ItemStatusActive,
	})
	require.NoError(t, err)
	return item
}

func TestItemRepository_PostgresSaveAndDuplicate(t *testing.T) {
	ctx := context.Background()
	store := migratedTestStore(t)
	repos := store.Repositories()

	pen := savePostgresItem(t, repos, "Pen", domain.ItemTypeProduct, "1.50")
	savePostgresItem(t, repos, "Pen", domain.ItemTypeService, "3.00")

	exists, err := repos.Items.ExistsByNameAndType(ctx, "Pen", domain.ItemTypeProduct, "")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repos.Items.ExistsByNameAndType(ctx, "Pen", domain.ItemTypeProduct, pen.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repos.Items.Save(ctx, domain.Item{Name: "Pen", Type: domain.ItemTypeProduct, Price: decimal.NewFromInt(1), Status: domain.ItemStatusActive})
	require.ErrorIs(t, err, storage.ErrDuplicate)

	pen.Price = decimal.RequireFromString("2.25")
	updated, err := repos.Items.Save(ctx, pen)
	require.NoError(t, err)
	assert.True(t, updated.CreatedAt.Equal(pen.CreatedAt))

	fetched, err := repos.Items.FetchByID(ctx, pen.ID)
	require.NoError(t, err)
	assert.True(t, fetched.Price.Equal(decimal.RequireFromString("2.25")))

	_, err = repos.Items.FetchByID(ctx, "missing")
	require.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestItemRepository_PostgresQueryIgnoresCaseAndAccents(t *testing.T) {
	ctx := context.Background()
	store := migratedTestStore(t)
	repos := store.Repositories()

	savePostgresItem(t, repos, "Café Latte", domain.ItemTypeProduct, "3.00")
	savePostgresItem(t, repos, "Cafeteria service", domain.ItemTypeService, "9.00")
	savePostgresItem(t, repos, "100% juice", domain.ItemTypeProduct, "2.00")

	page, err := repos.Items.Query(ctx, search.ForItems(domain.ItemFilter{Query: "CAFE"}), domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalResults)
	assert.Equal(t, "Café Latte", page.Items[0].Name)

	page, err = repos.Items.Query(ctx, search.ForItems(domain.ItemFilter{Query: "cafe", Type: domain.ItemTypeService}), domain.PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Cafeteria service", page.Items[0].Name)

	page, err = repos.Items.Query(ctx, search.ForItems(domain.ItemFilter{Query: "0%"}), domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalResults)

	page, err = repos.Items.Query(ctx, search.ForItems(domain.ItemFilter{}), domain.PageRequest{PageSize: 2, SortField: "price", SortDirection: domain.SortDesc})
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalResults)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Cafeteria service", page.Items[0].Name)
}

func TestOrderRepository_PostgresSnapshotAndCascade(t *testing.T) {
	ctx := context.Background()
	store := migratedTestStore(t)
	repos := store.Repositories()

	a := savePostgresItem(t, repos, "A", domain.ItemTypeProduct, "5.00")
	b := savePostgresItem(t, repos, "B", domain.ItemTypeService, "10.00")

	order, err := repos.Orders.Save(ctx, domain.Order{
		Status:   domain.OrderStatusOpened,
		Discount: decimal.RequireFromString("0.10"),
		Items: []domain.OrderItem{
			{Item: b, Amount: 1, ItemPrice: b.Price},
			{Item: a, Amount: 2, ItemPrice: a.Price},
		},
	})
	require.NoError(t, err)
	require.Len(t, order.Items, 2)
	assert.Equal(t, b.ID, order.Items[0].Item.ID)
	assert.Equal(t, a.ID, order.Items[1].Item.ID)

	a.Price = decimal.RequireFromString("50.00")
	_, err = repos.Items.Save(ctx, a)
	require.NoError(t, err)

	order.Items[1].Amount = 3
	order.Items[1].ItemPrice = decimal.RequireFromString("999")
	stored, err := repos.Orders.Save(ctx, order)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Items[1].Amount)
	assert.True(t, stored.Items[1].ItemPrice.Equal(decimal.RequireFromString("5.00")))
	assert.True(t, stored.Items[1].Item.Price.Equal(decimal.RequireFromString("50.00")))

	err = repos.Items.DeleteByID(ctx, a.ID)
	require.ErrorIs(t, err, storage.ErrReferenced)

	require.NoError(t, repos.Orders.DeleteByID(ctx, order.ID))
	lines, err := repos.OrderItems.FetchByIDs(ctx, []string{order.Items[0].ID, order.Items[1].ID})
	require.NoError(t, err)
	assert.Empty(t, lines)
	require.NoError(t, repos.Items.DeleteByID(ctx, a.ID))
}

func TestOrderRepository_PostgresQueryExistential(t *testing.T) {
	ctx := context.Background()
	store := migratedTestStore(t)
	repos := store.Repositories()

	pen := savePostgresItem(t, repos, "Pen", domain.ItemTypeProduct, "1.00")
	fix := savePostgresItem(t, repos, "Fix", domain.ItemTypeService, "9.00")

	mixed, err := repos.Orders.Save(ctx, domain.Order{Status: domain.OrderStatusOpened, Items: []domain.OrderItem{
		{Item: pen, Amount: 1, ItemPrice: pen.Price},
		{Item: fix, Amount: 1, ItemPrice: fix.Price},
	}})
	require.NoError(t, err)
	_, err = repos.Orders.Save(ctx, domain.Order{Status: domain.OrderStatusOpened, Items: []domain.OrderItem{
		{Item: fix, Amount: 2, ItemPrice: fix.Price},
	}})
	require.NoError(t, err)
	require.NoError(t, repos.Orders.UpdateStatus(ctx, mixed.ID, domain.OrderStatusClosed))

	page, err := repos.Orders.Query(ctx, search.ForOrders(domain.OrderFilter{Query: "pen", ItemType: domain.ItemTypeService}), domain.PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, mixed.ID, page.Items[0].ID)
	assert.Equal(t, domain.OrderStatusClosed, page.Items[0].Status)
	assert.Len(t, page.Items[0].Items, 2)

	page, err = repos.Orders.Query(ctx, search.ForOrders(domain.OrderFilter{Status: domain.OrderStatusOpened}), domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalResults)

	require.ErrorIs(t, repos.Orders.UpdateStatus(ctx, "missing", domain.OrderStatusClosed), storage.ErrRecordNotFound)
}

func TestStore_PostgresWithinTxRollsBackOutbox(t *testing.T) {
	ctx := context.Background()
	store := migratedTestStore(t)
	boom := errors.New("boom")

	err := store.WithinTx(ctx, func(ctx context.Context, repos storage.Repositories) error {
		item, err := repos.Items.Save(ctx, domain.Item{Name: "Ghost", Type: domain.ItemTypeProduct, Price: decimal.NewFromInt(1), Status: domain.ItemStatusActive})
		if err != nil {
			return err
		}
		msg, err := domain.NewItemOutboxMessage(domain.EventItemCreated, item)
		if err != nil {
			return err
		}
		if _, err := repos.Outbox.Enqueue(ctx, msg); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	page, err := store.Repositories().Items.Query(ctx, search.ForItems(domain.ItemFilter{}), domain.PageRequest{})
	require.NoError(t, err)
	assert.Zero(t, page.TotalResults)

	stats, err := store.Repositories().Outbox.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.PendingCount)
}
