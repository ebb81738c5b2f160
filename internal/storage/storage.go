// Package storage описывает порты хранилищ каталога и заказов.
package storage

import (
	"context"
	"errors"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
	"github.com/vladislavdragonenkov/catalog/internal/search"
)

var (
	// ErrRecordNotFound возвращается, если запись отсутствует.
	ErrRecordNotFound = errors.New("record not found")
	// Нарушение ограничения уникальности.
	ErrDuplicate = errors.New("duplicate record")
	// Запись нельзя удалить, на неё ссылаются.
	ErrReferenced = errors.New("record is referenced")
)

// ItemRepository описывает требования к хранилищу позиций каталога.
type ItemRepository interface {
	ExistsByID(ctx context.Context, id string) (bool, error)
	// ExistsByNameAndType ищет позицию с тем же именем и типом; excludeID исключает саму редактируемую позицию.
	ExistsByNameAndType(ctx context.Context, name string, itemType domain.ItemType, excludeID string) (bool, error)
	// FetchByIDs возвращает найденные позиции; отсутствующие идентификаторы просто не попадают в результат.
	FetchByIDs(ctx context.Context, ids []string) ([]domain.Item, error)
	FetchByID(ctx context.Context, id string) (domain.Item, error)
	// Save создаёт позицию (пустой ID) или перезаписывает существующую.
	Save(ctx context.Context, item domain.Item) (domain.Item, error)
	DeleteByID(ctx context.Context, id string) error
	Query(ctx context.Context, predicate search.ItemPredicate, page domain.PageRequest) (domain.Page[domain.Item], error)
}

// OrderRepository описывает требования к хранилищу заказов.
// Заказы возвращаются с позициями в исходном порядке и загруженными позициями каталога.
type OrderRepository interface {
	FetchByID(ctx context.Context, id string) (domain.Order, error)
	// Save создаёт или обновляет заказ и его позиции. Новым позициям присваивается ID,
	// у существующих обновляются только количество, позиция каталога и порядок; ItemPrice не меняется.
	Save(ctx context.Context, order domain.Order) (domain.Order, error)
	// DeleteByID удаляет заказ вместе с позициями.
	DeleteByID(ctx context.Context, id string) error
	Query(ctx context.Context, predicate search.OrderPredicate, page domain.PageRequest) (domain.Page[domain.Order], error)
	// UpdateStatus атомарно меняет только статус заказа.
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
}

// OrderItemRepository описывает доступ к позициям заказов.
type OrderItemRepository interface {
	ExistsByItemID(ctx context.Context, itemID string) (bool, error)
	// FetchByIDs возвращает найденные позиции заказов с загруженной позицией каталога.
	FetchByIDs(ctx context.Context, ids []string) ([]domain.OrderItem, error)
	DeleteByIDs(ctx context.Context, ids []string) error
}

// Repositories объединяет репозитории одной единицы работы.
type Repositories struct {
	Items      ItemRepository
	Orders     OrderRepository
	OrderItems OrderItemRepository
	Outbox     domain.OutboxRepository
}

// Store выполняет атомарные единицы работы над репозиториями.
type Store interface {
	// Repositories возвращает репозитории вне транзакции.
	Repositories() Repositories
	// WithinTx выполняет fn в одной транзакции: все изменения применяются, только если fn вернула nil.
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
