// Package catalog реализует правила жизненного цикла позиций каталога.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
	"github.com/vladislavdragonenkov/catalog/internal/metrics"
	"github.com/vladislavdragonenkov/catalog/internal/search"
	"github.com/vladislavdragonenkov/catalog/internal/storage"
	"github.com/vladislavdragonenkov/catalog/internal/tracing"
)

const (
	opCreateItem = "create_item"
	opUpdateItem = "update_item"
	opGetItem    = "get_item"
	opDeleteItem = "delete_item"
	opListItems  = "list_items"
)

// Option настраивает Service.
type Option func(*Service)

// WithLogger задаёт логгер сервиса.
func WithLogger(logger *log.Entry) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics включает метрики операций.
func WithMetrics(m *metrics.CatalogMetrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// Service реализует правила для позиций каталога.
type Service struct {
	store   storage.Store
	logger  *log.Entry
	metrics *metrics.CatalogMetrics
}

// NewService создаёт движок правил поверх хранилища.
func NewService(store storage.Store, opts ...Option) *Service {
	s := &Service{
		store:  store,
		logger: log.WithField("component", "catalog"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateItem создаёт позицию, если пара (имя, тип) ещё не занята.
func (s *Service) CreateItem(ctx context.Context, in domain.ItemInput) (item domain.Item, err error) {
	ctx, span := tracing.StartSpan(ctx, "catalog.CreateItem")
	started := time.Now()
	defer func() {
		s.metrics.ObserveOperation(opCreateItem, started, err)
		tracing.EndSpan(span, err)
	}()

	if err = in.Validate(); err != nil {
		return domain.Item{}, err
	}
	in = in.Normalize()

	err = s.store.WithinTx(ctx, func(ctx context.Context, repos storage.Repositories) error {
		exists, err := repos.Items.ExistsByNameAndType(ctx, in.Name, in.Type, "")
		if err != nil {
			return fmt.Errorf("check item uniqueness: %w", err)
		}
		if exists {
			return duplicateItemError(in.Name, in.Type)
		}

		saved, err := repos.Items.Save(ctx, domain.Item{
			Name:   in.Name,
			Type:   in.Type,
			Price:  in.Price,
			Status: in.Status,
		})
		if err != nil {
			return saveItemError(err, in)
		}
		item = saved
		return s.enqueue(ctx, repos, domain.EventItemCreated, saved)
	})
	if err != nil {
		return domain.Item{}, err
	}
	s.metrics.RecordOutboxEvent()

	span.SetAttributes(attribute.String("item.id", item.ID))
	s.logger.WithFields(log.Fields{"item_id": item.ID, "type": item.Type}).Debug("item created")
	return item, nil
}

// UpdateItem перезаписывает имя, тип, цену и статус позиции, сохраняя её идентификатор.
// Цены уже добавленных в заказы позиций не меняются.
func (s *Service) UpdateItem(ctx context.Context, id string, in domain.ItemInput) (item domain.Item, err error) {
	ctx, span := tracing.StartSpan(ctx, "catalog.UpdateItem", attribute.String("item.id", id))
	started := time.Now()
	defer func() {
		s.metrics.ObserveOperation(opUpdateItem, started, err)
		tracing.EndSpan(span, err)
	}()

	if err = in.Validate(); err != nil {
		return domain.Item{}, err
	}
	in = in.Normalize()

	err = s.store.WithinTx(ctx, func(ctx context.Context, repos storage.Repositories) error {
		exists, err := repos.Items.ExistsByID(ctx, id)
		if err != nil {
			return fmt.Errorf("check item exists: %w", err)
		}
		if !exists {
			return itemNotFoundError(id)
		}

		duplicate, err := repos.Items.ExistsByNameAndType(ctx, in.Name, in.Type, id)
		if err != nil {
			return fmt.Errorf("check item uniqueness: %w", err)
		}
		if duplicate {
			return duplicateItemError(in.Name, in.Type)
		}

		saved, err := repos.Items.Save(ctx, domain.Item{
			ID:     id,
			Name:   in.Name,
			Type:   in.Type,
			Price:  in.Price,
			Status: in.Status,
		})
		if err != nil {
			return saveItemError(err, in)
		}
		item = saved
		return s.enqueue(ctx, repos, domain.EventItemUpdated, saved)
	})
	if err != nil {
		return domain.Item{}, err
	}
	s.metrics.RecordOutboxEvent()

	s.logger.WithField("item_id", item.ID).Debug("item updated")
	return item, nil
}

// GetItemByID возвращает позицию каталога.
func (s *Service) GetItemByID(ctx context.Context, id string) (item domain.Item, err error) {
	ctx, span := tracing.StartSpan(ctx, "catalog.GetItemByID", attribute.String("item.id", id))
	started := time.Now()
	defer func() {
		s.metrics.ObserveOperation(opGetItem, started, err)
		tracing.EndSpan(span, err)
	}()

	item, err = s.store.Repositories().Items.FetchByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrRecordNotFound) {
			return domain.Item{}, itemNotFoundError(id)
		}
		return domain.Item{}, fmt.Errorf("fetch item: %w", err)
	}
	return item, nil
}

// DeleteItemByID удаляет позицию, если на неё не ссылается ни одна позиция заказа.
func (s *Service) DeleteItemByID(ctx context.Context, id string) (err error) {
	ctx, span := tracing.StartSpan(ctx, "catalog.DeleteItemByID", attribute.String("item.id", id))
	started := time.Now()
	defer func() {
		s.metrics.ObserveOperation(opDeleteItem, started, err)
		tracing.EndSpan(span, err)
	}()

	err = s.store.WithinTx(ctx, func(ctx context.Context, repos storage.Repositories) error {
		item, err := repos.Items.FetchByID(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrRecordNotFound) {
				return itemNotFoundError(id)
			}
			return fmt.Errorf("fetch item: %w", err)
		}

		linked, err := repos.OrderItems.ExistsByItemID(ctx, id)
		if err != nil {
			return fmt.Errorf("check linked order items: %w", err)
		}
		if linked {
			return itemLinkedError(id)
		}

		if err := repos.Items.DeleteByID(ctx, id); err != nil {
			switch {
			case errors.Is(err, storage.ErrReferenced):
				return itemLinkedError(id)
			case errors.Is(err, storage.ErrRecordNotFound):
				return itemNotFoundError(id)
			default:
				return fmt.Errorf("delete item: %w", err)
			}
		}
		return s.enqueue(ctx, repos, domain.EventItemDeleted, item)
	})
	if err != nil {
		return err
	}
	s.metrics.RecordOutboxEvent()

	s.logger.WithField("item_id", id).Debug("item deleted")
	return nil
}

// ListItems возвращает страницу позиций, удовлетворяющих фильтру.
func (s *Service) ListItems(ctx context.Context, filter domain.ItemFilter, page domain.PageRequest) (result domain.Page[domain.Item], err error) {
	ctx, span := tracing.StartSpan(ctx, "catalog.ListItems")
	started := time.Now()
	defer func() {
		s.metrics.ObserveOperation(opListItems, started, err)
		tracing.EndSpan(span, err)
	}()

	result, err = s.store.Repositories().Items.Query(ctx, search.ForItems(filter), page)
	if err != nil {
		return domain.Page[domain.Item]{}, fmt.Errorf("query items: %w", err)
	}
	return result, nil
}

func (s *Service) enqueue(ctx context.Context, repos storage.Repositories, eventType domain.EventType, item domain.Item) error {
	msg, err := domain.NewItemOutboxMessage(eventType, item)
	if err != nil {
		return err
	}
	if _, err := repos.Outbox.Enqueue(ctx, msg); err != nil {
		return fmt.Errorf("enqueue %s: %w", eventType, err)
	}
	return nil
}

func itemNotFoundError(id string) *domain.Error {
	return domain.NewNotFound(fmt.Sprintf("Cannot found item with id %s.", id), id)
}

func duplicateItemError(name string, itemType domain.ItemType) *domain.Error {
	return domain.NewConflict(domain.ReasonDuplicateItem, fmt.Sprintf("Already item with this name: %s, itemType: %s.", name, itemType))
}

func itemLinkedError(id string) *domain.Error {
	return domain.NewConflict(domain.ReasonItemLinked, "Cannot delete item because have linked order.", id)
}

// saveItemError переводит нарушение уникальности от конкурентной записи в конфликт.
func saveItemError(err error, in domain.ItemInput) error {
	if errors.Is(err, storage.ErrDuplicate) {
		return duplicateItemError(in.Name, in.Type)
	}
	return fmt.Errorf("save item: %w", err)
}
