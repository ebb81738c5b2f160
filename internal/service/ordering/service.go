// Package ordering реализует правила создания, изменения и закрытия заказов.
package ordering

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
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
	opCreateOrder  = "create_order"
	opUpdateOrder  = "update_order"
	opGetOrder     = "get_order"
	opDeleteOrder  = "delete_order"
	opChangeStatus = "change_order_status"
	opListOrders   = "list_orders"
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

// WithDisabledItemPolicy задаёт правило проверки снятых с продажи позиций.
func WithDisabledItemPolicy(policy DisabledItemPolicy) Option {
	return func(s *Service) {
		if policy != "" {
			s.policy = policy
		}
	}
}

// Service реализует правила для заказов.
type Service struct {
	store   storage.Store
	policy  DisabledItemPolicy
	logger  *log.Entry
	metrics *metrics.CatalogMetrics
}

// NewService создаёт движок правил заказов поверх хранилища.
func NewService(store storage.Store, opts ...Option) *Service {
	s := &Service{
		store:  store,
		policy: DisabledItemPolicyAny,
		logger: log.WithField("component", "ordering"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateOrder создаёт заказ в статусе OPENED. Все позиции считаются новыми
// и получают цену позиции каталога на момент создания.
func (s *Service) CreateOrder(ctx context.Context, in domain.OrderInput) (order domain.Order, err error) {
	ctx, span := tracing.StartSpan(ctx, "ordering.CreateOrder", attribute.Int("order.lines", len(in.Items)))
	started := time.Now()
	defer func() {
		s.metrics.ObserveOperation(opCreateOrder, started, err)
		tracing.EndSpan(span, err)
	}()

	in.Items = slices.Clone(in.Items)
	for i := range in.Items {
		in.Items[i].ID = ""
	}
	if err = in.Validate(); err != nil {
		return domain.Order{}, err
	}

	err = s.store.WithinTx(ctx, func(ctx context.Context, repos storage.Repositories) error {
		items, err := s.resolveItems(ctx, repos, in.Items)
		if err != nil {
			return err
		}

		lines := make([]domain.OrderItem, 0, len(in.Items))
		for _, line := range in.Items {
			item := items[strings.TrimSpace(line.ItemID)]
			lines = append(lines, domain.OrderItem{
				Item:      item,
				Amount:    line.Amount,
				ItemPrice: item.Price,
			})
		}

		proposed := domain.Order{
			Status:   domain.OrderStatusOpened,
			Discount: in.Discount,
			Items:    lines,
		}
		if err := checkDiscount(proposed); err != nil {
			return err
		}

		saved, err := repos.Orders.Save(ctx, proposed)
		if err != nil {
			return saveOrderError(err)
		}
		order = saved
		return s.enqueue(ctx, repos, domain.EventOrderCreated, saved)
	})
	if err != nil {
		return domain.Order{}, err
	}
	s.metrics.RecordOutboxEvent()

	span.SetAttributes(attribute.String("order.id", order.ID))
	s.logger.WithFields(log.Fields{"order_id": order.ID, "lines": len(order.Items)}).Debug("order created")
	return order, nil
}

// UpdateOrder приводит заказ к предложенному списку позиций. Позиции с ID
// сохраняют зафиксированную цену, новые получают текущую цену каталога,
// отсутствующие в предложении удаляются.
func (s *Service) UpdateOrder(ctx context.Context, id string, in domain.OrderInput) (order domain.Order, err error) {
	ctx, span := tracing.StartSpan(ctx, "ordering.UpdateOrder", attribute.String("order.id", id))
	started := time.Now()
	defer func() {
		s.metrics.ObserveOperation(opUpdateOrder, started, err)
		tracing.EndSpan(span, err)
	}()

	if err = in.Validate(); err != nil {
		return domain.Order{}, err
	}

	err = s.store.WithinTx(ctx, func(ctx context.Context, repos storage.Repositories) error {
		existing, err := fetchOrder(ctx, repos, id)
		if err != nil {
			return err
		}
		if existing.IsClosed() {
			return domain.NewInvalidState("Cannot edit order because is CLOSED.", id)
		}

		retained, err := retainedLines(ctx, repos, id, in.Items)
		if err != nil {
			return err
		}
		items, err := s.resolveItems(ctx, repos, in.Items)
		if err != nil {
			return err
		}

		lines := make([]domain.OrderItem, 0, len(in.Items))
		for _, proposed := range in.Items {
			item := items[strings.TrimSpace(proposed.ItemID)]
			if proposed.ID == "" {
				lines = append(lines, domain.OrderItem{
					OrderID:   id,
					Item:      item,
					Amount:    proposed.Amount,
					ItemPrice: item.Price,
				})
				continue
			}
			line := retained[proposed.ID]
			line.OrderID = id
			line.Item = item
			line.Amount = proposed.Amount
			lines = append(lines, line)
		}

		removed := removedLineIDs(existing.Items, retained)

		existing.Discount = in.Discount
		existing.Items = lines
		if err := checkDiscount(existing); err != nil {
			return err
		}

		if err := repos.OrderItems.DeleteByIDs(ctx, removed); err != nil {
			return fmt.Errorf("delete removed order items: %w", err)
		}
		saved, err := repos.Orders.Save(ctx, existing)
		if err != nil {
			return saveOrderError(err)
		}
		order = saved
		return s.enqueue(ctx, repos, domain.EventOrderUpdated, saved)
	})
	if err != nil {
		return domain.Order{}, err
	}
	s.metrics.RecordOutboxEvent()

	s.logger.WithFields(log.Fields{"order_id": order.ID, "lines": len(order.Items)}).Debug("order updated")
	return order, nil
}

// GetOrder возвращает заказ с позициями.
func (s *Service) GetOrder(ctx context.Context, id string) (order domain.Order, err error) {
	ctx, span := tracing.StartSpan(ctx, "ordering.GetOrder", attribute.String("order.id", id))
	started := time.Now()
	defer func() {
		s.metrics.ObserveOperation(opGetOrder, started, err)
		tracing.EndSpan(span, err)
	}()

	return fetchOrder(ctx, s.store.Repositories(), id)
}

// DeleteOrder удаляет открытый заказ вместе с позициями.
func (s *Service) DeleteOrder(ctx context.Context, id string) (err error) {
	ctx, span := tracing.StartSpan(ctx, "ordering.DeleteOrder", attribute.String("order.id", id))
	started := time.Now()
	defer func() {
		s.metrics.ObserveOperation(opDeleteOrder, started, err)
		tracing.EndSpan(span, err)
	}()

	err = s.store.WithinTx(ctx, func(ctx context.Context, repos storage.Repositories) error {
		existing, err := fetchOrder(ctx, repos, id)
		if err != nil {
			return err
		}
		if existing.IsClosed() {
			return domain.NewInvalidState("Cannot delete order CLOSED.", id)
		}

		if err := repos.Orders.DeleteByID(ctx, id); err != nil {
			if errors.Is(err, storage.ErrRecordNotFound) {
				return orderNotFoundError(id)
			}
			return fmt.Errorf("delete order: %w", err)
		}
		return s.enqueue(ctx, repos, domain.EventOrderDeleted, existing)
	})
	if err != nil {
		return err
	}
	s.metrics.RecordOutboxEvent()

	s.logger.WithField("order_id", id).Debug("order deleted")
	return nil
}

// ChangeOrderStatus переводит открытый заказ в целевой статус. Допустим только CLOSED.
func (s *Service) ChangeOrderStatus(ctx context.Context, id string, target domain.OrderStatus) (order domain.Order, err error) {
	ctx, span := tracing.StartSpan(ctx, "ordering.ChangeOrderStatus",
		attribute.String("order.id", id),
		attribute.String("order.target_status", string(target)),
	)
	started := time.Now()
	defer func() {
		s.metrics.ObserveOperation(opChangeStatus, started, err)
		tracing.EndSpan(span, err)
	}()

	if err = domain.ValidateStatusChange(target); err != nil {
		return domain.Order{}, err
	}

	err = s.store.WithinTx(ctx, func(ctx context.Context, repos storage.Repositories) error {
		existing, err := fetchOrder(ctx, repos, id)
		if err != nil {
			return err
		}
		if existing.IsClosed() {
			return domain.NewInvalidState(fmt.Sprintf("Order %s already CLOSED.", id), id)
		}

		if err := repos.Orders.UpdateStatus(ctx, id, target); err != nil {
			if errors.Is(err, storage.ErrRecordNotFound) {
				return orderNotFoundError(id)
			}
			return fmt.Errorf("update order status: %w", err)
		}

		updated, err := fetchOrder(ctx, repos, id)
		if err != nil {
			return err
		}
		order = updated
		return s.enqueue(ctx, repos, domain.EventOrderClosed, updated)
	})
	if err != nil {
		return domain.Order{}, err
	}
	s.metrics.RecordOutboxEvent()

	s.metrics.RecordOrderClosed()
	s.logger.WithField("order_id", id).Info("order closed")
	return order, nil
}

// ListOrders возвращает страницу заказов, удовлетворяющих фильтру.
func (s *Service) ListOrders(ctx context.Context, filter domain.OrderFilter, page domain.PageRequest) (result domain.Page[domain.Order], err error) {
	ctx, span := tracing.StartSpan(ctx, "ordering.ListOrders")
	started := time.Now()
	defer func() {
		s.metrics.ObserveOperation(opListOrders, started, err)
		tracing.EndSpan(span, err)
	}()

	result, err = s.store.Repositories().Orders.Query(ctx, search.ForOrders(filter), page)
	if err != nil {
		return domain.Page[domain.Order]{}, fmt.Errorf("query orders: %w", err)
	}
	return result, nil
}

// resolveItems загружает позиции каталога одним запросом и проверяет,
// что все они существуют и доступны для заказа.
func (s *Service) resolveItems(ctx context.Context, repos storage.Repositories, lines []domain.OrderItemInput) (map[string]domain.Item, error) {
	requested := make([]string, 0, len(lines))
	for _, line := range lines {
		requested = append(requested, strings.TrimSpace(line.ItemID))
	}
	requested = domain.SortedIDs(requested)

	found, err := repos.Items.FetchByIDs(ctx, requested)
	if err != nil {
		return nil, fmt.Errorf("fetch items: %w", err)
	}
	items := make(map[string]domain.Item, len(found))
	for _, item := range found {
		items[item.ID] = item
	}

	var missing, disabled []string
	for _, id := range requested {
		item, ok := items[id]
		switch {
		case !ok:
			missing = append(missing, id)
		case s.policy.rejects(item):
			disabled = append(disabled, id)
		}
	}
	if len(missing) > 0 {
		return nil, domain.NewNotFound(fmt.Sprintf("Cannot found items: [%s].", domain.JoinIDs(missing)), missing...)
	}
	if len(disabled) > 0 {
		return nil, domain.NewConflict(domain.ReasonItemsDisabled,
			fmt.Sprintf("Cannot add items: [%s] to order because are DISABLED.", domain.JoinIDs(disabled)), disabled...)
	}
	return items, nil
}

// retainedLines загружает существующие позиции заказа, перечисленные в предложении.
// Позиции чужих заказов считаются отсутствующими.
func retainedLines(ctx context.Context, repos storage.Repositories, orderID string, proposed []domain.OrderItemInput) (map[string]domain.OrderItem, error) {
	ids := make([]string, 0, len(proposed))
	for _, line := range proposed {
		if line.ID != "" {
			ids = append(ids, line.ID)
		}
	}
	retained := make(map[string]domain.OrderItem, len(ids))
	if len(ids) == 0 {
		return retained, nil
	}
	ids = domain.SortedIDs(ids)

	found, err := repos.OrderItems.FetchByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch order items: %w", err)
	}
	for _, line := range found {
		if line.OrderID == orderID {
			retained[line.ID] = line
		}
	}

	var missing []string
	for _, id := range ids {
		if _, ok := retained[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, domain.NewNotFound(fmt.Sprintf("Cannot found order items: [%s].", domain.JoinIDs(missing)), missing...)
	}
	return retained, nil
}

// removedLineIDs возвращает позиции заказа, не вошедшие в новое предложение.
func removedLineIDs(previous []domain.OrderItem, retained map[string]domain.OrderItem) []string {
	var removed []string
	for _, line := range previous {
		if _, ok := retained[line.ID]; !ok {
			removed = append(removed, line.ID)
		}
	}
	return removed
}

// checkDiscount проверяет право заказа на скидку: нужен хотя бы один товар,
// и у всех позиций должен быть известен тип.
func checkDiscount(order domain.Order) error {
	if !order.Discount.IsPositive() {
		return nil
	}
	// Сюда доходят только открытые заказы.
	if order.IsClosed() {
		return domain.NewInvalidState("Cannot edit order because is CLOSED.", order.ID)
	}

	hasProduct := false
	for _, line := range order.Items {
		switch line.Item.Type {
		case "":
			return domain.NewConflict(domain.ReasonItemTypeMissing,
				"Contains items with null types, it is mandatory that all items have a type.")
		case domain.ItemTypeProduct:
			hasProduct = true
		}
	}
	if !hasProduct {
		return domain.NewConflict(domain.ReasonDiscountNotAllowed,
			"Cannot apply discount in order because not contain item PRODUCT.")
	}
	return nil
}

func fetchOrder(ctx context.Context, repos storage.Repositories, id string) (domain.Order, error) {
	order, err := repos.Orders.FetchByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrRecordNotFound) {
			return domain.Order{}, orderNotFoundError(id)
		}
		return domain.Order{}, fmt.Errorf("fetch order: %w", err)
	}
	return order, nil
}

func (s *Service) enqueue(ctx context.Context, repos storage.Repositories, eventType domain.EventType, order domain.Order) error {
	msg, err := domain.NewOrderOutboxMessage(eventType, order)
	if err != nil {
		return err
	}
	if _, err := repos.Outbox.Enqueue(ctx, msg); err != nil {
		return fmt.Errorf("enqueue %s: %w", eventType, err)
	}
	return nil
}

func orderNotFoundError(id string) *domain.Error {
	return domain.NewNotFound(fmt.Sprintf("Cannot found order with id %s.", id), id)
}

// saveOrderError переводит ошибки хранилища, вызванные конкурентными изменениями каталога.
func saveOrderError(err error) error {
	switch {
	case errors.Is(err, storage.ErrRecordNotFound):
		return domain.NewNotFound("Cannot save order: referenced records were removed concurrently.")
	case errors.Is(err, storage.ErrDuplicate), errors.Is(err, storage.ErrReferenced):
		return domain.NewConflict(domain.ReasonConstraint, "Cannot save order: constraint violated by a concurrent change.")
	default:
		return fmt.Errorf("save order: %w", err)
	}
}
