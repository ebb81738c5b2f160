package grpcsvc

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
	catalogv1 "github.com/vladislavdragonenkov/catalog/proto/catalog/v1"
)

// ItemService описывает операции движка правил каталога, нужные транспорту.
type ItemService interface {
	CreateItem(ctx context.Context, in domain.ItemInput) (domain.Item, error)
	UpdateItem(ctx context.Context, id string, in domain.ItemInput) (domain.Item, error)
	GetItemByID(ctx context.Context, id string) (domain.Item, error)
	DeleteItemByID(ctx context.Context, id string) error
	ListItems(ctx context.Context, filter domain.ItemFilter, page domain.PageRequest) (domain.Page[domain.Item], error)
}

// OrderService описывает операции движка правил заказов, нужные транспорту.
type OrderService interface {
	CreateOrder(ctx context.Context, in domain.OrderInput) (domain.Order, error)
	UpdateOrder(ctx context.Context, id string, in domain.OrderInput) (domain.Order, error)
	GetOrder(ctx context.Context, id string) (domain.Order, error)
	DeleteOrder(ctx context.Context, id string) error
	ChangeOrderStatus(ctx context.Context, id string, target domain.OrderStatus) (domain.Order, error)
	ListOrders(ctx context.Context, filter domain.OrderFilter, page domain.PageRequest) (domain.Page[domain.Order], error)
}

// CatalogService реализует gRPC API поверх движков правил каталога и заказов.
type CatalogService struct {
	catalogv1.UnimplementedCatalogServiceServer

	items    ItemService
	orders   OrderService
	idemRepo domain.IdempotencyRepository
	logger   *log.Entry
}

// NewCatalogService конструирует сервис с зависимостями.
func NewCatalogService(
	items ItemService,
	orders OrderService,
	idemRepo domain.IdempotencyRepository,
	logger *log.Entry,
) *CatalogService {
	if logger == nil {
		logger = log.WithField("component", "catalog-grpc")
	}
	return &CatalogService{
		items:    items,
		orders:   orders,
		idemRepo: idemRepo,
		logger:   logger,
	}
}

// CreateItem создаёт позицию каталога.
func (s *CatalogService) CreateItem(ctx context.Context, req *catalogv1.CreateItemRequest) (*catalogv1.Item, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	return withIdempotency(s, ctx, catalogv1.CatalogService_CreateItem_FullMethodName, req,
		func() *catalogv1.Item { return &catalogv1.Item{} },
		func(ctx context.Context) (*catalogv1.Item, error) {
			fields := log.Fields{"name": req.GetName()}
			in, err := toItemInput(req.GetName(), req.GetType(), req.GetPrice(), req.GetStatus())
			if err != nil {
				return nil, s.fail("CreateItem", fields, err)
			}
			item, err := s.items.CreateItem(ctx, in)
			if err != nil {
				return nil, s.fail("CreateItem", fields, err)
			}
			return toItem(item), nil
		})
}

// UpdateItem перезаписывает позицию каталога.
func (s *CatalogService) UpdateItem(ctx context.Context, req *catalogv1.UpdateItemRequest) (*catalogv1.Item, error) {
	if strings.TrimSpace(req.GetId()) == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	fields := log.Fields{"item_id": req.GetId()}
	in, err := toItemInput(req.GetName(), req.GetType(), req.GetPrice(), req.GetStatus())
	if err != nil {
		return nil, s.fail("UpdateItem", fields, err)
	}
	item, err := s.items.UpdateItem(ctx, req.GetId(), in)
	if err != nil {
		return nil, s.fail("UpdateItem", fields, err)
	}
	return toItem(item), nil
}

// GetItem возвращает позицию каталога.
func (s *CatalogService) GetItem(ctx context.Context, req *catalogv1.GetItemRequest) (*catalogv1.Item, error) {
	if strings.TrimSpace(req.GetId()) == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	item, err := s.items.GetItemByID(ctx, req.GetId())
	if err != nil {
		return nil, s.fail("GetItem", log.Fields{"item_id": req.GetId()}, err)
	}
	return toItem(item), nil
}

// DeleteItem удаляет позицию каталога, если на неё не ссылаются заказы.
func (s *CatalogService) DeleteItem(ctx context.Context, req *catalogv1.DeleteItemRequest) (*catalogv1.DeleteItemResponse, error) {
	if strings.TrimSpace(req.GetId()) == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	if err := s.items.DeleteItemByID(ctx, req.GetId()); err != nil {
		return nil, s.fail("DeleteItem", log.Fields{"item_id": req.GetId()}, err)
	}
	return &catalogv1.DeleteItemResponse{}, nil
}

// ListItems ищет позиции каталога.
func (s *CatalogService) ListItems(ctx context.Context, req *catalogv1.ListItemsRequest) (*catalogv1.ListItemsResponse, error) {
	filter := domain.ItemFilter{
		ID:     req.GetId(),
		Query:  req.GetQuery(),
		Type:   domain.ItemType(strings.ToUpper(req.GetType())),
		Status: domain.ItemStatus(strings.ToUpper(req.GetStatus())),
	}
	page, err := s.items.ListItems(ctx, filter, toPageRequest(req.GetPage()))
	if err != nil {
		return nil, s.fail("ListItems", nil, err)
	}

	items := make([]*catalogv1.Item, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, toItem(item))
	}
	return &catalogv1.ListItemsResponse{
		Items:        items,
		Page:         clampInt32(page.Page),
		PageSize:     clampInt32(page.PageSize),
		TotalResults: clampInt32(page.TotalResults),
		TotalPages:   clampInt32(page.TotalPages),
	}, nil
}

// CreateOrder создаёт заказ со статусом OPENED.
func (s *CatalogService) CreateOrder(ctx context.Context, req *catalogv1.CreateOrderRequest) (*catalogv1.Order, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	return withIdempotency(s, ctx, catalogv1.CatalogService_CreateOrder_FullMethodName, req,
		func() *catalogv1.Order { return &catalogv1.Order{} },
		func(ctx context.Context) (*catalogv1.Order, error) {
			in, err := toOrderInput(req.GetDiscount(), req.GetItems())
			if err != nil {
				return nil, s.fail("CreateOrder", nil, err)
			}
			order, err := s.orders.CreateOrder(ctx, in)
			if err != nil {
				return nil, s.fail("CreateOrder", nil, err)
			}
			return toOrder(order), nil
		})
}

// UpdateOrder сверяет заказ с предлагаемым состоянием.
func (s *CatalogService) UpdateOrder(ctx context.Context, req *catalogv1.UpdateOrderRequest) (*catalogv1.Order, error) {
	if strings.TrimSpace(req.GetId()) == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	fields := log.Fields{"order_id": req.GetId()}
	in, err := toOrderInput(req.GetDiscount(), req.GetItems())
	if err != nil {
		return nil, s.fail("UpdateOrder", fields, err)
	}
	order, err := s.orders.UpdateOrder(ctx, req.GetId(), in)
	if err != nil {
		return nil, s.fail("UpdateOrder", fields, err)
	}
	return toOrder(order), nil
}

// GetOrder возвращает заказ с итогами.
func (s *CatalogService) GetOrder(ctx context.Context, req *catalogv1.GetOrderRequest) (*catalogv1.Order, error) {
	if strings.TrimSpace(req.GetId()) == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	order, err := s.orders.GetOrder(ctx, req.GetId())
	if err != nil {
		return nil, s.fail("GetOrder", log.Fields{"order_id": req.GetId()}, err)
	}
	return toOrder(order), nil
}

// DeleteOrder удаляет открытый заказ.
func (s *CatalogService) DeleteOrder(ctx context.Context, req *catalogv1.DeleteOrderRequest) (*catalogv1.DeleteOrderResponse, error) {
	if strings.TrimSpace(req.GetId()) == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	if err := s.orders.DeleteOrder(ctx, req.GetId()); err != nil {
		return nil, s.fail("DeleteOrder", log.Fields{"order_id": req.GetId()}, err)
	}
	return &catalogv1.DeleteOrderResponse{}, nil
}

// ChangeOrderStatus закрывает заказ.
func (s *CatalogService) ChangeOrderStatus(ctx context.Context, req *catalogv1.ChangeOrderStatusRequest) (*catalogv1.Order, error) {
	if strings.TrimSpace(req.GetId()) == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	target := domain.OrderStatus(strings.ToUpper(strings.TrimSpace(req.GetStatus())))
	order, err := s.orders.ChangeOrderStatus(ctx, req.GetId(), target)
	if err != nil {
		return nil, s.fail("ChangeOrderStatus", log.Fields{"order_id": req.GetId(), "status": req.GetStatus()}, err)
	}
	return toOrder(order), nil
}

// ListOrders ищет заказы.
func (s *CatalogService) ListOrders(ctx context.Context, req *catalogv1.ListOrdersRequest) (*catalogv1.ListOrdersResponse, error) {
	filter := domain.OrderFilter{
		ID:         req.GetId(),
		Query:      req.GetQuery(),
		ItemType:   domain.ItemType(strings.ToUpper(req.GetItemType())),
		ItemStatus: domain.ItemStatus(strings.ToUpper(req.GetItemStatus())),
		Status:     domain.OrderStatus(strings.ToUpper(req.GetStatus())),
	}
	page, err := s.orders.ListOrders(ctx, filter, toPageRequest(req.GetPage()))
	if err != nil {
		return nil, s.fail("ListOrders", nil, err)
	}

	orders := make([]*catalogv1.Order, 0, len(page.Items))
	for _, order := range page.Items {
		orders = append(orders, toOrder(order))
	}
	return &catalogv1.ListOrdersResponse{
		Orders:       orders,
		Page:         clampInt32(page.Page),
		PageSize:     clampInt32(page.PageSize),
		TotalResults: clampInt32(page.TotalResults),
		TotalPages:   clampInt32(page.TotalPages),
	}, nil
}

var _ catalogv1.CatalogServiceServer = (*CatalogService)(nil)
