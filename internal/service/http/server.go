package httpapi

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
)

// ItemService описывает операции движка правил каталога, нужные REST API.
type ItemService interface {
	CreateItem(ctx context.Context, in domain.ItemInput) (domain.Item, error)
	UpdateItem(ctx context.Context, id string, in domain.ItemInput) (domain.Item, error)
	GetItemByID(ctx context.Context, id string) (domain.Item, error)
	DeleteItemByID(ctx context.Context, id string) error
	ListItems(ctx context.Context, filter domain.ItemFilter, page domain.PageRequest) (domain.Page[domain.Item], error)
}

// OrderService описывает операции движка правил заказов, нужные REST API.
type OrderService interface {
	CreateOrder(ctx context.Context, in domain.OrderInput) (domain.Order, error)
	UpdateOrder(ctx context.Context, id string, in domain.OrderInput) (domain.Order, error)
	GetOrder(ctx context.Context, id string) (domain.Order, error)
	DeleteOrder(ctx context.Context, id string) error
	ChangeOrderStatus(ctx context.Context, id string, target domain.OrderStatus) (domain.Order, error)
	ListOrders(ctx context.Context, filter domain.OrderFilter, page domain.PageRequest) (domain.Page[domain.Order], error)
}

type Server struct {
	engine *gin.Engine
	items  ItemService
	orders OrderService
	logger *log.Entry
}

func NewServer(items ItemService, orders OrderService, logger *log.Entry) *Server {
	if logger == nil {
		logger = log.WithField("component", "catalog-http")
	}

	r := gin.New()
	r.Use(requestLogger(logger), gin.Recovery())
	s := &Server{engine: r, items: items, orders: orders, logger: logger}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	v1 := s.engine.Group("/api/v1")
	{
		items := v1.Group("/items")
		items.POST("", s.createItem)
		items.GET("", s.listItems)
		items.GET(":id", s.getItem)
		items.PUT(":id", s.updateItem)
		items.DELETE(":id", s.deleteItem)

		orders := v1.Group("/orders")
		orders.POST("", s.createOrder)
		orders.GET("", s.listOrders)
		orders.GET(":id", s.getOrder)
		orders.PUT(":id", s.updateOrder)
		orders.PATCH(":id", s.changeOrderStatus)
		orders.DELETE(":id", s.deleteOrder)
	}
}

func requestLogger(logger *log.Entry) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()

		entry := logger.WithFields(log.Fields{
			"method":     c.Request.Method,
			"path":       c.FullPath(),
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(started).Milliseconds(),
		})
		if c.Writer.Status() >= 500 {
			entry.Warn("http request failed")
			return
		}
		entry.Debug("http request served")
	}
}
