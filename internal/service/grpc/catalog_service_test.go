package grpcsvc_test

import (
	"context"
	"math"
	"net"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
	grpcsvc "github.com/vladislavdragonenkov/catalog/internal/service/grpc"
	"github.com/vladislavdragonenkov/catalog/internal/service/catalog"
	"github.com/vladislavdragonenkov/catalog/internal/service/ordering"
	"github.com/vladislavdragonenkov/catalog/internal/storage/memory"
	catalogv1 "github.com/vladislavdragonenkov/catalog/proto/catalog/v1"
)

const bufSize = 1024 * 1024

func idemCtx(key string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), "idempotency-key", key)
}

func newTestClient(t *testing.T) catalogv1.CatalogServiceClient {
	t.Helper()

	logger := loggerForTests()
	store := memory.NewStore()
	return serve(t, grpcsvc.NewCatalogService(
		catalog.NewService(store, catalog.WithLogger(logger)),
		ordering.NewService(store, ordering.WithLogger(logger)),
		memory.NewIdempotencyRepository(),
		logger,
	))
}

func serve(t *testing.T, service catalogv1.CatalogServiceServer) catalogv1.CatalogServiceClient {
	t.Helper()

	listener := bufconn.Listen(bufSize)
	logger := loggerForTests()
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(grpcsvc.RecoveryUnaryInterceptor(logger)))
	catalogv1.RegisterCatalogServiceServer(server, service)

	go func() {
		if err := server.Serve(listener); err != nil {
			logger.WithError(err).Error("grpc serve failed")
		}
	}()

	dialer := func(context.Context, string) (net.Conn, error) {
		return listener.Dial()
	}

	//nolint:staticcheck // grpc.Dial is required for bufconn testing
	conn, err := grpc.Dial("bufnet", grpc.WithContextDialer(dialer), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		server.Stop()
	})

	return catalogv1.NewCatalogServiceClient(conn)
}

func loggerForTests() *logrus.Entry {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: false, DisableTimestamp: true})
	logger.SetLevel(logrus.DebugLevel)
	return logger.WithField("component", "test")
}

func createItem(t *testing.T, client catalogv1.CatalogServiceClient, name, itemType, price string) *catalogv1.Item {
	t.Helper()
	item, err := client.CreateItem(context.Background(), &catalogv1.CreateItemRequest{
		Name:  name,
		Type:  itemType,
		Price: price,
	})
	require.NoError(t, err)
	require.NotEmpty(t, item.GetId())
	return item
}

func requireCode(t *testing.T, err error, code codes.Code) *status.Status {
	t.Helper()
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok, "expected grpc status, got %v", err)
	require.Equal(t, code, st.Code(), st.Message())
	return st
}

func fieldViolations(st *status.Status) []string {
	var fields []string
	for _, detail := range st.Details() {
		if badRequest, ok := detail.(*errdetails.BadRequest); ok {
			for _, violation := range badRequest.GetFieldViolations() {
				fields = append(fields, violation.GetField())
			}
		}
	}
	return fields
}

func TestCatalogService_ItemLifecycle(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	pen := createItem(t, client, "  Pen ", "PRODUCT", "1.5")
	require.Equal(t, "Pen", pen.GetName())
	require.Equal(t, "ACTIVE", pen.GetStatus())
	require.Equal(t, "1.50", pen.GetPrice())
	require.NotZero(t, pen.GetCreatedAtUnixMs())

	_, err := client.CreateItem(ctx, &catalogv1.CreateItemRequest{Name: "Pen", Type: "PRODUCT", Price: "2"})
	st := requireCode(t, err, codes.AlreadyExists)
	require.Equal(t, "Already item with this name: Pen, itemType: PRODUCT.", st.Message())

	var info *errdetails.ErrorInfo
	for _, detail := range st.Details() {
		if candidate, ok := detail.(*errdetails.ErrorInfo); ok {
			info = candidate
		}
	}
	require.NotNil(t, info)
	require.Equal(t, "duplicate_item", info.GetReason())

	updated, err := client.UpdateItem(ctx, &catalogv1.UpdateItemRequest{
		Id:     pen.GetId(),
		Name:   "Pen",
		Type:   "PRODUCT",
		Price:  "2.25",
		Status: "DISABLED",
	})
	require.NoError(t, err)
	require.Equal(t, "DISABLED", updated.GetStatus())

	fetched, err := client.GetItem(ctx, &catalogv1.GetItemRequest{Id: pen.GetId()})
	require.NoError(t, err)
	require.Equal(t, "2.25", fetched.GetPrice())

	page, err := client.ListItems(ctx, &catalogv1.ListItemsRequest{Query: "pen", Status: "disabled"})
	require.NoError(t, err)
	require.EqualValues(t, 1, page.GetTotalResults())

	_, err = client.DeleteItem(ctx, &catalogv1.DeleteItemRequest{Id: pen.GetId()})
	require.NoError(t, err)

	_, err = client.GetItem(ctx, &catalogv1.GetItemRequest{Id: pen.GetId()})
	st = requireCode(t, err, codes.NotFound)
	require.Equal(t, "Cannot found item with id "+pen.GetId()+".", st.Message())
}

func TestCatalogService_ValidationDetails(t *testing.T) {
	client := newTestClient(t)

	_, err := client.CreateItem(context.Background(), &catalogv1.CreateItemRequest{Name: " ", Type: "GADGET", Price: "0"})
	st := requireCode(t, err, codes.InvalidArgument)

	fields := fieldViolations(st)
	require.Contains(t, fields, "name")
	require.Contains(t, fields, "type")
	require.Contains(t, fields, "price")
}

func TestCatalogService_MalformedDecimals(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.CreateItem(ctx, &catalogv1.CreateItemRequest{Name: "Pen", Type: "PRODUCT", Price: "1,50"})
	st := requireCode(t, err, codes.InvalidArgument)
	require.Equal(t, []string{"price"}, fieldViolations(st))

	book := createItem(t, client, "Book", "PRODUCT", "10.00")
	_, err = client.CreateOrder(ctx, &catalogv1.CreateOrderRequest{
		Discount: "ten percent",
		Items:    []*catalogv1.OrderItemInput{{ItemId: book.GetId(), Amount: 1}},
	})
	st = requireCode(t, err, codes.InvalidArgument)
	require.Equal(t, []string{"discount"}, fieldViolations(st))
}

func TestCatalogService_RequiresID(t *testing.T) {
	client := newTestClient(t)

	_, err := client.GetOrder(context.Background(), &catalogv1.GetOrderRequest{})
	requireCode(t, err, codes.InvalidArgument)
}

func TestCatalogService_PageFarBeyondResults(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	createItem(t, client, "Pen", "PRODUCT", "1.00")

	items, err := client.ListItems(ctx, &catalogv1.ListItemsRequest{
		Page: &catalogv1.PageRequest{Page: math.MaxInt32, PageSize: domain.MaxPageSize},
	})
	require.NoError(t, err)
	require.Empty(t, items.GetItems())
	require.EqualValues(t, 1, items.GetTotalResults())

	orders, err := client.ListOrders(ctx, &catalogv1.ListOrdersRequest{
		Page: &catalogv1.PageRequest{Page: math.MaxInt32, PageSize: math.MaxInt32},
	})
	require.NoError(t, err)
	require.Empty(t, orders.GetOrders())
	require.EqualValues(t, domain.MaxPageSize, orders.GetPageSize())
}

func TestCatalogService_OrderLifecycle(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	book := createItem(t, client, "Book", "PRODUCT", "10.00")
	repair := createItem(t, client, "Repair", "SERVICE", "25.00")

	_, err := client.CreateOrder(ctx, &catalogv1.CreateOrderRequest{
		Discount: "0.10",
		Items:    []*catalogv1.OrderItemInput{{ItemId: repair.GetId(), Amount: 1}},
	})
	st := requireCode(t, err, codes.FailedPrecondition)
	require.Equal(t, "Cannot apply discount in order because not contain item PRODUCT.", st.Message())

	_, err = client.CreateOrder(ctx, &catalogv1.CreateOrderRequest{
		Items: []*catalogv1.OrderItemInput{{ItemId: "missing", Amount: 1}},
	})
	requireCode(t, err, codes.NotFound)

	order, err := client.CreateOrder(ctx, &catalogv1.CreateOrderRequest{
		Discount: "0.10",
		Items: []*catalogv1.OrderItemInput{
			{ItemId: book.GetId(), Amount: 3},
			{ItemId: repair.GetId(), Amount: 1},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "OPENED", order.GetStatus())
	require.Len(t, order.GetItems(), 2)
	require.Equal(t, "0.10", order.GetDiscount())
	require.Equal(t, "27.00", order.GetTotalProduct())
	require.Equal(t, "25.00", order.GetTotalService())
	require.Equal(t, "52.00", order.GetTotal())

	updated, err := client.UpdateOrder(ctx, &catalogv1.UpdateOrderRequest{
		Id:    order.GetId(),
		Items: []*catalogv1.OrderItemInput{{Id: order.GetItems()[0].GetId(), ItemId: book.GetId(), Amount: 1}},
	})
	require.NoError(t, err)
	require.Len(t, updated.GetItems(), 1)
	require.Equal(t, "10.00", updated.GetTotal())

	listed, err := client.ListOrders(ctx, &catalogv1.ListOrdersRequest{ItemType: "product"})
	require.NoError(t, err)
	require.EqualValues(t, 1, listed.GetTotalResults())

	_, err = client.ChangeOrderStatus(ctx, &catalogv1.ChangeOrderStatusRequest{Id: order.GetId(), Status: "OPENED"})
	requireCode(t, err, codes.InvalidArgument)

	closed, err := client.ChangeOrderStatus(ctx, &catalogv1.ChangeOrderStatusRequest{Id: order.GetId(), Status: "closed"})
	require.NoError(t, err)
	require.Equal(t, "CLOSED", closed.GetStatus())

	_, err = client.ChangeOrderStatus(ctx, &catalogv1.ChangeOrderStatusRequest{Id: order.GetId(), Status: "CLOSED"})
	requireCode(t, err, codes.FailedPrecondition)

	_, err = client.UpdateOrder(ctx, &catalogv1.UpdateOrderRequest{
		Id:    order.GetId(),
		Items: []*catalogv1.OrderItemInput{{ItemId: book.GetId(), Amount: 1}},
	})
	st = requireCode(t, err, codes.FailedPrecondition)
	require.Equal(t, "Cannot edit order because is CLOSED.", st.Message())

	_, err = client.DeleteOrder(ctx, &catalogv1.DeleteOrderRequest{Id: order.GetId()})
	requireCode(t, err, codes.FailedPrecondition)

	_, err = client.DeleteItem(ctx, &catalogv1.DeleteItemRequest{Id: book.GetId()})
	st = requireCode(t, err, codes.FailedPrecondition)
	require.Equal(t, "Cannot delete item because have linked order.", st.Message())
}

func TestCatalogService_CreateItemIdempotency(t *testing.T) {
	client := newTestClient(t)
	req := &catalogv1.CreateItemRequest{Name: "Lamp", Type: "PRODUCT", Price: "15.00"}

	first, err := client.CreateItem(idemCtx("idem-item-1"), req)
	require.NoError(t, err)

	second, err := client.CreateItem(idemCtx("idem-item-1"), req)
	require.NoError(t, err)
	require.Equal(t, first.GetId(), second.GetId())
	require.Equal(t, first.GetPrice(), second.GetPrice())

	_, err = client.CreateItem(idemCtx("idem-item-1"), &catalogv1.CreateItemRequest{Name: "Lamp", Type: "SERVICE", Price: "1"})
	requireCode(t, err, codes.AlreadyExists)

	// Без ключа повтор выполняется заново и упирается в уникальность.
	_, err = client.CreateItem(context.Background(), req)
	requireCode(t, err, codes.AlreadyExists)
}

func TestCatalogService_CreateOrderIdempotentFailureReplay(t *testing.T) {
	client := newTestClient(t)
	req := &catalogv1.CreateOrderRequest{Items: []*catalogv1.OrderItemInput{{ItemId: "ghost", Amount: 1}}}

	_, err := client.CreateOrder(idemCtx("idem-order-1"), req)
	first := requireCode(t, err, codes.NotFound)

	_, err = client.CreateOrder(idemCtx("idem-order-1"), req)
	replayed := requireCode(t, err, codes.NotFound)
	require.Equal(t, first.Message(), replayed.Message())
	require.NotEmpty(t, replayed.Details())
	require.Len(t, replayed.Details(), len(first.Details()))
}

// panickingItems роняет обработчик на любом обращении к каталогу.
type panickingItems struct {
	grpcsvc.ItemService
}

func (panickingItems) CreateItem(context.Context, domain.ItemInput) (domain.Item, error) {
	panic("item store exploded")
}

func (panickingItems) ListItems(context.Context, domain.ItemFilter, domain.PageRequest) (domain.Page[domain.Item], error) {
	panic("item store exploded")
}

func TestCatalogService_HandlerPanicBecomesInternal(t *testing.T) {
	client := serve(t, grpcsvc.NewCatalogService(panickingItems{}, nil, memory.NewIdempotencyRepository(), loggerForTests()))
	req := &catalogv1.CreateItemRequest{Name: "Pen", Type: "PRODUCT", Price: "1.00"}

	_, err := client.ListItems(context.Background(), &catalogv1.ListItemsRequest{})
	requireCode(t, err, codes.Internal)

	_, err = client.CreateItem(idemCtx("idem-panic-1"), req)
	requireCode(t, err, codes.Internal)

	// Ключ не зависает в processing: повтор получает сохранённую ошибку, а не Aborted.
	_, err = client.CreateItem(idemCtx("idem-panic-1"), req)
	requireCode(t, err, codes.Internal)

	_, err = client.ListItems(context.Background(), &catalogv1.ListItemsRequest{})
	requireCode(t, err, codes.Internal)
}
