package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	catalogv1 "github.com/vladislavdragonenkov/catalog/proto/catalog/v1"
)

const (
	idempotencyHeader = "idempotency-key"
	scenarioMethod    = "scenario"
)

type loadMode string

const (
	modeItems       loadMode = "items"
	modeOrders      loadMode = "orders"
	modeOrdersClose loadMode = "orders-close"
)

type config struct {
	addr         string
	total        int
	duration     time.Duration
	concurrency  int
	connections  int
	timeout      time.Duration
	mode         loadMode
	searchRate   int
	productPrice decimal.Decimal
	servicePrice decimal.Decimal
	discount     decimal.Decimal
	amount       int
	namePrefix   string
	outputPath   string
}

type catalogClient interface {
	CreateItem(ctx context.Context, req *catalogv1.CreateItemRequest, opts ...grpc.CallOption) (*catalogv1.Item, error)
	GetItem(ctx context.Context, req *catalogv1.GetItemRequest, opts ...grpc.CallOption) (*catalogv1.Item, error)
	CreateOrder(ctx context.Context, req *catalogv1.CreateOrderRequest, opts ...grpc.CallOption) (*catalogv1.Order, error)
	ChangeOrderStatus(ctx context.Context, req *catalogv1.ChangeOrderStatusRequest, opts ...grpc.CallOption) (*catalogv1.Order, error)
	ListOrders(ctx context.Context, req *catalogv1.ListOrdersRequest, opts ...grpc.CallOption) (*catalogv1.ListOrdersResponse, error)
}

func parseConfig(args []string) (config, error) {
	var (
		cfg          config
		modeValue    string
		productPrice string
		servicePrice string
		discount     string
	)

	fs := flag.NewFlagSet("loadtest", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.addr, "addr", "localhost:50051", "gRPC target address")
	fs.IntVar(&cfg.total, "total", 400, "scenarios to execute; with -duration acts as an upper bound when > 0")
	fs.DurationVar(&cfg.duration, "duration", 0, "optional time-based run duration")
	fs.IntVar(&cfg.concurrency, "concurrency", 40, "number of concurrent workers")
	fs.IntVar(&cfg.connections, "connections", 20, "number of gRPC client connections")
	fs.DurationVar(&cfg.timeout, "timeout", 5*time.Second, "per-RPC timeout")
	fs.StringVar(&modeValue, "mode", string(modeOrders), "load mode: items | orders | orders-close")
	fs.IntVar(&cfg.searchRate, "search-rate", 0, "percent of scenarios followed by ListOrders (0..100)")
	fs.StringVar(&productPrice, "product-price", "10.00", "price of generated PRODUCT items")
	fs.StringVar(&servicePrice, "service-price", "25.00", "price of generated SERVICE items")
	fs.StringVar(&discount, "discount", "0.10", "order discount")
	fs.IntVar(&cfg.amount, "amount", 2, "amount of every order line")
	fs.StringVar(&cfg.namePrefix, "name-prefix", "load", "prefix of generated item names")
	fs.StringVar(&cfg.outputPath, "output", "", "optional JSON report output file path")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	mode, err := parseMode(modeValue)
	if err != nil {
		return cfg, err
	}
	cfg.mode = mode

	for _, field := range []struct {
		name  string
		raw   string
		value *decimal.Decimal
	}{
		{"product-price", productPrice, &cfg.productPrice},
		{"service-price", servicePrice, &cfg.servicePrice},
		{"discount", discount, &cfg.discount},
	} {
		parsed, err := decimal.NewFromString(strings.TrimSpace(field.raw))
		if err != nil {
			return cfg, fmt.Errorf("parse %s: %w", field.name, err)
		}
		*field.value = parsed
	}

	switch {
	case cfg.duration < 0:
		return cfg, errors.New("duration must be >= 0")
	case cfg.duration == 0 && cfg.total <= 0:
		return cfg, errors.New("total must be > 0 when duration is not set")
	case cfg.concurrency <= 0:
		return cfg, errors.New("concurrency must be > 0")
	case cfg.connections <= 0:
		return cfg, errors.New("connections must be > 0")
	case cfg.timeout <= 0:
		return cfg, errors.New("timeout must be > 0")
	case cfg.amount <= 0 || cfg.amount > math.MaxInt32:
		return cfg, errors.New("amount must be between 1 and 2147483647")
	case cfg.searchRate < 0 || cfg.searchRate > 100:
		return cfg, errors.New("search-rate must be between 0 and 100")
	case !cfg.productPrice.IsPositive() || !cfg.servicePrice.IsPositive():
		return cfg, errors.New("prices must be > 0")
	case cfg.discount.IsNegative() || cfg.discount.GreaterThan(decimal.NewFromInt(1)):
		return cfg, errors.New("discount must be between 0 and 1")
	case strings.TrimSpace(cfg.namePrefix) == "":
		return cfg, errors.New("name-prefix is required")
	}
	return cfg, nil
}

func parseMode(value string) (loadMode, error) {
	switch mode := loadMode(strings.TrimSpace(value)); mode {
	case modeItems, modeOrders, modeOrdersClose:
		return mode, nil
	default:
		return "", fmt.Errorf("unsupported mode: %s", value)
	}
}

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	logger := log.WithField("component", "loadtest")

	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		logger.WithError(err).Fatal("invalid config")
	}

	conns := make([]*grpc.ClientConn, 0, cfg.connections)
	clients := make([]catalogClient, 0, cfg.connections)
	for i := 0; i < cfg.connections; i++ {
		conn, dialErr := grpc.NewClient(cfg.addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if dialErr != nil {
			logger.WithError(dialErr).Fatal("failed to create grpc client connection")
		}
		conns = append(conns, conn)
		clients = append(clients, catalogv1.NewCatalogServiceClient(conn))
	}
	defer func() {
		for _, conn := range conns {
			_ = conn.Close()
		}
	}()

	result := runLoad(context.Background(), cfg, clients)
	printReport(os.Stdout, result, cfg)
	if cfg.outputPath != "" {
		if err := writeJSONReport(cfg.outputPath, result); err != nil {
			logger.WithError(err).Fatal("failed to write report")
		}
	}
	if result.FailedScenarios > 0 {
		os.Exit(1)
	}
}

func runLoad(ctx context.Context, cfg config, clients []catalogClient) report {
	startedAt := time.Now()
	runID := fmt.Sprintf("%d-%d", startedAt.UnixNano(), os.Getpid())
	col := newCollector()

	jobs := make(chan int, cfg.concurrency*2)
	g, gctx := errgroup.WithContext(ctx)
	for workerID := 0; workerID < cfg.concurrency; workerID++ {
		client := clients[workerID%len(clients)]
		g.Go(func() error {
			for index := range jobs {
				// Провал сценария попадает в отчёт и не останавливает остальных.
				_ = runScenario(gctx, client, cfg, index, runID, col)
			}
			return nil
		})
	}

	dispatchJobs(ctx, jobs, cfg)
	_ = g.Wait()

	return col.snapshot(startedAt, time.Since(startedAt))
}

func dispatchJobs(ctx context.Context, jobs chan<- int, cfg config) {
	defer close(jobs)

	var deadline <-chan time.Time
	if cfg.duration > 0 {
		timer := time.NewTimer(cfg.duration)
		defer timer.Stop()
		deadline = timer.C
	}

	for i := 0; cfg.duration > 0 && cfg.total <= 0 || i < cfg.total; i++ {
		select {
		case <-ctx.Done():
			return
		case <-deadline:
			return
		case jobs <- i:
		}
	}
}

func runScenario(ctx context.Context, client catalogClient, cfg config, index int, runID string, col *collector) (err error) {
	started := time.Now()
	defer func() {
		col.record(scenarioMethod, time.Since(started), grpcCode(err))
	}()

	name := fmt.Sprintf("%s-%s-%d", cfg.namePrefix, runID, index)
	product, err := callCreateItem(ctx, client, cfg, col, name+"-product", "PRODUCT", cfg.productPrice)
	if err != nil {
		return err
	}

	if cfg.mode == modeItems {
		return timed(ctx, cfg, col, "GetItem", func(callCtx context.Context) error {
			_, err := client.GetItem(callCtx, &catalogv1.GetItemRequest{Id: product.GetId()})
			return err
		})
	}

	service, err := callCreateItem(ctx, client, cfg, col, name+"-service", "SERVICE", cfg.servicePrice)
	if err != nil {
		return err
	}

	var order *catalogv1.Order
	err = timed(withKey(ctx, "lt-order-"+name), cfg, col, "CreateOrder", func(callCtx context.Context) error {
		var callErr error
		order, callErr = client.CreateOrder(callCtx, &catalogv1.CreateOrderRequest{
			Discount: cfg.discount.StringFixed(2),
			Items: []*catalogv1.OrderItemInput{
				{ItemId: product.GetId(), Amount: int32(cfg.amount)}, //nolint:gosec // диапазон проверен в parseConfig.
				{ItemId: service.GetId(), Amount: 1},
			},
		})
		return callErr
	})
	if err != nil {
		return err
	}
	if order.GetId() == "" {
		return status.Error(codes.Internal, "create order returned empty id")
	}

	if cfg.mode == modeOrdersClose {
		err = timed(ctx, cfg, col, "ChangeOrderStatus", func(callCtx context.Context) error {
			_, err := client.ChangeOrderStatus(callCtx, &catalogv1.ChangeOrderStatusRequest{Id: order.GetId(), Status: "CLOSED"})
			return err
		})
		if err != nil {
			return err
		}
	}

	if shouldSearch(index, cfg.searchRate) {
		return timed(ctx, cfg, col, "ListOrders", func(callCtx context.Context) error {
			_, err := client.ListOrders(callCtx, &catalogv1.ListOrdersRequest{
				Query:    cfg.namePrefix,
				ItemType: "PRODUCT",
				Page:     &catalogv1.PageRequest{PageSize: 20},
			})
			return err
		})
	}
	return nil
}

func callCreateItem(ctx context.Context, client catalogClient, cfg config, col *collector, name, itemType string, price decimal.Decimal) (*catalogv1.Item, error) {
	var item *catalogv1.Item
	err := timed(withKey(ctx, "lt-item-"+name), cfg, col, "CreateItem", func(callCtx context.Context) error {
		var callErr error
		item, callErr = client.CreateItem(callCtx, &catalogv1.CreateItemRequest{Name: name, Type: itemType, Price: price.StringFixed(2)})
		return callErr
	})
	return item, err
}

func timed(ctx context.Context, cfg config, col *collector, method string, call func(context.Context) error) error {
	callCtx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	start := time.Now()
	err := call(callCtx)
	col.record(method, time.Since(start), grpcCode(err))
	return err
}

func withKey(ctx context.Context, key string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, idempotencyHeader, key)
}

func grpcCode(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	return status.Code(err)
}

func shouldSearch(index, rate int) bool {
	switch {
	case rate <= 0:
		return false
	case rate >= 100:
		return true
	default:
		return index%100 < rate
	}
}
