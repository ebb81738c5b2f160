package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/vladislavdragonenkov/catalog/internal/service/catalog"
	grpcsvc "github.com/vladislavdragonenkov/catalog/internal/service/grpc"
	"github.com/vladislavdragonenkov/catalog/internal/service/ordering"
	"github.com/vladislavdragonenkov/catalog/internal/storage/memory"
	catalogv1 "github.com/vladislavdragonenkov/catalog/proto/catalog/v1"
)

func startCatalog(t *testing.T) catalogClient {
	t.Helper()

	logger := log.New()
	logger.SetOutput(io.Discard)
	entry := logger.WithField("component", "test")

	store := memory.NewStore()
	server := grpc.NewServer()
	catalogv1.RegisterCatalogServiceServer(server, grpcsvc.NewCatalogService(
		catalog.NewService(store, catalog.WithLogger(entry)),
		ordering.NewService(store, ordering.WithLogger(entry)),
		memory.NewIdempotencyRepository(),
		entry,
	))

	listener := bufconn.Listen(1024 * 1024)
	go func() { _ = server.Serve(listener) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) { return listener.Dial() }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		server.Stop()
	})
	return catalogv1.NewCatalogServiceClient(conn)
}

func baseConfig(mode loadMode, total int) config {
	return config{
		total:        total,
		concurrency:  4,
		connections:  1,
		timeout:      2 * time.Second,
		mode:         mode,
		productPrice: decimal.RequireFromString("10.00"),
		servicePrice: decimal.RequireFromString("25.00"),
		discount:     decimal.RequireFromString("0.10"),
		amount:       2,
		namePrefix:   "lt",
	}
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parseConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "localhost:50051", cfg.addr)
	assert.Equal(t, 400, cfg.total)
	assert.Equal(t, modeOrders, cfg.mode)
	assert.Equal(t, 5*time.Second, cfg.timeout)
	assert.True(t, cfg.discount.Equal(decimal.RequireFromString("0.1")))
	assert.True(t, cfg.productPrice.Equal(decimal.NewFromInt(10)))
}

func TestParseConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown mode", []string{"-mode", "pay"}, "unsupported mode"},
		{"zero total", []string{"-total", "0"}, "total must be > 0"},
		{"negative duration", []string{"-duration", "-1s"}, "duration must be >= 0"},
		{"zero concurrency", []string{"-concurrency", "0"}, "concurrency must be > 0"},
		{"zero connections", []string{"-connections", "0"}, "connections must be > 0"},
		{"zero amount", []string{"-amount", "0"}, "amount must be between 1 and"},
		{"amount above int32", []string{"-amount", "2147483648"}, "amount must be between 1 and"},
		{"search rate", []string{"-search-rate", "101"}, "search-rate must be between 0 and 100"},
		{"bad price", []string{"-product-price", "ten"}, "parse product-price"},
		{"zero price", []string{"-service-price", "0"}, "prices must be > 0"},
		{"discount above one", []string{"-discount", "1.5"}, "discount must be between 0 and 1"},
		{"empty prefix", []string{"-name-prefix", " "}, "name-prefix is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseConfig(tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseConfig_DurationWithoutTotal(t *testing.T) {
	cfg, err := parseConfig([]string{"-duration", "1m", "-total", "0", "-mode", "orders-close", "-search-rate", "50"})
	require.NoError(t, err)
	assert.Equal(t, time.Minute, cfg.duration)
	assert.Equal(t, modeOrdersClose, cfg.mode)
	assert.Equal(t, 50, cfg.searchRate)
}

func TestRunLoad_Items(t *testing.T) {
	client := startCatalog(t)

	result := runLoad(context.Background(), baseConfig(modeItems, 12), []catalogClient{client})

	assert.EqualValues(t, 12, result.TotalScenarios)
	assert.Zero(t, result.FailedScenarios)
	assert.EqualValues(t, 12, result.Methods["CreateItem"].Calls)
	assert.EqualValues(t, 12, result.Methods["GetItem"].Success)
	assert.NotContains(t, result.Methods, "CreateOrder")
}

func TestRunLoad_OrdersCloseWithSearch(t *testing.T) {
	client := startCatalog(t)
	cfg := baseConfig(modeOrdersClose, 10)
	cfg.searchRate = 100

	result := runLoad(context.Background(), cfg, []catalogClient{client})

	assert.Zero(t, result.FailedScenarios)
	assert.EqualValues(t, 20, result.Methods["CreateItem"].Calls)
	assert.EqualValues(t, 10, result.Methods["CreateOrder"].Success)
	assert.EqualValues(t, 10, result.Methods["ChangeOrderStatus"].Success)
	assert.EqualValues(t, 10, result.Methods["ListOrders"].Success)
}

func TestRunLoad_RecordsFailures(t *testing.T) {
	client := startCatalog(t)
	cfg := baseConfig(modeOrders, 3)
	// Отрицательная цена отклоняется валидацией каталога.
	cfg.productPrice = decimal.RequireFromString("-1")

	result := runLoad(context.Background(), cfg, []catalogClient{client})

	assert.EqualValues(t, 3, result.FailedScenarios)
	assert.InDelta(t, 1.0, result.ErrorRate, 0.0001)
	assert.EqualValues(t, 3, result.Methods["CreateItem"].Codes[codes.InvalidArgument.String()])
}

func TestDispatchJobs_StopsOnDuration(t *testing.T) {
	jobs := make(chan int)
	cfg := config{duration: 30 * time.Millisecond}

	done := make(chan struct{})
	go func() {
		dispatchJobs(context.Background(), jobs, cfg)
		close(done)
	}()

	received := 0
	for range jobs {
		received++
		if received > 3 {
			time.Sleep(10 * time.Millisecond)
		}
	}
	<-done
	assert.Greater(t, received, 0)
}

func TestSummarize(t *testing.T) {
	summary := summarize([]time.Duration{4 * time.Millisecond, time.Millisecond, 3 * time.Millisecond, 2 * time.Millisecond})
	assert.Equal(t, 1.0, summary.Min)
	assert.Equal(t, 4.0, summary.Max)
	assert.Equal(t, 2.5, summary.Avg)
	assert.Equal(t, 2.5, summary.P50)
	assert.Equal(t, latencySummary{}, summarize(nil))
}

func TestQuantile(t *testing.T) {
	assert.Zero(t, quantile(nil, 0.5))
	assert.Equal(t, 7.0, quantile([]float64{7}, 0.99))
	assert.Equal(t, 10.0, quantile([]float64{0, 10}, 1))
	assert.InDelta(t, 9.5, quantile([]float64{0, 10}, 0.95), 1e-9)
}

func TestShouldSearch(t *testing.T) {
	assert.False(t, shouldSearch(5, 0))
	assert.True(t, shouldSearch(99, 100))
	assert.True(t, shouldSearch(109, 10))
	assert.False(t, shouldSearch(110, 10))
}

func TestWriteJSONReport(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	result := report{TotalScenarios: 3, Methods: map[string]methodReport{"CreateItem": {Calls: 3}}}
	require.NoError(t, writeJSONReport("report.json", result))

	raw, err := os.ReadFile(filepath.Join(dir, "report.json"))
	require.NoError(t, err)
	var decoded report
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.EqualValues(t, 3, decoded.TotalScenarios)

	assert.Error(t, writeJSONReport(".", result))
	assert.Error(t, writeJSONReport("../escape.json", result))
	assert.Error(t, writeJSONReport("/tmp/abs.json", result))
}

func TestPrintReport(t *testing.T) {
	var out bytes.Buffer
	printReport(&out, report{
		TotalScenarios: 2,
		Methods: map[string]methodReport{
			"GetItem":    {Calls: 2, Success: 2},
			"CreateItem": {Calls: 2, Success: 2},
		},
	}, baseConfig(modeItems, 2))

	text := out.String()
	assert.Contains(t, text, "mode=items total=2 failed=0")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("CreateItem:")), bytes.Index(out.Bytes(), []byte("GetItem:")))
}
