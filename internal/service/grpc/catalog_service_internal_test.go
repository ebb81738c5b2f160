package grpcsvc

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
	catalogv1 "github.com/vladislavdragonenkov/catalog/proto/catalog/v1"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{name: "not found", err: domain.NewNotFound("Cannot found item with id x.", "x"), want: codes.NotFound},
		{name: "duplicate", err: domain.NewConflict(domain.ReasonDuplicateItem, "dup"), want: codes.AlreadyExists},
		{name: "disabled items", err: domain.NewConflict(domain.ReasonItemsDisabled, "disabled"), want: codes.FailedPrecondition},
		{name: "closed order", err: domain.NewInvalidState("closed"), want: codes.FailedPrecondition},
		{name: "validation", err: domain.NewValidation([]domain.FieldViolation{{Field: "name", Message: "blank"}}), want: codes.InvalidArgument},
		{name: "wrapped", err: fmt.Errorf("update: %w", domain.NewNotFound("gone")), want: codes.NotFound},
		{name: "canceled", err: context.Canceled, want: codes.Canceled},
		{name: "store failure", err: errors.New("connection reset"), want: codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, codeOf(tt.err))
		})
	}
}

func TestToStatus_HidesInternalErrors(t *testing.T) {
	err := toStatus(fmt.Errorf("save order: %w", errors.New("pq: relation does not exist")))
	st, ok := status.FromError(err)
	require.True(t, ok)
	require.Equal(t, codes.Internal, st.Code())
	require.Equal(t, "internal error", st.Message())
}

func TestToStatus_KeepsExistingStatus(t *testing.T) {
	original := status.Error(codes.Aborted, "busy")
	require.Equal(t, original, toStatus(original))
}

func TestStoredFailure_KeepsDetails(t *testing.T) {
	original := toStatus(domain.NewNotFound("Cannot found order with id o-1.", "o-1"))
	body, err := proto.Marshal(status.Convert(original).Proto())
	require.NoError(t, err)

	replayed := status.Convert(storedFailure(domain.IdempotencyRecord{ResponseBody: body, StatusCode: int(codes.NotFound)}))
	require.Equal(t, codes.NotFound, replayed.Code())
	require.Equal(t, "Cannot found order with id o-1.", replayed.Message())
	require.Len(t, replayed.Details(), 1)
	info, ok := replayed.Details()[0].(*errdetails.ErrorInfo)
	require.True(t, ok)
	require.Equal(t, errorDomain, info.GetDomain())
}

func TestStoredFailure_Fallbacks(t *testing.T) {
	tests := []struct {
		name   string
		record domain.IdempotencyRecord
		want   codes.Code
	}{
		{name: "code only", record: domain.IdempotencyRecord{StatusCode: int(codes.FailedPrecondition)}, want: codes.FailedPrecondition},
		{name: "garbage body", record: domain.IdempotencyRecord{ResponseBody: []byte("{not proto"), StatusCode: int(codes.InvalidArgument)}, want: codes.InvalidArgument},
		{name: "out of range code", record: domain.IdempotencyRecord{StatusCode: 999}, want: codes.Internal},
		{name: "ok code", record: domain.IdempotencyRecord{StatusCode: int(codes.OK)}, want: codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := storedFailure(tt.record)
			require.Equal(t, tt.want, status.Code(err))
		})
	}
}

func TestIdempotencyKey(t *testing.T) {
	_, ok := idempotencyKey(context.Background())
	require.False(t, ok)

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(idempotencyKeyHeader, "  key-1 "))
	key, ok := idempotencyKey(ctx)
	require.True(t, ok)
	require.Equal(t, "key-1", key)

	blank := metadata.NewIncomingContext(context.Background(), metadata.Pairs(idempotencyKeyHeader, " "))
	_, ok = idempotencyKey(blank)
	require.False(t, ok)
}

func TestRequestHash_DependsOnMethodAndBody(t *testing.T) {
	req := &catalogv1.CreateItemRequest{Name: "Bolt", Type: "PRODUCT", Price: "1.00"}

	first, err := requestHash(catalogv1.CatalogService_CreateItem_FullMethodName, req)
	require.NoError(t, err)
	second, err := requestHash(catalogv1.CatalogService_CreateItem_FullMethodName, proto.Clone(req))
	require.NoError(t, err)
	other, err := requestHash(catalogv1.CatalogService_CreateOrder_FullMethodName, req)
	require.NoError(t, err)
	repriced, err := requestHash(catalogv1.CatalogService_CreateItem_FullMethodName,
		&catalogv1.CreateItemRequest{Name: "Bolt", Type: "PRODUCT", Price: "2.00"})
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.NotEqual(t, first, other)
	require.NotEqual(t, first, repriced)
	require.Len(t, first, 64)
}

func TestDecimalParser(t *testing.T) {
	in, err := toOrderInput(" 0.15 ", []*catalogv1.OrderItemInput{nil, {ItemId: "i-1", Amount: 2}})
	require.NoError(t, err)
	require.Equal(t, "0.15", in.Discount.String())
	require.Len(t, in.Items, 1)

	_, err = toItemInput("Bolt", "PRODUCT", "ten", "")
	require.True(t, domain.IsValidation(err))
	derr, ok := domain.AsError(err)
	require.True(t, ok)
	require.Equal(t, "price", derr.Violations[0].Field)

	empty, err := toItemInput("Bolt", "PRODUCT", "", "")
	require.NoError(t, err)
	require.True(t, empty.Price.IsZero())
}

// recordingIdempotencyRepo запоминает последний переход ключа.
type recordingIdempotencyRepo struct {
	domain.IdempotencyRepository

	failedKey  string
	failedCode int
}

func (r *recordingIdempotencyRepo) CreateProcessing(context.Context, string, string, time.Time) (domain.IdempotencyRecord, error) {
	return domain.IdempotencyRecord{}, nil
}

func (r *recordingIdempotencyRepo) MarkFailed(_ context.Context, key string, _ []byte, code int) error {
	r.failedKey, r.failedCode = key, code
	return nil
}

func TestWithIdempotency_PanicMarksKeyFailed(t *testing.T) {
	repo := &recordingIdempotencyRepo{}
	svc := NewCatalogService(nil, nil, repo, nil)
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(idempotencyKeyHeader, "key-1"))

	require.Panics(t, func() {
		_, _ = withIdempotency(svc, ctx, catalogv1.CatalogService_CreateItem_FullMethodName, &catalogv1.CreateItemRequest{},
			func() *catalogv1.Item { return &catalogv1.Item{} },
			func(context.Context) (*catalogv1.Item, error) { panic("boom") })
	})
	require.Equal(t, "key-1", repo.failedKey)
	require.Equal(t, int(codes.Internal), repo.failedCode)
}
