package grpcsvc

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
)

const (
	idempotencyKeyHeader = "idempotency-key"
	failedBeforeMessage  = "previous request with the same idempotency key failed"
)

// withIdempotency выполняет handler не больше одного раза на idempotency-key.
// Повтор получает сохранённый ответ или сохранённую ошибку вместе с её деталями.
// Без ключа в metadata или без репозитория вызов идёт напрямую.
func withIdempotency[T proto.Message](
	s *CatalogService,
	ctx context.Context,
	method string,
	req proto.Message,
	newResp func() T,
	handler func(context.Context) (T, error),
) (T, error) {
	var zero T

	key, ok := idempotencyKey(ctx)
	if !ok || s.idemRepo == nil {
		return handler(ctx)
	}
	entry := s.logger.WithFields(log.Fields{"method": method, "idempotency_key": key})

	hash, err := requestHash(method, req)
	if err != nil {
		entry.WithError(err).Error("hash idempotent request")
		return zero, status.Error(codes.Internal, "cannot hash request")
	}

	record, err := s.idemRepo.CreateProcessing(ctx, key, hash, time.Now().UTC().Add(domain.DefaultIdempotencyTTL))
	if err != nil {
		return replay(record, err, entry, newResp)
	}

	// Результат сохраняется и после отмены клиентом: повтор должен его увидеть.
	storeCtx := context.WithoutCancel(ctx)
	defer func() {
		if r := recover(); r != nil {
			entry.WithField("panic", r).Error("idempotent handler panicked")
			s.storeFailure(storeCtx, key, status.New(codes.Internal, "internal error"), entry)
			panic(r)
		}
	}()

	resp, err := handler(ctx)
	if err != nil {
		s.storeFailure(storeCtx, key, status.Convert(err), entry)
		return zero, err
	}

	body, err := proto.Marshal(resp)
	if err == nil {
		err = s.idemRepo.MarkDone(storeCtx, key, body, int(codes.OK))
	}
	if err != nil {
		entry.WithError(err).Warn("store idempotent response")
	}
	return resp, nil
}

// storeFailure переводит ключ в failed, чтобы повтор получил ту же ошибку.
func (s *CatalogService) storeFailure(ctx context.Context, key string, st *status.Status, entry *log.Entry) {
	body, err := proto.Marshal(st.Proto())
	if err != nil {
		entry.WithError(err).Warn("encode idempotent failure")
	}
	if err := s.idemRepo.MarkFailed(ctx, key, body, int(st.Code())); err != nil {
		entry.WithError(err).Warn("store idempotent failure")
	}
}

// replay отвечает на повтор по уже занятому ключу.
func replay[T proto.Message](record domain.IdempotencyRecord, createErr error, entry *log.Entry, newResp func() T) (T, error) {
	var zero T
	switch {
	case errors.Is(createErr, domain.ErrIdempotencyHashMismatch):
		return zero, status.Error(codes.AlreadyExists, "idempotency key was used with a different request")
	case !errors.Is(createErr, domain.ErrIdempotencyKeyAlreadyExists):
		entry.WithError(createErr).Error("reserve idempotency key")
		return zero, status.Error(codes.Internal, "cannot reserve idempotency key")
	}

	switch record.Status {
	case domain.IdempotencyStatusProcessing:
		return zero, status.Error(codes.Aborted, "request with the same idempotency key is in progress")
	case domain.IdempotencyStatusFailed:
		return zero, storedFailure(record)
	case domain.IdempotencyStatusDone:
		resp := newResp()
		if err := proto.Unmarshal(record.ResponseBody, resp); err != nil {
			entry.WithError(err).Error("decode stored idempotent response")
			return zero, status.Error(codes.Internal, "stored response is corrupted")
		}
		return resp, nil
	default:
		return zero, status.Errorf(codes.Internal, "unknown idempotency status %q", record.Status)
	}
}

// storedFailure восстанавливает ошибку первого вызова. Если тело не читается,
// используется сохранённый код.
func storedFailure(record domain.IdempotencyRecord) error {
	var st spb.Status
	if len(record.ResponseBody) > 0 && proto.Unmarshal(record.ResponseBody, &st) == nil && st.GetCode() != int32(codes.OK) {
		return status.ErrorProto(&st)
	}
	if code, ok := failureCode(record.StatusCode); ok {
		return status.Error(code, failedBeforeMessage)
	}
	return status.Error(codes.Internal, failedBeforeMessage)
}

// failureCode принимает только коды ошибок gRPC.
func failureCode(value int) (codes.Code, bool) {
	if value <= int(codes.OK) || value > int(codes.Unauthenticated) {
		return codes.Internal, false
	}
	return codes.Code(uint32(value)), true //nolint:gosec // диапазон проверен выше.
}

func idempotencyKey(ctx context.Context) (string, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", false
	}
	for _, value := range md.Get(idempotencyKeyHeader) {
		if key := strings.TrimSpace(value); key != "" {
			return key, true
		}
	}
	return "", false
}

// requestHash связывает ключ с методом и детерминированной proto-сериализацией запроса.
func requestHash(method string, req proto.Message) (string, error) {
	body, err := proto.MarshalOptions{Deterministic: true}.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal %s request: %w", method, err)
	}
	h := sha256.New()
	h.Write([]byte(method))
	h.Write([]byte{0})
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil)), nil
}
