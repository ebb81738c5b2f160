package grpcsvc

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
)

const errorDomain = "catalog.v1"

// codeOf сопоставляет вид доменной ошибки коду gRPC.
func codeOf(err error) codes.Code {
	switch {
	case domain.IsNotFound(err):
		return codes.NotFound
	case domain.IsConflict(err):
		if domainErr, ok := domain.AsError(err); ok && domainErr.Reason == domain.ReasonDuplicateItem {
			return codes.AlreadyExists
		}
		return codes.FailedPrecondition
	case domain.IsInvalidState(err):
		return codes.FailedPrecondition
	case domain.IsValidation(err):
		return codes.InvalidArgument
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	default:
		return codes.Internal
	}
}

// toStatus переводит ошибку сервиса в gRPC status с деталями ErrorInfo и BadRequest.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	code := codeOf(err)
	domainErr, ok := domain.AsError(err)
	if !ok {
		if code == codes.Internal {
			return status.Error(codes.Internal, "internal error")
		}
		return status.Error(code, err.Error())
	}

	st := status.New(code, domainErr.Message)
	info := &errdetails.ErrorInfo{
		Reason: string(domainErr.Reason),
		Domain: errorDomain,
	}
	if len(domainErr.IDs) > 0 {
		info.Metadata = map[string]string{"ids": domain.JoinIDs(domainErr.IDs)}
	}

	if len(domainErr.Violations) > 0 {
		badRequest := &errdetails.BadRequest{}
		for _, v := range domainErr.Violations {
			badRequest.FieldViolations = append(badRequest.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       v.Field,
				Description: v.Message,
			})
		}
		if withDetails, detailErr := st.WithDetails(info, badRequest); detailErr == nil {
			return withDetails.Err()
		}
		return st.Err()
	}

	if withDetails, detailErr := st.WithDetails(info); detailErr == nil {
		return withDetails.Err()
	}
	return st.Err()
}

// fail логирует ошибку один раз на границе транспорта и возвращает gRPC status.
func (s *CatalogService) fail(operation string, fields log.Fields, err error) error {
	entry := s.logger.WithError(err).WithField("operation", operation)
	if len(fields) > 0 {
		entry = entry.WithFields(fields)
	}

	if codeOf(err) == codes.Internal {
		entry.Error("catalog request failed")
	} else {
		entry.Warn("catalog request rejected")
	}
	return toStatus(err)
}
