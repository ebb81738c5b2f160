package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
)

// errorResponse задаёт тело ответа с ошибкой.
type errorResponse struct {
	Status  int                 `json:"status"`
	Kind    string              `json:"kind"`
	Message string              `json:"message,omitempty"`
	IDs     []string            `json:"ids,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

const (
	kindNotFound     = "not_found"
	kindConflict     = "conflict"
	kindInvalidState = "invalid_state"
	kindValidation   = "validation"
	kindInternal     = "internal"
)

// classify сопоставляет вид доменной ошибки HTTP статусу.
// Нарушения бизнес-правил отдаются как 400, отсутствие сущности как 404.
func classify(err error) (int, string) {
	switch {
	case domain.IsNotFound(err):
		return http.StatusNotFound, kindNotFound
	case domain.IsConflict(err):
		return http.StatusBadRequest, kindConflict
	case domain.IsInvalidState(err):
		return http.StatusBadRequest, kindInvalidState
	case domain.IsValidation(err):
		return http.StatusBadRequest, kindValidation
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, kindInternal
	default:
		return http.StatusInternalServerError, kindInternal
	}
}

func newErrorResponse(err error) errorResponse {
	code, kind := classify(err)
	resp := errorResponse{Status: code, Kind: kind}

	domainErr, ok := domain.AsError(err)
	if !ok {
		resp.Message = http.StatusText(code)
		return resp
	}

	resp.IDs = domainErr.IDs
	if len(domainErr.Violations) == 0 {
		resp.Message = domainErr.Message
		return resp
	}
	resp.Errors = make(map[string][]string, len(domainErr.Violations))
	for _, v := range domainErr.Violations {
		resp.Errors[v.Field] = append(resp.Errors[v.Field], v.Message)
	}
	return resp
}

// fail логирует ошибку один раз и пишет тело ответа.
func (s *Server) fail(c *gin.Context, operation string, fields log.Fields, err error) {
	resp := newErrorResponse(err)

	entry := s.logger.WithError(err).WithField("operation", operation)
	if len(fields) > 0 {
		entry = entry.WithFields(fields)
	}
	if resp.Status >= http.StatusInternalServerError {
		entry.Error("catalog request failed")
	} else {
		entry.Warn("catalog request rejected")
	}

	c.AbortWithStatusJSON(resp.Status, resp)
}

func badRequest(c *gin.Context, field, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{
		Status: http.StatusBadRequest,
		Kind:   kindValidation,
		Errors: map[string][]string{field: {message}},
	})
}
