// Package tracing настраивает OpenTelemetry и даёт хелперы для спанов движков правил.
package tracing

import (
	"context"
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/vladislavdragonenkov/catalog"

// InitTracerProvider создаёт TracerProvider с экспортом в Jaeger и делает его глобальным.
func InitTracerProvider(serviceName, jaegerEndpoint string, logger *log.Entry) (*sdktrace.TracerProvider, error) {
	jaegerEndpoint = strings.TrimSpace(jaegerEndpoint)
	if jaegerEndpoint == "" {
		return nil, errors.New("jaeger endpoint is required")
	}
	if logger == nil {
		logger = log.WithField("component", "tracing")
	}

	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(jaegerEndpoint)))
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
		)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	logger.WithFields(log.Fields{
		"service":  serviceName,
		"endpoint": jaegerEndpoint,
	}).Info("tracing initialized")
	return tp, nil
}

// StartSpan открывает спан глобального трейсера.
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(instrumentationName).Start(ctx, name, trace.WithAttributes(attrs...))
}

// EndSpan закрывает спан, помечая его ошибкой при err != nil.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
