package payment

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jcmexdev/payments-bff/internal/bff/core/domain/entity"
	"github.com/jcmexdev/payments-bff/internal/bff/core/ports"
	"github.com/jcmexdev/payments-bff/internal/pkg/telemetry"
)

const tracerName = "github.com/jcmexdev/payments-bff/internal/bff/infra/adapters/payment"

type instrumented struct {
	next    ports.PaymentGateway
	metrics *telemetry.Metrics
	tracer  trace.Tracer
}

// Instrument wraps a gateway so that every attempt records a span and the
// attempt metrics. A nil tp uses the global tracer provider.
func Instrument(next ports.PaymentGateway, metrics *telemetry.Metrics, tp trace.TracerProvider) ports.PaymentGateway {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &instrumented{
		next:    next,
		metrics: metrics,
		tracer:  tp.Tracer(tracerName),
	}
}

func (i *instrumented) Name() string { return i.next.Name() }

func (i *instrumented) Charge(ctx context.Context, cmd entity.ChargeCommand) entity.ChargeOutcome {
	ctx, span := i.tracer.Start(ctx, "payment.charge",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("payment.gateway", i.next.Name()),
			attribute.Int64("payment.amount", cmd.Amount),
			attribute.String("payment.currency", cmd.Currency),
		),
	)
	defer span.End()

	start := time.Now()
	outcome := i.next.Charge(ctx, cmd)
	elapsed := time.Since(start)

	result := "success"
	if outcome.IsSuccess() {
		span.SetAttributes(attribute.String("payment.status", outcome.Status()))
	} else {
		result = outcome.Kind().String()
		span.SetAttributes(attribute.String("payment.error_kind", result))
		span.SetStatus(codes.Error, outcome.Detail())
	}

	if i.metrics != nil {
		i.metrics.ChargeAttempts.WithLabelValues(i.next.Name(), result).Inc()
		i.metrics.ChargeAttemptDuration.WithLabelValues(i.next.Name()).Observe(elapsed.Seconds())
	}
	return outcome
}
