package charge

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/jcmexdev/payments-bff/internal/bff/core/domain/entity"
)

const DefaultMaxAttempts = 3

// AttemptFunc performs one attempt. n starts at 1.
type AttemptFunc func(ctx context.Context, n int) entity.ChargeOutcome

// RetryPolicy re-runs an attempt while it fails with a retryable kind, up to
// a fixed number of attempts. Attempts are strictly sequential.
type RetryPolicy struct {
	maxAttempts int
	delay       time.Duration
}

// NewRetryPolicy returns a policy allowing maxAttempts attempts in total with
// a fixed delay between them. maxAttempts below 1 falls back to DefaultMaxAttempts.
func NewRetryPolicy(maxAttempts int, delay time.Duration) *RetryPolicy {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	if delay < 0 {
		delay = 0
	}
	return &RetryPolicy{maxAttempts: maxAttempts, delay: delay}
}

func (p *RetryPolicy) MaxAttempts() int { return p.maxAttempts }

// failedAttempt carries a failed outcome through backoff.Retry.
type failedAttempt struct{ outcome entity.ChargeOutcome }

func (e failedAttempt) Error() string { return e.outcome.String() }

func (p *RetryPolicy) backOff() backoff.BackOff {
	if p.delay == 0 {
		return &backoff.ZeroBackOff{}
	}
	return backoff.NewConstantBackOff(p.delay)
}

// Execute returns the first success, the first non-retryable failure, or the
// last failure once the budget is spent. A cancelled ctx stops further
// attempts; the last observed failure is returned.
func (p *RetryPolicy) Execute(ctx context.Context, attempt AttemptFunc) entity.ChargeOutcome {
	var (
		n    int
		last entity.ChargeOutcome
	)
	operation := func() (struct{}, error) {
		n++
		last = attempt(ctx, n)
		switch {
		case last.IsSuccess():
			return struct{}{}, nil
		case !last.Kind().Retryable():
			return struct{}{}, backoff.Permanent(failedAttempt{last})
		}
		return struct{}{}, failedAttempt{last}
	}

	_, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(p.backOff()),
		backoff.WithMaxTries(uint(p.maxAttempts)),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(func(err error, next time.Duration) {
			slog.DebugContext(ctx, "retrying charge",
				"attempt", n,
				"kind", last.Kind().String(),
				"detail", last.Detail(),
				"delay", next,
			)
		}),
	)
	switch {
	case err == nil || !last.Kind().Retryable():
	case ctx.Err() != nil:
		slog.DebugContext(ctx, "charge retries abandoned", "attempt", n, "error", ctx.Err())
	default:
		slog.DebugContext(ctx, "charge attempts exhausted", "attempts", n, "kind", last.Kind().String())
	}
	return last
}
