package upstream

import (
	"context"
	"errors"
	"time"

	"github.com/roivaz/gpt-bridge/internal/logging"
)

// RetryPolicy bounds how a failed remote call is reattempted. Attempts are
// scoped to a single invocation; no failure history is kept across calls and
// no jitter is applied.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
}

// backoffDelay returns the wait before the next attempt: the server's
// Retry-After hint verbatim when present, exponential from BaseDelay
// otherwise (attempt starts at 1).
func (p RetryPolicy) backoffDelay(apiErr *APIError, attempt int) time.Duration {
	if apiErr.RetryAfter > 0 {
		return apiErr.RetryAfter
	}
	return p.BaseDelay << (attempt - 1)
}

// doWithRetry runs fn until it succeeds, fails terminally, or the policy is
// exhausted. Only classified remote-call failures marked retriable consume a
// retry; anything else propagates immediately. The final failure propagates
// unchanged.
func doWithRetry[T any](ctx context.Context, log logging.Logger, p RetryPolicy, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	for attempt := 1; ; attempt++ {
		out, err := fn(ctx)
		if err == nil {
			return out, nil
		}
		var apiErr *APIError
		if !errors.As(err, &apiErr) || !apiErr.Retriable() || attempt > p.MaxRetries {
			return zero, err
		}
		delay := p.backoffDelay(apiErr, attempt)
		log.Info("retrying upstream call",
			"attempt", attempt,
			"status", apiErr.StatusOrDefault(),
			"delay", delay.String(),
		)
		if err := sleep(ctx, delay); err != nil {
			return zero, err
		}
	}
}

// sleep waits for d or until ctx is cancelled, whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
