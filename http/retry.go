package http

import (
	"context"
	"time"

	"github.com/mkleven/osloplan"
)

// DefaultRetryDelays returns the backoff delays for link check retries:
// 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// WithRetryDelays sets the backoff delays between link check attempts.
// Passing no delays disables retries. This is useful for testing without
// waiting for real delays.
func WithRetryDelays(delays ...time.Duration) Option {
	return func(v *Verifier) {
		v.retryDelays = delays
	}
}

// checkWithRetry checks a document link with exponential backoff retry
// logic. Only transient failures are retried: transport errors and 5xx
// responses. A definitive answer from the server, 404 included, is
// returned as-is. Every attempt goes through the rate limiter.
func (v *Verifier) checkWithRetry(ctx context.Context, doc *osloplan.Document) (osloplan.LinkStatus, error) {
	maxAttempts := len(v.retryDelays) + 1 // 1 initial + N retries

	var status osloplan.LinkStatus
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := v.limiter.Wait(ctx); err != nil {
			return status, err
		}

		var retryable bool
		status, retryable = v.check(ctx, doc)
		if !retryable {
			return status, nil
		}

		// Don't retry after the last attempt
		if attempt >= maxAttempts-1 {
			break
		}

		// Wait before next attempt
		select {
		case <-ctx.Done():
			return status, ctx.Err()
		case <-time.After(v.retryDelays[attempt]):
		}
	}

	return status, nil
}
