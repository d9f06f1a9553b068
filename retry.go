package retry

import (
	"context"
	"time"
)

// Execute invokes operation until it succeeds or retryCount additional
// attempts have been exhausted, waiting interval between consecutive retries.
// When every attempt fails, the returned error is an Error listing each
// failure in the order it occurred.
func Execute(ctx context.Context, retryCount uint32, interval time.Duration, operation Operation) error {
	return New(
		Options.MaxRetries(retryCount),
		Options.Interval(interval),
	).Execute(ctx, operation)
}

// ExecuteCallback behaves like Execute except that each failure after the
// first is reported to callback, which may halt retrying. When a callback is
// supplied, failures are reported to it rather than returned.
func ExecuteCallback(ctx context.Context, retryCount uint32, interval time.Duration, operation Operation, callback ErrorCallback) error {
	return New(
		Options.MaxRetries(retryCount),
		Options.Interval(interval),
		Options.ErrorCallback(callback),
	).Execute(ctx, operation)
}
