package retry

import (
	"context"
	"errors"
	"fmt"
)

type Operation func() error

type Executor interface {
	Execute(ctx context.Context, operation Operation) error
}

// ErrorCallback observes each failure after the first and may halt retrying
// by calling StopRetrying on the provided ErrorInfo.
type ErrorCallback interface {
	Invoke(info *ErrorInfo)
}

type ErrorCallbackFunc func(info *ErrorInfo)

func (this ErrorCallbackFunc) Invoke(info *ErrorInfo) { this(info) }

// ErrorInfo describes a reported failure. It is furnished to the callback for
// the duration of Invoke and must not be retained.
type ErrorInfo struct {
	attempt int
	cause   error
	stop    bool
}

// Attempt is the 1-based sequence number of the reported failure.
func (this *ErrorInfo) Attempt() int { return this.attempt }

func (this *ErrorInfo) Cause() error { return this.cause }

func (this *ErrorInfo) StopRetrying() { this.stop = true }

// Error lists every failure from an execution that never succeeded, in the
// order the failures occurred.
type Error []error

func (this Error) Error() string {
	return fmt.Sprintf("%s: [%d] attempt(s) failed", ErrMaxRetriesExceeded, len(this))
}
func (this Error) Unwrap() []error { return this }
func (this Error) Is(target error) bool {
	return target == ErrMaxRetriesExceeded
}

type logger interface {
	Printf(format string, args ...any)
}
type monitor interface {
	AttemptCompleted(attempt int, resultError error)
}

var (
	ErrMaxRetriesExceeded = errors.New("maximum number of retry attempts exceeded")

	errNilContext   = errors.New("context must not be nil")
	errNilOperation = errors.New("operation must not be nil")
)
