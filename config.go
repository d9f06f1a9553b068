package retry

import "time"

func New(options ...option) Executor {
	this := defaultExecutor{}

	for _, item := range Options.defaults(options...) {
		item(&this)
	}

	return this
}

var Options singleton

type singleton struct{}
type option func(*defaultExecutor)

// MaxRetries is the number of additional attempts allowed after the first,
// making the total number of attempts at most value+1.
func (singleton) MaxRetries(value uint32) option {
	return func(this *defaultExecutor) { this.retryCount = int(value) }
}

// Interval is the fixed wait inserted between consecutive retries.
func (singleton) Interval(value time.Duration) option {
	return func(this *defaultExecutor) { this.interval = value }
}
func (singleton) ErrorCallback(value ErrorCallback) option {
	return func(this *defaultExecutor) { this.callback = value }
}
func (singleton) Logger(value logger) option {
	return func(this *defaultExecutor) { this.logger = value }
}
func (singleton) Monitor(value monitor) option {
	return func(this *defaultExecutor) { this.monitor = value }
}

func (singleton) defaults(options ...option) []option {
	const defaultMaxRetries = 3
	const defaultInterval = time.Second
	var defaultLogger = nop{}
	var defaultMonitor = nop{}

	return append([]option{
		Options.MaxRetries(defaultMaxRetries),
		Options.Interval(defaultInterval),
		Options.Logger(defaultLogger),
		Options.Monitor(defaultMonitor),
	}, options...)
}

type nop struct{}

func (nop) Printf(_ string, _ ...any) {}

func (nop) AttemptCompleted(_ int, _ error) {}
