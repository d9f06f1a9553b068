package retry

import (
	"context"
	"time"
)

type defaultExecutor struct {
	retryCount int
	interval   time.Duration
	callback   ErrorCallback
	logger     logger
	monitor    monitor
}

func (this defaultExecutor) Execute(ctx context.Context, operation Operation) error {
	if ctx == nil {
		panic(errNilContext)
	}
	if operation == nil {
		panic(errNilOperation)
	}

	var failures Error

	for attempt := 0; attempt <= this.retryCount; attempt++ {
		err := this.execute(attempt, operation)
		if err == nil {
			return nil
		}
		failures = append(failures, err)

		// The very first failure is retried immediately; only subsequent
		// failures are reported to the callback and spaced by the interval.
		if attempt == 0 {
			continue
		}
		if this.consult(attempt, err) {
			break
		}
		if attempt < this.retryCount {
			this.sleep(ctx)
		}
	}

	if this.callback == nil && len(failures) > 0 {
		return failures
	}

	return nil
}

func (this defaultExecutor) execute(attempt int, operation Operation) error {
	err := operation()
	this.monitor.AttemptCompleted(attempt+1, err)

	if err != nil {
		this.logger.Printf("[INFO] Attempt [%d] operation failure [%s].", attempt+1, err)
	} else if attempt > 0 {
		this.logger.Printf("[INFO] Operation completed successfully after [%d] failed attempt(s).", attempt)
	}

	return err
}
func (this defaultExecutor) consult(attempt int, cause error) bool {
	if this.callback == nil {
		return false
	}

	info := &ErrorInfo{attempt: attempt, cause: cause}
	this.callback.Invoke(info)
	return info.stop
}
func (this defaultExecutor) sleep(ctx context.Context) {
	timeoutCtx, timeoutCancel := context.WithTimeout(ctx, this.interval)
	defer timeoutCancel()
	<-timeoutCtx.Done()
}
