package stopafter

import "github.com/smarty/retry"

type callback struct {
	limit uint32
	seen  uint32
}

// New builds a callback which halts retrying once limit failures have been
// reported to it. A limit of zero never halts. Each instance counts across a
// single execution and must not be shared between executions.
func New(limit uint32) retry.ErrorCallback {
	return &callback{limit: limit}
}

func (this *callback) Invoke(info *retry.ErrorInfo) {
	this.seen++
	if this.limit > 0 && this.seen >= this.limit {
		info.StopRetrying()
	}
}
