package multi

import "github.com/smarty/retry"

type callback []retry.ErrorCallback

func New(callbacks ...retry.ErrorCallback) retry.ErrorCallback {
	return callback(callbacks)
}

func (this callback) Invoke(info *retry.ErrorInfo) {
	for _, callback := range this {
		callback.Invoke(info)
	}
}
