package retry

import (
	"testing"
	"time"

	"github.com/smarty/assertions/should"
	"github.com/smarty/gunit"
)

func TestConfigFixture(t *testing.T) {
	gunit.Run(new(ConfigFixture), t)
}

type ConfigFixture struct {
	*gunit.Fixture
}

func (this *ConfigFixture) TestDefaultConfiguration() {
	executor := New().(defaultExecutor)

	this.So(executor.retryCount, should.Equal, 3)
	this.So(executor.interval, should.Equal, time.Second)
	this.So(executor.callback, should.BeNil)
	this.So(executor.logger, should.Equal, nop{})
	this.So(executor.monitor, should.Equal, nop{})
}

func (this *ConfigFixture) TestOptionsOverrideDefaults() {
	executor := New(
		Options.MaxRetries(8),
		Options.Interval(time.Minute),
		Options.ErrorCallback(this),
		Options.Logger(this),
		Options.Monitor(this),
	).(defaultExecutor)

	this.So(executor.retryCount, should.Equal, 8)
	this.So(executor.interval, should.Equal, time.Minute)
	this.So(executor.callback, should.Equal, this)
	this.So(executor.logger, should.Equal, this)
	this.So(executor.monitor, should.Equal, this)
}

////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////

func (this *ConfigFixture) Invoke(_ *ErrorInfo) {}

func (this *ConfigFixture) Printf(_ string, _ ...any) {}

func (this *ConfigFixture) AttemptCompleted(_ int, _ error) {}
