package config

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/tsquery-platform/tsquery-go-sdk/internal/backoff"
	"github.com/tsquery-platform/tsquery-go-sdk/trace"
)

const (
	DefaultRetryAttempts = 5
	DefaultCancelTimeout = 10 * time.Second
)

type Config struct {
	pageSizeHint  int
	retryAttempts int

	fastBackoff backoff.Backoff
	slowBackoff backoff.Backoff

	cancelTimeout time.Duration
	rowsTimeout   time.Duration

	trace      *trace.Query
	retryTrace *trace.Retry

	clock clockwork.Clock
}

func New(opts ...Option) *Config {
	c := defaults()
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	return c
}

func defaults() *Config {
	return &Config{
		retryAttempts: DefaultRetryAttempts,
		fastBackoff:   backoff.Fast,
		slowBackoff:   backoff.Slow,
		cancelTimeout: DefaultCancelTimeout,
		clock:         clockwork.NewRealClock(),
		trace:         &trace.Query{},
		retryTrace:    &trace.Retry{},
	}
}

// Trace defines trace over query executor calls
func (c *Config) Trace() *trace.Query {
	return c.trace
}

// RetryTrace defines trace over retries of transport calls
func (c *Config) RetryTrace() *trace.Retry {
	return c.retryTrace
}

// Clock defines clock
func (c *Config) Clock() clockwork.Clock {
	return c.clock
}

// PageSizeHint is the default maximum number of rows per page for queries
// without own hint. Zero means the service default.
func (c *Config) PageSizeHint() int {
	return c.pageSizeHint
}

// RetryAttempts is an upper bound of calls of Submit or FetchPage including the first one.
func (c *Config) RetryAttempts() int {
	return c.retryAttempts
}

func (c *Config) FastBackoff() backoff.Backoff {
	return c.fastBackoff
}

func (c *Config) SlowBackoff() backoff.Backoff {
	return c.slowBackoff
}

// CancelTimeout limits Cancel requests which are sent on behalf of the
// executor, e.g. when iteration deadline expires.
func (c *Config) CancelTimeout() time.Duration {
	return c.cancelTimeout
}

// RowsTimeout limits the whole iteration over rows. Zero means no limit
// except the deadline of the iteration context.
func (c *Config) RowsTimeout() time.Duration {
	return c.rowsTimeout
}
