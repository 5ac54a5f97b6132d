package config

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/tsquery-platform/tsquery-go-sdk/internal/backoff"
	"github.com/tsquery-platform/tsquery-go-sdk/trace"
)

type Option func(*Config)

// WithTrace appends query trace to early defined traces
func WithTrace(t *trace.Query, opts ...trace.QueryComposeOption) Option {
	return func(c *Config) {
		if t != nil {
			c.trace = c.trace.Compose(t, opts...)
		}
	}
}

// WithRetryTrace appends retry trace to early defined traces
func WithRetryTrace(t *trace.Retry, opts ...trace.RetryComposeOption) Option {
	return func(c *Config) {
		if t != nil {
			c.retryTrace = c.retryTrace.Compose(t, opts...)
		}
	}
}

// WithPageSizeHint defines default rows per page.
// Non-positive size means the service default.
func WithPageSizeHint(size int) Option {
	return func(c *Config) {
		if size > 0 {
			c.pageSizeHint = size
		} else {
			c.pageSizeHint = 0
		}
	}
}

// WithRetryAttempts limits calls of Submit and FetchPage.
// If attempts is less than or equal to zero then DefaultRetryAttempts is used.
func WithRetryAttempts(attempts int) Option {
	return func(c *Config) {
		if attempts > 0 {
			c.retryAttempts = attempts
		} else {
			c.retryAttempts = DefaultRetryAttempts
		}
	}
}

func WithFastBackoff(b backoff.Backoff) Option {
	return func(c *Config) {
		if b != nil {
			c.fastBackoff = b
		}
	}
}

func WithSlowBackoff(b backoff.Backoff) Option {
	return func(c *Config) {
		if b != nil {
			c.slowBackoff = b
		}
	}
}

// WithCancelTimeout limits Cancel requests sent by the executor itself.
// Non-positive timeout means no limit.
func WithCancelTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.cancelTimeout = max(0, timeout)
	}
}

// WithRowsTimeout limits iteration over rows. Non-positive timeout means no limit.
func WithRowsTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.rowsTimeout = max(0, timeout)
	}
}

// WithClock replaces clock used for backoff waits
func WithClock(clock clockwork.Clock) Option {
	return func(c *Config) {
		if clock != nil {
			c.clock = clock
		}
	}
}
