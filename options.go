package tsquery

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"

	"github.com/tsquery-platform/tsquery-go-sdk/internal/backoff"
	"github.com/tsquery-platform/tsquery-go-sdk/internal/query/config"
	"github.com/tsquery-platform/tsquery-go-sdk/internal/timestream"
	"github.com/tsquery-platform/tsquery-go-sdk/internal/xerrors"
	"github.com/tsquery-platform/tsquery-go-sdk/log"
	"github.com/tsquery-platform/tsquery-go-sdk/trace"
	"github.com/tsquery-platform/tsquery-go-sdk/transport"
)

// Option contains configuration values for Driver
type Option func(ctx context.Context, d *Driver) error

// WithTransport sets the client of the query service. It takes precedence
// over WithTimestreamClient.
func WithTransport(c transport.Client) Option {
	return func(ctx context.Context, d *Driver) error {
		d.transport = c

		return nil
	}
}

// WithTimestreamClient runs queries through api, usually *timestreamquery.Client
func WithTimestreamClient(api TimestreamAPI) Option {
	return func(ctx context.Context, d *Driver) error {
		d.timestreamAPI = api

		return nil
	}
}

// WithRegion defines AWS region for the timestream client made by Open
func WithRegion(region string) Option {
	return func(ctx context.Context, d *Driver) error {
		d.region = region

		return nil
	}
}

// WithRequestRate limits the rate of timestream API calls
func WithRequestRate(limit rate.Limit, burst int) Option {
	return func(ctx context.Context, d *Driver) error {
		d.timestreamOpts = append(d.timestreamOpts, timestream.WithRequestRate(limit, burst))

		return nil
	}
}

// WithPageSizeHint sets the default maximum number of rows per page
func WithPageSizeHint(size int) Option {
	return With(config.WithPageSizeHint(size))
}

// WithRetryAttempts limits calls of Submit and FetchPage including the first one
func WithRetryAttempts(attempts int) Option {
	return With(config.WithRetryAttempts(attempts))
}

// WithFastBackoff sets backoff for transient failures
func WithFastBackoff(b backoff.Backoff) Option {
	return With(config.WithFastBackoff(b))
}

// WithSlowBackoff sets backoff for throttled requests
func WithSlowBackoff(b backoff.Backoff) Option {
	return With(config.WithSlowBackoff(b))
}

func WithCancelTimeout(timeout time.Duration) Option {
	return With(config.WithCancelTimeout(timeout))
}

// WithRowsTimeout limits iteration over rows of an execution
func WithRowsTimeout(timeout time.Duration) Option {
	return With(config.WithRowsTimeout(timeout))
}

func WithClock(clock clockwork.Clock) Option {
	return With(config.WithClock(clock))
}

// WithLogger enables logging for query and retry events
func WithLogger(l log.Logger, details trace.Detailer, opts ...log.Option) Option {
	return func(ctx context.Context, d *Driver) error {
		d.logger = l
		d.loggerOpts = opts
		d.loggerDetails = details

		return nil
	}
}

// WithTraceQuery appends trace.Query into query traces
func WithTraceQuery(t trace.Query, opts ...trace.QueryComposeOption) Option { //nolint:gocritic
	return func(ctx context.Context, d *Driver) error {
		d.options = append(d.options,
			config.WithTrace(&t, append(
				[]trace.QueryComposeOption{
					trace.WithQueryPanicCallback(d.panicCallback),
				},
				opts...,
			)...),
		)

		return nil
	}
}

// WithTraceRetry appends trace.Retry into retry traces
func WithTraceRetry(t trace.Retry, opts ...trace.RetryComposeOption) Option {
	return func(ctx context.Context, d *Driver) error {
		d.options = append(d.options,
			config.WithRetryTrace(&t, append(
				[]trace.RetryComposeOption{
					trace.WithRetryPanicCallback(d.panicCallback),
				},
				opts...,
			)...),
		)

		return nil
	}
}

// WithPanicCallback specified behavior on panic in user trace callbacks.
// Option must be defined before trace options.
func WithPanicCallback(panicCallback func(e interface{})) Option {
	return func(ctx context.Context, d *Driver) error {
		d.panicCallback = panicCallback

		return nil
	}
}

// With collects additional configuration options.
func With(options ...config.Option) Option {
	return func(ctx context.Context, d *Driver) error {
		d.options = append(d.options, options...)

		return nil
	}
}

// MergeOptions concatenates provided options to one cumulative value.
func MergeOptions(opts ...Option) Option {
	return func(ctx context.Context, d *Driver) error {
		for _, o := range opts {
			if o != nil {
				if err := o(ctx, d); err != nil {
					return xerrors.WithStackTrace(err)
				}
			}
		}

		return nil
	}
}
