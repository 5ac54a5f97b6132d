package retry

import (
	"context"

	"github.com/jonboulle/clockwork"

	"github.com/tsquery-platform/tsquery-go-sdk/internal/backoff"
	"github.com/tsquery-platform/tsquery-go-sdk/internal/stack"
	"github.com/tsquery-platform/tsquery-go-sdk/internal/wait"
	"github.com/tsquery-platform/tsquery-go-sdk/internal/xerrors"
	"github.com/tsquery-platform/tsquery-go-sdk/trace"
)

// retryOperation is the interface that holds an operation for retry.
// if retryOperation returns not nil - operation will retry
// if retryOperation returns nil - retry loop will break
type retryOperation func(context.Context) (err error)

type retryOptions struct {
	label       string
	call        stack.Caller
	trace       *trace.Retry
	attempts    int
	fastBackoff backoff.Backoff
	slowBackoff backoff.Backoff
	clock       clockwork.Clock

	panicCallback func(e interface{})
}

type Option func(o *retryOptions)

// WithLabel applies label for identification call Retry in trace.Retry
func WithLabel(label string) Option {
	return func(o *retryOptions) {
		o.label = label
	}
}

// WithTrace appends trace to retry loop
func WithTrace(t *trace.Retry) Option {
	return func(o *retryOptions) {
		if t != nil {
			o.trace = o.trace.Compose(t)
		}
	}
}

// WithAttempts limits the total number of op calls. Zero means no limit,
// so the loop runs until success, non-retryable error or ctx expiration.
func WithAttempts(attempts int) Option {
	return func(o *retryOptions) {
		if attempts >= 0 {
			o.attempts = attempts
		}
	}
}

// WithFastBackoff replaces default fast backoff
func WithFastBackoff(b backoff.Backoff) Option {
	return func(o *retryOptions) {
		if b != nil {
			o.fastBackoff = b
		}
	}
}

// WithSlowBackoff replaces default slow backoff
func WithSlowBackoff(b backoff.Backoff) Option {
	return func(o *retryOptions) {
		if b != nil {
			o.slowBackoff = b
		}
	}
}

func WithClock(clock clockwork.Clock) Option {
	return func(o *retryOptions) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithPanicCallback returns panic callback option
// If not defined - panic would not intercept with driver
func WithPanicCallback(panicCallback func(e interface{})) Option {
	return func(o *retryOptions) {
		o.panicCallback = panicCallback
	}
}

// Retry provide the best effort fo retrying operation
//
// Retry implements internal busy loop until one of the following conditions is met:
//
// - context was canceled or deadlined
//
// - retry operation returned nil as error
//
// - retry operation returned non-retryable error
//
// - attempts limit was reached
//
// If you need to retry your op func on some logic errors - you must return RetryableError() from retryOperation
func Retry(ctx context.Context, op retryOperation, opts ...Option) (finalErr error) {
	options := &retryOptions{
		call:        stack.FunctionID(""),
		trace:       &trace.Retry{},
		fastBackoff: backoff.Fast,
		slowBackoff: backoff.Slow,
		clock:       clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(options)
		}
	}
	var (
		i        int
		attempts int
		lastErr  error

		code   = ""
		onDone = trace.RetryOnRetry(options.trace, &ctx, options.call, options.label)
	)
	defer func() {
		onDone(attempts, finalErr)
	}()
	for {
		i++
		select {
		case <-ctx.Done():
			return xerrors.WithStackTrace(xerrors.Join(ctx.Err(), lastErr))

		default:
			attempts++
			err := opWithRecover(ctx, options, op)
			if err == nil {
				return nil
			}
			lastErr = err

			m := Check(err)

			if m.Code() != code {
				i = 0
			}

			trace.RetryOnRetryAttempt(options.trace, ctx, options.label, attempts, m.Code(), err)

			if !m.MustRetry() {
				return xerrors.WithStackTrace(err)
			}

			if options.attempts > 0 && attempts >= options.attempts {
				return xerrors.WithStackTrace(err)
			}

			if e := wait.Wait(ctx, options.clock, options.fastBackoff, options.slowBackoff, m.BackoffType(), i); e != nil {
				return xerrors.WithStackTrace(xerrors.Join(err, e))
			}

			code = m.Code()
		}
	}
}

func opWithRecover(ctx context.Context, options *retryOptions, op retryOperation) (err error) {
	if options.panicCallback != nil {
		defer func() {
			if e := recover(); e != nil {
				options.panicCallback(e)
				err = xerrors.WithStackTrace(errPanic)
			}
		}()
	}

	return op(ctx)
}
