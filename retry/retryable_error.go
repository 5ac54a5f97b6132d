package retry

import (
	"github.com/tsquery-platform/tsquery-go-sdk/internal/backoff"
	"github.com/tsquery-platform/tsquery-go-sdk/internal/xerrors"
)

type retryableErrorOption xerrors.RetryableErrorOption

const (
	TypeNoBackoff   = backoff.TypeNoBackoff
	TypeFastBackoff = backoff.TypeFast
	TypeSlowBackoff = backoff.TypeSlow
)

// WithBackoff makes retryable error option with custom backoff type
func WithBackoff(t backoff.Type) retryableErrorOption {
	return retryableErrorOption(xerrors.WithBackoff(t))
}

// WithName makes retryable error option with custom name
func WithName(name string) retryableErrorOption {
	return retryableErrorOption(xerrors.WithName(name))
}

// RetryableError makes retryable error from options
// RetryableError provides retrying on custom errors
func RetryableError(err error, opts ...retryableErrorOption) error {
	return xerrors.Retryable(
		err,
		func() (retryableErrorOptions []xerrors.RetryableErrorOption) {
			for _, opt := range opts {
				if opt != nil {
					retryableErrorOptions = append(retryableErrorOptions, xerrors.RetryableErrorOption(opt))
				}
			}

			return retryableErrorOptions
		}()...,
	)
}
