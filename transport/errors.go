package transport

import (
	"github.com/tsquery-platform/tsquery-go-sdk/internal/xerrors"
)

// Transient classifies err as a temporary failure, e.g. timeout or
// unavailability. Transient failures are retried with fast backoff.
func Transient(err error, code string) error {
	return xerrors.Transport(err, xerrors.WithCode(code), xerrors.WithTransient())
}

// Throttled classifies err as a rate limit rejection. Throttled failures
// are retried with slow backoff.
func Throttled(err error, code string) error {
	return xerrors.Transport(err, xerrors.WithCode(code), xerrors.WithThrottling())
}

// Permanent classifies err as a failure which must not be retried.
func Permanent(err error, code string) error {
	return xerrors.Transport(err, xerrors.WithCode(code))
}
