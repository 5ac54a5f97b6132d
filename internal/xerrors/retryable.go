package xerrors

import (
	"errors"
	"fmt"

	"github.com/tsquery-platform/tsquery-go-sdk/internal/backoff"
	"github.com/tsquery-platform/tsquery-go-sdk/internal/xstring"
)

type retryableError struct {
	name        string
	err         error
	backoffType backoff.Type
	code        string
}

func (re *retryableError) Code() string {
	return re.code
}

func (re *retryableError) Name() string {
	return "retryable/" + re.name
}

func (re *retryableError) Type() Type {
	return TypeRetryable
}

func (re *retryableError) BackoffType() backoff.Type {
	return re.backoffType
}

func (re *retryableError) Error() string {
	b := xstring.Buffer()
	defer b.Free()
	b.WriteString(re.Name())
	fmt.Fprintf(b, " (code = %q, source error = %q)", re.code, re.err.Error())

	return b.String()
}

func (re *retryableError) Unwrap() error {
	return re.err
}

type RetryableErrorOption func(re *retryableError)

func WithBackoff(t backoff.Type) RetryableErrorOption {
	return func(re *retryableError) {
		re.backoffType = t
	}
}

func WithName(name string) RetryableErrorOption {
	return func(re *retryableError) {
		re.name = name
	}
}

func Retryable(err error, opts ...RetryableErrorOption) error {
	var (
		e  Error
		re = &retryableError{
			err:         err,
			name:        "CUSTOM",
			backoffType: backoff.TypeFast,
		}
	)
	if As(err, &e) {
		re.backoffType = e.BackoffType()
		re.code = e.Code()
		re.name = e.Name()
	}
	for _, opt := range opts {
		if opt != nil {
			opt(re)
		}
	}

	return re
}

// RetryableError return Error if err is retriable error, else nil
func RetryableError(err error) Error {
	var e *retryableError
	if errors.As(err, &e) {
		return e
	}

	return nil
}
