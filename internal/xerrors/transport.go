package xerrors

import (
	"errors"
	"fmt"

	"github.com/tsquery-platform/tsquery-go-sdk/internal/backoff"
	"github.com/tsquery-platform/tsquery-go-sdk/internal/xstring"
)

// transportError is a failure of the query service call itself. It is
// classified as transient (worth retrying) or permanent.
type transportError struct {
	code        string
	err         error
	transient   bool
	backoffType backoff.Type
}

func (e *transportError) Code() string {
	return e.code
}

func (e *transportError) Name() string {
	if e.code == "" {
		return "transport/UNKNOWN"
	}

	return "transport/" + e.code
}

func (e *transportError) Type() Type {
	if e.transient {
		return TypeRetryable
	}

	return TypeNonRetryable
}

func (e *transportError) BackoffType() backoff.Type {
	if !e.transient {
		return backoff.TypeNoBackoff
	}

	return e.backoffType
}

func (e *transportError) IsTransient() bool {
	return e.transient
}

func (e *transportError) Error() string {
	b := xstring.Buffer()
	defer b.Free()
	b.WriteString("transport error: ")
	if e.code != "" {
		b.WriteString(e.code)
	} else {
		b.WriteString("UNKNOWN")
	}
	if e.transient {
		b.WriteString(" (transient)")
	}
	if e.err != nil {
		fmt.Fprintf(b, ", source error = %q", e.err.Error())
	}

	return b.String()
}

func (e *transportError) Unwrap() error {
	return e.err
}

type transportOption func(te *transportError)

func WithCode(code string) transportOption {
	return func(te *transportError) {
		te.code = code
	}
}

// WithTransient marks error as retryable with fast backoff.
func WithTransient() transportOption {
	return func(te *transportError) {
		te.transient = true
		te.backoffType = backoff.TypeFast
	}
}

// WithThrottling marks error as retryable with slow backoff.
func WithThrottling() transportOption {
	return func(te *transportError) {
		te.transient = true
		te.backoffType = backoff.TypeSlow
	}
}

// Transport returns a new transport error with given options.
// An err already classified as transport error is returned as is.
func Transport(err error, opts ...transportOption) error {
	var t *transportError
	if errors.As(err, &t) {
		return err
	}
	te := &transportError{
		err: err,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(te)
		}
	}

	return WithStackTrace(te, WithSkipDepth(1))
}

// IsTransportError reports whether err is transportError with given codes
func IsTransportError(err error, codes ...string) bool {
	if err == nil {
		return false
	}
	var t *transportError
	if !errors.As(err, &t) {
		return false
	}
	if len(codes) == 0 {
		return true
	}
	for _, code := range codes {
		if t.code == code {
			return true
		}
	}

	return false
}

// IsTransient reports whether err is a transport error classified as transient
func IsTransient(err error) bool {
	var t *transportError

	return errors.As(err, &t) && t.transient
}

func TransportError(err error) Error {
	var t *transportError
	if errors.As(err, &t) {
		return t
	}

	return nil
}
