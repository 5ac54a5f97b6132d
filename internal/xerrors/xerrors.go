package xerrors

import (
	"context"
	"errors"
	"io"

	"github.com/tsquery-platform/tsquery-go-sdk/internal/backoff"
)

// Error is an interface of error which reports about error code and error name.
type Error interface {
	error

	Code() string
	Name() string
	Type() Type
	BackoffType() backoff.Type
}

func IsTimeoutError(err error) bool {
	return Is(err,
		context.DeadlineExceeded,
		ErrDeadlineExceeded,
	)
}

func HideEOF(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) {
		return nil
	}

	return err
}

// As is a proxy to errors.As
// This need to single import errors
func As(err error, targets ...interface{}) (ok bool) {
	if err == nil {
		return false
	}
	for _, t := range targets {
		if errors.As(err, t) {
			if !ok {
				ok = true
			}
		}
	}

	return ok
}

// Is is a improved proxy to errors.Is
// This need to single import errors
func Is(err error, targets ...error) bool {
	if len(targets) == 0 {
		panic("empty targets")
	}
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
