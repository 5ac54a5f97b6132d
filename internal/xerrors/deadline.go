package xerrors

import (
	"errors"
)

var ErrDeadlineExceeded = errors.New("deadline exceeded")

type deadlineError struct {
	err error
}

func (e *deadlineError) Error() string {
	if e.err == nil {
		return ErrDeadlineExceeded.Error()
	}

	return ErrDeadlineExceeded.Error() + ": " + e.err.Error()
}

func (e *deadlineError) Unwrap() []error {
	if e.err == nil {
		return []error{ErrDeadlineExceeded}
	}

	return []error{ErrDeadlineExceeded, e.err}
}

// DeadlineExceeded wraps cause into an error matching ErrDeadlineExceeded.
func DeadlineExceeded(cause error) error {
	return WithStackTrace(&deadlineError{err: cause}, WithSkipDepth(1))
}
