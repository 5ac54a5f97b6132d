package xerrors

import (
	"errors"
	"fmt"
)

// invalidStateError reports an operation which is not allowed in the current
// state of an execution or a cursor.
type invalidStateError struct {
	err error
}

func (e *invalidStateError) Error() string {
	return "invalid state: " + e.err.Error()
}

func (e *invalidStateError) Unwrap() error {
	return e.err
}

func InvalidState(err error) error {
	if err == nil {
		return nil
	}

	return WithStackTrace(&invalidStateError{err: err}, WithSkipDepth(1))
}

func InvalidStatef(format string, args ...interface{}) error {
	return WithStackTrace(&invalidStateError{err: fmt.Errorf(format, args...)}, WithSkipDepth(1))
}

func IsInvalidState(err error) bool {
	var e *invalidStateError

	return errors.As(err, &e)
}
