package xerrors

import (
	"errors"
	"fmt"
)

// protocolError reports malformed or inconsistent page data received from
// the query service.
type protocolError struct {
	err error
}

func (e *protocolError) Error() string {
	return "protocol error: " + e.err.Error()
}

func (e *protocolError) Unwrap() error {
	return e.err
}

func Protocol(err error) error {
	if err == nil {
		return nil
	}

	return WithStackTrace(&protocolError{err: err}, WithSkipDepth(1))
}

func Protocolf(format string, args ...interface{}) error {
	return WithStackTrace(&protocolError{err: fmt.Errorf(format, args...)}, WithSkipDepth(1))
}

func IsProtocolError(err error) bool {
	var e *protocolError

	return errors.As(err, &e)
}
