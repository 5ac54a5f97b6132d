package tsquery

import (
	internalQuery "github.com/tsquery-platform/tsquery-go-sdk/internal/query"
	"github.com/tsquery-platform/tsquery-go-sdk/internal/xerrors"
)

var (
	// ErrCancelled is returned to row consumers of a cancelled execution
	ErrCancelled = internalQuery.ErrCancelled

	// ErrDeadlineExceeded is returned by rows iteration which ran out of time.
	// The execution is cancelled in that case.
	ErrDeadlineExceeded = xerrors.ErrDeadlineExceeded
)

// IsTransportError checks whether given err is a failure of the query
// service call. If codes not defined IsTransportError returns true on any
// transport error
func IsTransportError(err error, codes ...string) bool {
	return xerrors.IsTransportError(err, codes...)
}

// IsTransient reports whether err is a transport error worth retrying
func IsTransient(err error) bool {
	return xerrors.IsTransient(err)
}

// IsProtocolError reports whether the service answered with malformed data
func IsProtocolError(err error) bool {
	return xerrors.IsProtocolError(err)
}

// IsInvalidStateError reports whether an operation was called in a wrong
// state of the execution
func IsInvalidStateError(err error) bool {
	return xerrors.IsInvalidState(err)
}

func IsDeadlineExceeded(err error) bool {
	return xerrors.Is(err, ErrDeadlineExceeded)
}

// TransportError returns the code of a transport error
func TransportError(err error) (code string, ok bool) {
	if te := xerrors.TransportError(err); te != nil {
		return te.Code(), true
	}

	return "", false
}
