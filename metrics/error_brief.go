package metrics

import (
	"context"
	"io"
	"net"

	"github.com/tsquery-platform/tsquery-go-sdk/internal/xerrors"
	"github.com/tsquery-platform/tsquery-go-sdk/internal/xstring"
)

func errorBrief(err error) string {
	if err == nil {
		return "OK"
	}
	if xerrors.Is(err, io.EOF) {
		return "io/EOF"
	}
	if netErr := (*net.OpError)(nil); xerrors.As(err, &netErr) {
		buffer := xstring.Buffer()
		defer buffer.Free()
		buffer.WriteString("network")
		if netErr.Op != "" {
			buffer.WriteByte('/')
			buffer.WriteString(netErr.Op)
		}
		if netErr.Err != nil {
			buffer.WriteByte('(')
			buffer.WriteString(errorBrief(netErr.Err))
			buffer.WriteByte(')')
		}

		return buffer.String()
	}
	if xerrors.Is(err, xerrors.ErrDeadlineExceeded) {
		return "deadline"
	}
	if xerrors.Is(err, context.DeadlineExceeded) {
		return "context/DeadlineExceeded"
	}
	if xerrors.Is(err, context.Canceled) {
		return "context/Canceled"
	}
	if xerrors.IsTransportError(err) {
		return xerrors.TransportError(err).Name()
	}
	if xerrors.IsProtocolError(err) {
		return "protocol"
	}
	if xerrors.IsInvalidState(err) {
		return "invalid_state"
	}
	if e := xerrors.Error(nil); xerrors.As(err, &e) {
		return e.Name()
	}

	return "unknown"
}
