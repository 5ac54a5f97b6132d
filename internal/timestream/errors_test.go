package timestream

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/require"

	"github.com/tsquery-platform/tsquery-go-sdk/internal/backoff"
	"github.com/tsquery-platform/tsquery-go-sdk/internal/xerrors"
	"github.com/tsquery-platform/tsquery-go-sdk/internal/xtest"
)

func TestClassify(t *testing.T) {
	for _, tt := range []struct {
		name      string
		err       error
		transport bool
		code      string
		backoff   backoff.Type
	}{
		{
			name:      xtest.CurrentFileLine(),
			err:       &smithy.GenericAPIError{Code: "ThrottlingException", Fault: smithy.FaultClient},
			transport: true,
			code:      "ThrottlingException",
			backoff:   backoff.TypeSlow,
		},
		{
			name:      xtest.CurrentFileLine(),
			err:       &smithy.GenericAPIError{Code: "InternalServerException", Fault: smithy.FaultServer},
			transport: true,
			code:      "InternalServerException",
			backoff:   backoff.TypeFast,
		},
		{
			name:      xtest.CurrentFileLine(),
			err:       &smithy.GenericAPIError{Code: "SomethingNew", Fault: smithy.FaultServer},
			transport: true,
			code:      "SomethingNew",
			backoff:   backoff.TypeFast,
		},
		{
			name:      xtest.CurrentFileLine(),
			err:       fmt.Errorf("operation error: %w", &smithy.GenericAPIError{Code: "ValidationException"}),
			transport: true,
			code:      "ValidationException",
			backoff:   backoff.TypeNoBackoff,
		},
		{
			name:      xtest.CurrentFileLine(),
			err:       &smithy.GenericAPIError{Code: "AccessDeniedException", Fault: smithy.FaultClient},
			transport: true,
			code:      "AccessDeniedException",
			backoff:   backoff.TypeNoBackoff,
		},
		{
			name:      xtest.CurrentFileLine(),
			err:       &net.DNSError{Err: "i/o timeout", IsTimeout: true},
			transport: true,
			code:      "Timeout",
			backoff:   backoff.TypeFast,
		},
		{
			name:      xtest.CurrentFileLine(),
			err:       errors.New("unexpected"),
			transport: true,
			code:      codeUnknown,
			backoff:   backoff.TypeNoBackoff,
		},
		{
			name:    xtest.CurrentFileLine(),
			err:     &smithy.CanceledError{Err: context.Canceled},
			backoff: backoff.TypeNoBackoff,
		},
		{
			name:    xtest.CurrentFileLine(),
			err:     fmt.Errorf("request: %w", context.DeadlineExceeded),
			backoff: backoff.TypeNoBackoff,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			err := classify(tt.err)
			require.ErrorIs(t, err, tt.err)
			require.Equal(t, tt.transport, xerrors.IsTransportError(err), err)
			code, _, backoffType := xerrors.Check(err)
			require.Equal(t, tt.code, code)
			require.Equal(t, tt.backoff, backoffType)
		})
	}
}
