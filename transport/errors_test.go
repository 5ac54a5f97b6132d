package transport

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsquery-platform/tsquery-go-sdk/internal/backoff"
	"github.com/tsquery-platform/tsquery-go-sdk/internal/xerrors"
)

func TestClassification(t *testing.T) {
	cause := errors.New("cause")
	for _, tt := range []struct {
		name        string
		err         error
		errType     xerrors.Type
		backoffType backoff.Type
	}{
		{name: "Transient", err: Transient(cause, "Unavailable"), errType: xerrors.TypeRetryable, backoffType: backoff.TypeFast},
		{name: "Throttled", err: Throttled(cause, "ThrottlingException"), errType: xerrors.TypeRetryable, backoffType: backoff.TypeSlow},
		{name: "Permanent", err: Permanent(cause, "ValidationException"), errType: xerrors.TypeNonRetryable, backoffType: backoff.TypeNoBackoff},
	} {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, xerrors.IsTransportError(tt.err))
			require.ErrorIs(t, tt.err, cause)
			_, errType, backoffType := xerrors.Check(tt.err)
			require.Equal(t, tt.errType, errType)
			require.Equal(t, tt.backoffType, backoffType)
		})
	}
}

func TestPageHasMore(t *testing.T) {
	var p *Page
	require.False(t, p.HasMore())
	require.False(t, (&Page{}).HasMore())
	require.True(t, (&Page{NextToken: "t"}).HasMore())
}
