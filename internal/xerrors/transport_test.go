package xerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsquery-platform/tsquery-go-sdk/internal/backoff"
)

func TestTransportClassification(t *testing.T) {
	cause := errors.New("connection reset")
	for _, tt := range []struct {
		name        string
		err         error
		transient   bool
		errType     Type
		backoffType backoff.Type
	}{
		{
			name:        "Transient",
			err:         Transport(cause, WithCode("Unavailable"), WithTransient()),
			transient:   true,
			errType:     TypeRetryable,
			backoffType: backoff.TypeFast,
		},
		{
			name:        "Throttling",
			err:         Transport(cause, WithCode("ThrottlingException"), WithThrottling()),
			transient:   true,
			errType:     TypeRetryable,
			backoffType: backoff.TypeSlow,
		},
		{
			name:        "Permanent",
			err:         Transport(cause, WithCode("ValidationException")),
			transient:   false,
			errType:     TypeNonRetryable,
			backoffType: backoff.TypeNoBackoff,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, IsTransportError(tt.err))
			require.Equal(t, tt.transient, IsTransient(tt.err))
			require.ErrorIs(t, tt.err, cause)
			_, errType, backoffType := Check(tt.err)
			require.Equal(t, tt.errType, errType)
			require.Equal(t, tt.backoffType, backoffType)
		})
	}
}

func TestIsTransportErrorCodes(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", Transport(errors.New("slow down"), WithCode("ThrottlingException"), WithThrottling()))
	require.True(t, IsTransportError(err, "ThrottlingException"))
	require.True(t, IsTransportError(err, "InternalServerException", "ThrottlingException"))
	require.False(t, IsTransportError(err, "ValidationException"))
	require.False(t, IsTransportError(errors.New("plain")))
	require.False(t, IsTransportError(nil))
}

func TestTransportKeepsFirstClassification(t *testing.T) {
	inner := Transport(errors.New("x"), WithCode("A"), WithTransient())
	outer := Transport(inner, WithCode("B"))
	require.True(t, IsTransient(outer))
	require.True(t, IsTransportError(outer, "A"))
	require.Equal(t, "A", TransportError(outer).Code())
}

func TestTransportErrorText(t *testing.T) {
	err := TransportError(Transport(errors.New("reset"), WithCode("Unavailable"), WithTransient()))
	require.Equal(t, `transport error: Unavailable (transient), source error = "reset"`, err.Error())
	require.Equal(t, "transport/Unavailable", err.Name())
}
