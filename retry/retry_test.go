package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tsquery-platform/tsquery-go-sdk/internal/backoff"
	"github.com/tsquery-platform/tsquery-go-sdk/internal/xerrors"
	"github.com/tsquery-platform/tsquery-go-sdk/internal/xtest"
	"github.com/tsquery-platform/tsquery-go-sdk/trace"
)

var tinyBackoff = backoff.New(backoff.WithSlotDuration(time.Microsecond), backoff.WithCeiling(1))

func TestRetryTransientUntilSuccess(t *testing.T) {
	ctx := xtest.Context(t)
	calls := 0
	err := Retry(ctx, func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return xerrors.Transport(errors.New("unavailable"), xerrors.WithCode("Unavailable"), xerrors.WithTransient())
		}

		return nil
	}, WithFastBackoff(tinyBackoff), WithAttempts(5))
	require.NoError(t, err)
	require.Equal(t, 3, calls)
}

func TestRetryAttemptsLimit(t *testing.T) {
	ctx := xtest.Context(t)
	calls := 0
	var (
		attempts []int
		done     trace.RetryLoopDoneInfo
	)
	err := Retry(ctx, func(ctx context.Context) error {
		calls++

		return xerrors.Transport(errors.New("slow down"), xerrors.WithCode("ThrottlingException"), xerrors.WithThrottling())
	},
		WithSlowBackoff(tinyBackoff),
		WithAttempts(5),
		WithTrace(&trace.Retry{
			OnRetry: func(trace.RetryLoopStartInfo) func(trace.RetryLoopDoneInfo) {
				return func(info trace.RetryLoopDoneInfo) {
					done = info
				}
			},
			OnRetryAttempt: func(info trace.RetryAttemptInfo) {
				attempts = append(attempts, info.Attempt)
			},
		}),
	)
	require.Error(t, err)
	require.True(t, xerrors.IsTransportError(err, "ThrottlingException"))
	require.Equal(t, 5, calls)
	require.Equal(t, []int{1, 2, 3, 4, 5}, attempts)
	require.Equal(t, 5, done.Attempts)
	require.Equal(t, err, done.Error)
}

func TestRetryPermanentSurfacesImmediately(t *testing.T) {
	ctx := xtest.Context(t)
	calls := 0
	err := Retry(ctx, func(ctx context.Context) error {
		calls++

		return xerrors.Transport(errors.New("bad query"), xerrors.WithCode("ValidationException"))
	}, WithFastBackoff(tinyBackoff), WithAttempts(5))
	require.Error(t, err)
	require.Equal(t, 1, calls)
}

func TestRetryContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(xtest.Context(t))
	cause := errors.New("unavailable")
	calls := 0
	err := Retry(ctx, func(ctx context.Context) error {
		calls++
		cancel()

		return xerrors.Transport(cause, xerrors.WithTransient())
	}, WithFastBackoff(backoff.New(backoff.WithSlotDuration(time.Hour))))
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, err, cause)
	require.Equal(t, 1, calls)
}

func TestRetryableError(t *testing.T) {
	ctx := xtest.Context(t)
	calls := 0
	err := Retry(ctx, func(ctx context.Context) error {
		calls++
		if calls == 1 {
			return RetryableError(errors.New("custom"), WithBackoff(TypeFastBackoff), WithName("CUSTOM"))
		}

		return nil
	}, WithFastBackoff(tinyBackoff))
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

func TestRetryPanicCallback(t *testing.T) {
	var recovered interface{}
	err := Retry(xtest.Context(t), func(ctx context.Context) error {
		panic("boom")
	}, WithPanicCallback(func(e interface{}) {
		recovered = e
	}))
	require.ErrorIs(t, err, errPanic)
	require.Equal(t, "boom", recovered)
}

func TestCheck(t *testing.T) {
	for _, tt := range []struct {
		name        string
		err         error
		mustRetry   bool
		backoffType backoff.Type
	}{
		{name: "Nil", err: nil, mustRetry: false, backoffType: backoff.TypeNoBackoff},
		{name: "Plain", err: errors.New("x"), mustRetry: false, backoffType: backoff.TypeNoBackoff},
		{name: "Transient", err: xerrors.Transport(errors.New("x"), xerrors.WithTransient()), mustRetry: true, backoffType: backoff.TypeFast},
		{name: "Throttling", err: xerrors.Transport(errors.New("x"), xerrors.WithThrottling()), mustRetry: true, backoffType: backoff.TypeSlow},
		{name: "Protocol", err: xerrors.Protocolf("bad page"), mustRetry: false, backoffType: backoff.TypeNoBackoff},
	} {
		t.Run(tt.name, func(t *testing.T) {
			m := Check(tt.err)
			require.Equal(t, tt.mustRetry, m.MustRetry())
			require.Equal(t, tt.backoffType, m.BackoffType())
		})
	}
}
