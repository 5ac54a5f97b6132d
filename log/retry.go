package log

import (
	"context"
	"time"

	"github.com/tsquery-platform/tsquery-go-sdk/internal/xerrors"
	"github.com/tsquery-platform/tsquery-go-sdk/retry"
	"github.com/tsquery-platform/tsquery-go-sdk/trace"
)

// Retry returns trace.Retry with logging events from details
func Retry(l Logger, d trace.Detailer, opts ...Option) *trace.Retry {
	return internalRetry(wrapLogger(l, opts...), d)
}

func internalRetry(l Logger, d trace.Detailer) *trace.Retry {
	return &trace.Retry{
		OnRetry: func(info trace.RetryLoopStartInfo) func(trace.RetryLoopDoneInfo) {
			if d.Details()&trace.RetryEvents == 0 {
				return nil
			}
			ctx := with(*info.Context, TRACE, "tsquery", "retry")
			label := info.Label
			l.Log(ctx, "start",
				String("label", label),
			)
			start := time.Now()

			return func(info trace.RetryLoopDoneInfo) {
				if info.Error == nil {
					l.Log(ctx, "done",
						String("label", label),
						latencyField(start),
						Int("attempts", info.Attempts),
					)

					return
				}
				lvl := ERROR
				if xerrors.Is(info.Error, context.Canceled) {
					lvl = DEBUG
				}
				m := retry.Check(info.Error)
				l.Log(WithLevel(ctx, lvl), "failed",
					Error(info.Error),
					String("label", label),
					latencyField(start),
					Int("attempts", info.Attempts),
					Bool("retryable", m.MustRetry()),
					String("code", m.Code()),
				)
			}
		},
		OnRetryAttempt: func(info trace.RetryAttemptInfo) {
			if d.Details()&trace.RetryEvents == 0 {
				return
			}
			ctx := with(info.Context, DEBUG, "tsquery", "retry", "attempt")
			m := retry.Check(info.Error)
			l.Log(ctx, "attempt failed",
				Error(info.Error),
				String("label", info.Label),
				Int("attempt", info.Attempt),
				String("code", info.Code),
				Bool("retryable", m.MustRetry()),
				Stringer("backoff", m.BackoffType()),
			)
		},
	}
}
