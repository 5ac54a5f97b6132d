package xcontext

import (
	"context"
	"time"
)

type valueOnlyContext struct{ context.Context }

func (valueOnlyContext) Deadline() (time.Time, bool) { return time.Time{}, false }

func (valueOnlyContext) Done() <-chan struct{} { return nil }

func (valueOnlyContext) Err() error { return nil }

// ValueOnly helps to clear parent context from deadlines/cancels
func ValueOnly(ctx context.Context) context.Context {
	return valueOnlyContext{ctx}
}

// WithDetachedTimeout returns a context that keeps values of ctx, ignores its
// cancellation and expires after timeout. Non-positive timeout means no expiration.
func WithDetachedTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ValueOnly(ctx))
	}

	return context.WithTimeout(ValueOnly(ctx), timeout)
}
