package wait

import (
	"context"

	"github.com/jonboulle/clockwork"

	"github.com/tsquery-platform/tsquery-go-sdk/internal/backoff"
	"github.com/tsquery-platform/tsquery-go-sdk/internal/xerrors"
)

// waitBackoff waits for i-th delay of b or ctx expiration.
// It returns non-nil error if and only if deadline expiration branch wins.
func waitBackoff(ctx context.Context, clock clockwork.Clock, b backoff.Backoff, i int) error {
	if err := ctx.Err(); err != nil {
		return xerrors.WithStackTrace(err)
	}
	timer := clock.NewTimer(b.Delay(i))
	defer timer.Stop()

	select {
	case <-timer.Chan():
		return nil
	case <-ctx.Done():
		return xerrors.WithStackTrace(ctx.Err())
	}
}

func Wait(
	ctx context.Context,
	clock clockwork.Clock,
	fastBackoff backoff.Backoff,
	slowBackoff backoff.Backoff,
	t backoff.Type,
	i int,
) error {
	var b backoff.Backoff
	switch t {
	case backoff.TypeFast:
		b = fastBackoff
	case backoff.TypeSlow:
		b = slowBackoff
	default:
		return nil
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return waitBackoff(ctx, clock, b, i)
}
