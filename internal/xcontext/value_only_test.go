package xcontext

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type ctxKey struct{}

func TestValueOnly(t *testing.T) {
	parent, cancel := context.WithCancel(context.WithValue(context.Background(), ctxKey{}, "v"))
	cancel()

	ctx := ValueOnly(parent)
	require.NoError(t, ctx.Err())
	require.Nil(t, ctx.Done())
	require.Equal(t, "v", ctx.Value(ctxKey{}))
	_, has := ctx.Deadline()
	require.False(t, has)
}

func TestWithDetachedTimeout(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	cancel()

	ctx, stop := WithDetachedTimeout(parent, time.Hour)
	defer stop()
	require.NoError(t, ctx.Err())
	deadline, has := ctx.Deadline()
	require.True(t, has)
	require.WithinDuration(t, time.Now().Add(time.Hour), deadline, time.Minute)

	ctx, stop = WithDetachedTimeout(parent, 0)
	require.NoError(t, ctx.Err())
	stop()
	require.ErrorIs(t, ctx.Err(), context.Canceled)
}
