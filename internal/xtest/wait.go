package xtest

import (
	"fmt"
	"runtime"
	"testing"
	"time"
)

// CurrentFileLine returns `file:line` of the caller, handy as a table test name.
func CurrentFileLine() string {
	_, file, line, _ := runtime.Caller(1)

	return fmt.Sprintf("%s:%d", file, line)
}

// WaitChannelClosed fails the test if ch is not closed within the common timeout.
func WaitChannelClosed(t testing.TB, ch <-chan struct{}) {
	t.Helper()

	WaitChannelClosedWithTimeout(t, ch, commonWaitTimeout)
}

func WaitChannelClosedWithTimeout(t testing.TB, ch <-chan struct{}, timeout time.Duration) {
	t.Helper()

	select {
	case <-ch:
	case <-time.After(timeout):
		t.Fatal("failed to wait channel closed")
	}
}
