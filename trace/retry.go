package trace

import (
	"context"
)

//go:generate gtrace

type (
	// Retry specified trace of retry operation activity.
	// gtrace:gen
	Retry struct {
		OnRetry        func(RetryLoopStartInfo) func(RetryLoopDoneInfo)
		OnRetryAttempt func(RetryAttemptInfo)
	}
	RetryLoopStartInfo struct {
		// Context make available context in trace callback function.
		// Pointer to context provide replacement of context in trace callback function.
		// Warning: concurrent access to pointer on client side must be excluded.
		// Safe replacement of context are provided only inside callback function
		Context *context.Context
		Call    call
		Label   string
	}
	RetryLoopDoneInfo struct {
		Attempts int
		Error    error
	}
	RetryAttemptInfo struct {
		Context context.Context
		Label   string
		Attempt int
		Code    string
		Error   error
	}
)
