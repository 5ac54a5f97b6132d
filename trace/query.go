package trace

import (
	"context"

	"github.com/tsquery-platform/tsquery-go-sdk/query"
)

//go:generate gtrace

type (
	// Query specified trace of query execution activity.
	// gtrace:gen
	Query struct {
		OnRun         func(QueryRunStartInfo) func(QueryRunDoneInfo)
		OnSubmit      func(QuerySubmitStartInfo) func(QuerySubmitDoneInfo)
		OnFetchPage   func(QueryFetchPageStartInfo) func(QueryFetchPageDoneInfo)
		OnCancel      func(QueryCancelStartInfo) func(QueryCancelDoneInfo)
		OnStateChange func(QueryStateChangeInfo)
	}

	QueryRunStartInfo struct {
		// Context make available context in trace callback function.
		// Pointer to context provide replacement of context in trace callback function.
		// Warning: concurrent access to pointer on client side must be excluded.
		// Safe replacement of context are provided only inside callback function
		Context *context.Context
		Call    call
		Query   string
		Name    string
	}
	QueryRunDoneInfo struct {
		ExecutionID string
		Error       error
	}
	QuerySubmitStartInfo struct {
		Context     *context.Context
		Call        call
		Query       string
		ClientToken string
	}
	QuerySubmitDoneInfo struct {
		ExecutionID string
		Rows        int
		HasMore     bool
		Error       error
	}
	QueryFetchPageStartInfo struct {
		Context     *context.Context
		Call        call
		ExecutionID string
		// Page is a sequence number of the page, the first page comes with submission.
		Page int
	}
	QueryFetchPageDoneInfo struct {
		Rows    int
		HasMore bool
		Error   error
	}
	QueryCancelStartInfo struct {
		Context     *context.Context
		Call        call
		ExecutionID string
	}
	QueryCancelDoneInfo struct {
		Error error
	}
	QueryStateChangeInfo struct {
		Context     context.Context
		ExecutionID string
		Name        string
		From        query.State
		To          query.State
		Error       error
	}
)
