package log

import (
	"time"

	"github.com/tsquery-platform/tsquery-go-sdk/internal/xerrors"
	"github.com/tsquery-platform/tsquery-go-sdk/query"
	"github.com/tsquery-platform/tsquery-go-sdk/trace"
)

// Query makes trace.Query with logging events from details.
func Query(l Logger, d trace.Detailer, opts ...Option) *trace.Query {
	return internalQuery(wrapLogger(l, opts...), d)
}

//nolint:funlen
func internalQuery(
	l *wrapper, //nolint:interfacer
	d trace.Detailer,
) *trace.Query {
	return &trace.Query{
		OnRun: func(info trace.QueryRunStartInfo) func(trace.QueryRunDoneInfo) {
			if d.Details()&trace.QueryRunEvents == 0 {
				return nil
			}
			ctx := with(*info.Context, TRACE, "tsquery", "query", "run")
			name := info.Name
			l.Log(ctx, "start",
				appendFieldByCondition(l.logQuery,
					String("query", info.Query),
					String("name", name),
				)...,
			)
			start := time.Now()

			return func(info trace.QueryRunDoneInfo) {
				if info.Error == nil {
					l.Log(WithLevel(ctx, DEBUG), "done",
						String("name", name),
						String("id", info.ExecutionID),
						latencyField(start),
					)

					return
				}
				l.Log(WithLevel(ctx, errorLevel(info.Error)), "failed",
					Error(info.Error),
					String("name", name),
					String("id", info.ExecutionID),
					latencyField(start),
				)
			}
		},
		OnSubmit: func(info trace.QuerySubmitStartInfo) func(trace.QuerySubmitDoneInfo) {
			if d.Details()&trace.QuerySubmitEvents == 0 {
				return nil
			}
			ctx := with(*info.Context, TRACE, "tsquery", "query", "submit")
			l.Log(ctx, "start",
				appendFieldByCondition(l.logQuery,
					String("query", info.Query),
					String("clientToken", info.ClientToken),
				)...,
			)
			start := time.Now()

			return func(info trace.QuerySubmitDoneInfo) {
				if info.Error == nil {
					l.Log(ctx, "done",
						String("id", info.ExecutionID),
						Int("rows", info.Rows),
						Bool("hasMore", info.HasMore),
						latencyField(start),
					)

					return
				}
				l.Log(WithLevel(ctx, errorLevel(info.Error)), "failed",
					Error(info.Error),
					latencyField(start),
				)
			}
		},
		OnFetchPage: func(info trace.QueryFetchPageStartInfo) func(trace.QueryFetchPageDoneInfo) {
			if d.Details()&trace.QueryFetchEvents == 0 {
				return nil
			}
			ctx := with(*info.Context, TRACE, "tsquery", "query", "fetch")
			id := info.ExecutionID
			page := info.Page
			l.Log(ctx, "start",
				String("id", id),
				Int("page", page),
			)
			start := time.Now()

			return func(info trace.QueryFetchPageDoneInfo) {
				if info.Error == nil {
					l.Log(ctx, "done",
						String("id", id),
						Int("page", page),
						Int("rows", info.Rows),
						Bool("hasMore", info.HasMore),
						latencyField(start),
					)

					return
				}
				l.Log(WithLevel(ctx, errorLevel(info.Error)), "failed",
					Error(info.Error),
					String("id", id),
					Int("page", page),
					latencyField(start),
				)
			}
		},
		OnCancel: func(info trace.QueryCancelStartInfo) func(trace.QueryCancelDoneInfo) {
			if d.Details()&trace.QueryCancelEvents == 0 {
				return nil
			}
			ctx := with(*info.Context, DEBUG, "tsquery", "query", "cancel")
			id := info.ExecutionID
			l.Log(ctx, "start",
				String("id", id),
			)
			start := time.Now()

			return func(info trace.QueryCancelDoneInfo) {
				if info.Error == nil {
					l.Log(WithLevel(ctx, INFO), "cancelled",
						String("id", id),
						latencyField(start),
					)

					return
				}
				l.Log(WithLevel(ctx, WARN), "could not cancel",
					Error(info.Error),
					String("id", id),
					latencyField(start),
				)
			}
		},
		OnStateChange: func(info trace.QueryStateChangeInfo) {
			if d.Details()&trace.QueryStateEvents == 0 {
				return
			}
			lvl := DEBUG
			if info.To == query.StateFailed {
				lvl = errorLevel(info.Error)
			}
			ctx := with(info.Context, lvl, "tsquery", "query", "state")
			fields := []Field{
				String("id", info.ExecutionID),
				String("name", info.Name),
				Stringer("from", info.From),
				Stringer("to", info.To),
			}
			l.Log(ctx, "changed",
				appendFieldByCondition(info.Error != nil, Error(info.Error), fields...)...,
			)
		},
	}
}

// errorLevel is ERROR for service failures and WARN for everything caused
// by the caller, e.g. expired deadline.
func errorLevel(err error) Level {
	if xerrors.IsTimeoutError(err) || xerrors.IsInvalidState(err) {
		return WARN
	}

	return ERROR
}
