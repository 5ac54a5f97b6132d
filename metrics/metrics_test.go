package metrics

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/tsquery-platform/tsquery-go-sdk/internal/stack"
	"github.com/tsquery-platform/tsquery-go-sdk/internal/xerrors"
	"github.com/tsquery-platform/tsquery-go-sdk/query"
	"github.com/tsquery-platform/tsquery-go-sdk/trace"
	"github.com/tsquery-platform/tsquery-go-sdk/transport"
)

func TestQueryTrace(t *testing.T) {
	registry := prometheus.NewRegistry()
	config := Prometheus(registry, "test", trace.DetailsAll)
	tr := queryTrace(config)

	ctx := context.Background()
	trace.QueryOnRun(tr, &ctx, stack.FunctionID(""), "SELECT 1", "cpu")("q1", nil)
	trace.QueryOnSubmit(tr, &ctx, stack.FunctionID(""), "SELECT 1", "token")("q1", 100, true, nil)
	trace.QueryOnFetchPage(tr, &ctx, stack.FunctionID(""), "q1", 2)(37, false, nil)
	trace.QueryOnFetchPage(tr, &ctx, stack.FunctionID(""), "q1", 3)(0, false,
		transport.Transient(errors.New("unavailable"), "InternalServerException"),
	)
	trace.QueryOnStateChange(tr, ctx, "q1", "cpu", query.StateCreated, query.StateSubmitted, nil)
	trace.QueryOnStateChange(tr, ctx, "q1", "cpu", query.StateSubmitted, query.StateRunning, nil)
	trace.QueryOnStateChange(tr, ctx, "q1", "cpu", query.StateRunning, query.StateSucceeded, nil)

	require.InDelta(t, 1, testutil.ToFloat64(
		config.WithSystem("query").WithSystem("run").CounterVec("total", "status", "query").(*counterVec).
			vec.WithLabelValues("OK", "cpu"),
	), 0)
	require.InDelta(t, 1, testutil.ToFloat64(
		config.WithSystem("query").WithSystem("fetch").CounterVec("pages", "status").(*counterVec).
			vec.WithLabelValues("transport/InternalServerException"),
	), 0)
	require.InDelta(t, 0, testutil.ToFloat64(
		config.WithSystem("query").GaugeVec("executions", "state").(*gaugeVec).
			vec.WithLabelValues(query.StateRunning.String()),
	), 0)
	require.InDelta(t, 1, testutil.ToFloat64(
		config.WithSystem("query").CounterVec("finished", "state", "query").(*counterVec).
			vec.WithLabelValues(query.StateSucceeded.String(), "cpu"),
	), 0)

	// OK and failed pages
	n, err := testutil.GatherAndCount(registry, "test_query_fetch_rows")
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestRetryTrace(t *testing.T) {
	registry := prometheus.NewRegistry()
	config := Prometheus(registry, "test", trace.RetryEvents)
	tr := retryTrace(config)

	ctx := context.Background()
	onDone := trace.RetryOnRetry(tr, &ctx, stack.FunctionID(""), "fetch")
	trace.RetryOnRetryAttempt(tr, ctx, "fetch", 1, "ThrottlingException",
		transport.Throttled(errors.New("slow down"), "ThrottlingException"),
	)
	onDone(2, nil)

	errs := config.WithSystem("retry").CounterVec("errors", "status", "retry_label", "final").(*counterVec).vec
	require.InDelta(t, 1, testutil.ToFloat64(errs.WithLabelValues("transport/ThrottlingException", "fetch", "false")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(errs.WithLabelValues("OK", "fetch", "true")), 0)
}

func TestDetailsFilter(t *testing.T) {
	registry := prometheus.NewRegistry()
	tr := queryTrace(Prometheus(registry, "test", trace.RetryEvents))

	ctx := context.Background()
	trace.QueryOnRun(tr, &ctx, stack.FunctionID(""), "SELECT 1", "")("q1", nil)

	n, err := testutil.GatherAndCount(registry, "test_query_run_total")
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestErrorBrief(t *testing.T) {
	for _, tt := range []struct {
		err   error
		brief string
	}{
		{nil, "OK"},
		{context.Canceled, "context/Canceled"},
		{xerrors.DeadlineExceeded(context.DeadlineExceeded), "deadline"},
		{transport.Permanent(errors.New("denied"), "AccessDeniedException"), "transport/AccessDeniedException"},
		{xerrors.Protocolf("bad page"), "protocol"},
		{xerrors.InvalidStatef("exhausted"), "invalid_state"},
		{xerrors.Retryable(errors.New("again")), "CUSTOM"},
		{errors.New("other"), "unknown"},
	} {
		t.Run(tt.brief, func(t *testing.T) {
			require.Equal(t, tt.brief, errorBrief(tt.err))
		})
	}
}
