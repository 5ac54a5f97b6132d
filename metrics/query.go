package metrics

import (
	"time"

	"github.com/tsquery-platform/tsquery-go-sdk/query"
	"github.com/tsquery-platform/tsquery-go-sdk/trace"
)

func queryLabel(name string) string {
	if name == "" {
		return "adhoc"
	}

	return name
}

//nolint:funlen
func queryTrace(config Config) *trace.Query {
	config = config.WithSystem("query")
	runs := config.WithSystem("run").CounterVec("total", "status", "query")
	runLatency := config.WithSystem("run").TimerVec("latency", "query")
	submits := config.WithSystem("submit").CounterVec("total", "status")
	pages := config.WithSystem("fetch").CounterVec("pages", "status")
	rows := config.WithSystem("fetch").HistogramVec("rows", []float64{0, 1, 10, 100, 1000, 10000}, "status")
	fetchLatency := config.WithSystem("fetch").TimerVec("latency")
	cancels := config.WithSystem("cancel").CounterVec("total", "status")
	executions := config.GaugeVec("executions", "state")
	finished := config.CounterVec("finished", "state", "query")

	return &trace.Query{
		OnRun: func(info trace.QueryRunStartInfo) func(trace.QueryRunDoneInfo) {
			if config.Details()&trace.QueryRunEvents == 0 {
				return nil
			}
			label := queryLabel(info.Name)
			start := time.Now()

			return func(info trace.QueryRunDoneInfo) {
				runs.With(map[string]string{
					"status": errorBrief(info.Error),
					"query":  label,
				}).Inc()
				runLatency.With(map[string]string{
					"query": label,
				}).Record(time.Since(start))
			}
		},
		OnSubmit: func(info trace.QuerySubmitStartInfo) func(trace.QuerySubmitDoneInfo) {
			if config.Details()&trace.QuerySubmitEvents == 0 {
				return nil
			}

			return func(info trace.QuerySubmitDoneInfo) {
				submits.With(map[string]string{
					"status": errorBrief(info.Error),
				}).Inc()
				if info.Error == nil {
					rows.With(map[string]string{
						"status": errorBrief(nil),
					}).Record(float64(info.Rows))
				}
			}
		},
		OnFetchPage: func(info trace.QueryFetchPageStartInfo) func(trace.QueryFetchPageDoneInfo) {
			if config.Details()&trace.QueryFetchEvents == 0 {
				return nil
			}
			start := time.Now()

			return func(info trace.QueryFetchPageDoneInfo) {
				status := errorBrief(info.Error)
				pages.With(map[string]string{
					"status": status,
				}).Inc()
				rows.With(map[string]string{
					"status": status,
				}).Record(float64(info.Rows))
				fetchLatency.With(nil).Record(time.Since(start))
			}
		},
		OnCancel: func(info trace.QueryCancelStartInfo) func(trace.QueryCancelDoneInfo) {
			if config.Details()&trace.QueryCancelEvents == 0 {
				return nil
			}

			return func(info trace.QueryCancelDoneInfo) {
				cancels.With(map[string]string{
					"status": errorBrief(info.Error),
				}).Inc()
			}
		},
		OnStateChange: func(info trace.QueryStateChangeInfo) {
			if config.Details()&trace.QueryStateEvents == 0 {
				return
			}
			if info.From != query.StateCreated {
				executions.With(map[string]string{
					"state": info.From.String(),
				}).Add(-1)
			}
			if info.To.IsTerminal() {
				finished.With(map[string]string{
					"state": info.To.String(),
					"query": queryLabel(info.Name),
				}).Inc()

				return
			}
			executions.With(map[string]string{
				"state": info.To.String(),
			}).Add(1)
		},
	}
}
