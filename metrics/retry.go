package metrics

import (
	"time"

	"github.com/tsquery-platform/tsquery-go-sdk/trace"
)

func retryTrace(config Config) *trace.Retry {
	config = config.WithSystem("retry")
	errs := config.CounterVec("errors", "status", "retry_label", "final")
	attempts := config.HistogramVec("attempts", []float64{0, 1, 2, 3, 4, 5, 7, 10}, "retry_label")
	latency := config.TimerVec("latency", "retry_label")

	return &trace.Retry{
		OnRetry: func(info trace.RetryLoopStartInfo) func(trace.RetryLoopDoneInfo) {
			label := info.Label
			if label == "" || config.Details()&trace.RetryEvents == 0 {
				return nil
			}
			start := time.Now()

			return func(info trace.RetryLoopDoneInfo) {
				attempts.With(map[string]string{
					"retry_label": label,
				}).Record(float64(info.Attempts))
				errs.With(map[string]string{
					"status":      errorBrief(info.Error),
					"retry_label": label,
					"final":       "true",
				}).Inc()
				latency.With(map[string]string{
					"retry_label": label,
				}).Record(time.Since(start))
			}
		},
		OnRetryAttempt: func(info trace.RetryAttemptInfo) {
			if info.Label == "" || config.Details()&trace.RetryEvents == 0 {
				return
			}
			errs.With(map[string]string{
				"status":      errorBrief(info.Error),
				"retry_label": info.Label,
				"final":       "false",
			}).Inc()
		},
	}
}
