package metrics

import (
	"github.com/tsquery-platform/tsquery-go-sdk"
)

func WithTraces(config Config) tsquery.Option {
	if config == nil {
		return nil
	}
	config = config.WithSystem("tsquery")

	return tsquery.MergeOptions(
		tsquery.WithTraceQuery(*queryTrace(config)),
		tsquery.WithTraceRetry(*retryTrace(config)),
	)
}
