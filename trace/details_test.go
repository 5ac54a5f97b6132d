package trace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchDetails(t *testing.T) {
	for _, tt := range []struct {
		pattern string
		details Details
	}{
		{pattern: `^tsquery\.retry$`, details: RetryEvents},
		{pattern: `^tsquery\.query\.(submit|fetch)$`, details: QuerySubmitEvents | QueryFetchEvents},
		{pattern: `^tsquery\.query`, details: QueryEvents},
		{pattern: `nothing`, details: DetailsAll},
		{pattern: `(`, details: DetailsAll},
	} {
		t.Run(tt.pattern, func(t *testing.T) {
			require.Equal(t, tt.details, MatchDetails(tt.pattern))
		})
	}
	require.Equal(t, RetryEvents, MatchDetails("(", WithDefaultDetails(RetryEvents)))
}

func TestDetailsString(t *testing.T) {
	require.Equal(t, "tsquery.retry", RetryEvents.String())
	require.Equal(t, "tsquery.query.cancel|tsquery.query.fetch", (QueryFetchEvents | QueryCancelEvents).String())
}
