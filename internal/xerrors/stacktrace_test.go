package xerrors

import (
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStackTraceError(t *testing.T) {
	const prefix = "github.com/tsquery-platform/tsquery-go-sdk/internal/xerrors.TestStackTraceError"
	for _, test := range []struct {
		error error
		re    string
	}{
		{
			error: WithStackTrace(fmt.Errorf("fmt.Errorf")),
			re:    "^fmt.Errorf at `" + regexp.QuoteMeta(prefix) + `\(stacktrace_test.go:\d+\)` + "`$",
		},
		{
			error: WithStackTrace(fmt.Errorf("fmt.Errorf %s", "Printf")),
			re:    "^fmt.Errorf Printf at `" + regexp.QuoteMeta(prefix) + `\(stacktrace_test.go:\d+\)` + "`$",
		},
		{
			error: WithStackTrace(
				WithStackTrace(errors.New("errors.New")),
			),
			re: "^errors.New at `" + regexp.QuoteMeta(prefix) + `\(stacktrace_test.go:\d+\)` + "` at `" +
				regexp.QuoteMeta(prefix) + `\(stacktrace_test.go:\d+\)` + "`$",
		},
	} {
		t.Run("", func(t *testing.T) {
			require.Regexp(t, test.re, test.error.Error())
		})
	}
}

func TestWithStackTraceNil(t *testing.T) {
	require.NoError(t, WithStackTrace(nil))
}

func TestWithStackTraceUnwrap(t *testing.T) {
	cause := errors.New("cause")
	require.ErrorIs(t, WithStackTrace(WithStackTrace(cause)), cause)
}
