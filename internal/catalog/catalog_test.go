package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	list := List()
	require.Len(t, list, 14)

	names := make(map[string]struct{}, len(list))
	for _, e := range list {
		require.NotEmpty(t, e.Description, e.Name)
		_, dup := names[e.Name]
		require.False(t, dup, e.Name)
		names[e.Name] = struct{}{}

		text, err := e.Render(DefaultParams())
		require.NoError(t, err, e.Name)
		require.Contains(t, text, `"`+DefaultDatabase+`"."`+DefaultTable+`"`, e.Name)
		require.NotContains(t, text, "{{", e.Name)
		require.NotContains(t, text, "\n", e.Name)
	}
}

func TestAnalytic(t *testing.T) {
	queries, err := Analytic(DefaultParams())
	require.NoError(t, err)
	require.Len(t, queries, 12)
	require.Equal(t, "cpu-percentiles", queries[0].Name())
	require.Equal(t, "cpu-average", queries[11].Name())
	for _, q := range queries {
		require.True(t, strings.HasPrefix(q.Text(), "SELECT") || strings.HasPrefix(q.Text(), "WITH"), q.Text())
	}
}

func TestLookup(t *testing.T) {
	e, err := Lookup("select-all-limit")
	require.NoError(t, err)

	p := DefaultParams()
	p.Limit = 25
	q, err := e.Query(p)
	require.NoError(t, err)
	require.Equal(t, "select-all-limit", q.Name())
	require.Equal(t, `SELECT * FROM "`+DefaultDatabase+`"."`+DefaultTable+`" LIMIT 25`, q.Text())

	e, err = Lookup("cpu-binned")
	require.NoError(t, err)
	p.Hostname = "host-1"
	text, err := e.Render(p)
	require.NoError(t, err)
	require.Contains(t, text, "hostname = 'host-1'")

	_, err = Lookup("nope")
	require.ErrorIs(t, err, errUnknownQuery)

	_, err = e.Render(Params{})
	require.ErrorIs(t, err, errNoTable)
}
