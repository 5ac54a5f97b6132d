package query

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsquery-platform/tsquery-go-sdk/types"
)

func TestRow(t *testing.T) {
	columns := []types.Column{
		{Name: "hostname", Type: types.TypeString},
		{Name: "avg_cpu", Type: types.TypeDouble},
	}
	row := NewRow(columns, []types.Value{types.StringValue("host-24Gju"), types.NullValue(types.TypeDouble)})
	require.Equal(t, 2, row.Len())

	v, err := row.Named("hostname")
	require.NoError(t, err)
	require.Equal(t, "host-24Gju", v.String())

	_, err = row.Named("missing")
	require.Error(t, err)
	_, err = row.Value(2)
	require.Error(t, err)

	var (
		hostname string
		cpu      *float64
	)
	require.NoError(t, row.Scan(&hostname, &cpu))
	require.Equal(t, "host-24Gju", hostname)
	require.Nil(t, cpu)
	require.Error(t, row.Scan(&hostname))

	values := row.Values()
	values[0] = types.StringValue("changed")
	v, err = row.Value(0)
	require.NoError(t, err)
	require.Equal(t, "host-24Gju", v.String())
}

func TestQueryOptions(t *testing.T) {
	q := New("SELECT 1", WithName("one"), WithPageSizeHint(10))
	require.Equal(t, "SELECT 1", q.Text())
	require.Equal(t, "one", q.Name())
	require.Equal(t, 10, q.PageSizeHint())
	require.Equal(t, 0, New("SELECT 1", WithPageSizeHint(-1)).PageSizeHint())
}

func TestStateIsTerminal(t *testing.T) {
	for s, terminal := range map[State]bool{
		StateCreated:   false,
		StateSubmitted: false,
		StateRunning:   false,
		StateSucceeded: true,
		StateFailed:    true,
		StateCancelled: true,
	} {
		require.Equal(t, terminal, s.IsTerminal(), s.String())
	}
}
