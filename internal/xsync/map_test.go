package xsync

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	var m Map[string, string]
	v, ok := m.Get("q-1")
	require.False(t, ok)
	require.Equal(t, "", v)

	m.Set("q-1", "SELECT 1")
	m.Set("q-1", "SELECT 1")
	require.Equal(t, 1, m.Len())
	require.NotPanics(t, func() {
		require.Equal(t, "SELECT 1", m.Must("q-1"))
	})
	require.Panics(t, func() {
		_ = m.Must("q-2")
	})

	m.Set("q-2", "SELECT 2")
	require.Equal(t, 2, m.Len())
	require.True(t, m.Has("q-2"))

	seen := map[string]string{}
	m.Range(func(key string, value string) bool {
		seen[key] = value

		return true
	})
	require.Equal(t, map[string]string{"q-1": "SELECT 1", "q-2": "SELECT 2"}, seen)

	v, ok = m.Extract("q-1")
	require.True(t, ok)
	require.Equal(t, "SELECT 1", v)
	require.False(t, m.Has("q-1"))
	require.Equal(t, 1, m.Len())

	_, ok = m.Extract("q-1")
	require.False(t, ok)
	require.Equal(t, 1, m.Len())
}
