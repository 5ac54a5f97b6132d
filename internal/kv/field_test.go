package kv

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tsquery-platform/tsquery-go-sdk/query"
)

func TestFieldString(t *testing.T) {
	executionID := "AEDQCANN3TQCVIAF"
	for _, tt := range []struct {
		name string
		f    KeyValue
		want string
	}{
		{name: "rows", f: Int("rows", 1000), want: "1000"},
		{name: "page", f: Int64("page", 42), want: "42"},
		{name: "id", f: String("id", executionID), want: executionID},
		{name: "has_more", f: Bool("has_more", true), want: "true"},
		{name: "latency", f: Duration("latency", 1500*time.Millisecond), want: "1.5s"},
		{name: "columns", f: Strings("columns", []string{"hostname", "cpu"}), want: "[hostname cpu]"},
		{name: "cancel_error", f: NamedError("cancel_error", errors.New("access denied")), want: "access denied"},
		{name: "error", f: Error(nil), want: "<nil>"},
		{name: "state", f: Stringer("state", query.StateRunning), want: query.StateRunning.String()},
		{name: "stringer_nil", f: Stringer("state", nil), want: "<nil>"},
		{name: "hint", f: Any("hint", 1000), want: "1000"},
		{name: "id_ptr", f: Any("id", &executionID), want: "*string(" + executionID + ")"},
		{name: "id_nil", f: Any("id", (*string)(nil)), want: "<nil>"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.f.String())
		})
	}
}

func TestFieldInvalidType(t *testing.T) {
	require.Panics(t, func() {
		_ = KeyValue{ftype: InvalidType, key: "invalid"}.String()
	})
}

func TestFieldAnyValue(t *testing.T) {
	err := errors.New("throttled")
	for _, tt := range []struct {
		name string
		f    KeyValue
		want interface{}
	}{
		{name: "rows", f: Int("rows", 7), want: 7},
		{name: "page", f: Int64("page", 3), want: int64(3)},
		{name: "id", f: String("id", "q1"), want: "q1"},
		{name: "has_more", f: Bool("has_more", false), want: false},
		{name: "latency", f: Duration("latency", time.Second), want: time.Second},
		{name: "error", f: Error(err), want: err},
		{name: "state", f: Stringer("state", query.StateCancelled), want: query.StateCancelled},
		{name: "nil", f: Any("any", nil), want: nil},
	} {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.f.AnyValue())
		})
	}
}

func TestLatency(t *testing.T) {
	f := Latency(time.Now().Add(-time.Minute))
	require.Equal(t, "latency", f.Key())
	require.Equal(t, DurationType, f.Type())
	require.GreaterOrEqual(t, f.DurationValue(), time.Minute)
}
