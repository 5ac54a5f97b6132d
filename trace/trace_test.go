package trace

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsquery-platform/tsquery-go-sdk/query"
)

func TestCompose(t *testing.T) {
	for _, tt := range []struct {
		name  string
		trace interface{}
	}{
		{name: "Query", trace: &Query{}},
		{name: "Retry", trace: &Retry{}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t1, called1 := stubEachFunc(t, tt.trace)
			t2, called2 := stubEachFunc(t, tt.trace)
			composed := reflect.ValueOf(t1).MethodByName("Compose").Call([]reflect.Value{reflect.ValueOf(t2)})[0]
			callEachFunc(composed.Elem())
			for name, called := range called1 {
				require.True(t, called, name)
			}
			for name, called := range called2 {
				require.True(t, called, name)
			}
		})
	}
}

func TestComposePanicCallback(t *testing.T) {
	var recovered interface{}
	t1 := &Query{
		OnStateChange: func(QueryStateChangeInfo) {
			panic("boom")
		},
	}
	composed := t1.Compose(&Query{}, WithQueryPanicCallback(func(e interface{}) {
		recovered = e
	}))
	require.NotPanics(t, func() {
		QueryOnStateChange(composed, context.Background(), "id", "", query.StateRunning, query.StateFailed, errors.New("x"))
	})
	require.Equal(t, "boom", recovered)
}

func TestShortcutsOnEmptyTrace(t *testing.T) {
	ctx := context.Background()
	require.NotPanics(t, func() {
		QueryOnRun(&Query{}, &ctx, nil, "SELECT 1", "")("id", nil)
		QueryOnSubmit(&Query{}, &ctx, nil, "SELECT 1", "token")("id", 1, false, nil)
		QueryOnFetchPage(&Query{}, &ctx, nil, "id", 2)(3, true, nil)
		QueryOnCancel(&Query{}, &ctx, nil, "id")(nil)
		RetryOnRetry(&Retry{}, &ctx, nil, "")(1, nil)
		RetryOnRetryAttempt(&Retry{}, ctx, "", 1, "", nil)
	})
}

func TestShortcutsPassArguments(t *testing.T) {
	var (
		ctx   = context.Background()
		start QueryFetchPageStartInfo
		done  QueryFetchPageDoneInfo
	)
	tr := &Query{
		OnFetchPage: func(info QueryFetchPageStartInfo) func(QueryFetchPageDoneInfo) {
			start = info

			return func(info QueryFetchPageDoneInfo) {
				done = info
			}
		},
	}
	QueryOnFetchPage(tr, &ctx, nil, "exec-1", 2)(100, true, nil)
	require.Equal(t, "exec-1", start.ExecutionID)
	require.Equal(t, 2, start.Page)
	require.Equal(t, 100, done.Rows)
	require.True(t, done.HasMore)
}

// stubEachFunc returns a copy of trace with every hook replaced by a stub
// recording its invocation.
func stubEachFunc(t *testing.T, trace interface{}) (interface{}, map[string]bool) {
	t.Helper()

	called := make(map[string]bool)
	v := reflect.New(reflect.TypeOf(trace).Elem())
	for i := 0; i < v.Elem().NumField(); i++ {
		f := v.Elem().Field(i)
		if f.Kind() != reflect.Func {
			continue
		}
		name := v.Elem().Type().Field(i).Name
		called[name] = false
		ft := f.Type()
		f.Set(reflect.MakeFunc(ft, func(args []reflect.Value) []reflect.Value {
			called[name] = true
			out := make([]reflect.Value, ft.NumOut())
			for j := range out {
				out[j] = reflect.MakeFunc(ft.Out(j), func([]reflect.Value) []reflect.Value {
					return nil
				})
			}

			return out
		}))
	}

	return v.Interface(), called
}

func callEachFunc(v reflect.Value) {
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if f.Kind() != reflect.Func || f.IsNil() {
			continue
		}
		ft := f.Type()
		args := make([]reflect.Value, ft.NumIn())
		for j := range args {
			args[j] = reflect.New(ft.In(j)).Elem()
		}
		for _, out := range f.Call(args) {
			if out.Kind() == reflect.Func && !out.IsNil() {
				doneArgs := make([]reflect.Value, out.Type().NumIn())
				for j := range doneArgs {
					doneArgs[j] = reflect.New(out.Type().In(j)).Elem()
				}
				out.Call(doneArgs)
			}
		}
	}
}
