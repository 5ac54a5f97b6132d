package tsquery

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/timestreamquery"
	tstypes "github.com/aws/aws-sdk-go-v2/service/timestreamquery/types"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tsquery-platform/tsquery-go-sdk/internal/mock"
	"github.com/tsquery-platform/tsquery-go-sdk/internal/xtest"
	"github.com/tsquery-platform/tsquery-go-sdk/log"
	"github.com/tsquery-platform/tsquery-go-sdk/query"
	"github.com/tsquery-platform/tsquery-go-sdk/trace"
	"github.com/tsquery-platform/tsquery-go-sdk/transport"
	"github.com/tsquery-platform/tsquery-go-sdk/types"
)

func TestNewWithoutTransport(t *testing.T) {
	_, err := New(xtest.Context(t))
	require.ErrorIs(t, err, errNoTransport)
}

func TestDriverWithTransport(t *testing.T) {
	ctx := xtest.Context(t)
	ctrl := gomock.NewController(t)
	client := mock.NewMockClient(ctrl)
	client.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req transport.SubmitRequest) (*transport.Submission, error) {
			require.Equal(t, 10, req.PageSizeHint)

			return &transport.Submission{
				ExecutionID: "q1",
				Page: &transport.Page{
					Columns: []types.Column{{Name: "n", Type: types.TypeInteger}},
					Rows:    [][]types.Value{{types.IntegerValue(1)}, {types.IntegerValue(2)}},
				},
			}, nil
		},
	)

	var (
		buf    bytes.Buffer
		states []query.State
	)
	db, err := New(ctx,
		WithTransport(client),
		WithPageSizeHint(10),
		WithLogger(log.Default(&buf, log.WithMinLevel(log.TRACE)), trace.DetailsAll),
		WithTraceQuery(trace.Query{
			OnStateChange: func(info trace.QueryStateChangeInfo) {
				states = append(states, info.To)
			},
		}),
	)
	require.NoError(t, err)
	require.Equal(t, client, db.Transport())

	rows, err := db.Query().ReadAll(ctx, query.New("SELECT n", query.WithName("numbers")))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, []query.State{
		query.StateSubmitted,
		query.StateRunning,
		query.StateSucceeded,
	}, states)
	require.Contains(t, buf.String(), "numbers")
}

type fakeTimestream struct {
	cancelled []string
}

func (f *fakeTimestream) Query(
	context.Context, *timestreamquery.QueryInput, ...func(*timestreamquery.Options),
) (*timestreamquery.QueryOutput, error) {
	return &timestreamquery.QueryOutput{
		QueryId: aws.String("q1"),
		ColumnInfo: []tstypes.ColumnInfo{
			{Name: aws.String("host"), Type: &tstypes.Type{ScalarType: tstypes.ScalarTypeVarchar}},
		},
		Rows: []tstypes.Row{
			{Data: []tstypes.Datum{{ScalarValue: aws.String("host-1")}}},
		},
		NextToken: aws.String("t1"),
	}, nil
}

func (f *fakeTimestream) CancelQuery(
	_ context.Context, params *timestreamquery.CancelQueryInput, _ ...func(*timestreamquery.Options),
) (*timestreamquery.CancelQueryOutput, error) {
	f.cancelled = append(f.cancelled, aws.ToString(params.QueryId))

	return &timestreamquery.CancelQueryOutput{}, nil
}

func TestDriverWithTimestreamClient(t *testing.T) {
	ctx := xtest.Context(t)
	api := &fakeTimestream{}
	db, err := New(ctx, WithTimestreamClient(api), WithRequestRate(1000, 10))
	require.NoError(t, err)

	e, err := db.Query().Run(ctx, query.New("SELECT host"))
	require.NoError(t, err)
	require.Equal(t, "q1", e.ID())

	require.NoError(t, db.Query().Cancel(ctx, e))
	require.Equal(t, []string{"q1"}, api.cancelled)
	require.Equal(t, query.StateCancelled, e.State())

	for _, err := range db.Query().Rows(ctx, e) {
		require.ErrorIs(t, err, ErrCancelled)
	}
}

func TestMergeOptions(t *testing.T) {
	errBroken := errors.New("broken")
	_, err := New(xtest.Context(t), MergeOptions(
		WithRegion("eu-west-1"),
		func(context.Context, *Driver) error {
			return errBroken
		},
	))
	require.ErrorIs(t, err, errBroken)
}
