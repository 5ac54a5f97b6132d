package timestream

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	tstypes "github.com/aws/aws-sdk-go-v2/service/timestreamquery/types"
	"github.com/stretchr/testify/require"

	"github.com/tsquery-platform/tsquery-go-sdk/internal/xerrors"
	"github.com/tsquery-platform/tsquery-go-sdk/types"
)

func scalar(t tstypes.ScalarType) *tstypes.Type {
	return &tstypes.Type{ScalarType: t}
}

func TestDecodeDatum(t *testing.T) {
	for _, tt := range []struct {
		t     *tstypes.Type
		datum tstypes.Datum
		value types.Value
	}{
		{
			t:     scalar(tstypes.ScalarTypeBigint),
			datum: tstypes.Datum{ScalarValue: aws.String("-42")},
			value: types.IntegerValue(-42),
		},
		{
			t:     scalar(tstypes.ScalarTypeInteger),
			datum: tstypes.Datum{ScalarValue: aws.String("7")},
			value: types.IntegerValue(7),
		},
		{
			t:     scalar(tstypes.ScalarTypeBoolean),
			datum: tstypes.Datum{ScalarValue: aws.String("true")},
			value: types.BooleanValue(true),
		},
		{
			t:     scalar(tstypes.ScalarTypeDate),
			datum: tstypes.Datum{ScalarValue: aws.String("2021-11-18")},
			value: types.StringValue("2021-11-18"),
		},
		{
			t:     scalar(tstypes.ScalarTypeDouble),
			datum: tstypes.Datum{NullValue: aws.Bool(true)},
			value: types.NullValue(types.TypeDouble),
		},
		{
			t:     scalar(tstypes.ScalarTypeUnknown),
			datum: tstypes.Datum{NullValue: aws.Bool(true)},
			value: types.NullValue(types.TypeUnknown),
		},
		{
			t: &tstypes.Type{ArrayColumnInfo: &tstypes.ColumnInfo{Type: scalar(tstypes.ScalarTypeBigint)}},
			datum: tstypes.Datum{ArrayValue: []tstypes.Datum{
				{ScalarValue: aws.String("1")},
				{NullValue: aws.Bool(true)},
				{ScalarValue: aws.String("3")},
			}},
			value: types.StringValue("[1, NULL, 3]"),
		},
		{
			t: &tstypes.Type{RowColumnInfo: []tstypes.ColumnInfo{
				{Type: scalar(tstypes.ScalarTypeVarchar)},
				{Type: &tstypes.Type{ArrayColumnInfo: &tstypes.ColumnInfo{Type: scalar(tstypes.ScalarTypeDouble)}}},
			}},
			datum: tstypes.Datum{RowValue: &tstypes.Row{Data: []tstypes.Datum{
				{ScalarValue: aws.String("a")},
				{ArrayValue: []tstypes.Datum{{ScalarValue: aws.String("1.5")}}},
			}}},
			value: types.StringValue("[a, [1.5]]"),
		},
		{
			t: &tstypes.Type{TimeSeriesMeasureValueColumnInfo: &tstypes.ColumnInfo{Type: scalar(tstypes.ScalarTypeDouble)}},
			datum: tstypes.Datum{TimeSeriesValue: []tstypes.TimeSeriesDataPoint{
				{Time: aws.String("2021-11-18 20:40:48.000000000"), Value: &tstypes.Datum{ScalarValue: aws.String("1.5")}},
				{Time: aws.String("2021-11-18 20:41:48.000000000"), Value: &tstypes.Datum{ScalarValue: aws.String("2")}},
			}},
			value: types.StringValue("[2021-11-18 20:40:48.000000000:1.5, 2021-11-18 20:41:48.000000000:2]"),
		},
	} {
		t.Run(tt.value.String(), func(t *testing.T) {
			v, err := decodeDatum(&tstypes.ColumnInfo{Name: aws.String("c"), Type: tt.t}, &tt.datum)
			require.NoError(t, err)
			require.Equal(t, tt.value, v)
		})
	}
}

func TestDecodeDatumErrors(t *testing.T) {
	for _, tt := range []struct {
		t     *tstypes.Type
		datum tstypes.Datum
	}{
		{t: scalar(tstypes.ScalarTypeBigint), datum: tstypes.Datum{ScalarValue: aws.String("1.5")}},
		{t: scalar(tstypes.ScalarTypeDouble), datum: tstypes.Datum{ScalarValue: aws.String("x")}},
		{t: scalar(tstypes.ScalarTypeBoolean), datum: tstypes.Datum{ScalarValue: aws.String("maybe")}},
		{t: scalar(tstypes.ScalarTypeVarchar), datum: tstypes.Datum{}},
		{t: scalar(tstypes.ScalarTypeUnknown), datum: tstypes.Datum{ScalarValue: aws.String("?")}},
	} {
		t.Run(string(tt.t.ScalarType), func(t *testing.T) {
			_, err := decodeDatum(&tstypes.ColumnInfo{Name: aws.String("c"), Type: tt.t}, &tt.datum)
			require.True(t, xerrors.IsProtocolError(err), err)
		})
	}
}

func TestDecodeDatumWithoutType(t *testing.T) {
	info := []tstypes.ColumnInfo{{Name: aws.String("c")}}

	_, err := decodeRows(info, []tstypes.Row{{Data: []tstypes.Datum{{ScalarValue: aws.String("1")}}}})
	require.True(t, xerrors.IsProtocolError(err), err)

	values, err := decodeRows(info, []tstypes.Row{{Data: []tstypes.Datum{{NullValue: aws.Bool(true)}}}})
	require.NoError(t, err)
	require.True(t, values[0][0].IsNull())
}

func TestDecodeRowsWidth(t *testing.T) {
	_, err := decodeRows(cpuColumns, []tstypes.Row{{Data: []tstypes.Datum{{ScalarValue: aws.String("host")}}}})
	require.True(t, xerrors.IsProtocolError(err), err)
}
