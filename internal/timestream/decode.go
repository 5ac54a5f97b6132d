package timestream

import (
	"strconv"
	"strings"
	"time"

	tstypes "github.com/aws/aws-sdk-go-v2/service/timestreamquery/types"

	"github.com/tsquery-platform/tsquery-go-sdk/internal/xerrors"
	"github.com/tsquery-platform/tsquery-go-sdk/types"
)

const (
	nullString = "NULL"
	// accepts any number of fractional digits
	timestampLayout = "2006-01-02 15:04:05.999999999"
)

func columnType(t *tstypes.Type) types.Type {
	if t == nil {
		return types.TypeUnknown
	}
	switch {
	case t.ArrayColumnInfo != nil, t.RowColumnInfo != nil, t.TimeSeriesMeasureValueColumnInfo != nil:
		return types.TypeString
	}
	switch t.ScalarType {
	case tstypes.ScalarTypeBigint, tstypes.ScalarTypeInteger:
		return types.TypeInteger
	case tstypes.ScalarTypeDouble:
		return types.TypeDouble
	case tstypes.ScalarTypeBoolean:
		return types.TypeBoolean
	case tstypes.ScalarTypeTimestamp:
		return types.TypeTimestamp
	case tstypes.ScalarTypeVarchar,
		tstypes.ScalarTypeDate,
		tstypes.ScalarTypeTime,
		tstypes.ScalarTypeIntervalDayToSecond,
		tstypes.ScalarTypeIntervalYearToMonth:
		return types.TypeString
	default:
		return types.TypeUnknown
	}
}

func decodeColumns(info []tstypes.ColumnInfo) []types.Column {
	if len(info) == 0 {
		return nil
	}
	columns := make([]types.Column, len(info))
	for i := range info {
		columns[i] = types.Column{
			Name: deref(info[i].Name),
			Type: columnType(info[i].Type),
		}
	}

	return columns
}

func decodeRows(info []tstypes.ColumnInfo, rows []tstypes.Row) ([][]types.Value, error) {
	values := make([][]types.Value, len(rows))
	for i := range rows {
		if len(rows[i].Data) != len(info) {
			return nil, xerrors.WithStackTrace(xerrors.Protocolf(
				"row %d has %d values, %d columns expected", i, len(rows[i].Data), len(info),
			))
		}
		values[i] = make([]types.Value, len(info))
		for j := range info {
			v, err := decodeDatum(&info[j], &rows[i].Data[j])
			if err != nil {
				return nil, xerrors.WithStackTrace(err)
			}
			values[i][j] = v
		}
	}

	return values, nil
}

func decodeDatum(info *tstypes.ColumnInfo, d *tstypes.Datum) (types.Value, error) {
	t := columnType(info.Type)
	if isNull(d) {
		return types.NullValue(t), nil
	}
	if info.Type == nil {
		return types.Value{}, xerrors.Protocolf("column %q: no type", deref(info.Name))
	}
	if info.Type.ScalarType == "" {
		return types.StringValue(render(info.Type, d)), nil
	}
	if d.ScalarValue == nil {
		return types.Value{}, xerrors.Protocolf("column %q: datum without scalar value", deref(info.Name))
	}
	s := *d.ScalarValue
	switch t {
	case types.TypeInteger:
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return types.Value{}, xerrors.Protocolf("column %q: %w", deref(info.Name), err)
		}

		return types.IntegerValue(v), nil
	case types.TypeDouble:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return types.Value{}, xerrors.Protocolf("column %q: %w", deref(info.Name), err)
		}

		return types.DoubleValue(v), nil
	case types.TypeBoolean:
		v, err := strconv.ParseBool(s)
		if err != nil {
			return types.Value{}, xerrors.Protocolf("column %q: %w", deref(info.Name), err)
		}

		return types.BooleanValue(v), nil
	case types.TypeTimestamp:
		v, err := time.ParseInLocation(timestampLayout, s, time.UTC)
		if err != nil {
			return types.Value{}, xerrors.Protocolf("column %q: %w", deref(info.Name), err)
		}

		return types.TimestampValue(v), nil
	case types.TypeString:
		return types.StringValue(s), nil
	default:
		return types.Value{}, xerrors.Protocolf("column %q: unsupported type %q", deref(info.Name), info.Type.ScalarType)
	}
}

func isNull(d *tstypes.Datum) bool {
	return d == nil || (d.NullValue != nil && *d.NullValue)
}

// render prints a non-scalar datum: arrays and rows in brackets, time
// series as comma separated time:value pairs.
func render(t *tstypes.Type, d *tstypes.Datum) string {
	var b strings.Builder
	renderDatum(&b, t, d)

	return b.String()
}

func renderDatum(b *strings.Builder, t *tstypes.Type, d *tstypes.Datum) {
	switch {
	case isNull(d):
		b.WriteString(nullString)
	case t == nil:
		b.WriteString(deref(d.ScalarValue))
	case t.ArrayColumnInfo != nil:
		b.WriteByte('[')
		for i := range d.ArrayValue {
			if i > 0 {
				b.WriteString(", ")
			}
			renderDatum(b, t.ArrayColumnInfo.Type, &d.ArrayValue[i])
		}
		b.WriteByte(']')
	case t.RowColumnInfo != nil:
		b.WriteByte('[')
		if d.RowValue != nil {
			for i := range d.RowValue.Data {
				if i > 0 {
					b.WriteString(", ")
				}
				var ft *tstypes.Type
				if i < len(t.RowColumnInfo) {
					ft = t.RowColumnInfo[i].Type
				}
				renderDatum(b, ft, &d.RowValue.Data[i])
			}
		}
		b.WriteByte(']')
	case t.TimeSeriesMeasureValueColumnInfo != nil:
		b.WriteByte('[')
		for i, p := range d.TimeSeriesValue {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(deref(p.Time))
			b.WriteByte(':')
			renderDatum(b, t.TimeSeriesMeasureValueColumnInfo.Type, p.Value)
		}
		b.WriteByte(']')
	default:
		b.WriteString(deref(d.ScalarValue))
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
