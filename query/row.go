package query

import (
	"fmt"

	"github.com/tsquery-platform/tsquery-go-sdk/internal/xerrors"
	"github.com/tsquery-platform/tsquery-go-sdk/types"
)

// Row is an ordered sequence of values aligned with the result schema.
type Row struct {
	columns []types.Column
	values  []types.Value
}

// NewRow does not copy its arguments: callers must not modify them afterwards.
func NewRow(columns []types.Column, values []types.Value) Row {
	return Row{
		columns: columns,
		values:  values,
	}
}

func (r Row) Len() int {
	return len(r.values)
}

func (r Row) Columns() []types.Column {
	return append([]types.Column(nil), r.columns...)
}

func (r Row) Values() []types.Value {
	return append([]types.Value(nil), r.values...)
}

// Value returns the i-th value of the row.
func (r Row) Value(i int) (types.Value, error) {
	if i < 0 || i >= len(r.values) {
		return types.Value{}, xerrors.WithStackTrace(
			fmt.Errorf("column index %d out of range [0,%d)", i, len(r.values)),
		)
	}

	return r.values[i], nil
}

// Named returns the value of the column with the given name.
func (r Row) Named(name string) (types.Value, error) {
	for i, c := range r.columns {
		if c.Name == name {
			return r.values[i], nil
		}
	}

	return types.Value{}, xerrors.WithStackTrace(fmt.Errorf("column %q not found", name))
}

// Scan copies values into dst in column order. See types.CastTo for
// supported destinations.
func (r Row) Scan(dst ...interface{}) error {
	if len(dst) != len(r.values) {
		return xerrors.WithStackTrace(
			fmt.Errorf("scan: %d destinations for %d values", len(dst), len(r.values)),
		)
	}
	for i := range dst {
		if err := types.CastTo(r.values[i], dst[i]); err != nil {
			return xerrors.WithStackTrace(fmt.Errorf("scan column %q: %w", r.columns[i].Name, err))
		}
	}

	return nil
}

func (r Row) String() string {
	return fmt.Sprint(r.values)
}
