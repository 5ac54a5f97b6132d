package query

import (
	"github.com/tsquery-platform/tsquery-go-sdk/internal/xerrors"
	"github.com/tsquery-platform/tsquery-go-sdk/query"
	"github.com/tsquery-platform/tsquery-go-sdk/transport"
	"github.com/tsquery-platform/tsquery-go-sdk/types"
)

// checkPage validates page against the known schema and returns the schema
// of the page. Empty columns of a page mean the schema is unchanged.
func checkPage(schema []types.Column, page *transport.Page, requestedToken string) ([]types.Column, error) {
	if page == nil {
		return nil, xerrors.Protocol(errNilPage)
	}
	if requestedToken != "" && page.NextToken == requestedToken {
		return nil, xerrors.Protocolf("page returned the token %q it was requested with", requestedToken)
	}
	columns := schema
	if len(page.Columns) > 0 {
		if schema != nil && !types.EqualColumns(schema, page.Columns) {
			return nil, xerrors.Protocolf("schema changed between pages: %v != %v", schema, page.Columns)
		}
		columns = page.Columns
	}
	for i, row := range page.Rows {
		if len(row) != len(columns) {
			return nil, xerrors.Protocolf("row %d has %d values, schema has %d columns", i, len(row), len(columns))
		}
		for j, v := range row {
			if !v.IsNull() && v.Type() != columns[j].Type {
				return nil, xerrors.Protocolf("row %d column %q: value of type %s, column of type %s",
					i, columns[j].Name, v.Type(), columns[j].Type,
				)
			}
		}
	}

	return columns, nil
}

func pageRows(columns []types.Column, page *transport.Page) []query.Row {
	rows := make([]query.Row, len(page.Rows))
	for i, values := range page.Rows {
		rows[i] = query.NewRow(columns, values)
	}

	return rows
}
