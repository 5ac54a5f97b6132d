package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/tsquery-platform/tsquery-go-sdk/query"
)

func renderTable(w io.Writer, rows []query.Row) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "(0 rows)")

		return
	}
	tw := tablewriter.NewWriter(w)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)

	columns := rows[0].Columns()
	header := make([]string, len(columns))
	for i, c := range columns {
		header[i] = c.Name
	}
	tw.SetHeader(header)
	for _, row := range rows {
		tw.Append(rowStrings(row))
	}
	tw.Render()
	fmt.Fprintf(w, "(%d rows)\n", len(rows))
}

// writeRows writes rows as comma separated lines.
func writeRows(w io.Writer, q query.Query, rows []query.Row) error {
	if _, err := fmt.Fprintf(w, "-- %s\n", q.Text()); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(rowStrings(row), ", ")); err != nil {
			return err
		}
	}

	return nil
}

func rowStrings(row query.Row) []string {
	values := row.Values()
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = v.String()
	}

	return s
}
