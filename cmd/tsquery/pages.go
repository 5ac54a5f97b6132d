package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tsquery-platform/tsquery-go-sdk"
	"github.com/tsquery-platform/tsquery-go-sdk/internal/catalog"
	"github.com/tsquery-platform/tsquery-go-sdk/query"
	"github.com/tsquery-platform/tsquery-go-sdk/trace"
)

func (a *app) pagesCommand() *cobra.Command {
	var (
		limit    int
		pageSize int
	)
	cmd := &cobra.Command{
		Use:   "pages",
		Short: "Read all records with LIMIT and report every page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := catalog.Lookup("select-all-limit")
			if err != nil {
				return err
			}
			params := a.cfg.Params()
			params.Limit = limit
			q, err := e.Query(params, query.WithPageSizeHint(pageSize))
			if err != nil {
				return err
			}
			db, err := a.driver(cmd.Context(), tsquery.WithTraceQuery(pageReporter(cmd.OutOrStdout())))
			if err != nil {
				return err
			}

			execution, err := db.Query().Run(cmd.Context(), q)
			if err != nil {
				return err
			}
			var n int
			for _, err := range db.Query().Rows(cmd.Context(), execution) {
				if err != nil {
					return err
				}
				n++
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Query %s returned %d rows\n", execution.ID(), n)

			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", catalog.DefaultLimit, "LIMIT of the query")
	cmd.Flags().IntVar(&pageSize, "page-size", 1000, "maximum rows per page")

	return cmd
}

func pageReporter(w io.Writer) trace.Query {
	return trace.Query{
		OnSubmit: func(trace.QuerySubmitStartInfo) func(trace.QuerySubmitDoneInfo) {
			return func(info trace.QuerySubmitDoneInfo) {
				if info.Error == nil {
					fmt.Fprintf(w, "Page 1: %d rows\n", info.Rows)
				}
			}
		},
		OnFetchPage: func(info trace.QueryFetchPageStartInfo) func(trace.QueryFetchPageDoneInfo) {
			page := info.Page

			return func(info trace.QueryFetchPageDoneInfo) {
				if info.Error == nil {
					fmt.Fprintf(w, "Page %d: %d rows\n", page, info.Rows)
				}
			}
		},
	}
}
