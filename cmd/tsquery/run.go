package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tsquery-platform/tsquery-go-sdk/internal/catalog"
	"github.com/tsquery-platform/tsquery-go-sdk/query"
)

var errNoQuery = errors.New("query name, --query or --all must be given")

type result struct {
	q    query.Query
	rows []query.Row
	err  error
}

func (a *app) runCommand() *cobra.Command {
	var (
		text     string
		all      bool
		parallel int
		output   string
	)
	cmd := &cobra.Command{
		Use:   "run [NAME]",
		Short: "Run catalog or ad hoc queries and print their rows",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			queries, err := a.selectQueries(args, text, all)
			if err != nil {
				return err
			}
			var out io.Writer = io.Discard
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}

			results, err := a.runQueries(cmd.Context(), queries, parallel)
			if err != nil {
				return err
			}

			var failed int
			for _, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "Running query %s:\n%s\n", r.q.Name(), r.q.Text())
				if r.err != nil {
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "Error: %v\n", r.err)

					continue
				}
				renderTable(cmd.OutOrStdout(), r.rows)
				if err := writeRows(out, r.q, r.rows); err != nil {
					return err
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d queries failed", failed, len(results))
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&text, "query", "q", "", "ad hoc query text")
	cmd.Flags().BoolVar(&all, "all", false, "run all analytic catalog queries")
	cmd.Flags().IntVar(&parallel, "parallel", 1, "queries run at once with --all")
	cmd.Flags().StringVarP(&output, "output", "o", "", "also write rows into the file")

	return cmd
}

func (a *app) selectQueries(args []string, text string, all bool) ([]query.Query, error) {
	switch {
	case text != "":
		return []query.Query{query.New(text, query.WithName("adhoc"))}, nil
	case all:
		return catalog.Analytic(a.cfg.Params())
	case len(args) == 1:
		e, err := catalog.Lookup(args[0])
		if err != nil {
			return nil, err
		}
		q, err := e.Query(a.cfg.Params())
		if err != nil {
			return nil, err
		}

		return []query.Query{q}, nil
	default:
		return nil, errNoQuery
	}
}

// runQueries reads all rows of queries. Failures of single queries are
// kept in results, the returned error is about the driver itself.
func (a *app) runQueries(ctx context.Context, queries []query.Query, parallel int) ([]result, error) {
	db, err := a.driver(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]result, len(queries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, parallel))
	for i, q := range queries {
		g.Go(func() error {
			rows, err := db.Query().ReadAll(ctx, q)
			if err != nil {
				a.logger.Warn("query failed", zap.String("name", q.Name()), zap.Error(err))
			}
			results[i] = result{q: q, rows: rows, err: err}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
