package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsquery-platform/tsquery-go-sdk/internal/catalog"
)

func (a *app) cancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel [NAME]",
		Short: "Start a catalog query and cancel it at once",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "select-all"
			if len(args) == 1 {
				name = args[0]
			}
			e, err := catalog.Lookup(name)
			if err != nil {
				return err
			}
			q, err := e.Query(a.cfg.Params())
			if err != nil {
				return err
			}
			db, err := a.driver(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Starting query: %s\n", q.Text())
			execution := db.Query().Start(cmd.Context(), q)
			fmt.Fprintf(cmd.OutOrStdout(), "Cancelling the query: %s\n", q.Name())
			if err := db.Query().Cancel(cmd.Context(), execution); err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Could not cancel the query: %s = %v\n", q.Name(), err)

				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Query %s has been cancelled successfully\n", execution.ID())

			return nil
		},
	}
}
