package main

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/tsquery-platform/tsquery-go-sdk/internal/catalog"
)

func (a *app) listCommand() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the query catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tablewriter.NewWriter(cmd.OutOrStdout())
			tw.SetAutoFormatHeaders(false)
			tw.SetAutoWrapText(false)
			header := []string{"name", "analytic", "description"}
			if verbose {
				header = append(header, "query")
			}
			tw.SetHeader(header)
			for _, e := range catalog.List() {
				row := []string{e.Name, yesNo(e.Analytic), e.Description}
				if verbose {
					text, err := e.Render(a.cfg.Params())
					if err != nil {
						return err
					}
					row = append(row, text)
				}
				tw.Append(row)
			}
			tw.Render()

			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print query texts")

	return cmd
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
