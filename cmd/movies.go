package cmd

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"cinema-booking-cli/catalog"
)

var moviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "List the movies now showing",
	RunE: func(cmd *cobra.Command, args []string) error {
		movies, err := catalog.Load()
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Title", "Rating", "Runtime", "Description"})
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 1, WidthMax: 24},
			{Number: 4, WidthMax: 48},
		})
		t.Style().Options.SeparateRows = true

		for _, movie := range movies {
			t.AppendRow(table.Row{
				movie.Title,
				movie.Rating,
				movie.RuntimeLabel(),
				movie.Description,
			})
		}
		t.Render()
		return nil
	},
}
