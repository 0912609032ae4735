package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewTemplatesCmd печатает каталог шаблонов резюме.
func NewTemplatesCmd(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Каталог шаблонов (STEM, Business, Humanities)",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.client().Templates(category)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tCATEGORY")
			for _, t := range list {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", t.ID, t.Name, t.Category)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by category")

	return cmd
}
