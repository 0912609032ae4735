package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const unknownBuild = "N/A"

// NewVersionCmd печатает версию и дату сборки resumectl.
// Пустые значения (сборка без -ldflags) выводятся как N/A.
func NewVersionCmd(buildVersion, buildDate string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Показать версию и дату сборки",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "resumectl\nversion=%s\nbuild_date=%s\n",
				orUnknown(buildVersion), orUnknown(buildDate))
			return err
		},
	}
}

func orUnknown(s string) string {
	if s == "" {
		return unknownBuild
	}
	return s
}
