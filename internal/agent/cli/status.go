package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewStatusCmd показывает состояние сервера и текущую сессию.
func NewStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Состояние сервера и текущая сессия",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			h, err := app.client().Health()
			if err != nil {
				return fmt.Errorf("server %s unavailable: %w", app.ServerURL, err)
			}
			fmt.Fprintf(out, "server: %s %s (users: %d)\n", app.ServerURL, h.Status, h.Users)

			if app.Session.LoggedIn() {
				fmt.Fprintf(out, "session: %s <%s>\n", app.Session.Name, app.Session.Email)
			} else {
				fmt.Fprintln(out, "session: not logged in")
			}
			return nil
		},
	}
}
