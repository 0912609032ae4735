package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSignupCmd создаёт CLI-команду регистрации.
//
// После успешной регистрации пользователь сохраняется в локальную сессию,
// так что следующие команды можно запускать без --email.
//
// Пример использования:
//
//	resumectl signup --email a@x.com --name Ann --password pw
func NewSignupCmd(app *App) *cobra.Command {
	var email, name string
	var pw passwordFlags

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Регистрация нового пользователя",
		Long: `Регистрация нового пользователя на сервере.

Пример:
  resumectl signup --email a@x.com --name Ann --password pw
  echo pw | resumectl signup --email a@x.com --name Ann --password-stdin
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := pw.resolve(cmd)
			if err != nil {
				return err
			}

			u, err := app.client().Signup(email, password, name)
			if err != nil {
				return err
			}

			if err := app.remember(u); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "signup ok: id=%s email=%s\n", u.ID, u.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email for registration")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	pw.register(cmd)
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("name")

	return cmd
}
