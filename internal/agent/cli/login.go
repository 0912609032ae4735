package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewLoginCmd создаёт CLI-команду для входа пользователя.
//
// Сервер только проверяет email и пароль, токенов нет.
// Пользователь из ответа сохраняется в локальную сессию.
//
// Если --password не указан, пароль читается из терминала со скрытым вводом
// (или из stdin с --password-stdin).
//
// Пример использования:
//
//	resumectl login --email a@x.com
func NewLoginCmd(app *App) *cobra.Command {
	var email string
	var pw passwordFlags

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Вход пользователя (проверка email и пароля)",
		Long: `Вход пользователя.

Пример:
  resumectl login --email a@x.com --password pw
  resumectl login --email a@x.com            (пароль спросит в терминале)
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := pw.resolve(cmd)
			if err != nil {
				return err
			}

			u, err := app.client().Login(email, password)
			if err != nil {
				return err
			}

			if err := app.remember(u); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "login ok: hello, %s\n", u.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email for login")
	pw.register(cmd)
	cmd.MarkFlagRequired("email")

	return cmd
}
