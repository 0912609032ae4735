// Package cli реализует командный интерфейс (CLI) клиента конструктора резюме.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - разбор аргументов и флагов командной строки;
//   - загрузку локальной сессии (пользователь последнего signup/login);
//   - выполнение команд и вывод результата пользователю.
//
// Точка входа пакета: функция Execute.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-resume-builder/internal/agent/api"
	"github.com/IvanChernomyrdin/go-resume-builder/internal/agent/config"
	serr "github.com/IvanChernomyrdin/go-resume-builder/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-resume-builder/internal/shared/models"
)

// DefaultServerURL: адрес сервера в dev-окружении.
const DefaultServerURL = "http://127.0.0.1:8000"

// App содержит состояние CLI-приложения, разделяемое между командами.
//
// Экземпляр App создаётся при построении root-команды и передаётся в подкоманды.
type App struct {
	// ServerURL: базовый URL сервера (например, "http://127.0.0.1:8000").
	ServerURL string

	// SessionPath: путь к файлу сессии.
	SessionPath string
	// Session: загруженная сессия. Может быть nil, если загрузка не выполнялась.
	Session *config.Session
}

// client создаёт API-клиент для текущего сервера.
func (a *App) client() *api.Client {
	return NewAPIClient(a.ServerURL)
}

// resolveEmail возвращает email из флага, а если он пуст: из сессии.
func (a *App) resolveEmail(flagEmail string) (string, error) {
	if flagEmail != "" {
		return flagEmail, nil
	}
	if a.Session.LoggedIn() {
		return a.Session.Email, nil
	}
	return "", serr.ErrNotLoggedIn
}

// remember сохраняет пользователя в сессию и на диск.
func (a *App) remember(u models.User) error {
	a.Session = config.FromUser(u)
	return config.Save(a.SessionPath, a.Session)
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// buildVersion и buildDate используются командой version.
// В PersistentPreRunE определяется путь к файлу сессии и загружается сессия.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{
		ServerURL: DefaultServerURL,
	}

	cmd := &cobra.Command{
		Use:   "resumectl",
		Short: "resumectl: консольный клиент конструктора резюме",
		Long: `resumectl: консольный клиент конструктора резюме.

Команды:
  signup     Регистрация нового пользователя
  login      Вход (проверка email и пароля)
  resume     Сохранение, просмотр и выгрузка резюме
  export     Экспорт резюме (PDF/DOCX, заглушка на сервере)
  templates  Каталог шаблонов
  status     Состояние сервера и текущая сессия
  version    Версия и дата сборки

Примеры:

Регистрация:
  resumectl signup --email a@x.com --name Ann --password pw

Логин (пароль спросит в терминале):
  resumectl login --email a@x.com

Сохранить резюме:
  resumectl resume save --id r1 --template stem-modern --data '{"name":"Ann"}'

Экспорт:
  resumectl export --id r1 --format pdf
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.SessionPath == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				app.SessionPath = p
			}

			s, err := config.Load(app.SessionPath)
			if err != nil {
				return fmt.Errorf("load session %s: %w", app.SessionPath, err)
			}
			app.Session = s
			return nil
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", DefaultServerURL, "server base URL")
	cmd.PersistentFlags().StringVar(&app.SessionPath, "session", "", "session file (default ~/.resumectl/session.json)")

	cmd.AddCommand(NewSignupCmd(app))
	cmd.AddCommand(NewLoginCmd(app))
	cmd.AddCommand(NewResumeCmd(app))
	cmd.AddCommand(NewExportCmd(app))
	cmd.AddCommand(NewTemplatesCmd(app))
	cmd.AddCommand(NewStatusCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// При ошибке сообщение выводится в stderr, процесс завершается с кодом 1.
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
