package tests

import (
	"bytes"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-resume-builder/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-resume-builder/internal/agent/config"
	srvapi "github.com/IvanChernomyrdin/go-resume-builder/internal/server/api"
	srvconfig "github.com/IvanChernomyrdin/go-resume-builder/internal/server/config"
	srvhttp "github.com/IvanChernomyrdin/go-resume-builder/internal/server/net/http"
	"github.com/IvanChernomyrdin/go-resume-builder/internal/server/repository"
	"github.com/IvanChernomyrdin/go-resume-builder/internal/server/service"
	"github.com/IvanChernomyrdin/go-resume-builder/internal/shared/logger"
)

// newBackend поднимает настоящий сервер с хранилищем в памяти и возвращает его URL
func newBackend(t *testing.T) string {
	t.Helper()

	svc := service.NewServices(service.Repositories{
		Users:   repository.NewUsersRepository(),
		Resumes: repository.NewResumesRepository(),
	})
	h := srvapi.NewHandler(svc, logger.NewNop(), 0)

	cfg := &srvconfig.Config{}
	srvconfig.ApplyDefaults(cfg)

	srv := httptest.NewServer(srvhttp.NewRouter(h, cfg.CORS))
	t.Cleanup(srv.Close)
	return srv.URL
}

// newApp: состояние CLI с сессией во временной директории
func newApp(t *testing.T, serverURL string) *cli.App {
	t.Helper()
	return &cli.App{
		ServerURL:   serverURL,
		SessionPath: filepath.Join(t.TempDir(), "session.json"),
		Session:     &config.Session{},
	}
}

// run выполняет команду и возвращает всё, что она напечатала
func run(cmd *cobra.Command, args ...string) (string, error) {
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// signup регистрирует пользователя через CLI
func signup(t *testing.T, app *cli.App, email, password, name string) {
	t.Helper()
	if _, err := run(cli.NewSignupCmd(app), "--email", email, "--password", password, "--name", name); err != nil {
		t.Fatalf("signup: %v", err)
	}
}
