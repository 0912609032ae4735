package tests

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-resume-builder/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-resume-builder/internal/agent/config"
	serr "github.com/IvanChernomyrdin/go-resume-builder/internal/shared/errors"
)

func TestNewLoginCmd_Success_SavesSession(t *testing.T) {
	url := newBackend(t)

	signup(t, newApp(t, url), "a@x.com", "pw", "Ann")

	app := newApp(t, url)
	out, err := run(cli.NewLoginCmd(app), "--email", "a@x.com", "--password", "pw")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !strings.Contains(out, "login ok: hello, Ann") {
		t.Fatalf("unexpected output: %q", out)
	}

	loaded, err := config.Load(app.SessionPath)
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	if loaded.Email != "a@x.com" || loaded.Name != "Ann" || loaded.UserID == "" {
		t.Fatalf("unexpected session: %+v", *loaded)
	}
}

func TestNewLoginCmd_WrongPassword_DoesNotWriteSession(t *testing.T) {
	url := newBackend(t)
	signup(t, newApp(t, url), "a@x.com", "pw", "Ann")

	app := newApp(t, url)
	_, err := run(cli.NewLoginCmd(app), "--email", "a@x.com", "--password", "nope")
	if err == nil {
		t.Fatalf("%s, got nil", serr.ErrExpectedError.Error())
	}
	if err.Error() != "Incorrect email or password" {
		t.Fatalf("%s: %v", serr.ErrUnexpectedError.Error(), err)
	}

	if _, statErr := os.Stat(app.SessionPath); !os.IsNotExist(statErr) {
		t.Fatalf("session file must not be written, stat err=%v", statErr)
	}
}

func TestNewLoginCmd_MissingEmail_ReturnsError(t *testing.T) {
	app := newApp(t, "http://127.0.0.1:1")

	_, err := run(cli.NewLoginCmd(app), "--password", "pw")
	if err == nil {
		t.Fatalf("%s, got nil", serr.ErrExpectedError.Error())
	}
	// cobra пишет "required flag(s) \"email\" not set"
	if !strings.Contains(err.Error(), "required") {
		t.Fatalf("%s: %v", serr.ErrUnexpectedError.Error(), err)
	}
}

// без --password пароль спрашивается через ReadPassword
func TestNewLoginCmd_PromptsPassword(t *testing.T) {
	url := newBackend(t)
	signup(t, newApp(t, url), "a@x.com", "pw", "Ann")

	orig := cli.ReadPassword
	t.Cleanup(func() { cli.ReadPassword = orig })

	var called bool
	cli.ReadPassword = func(cmd *cobra.Command, fromStdin bool) (string, error) {
		called = true
		if fromStdin {
			t.Fatalf("expected interactive mode")
		}
		return "pw", nil
	}

	if _, err := run(cli.NewLoginCmd(newApp(t, url)), "--email", "a@x.com"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !called {
		t.Fatalf("ReadPassword was not called")
	}
}

func TestNewLoginCmd_PasswordFromStdin(t *testing.T) {
	url := newBackend(t)
	signup(t, newApp(t, url), "a@x.com", "pw", "Ann")

	cmd := cli.NewLoginCmd(newApp(t, url))
	cmd.SetIn(strings.NewReader("pw\n"))

	if _, err := run(cmd, "--email", "a@x.com", "--password-stdin"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestNewLoginCmd_PasswordPromptError(t *testing.T) {
	orig := cli.ReadPassword
	t.Cleanup(func() { cli.ReadPassword = orig })

	wantErr := errors.New("no tty")
	cli.ReadPassword = func(cmd *cobra.Command, fromStdin bool) (string, error) {
		return "", wantErr
	}

	_, err := run(cli.NewLoginCmd(newApp(t, "http://127.0.0.1:1")), "--email", "a@x.com")
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}
