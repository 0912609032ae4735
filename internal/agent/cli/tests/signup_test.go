package tests

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-resume-builder/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-resume-builder/internal/agent/config"
)

func TestNewSignupCmd_Success_SavesSession(t *testing.T) {
	app := newApp(t, newBackend(t))

	out, err := run(cli.NewSignupCmd(app), "--email", "a@x.com", "--password", "pw", "--name", "Ann")
	require.NoError(t, err)
	require.Contains(t, out, "signup ok:")
	require.Contains(t, out, "email=a@x.com")

	require.True(t, app.Session.LoggedIn())

	loaded, err := config.Load(app.SessionPath)
	require.NoError(t, err)
	require.Equal(t, *app.Session, *loaded)
}

func TestNewSignupCmd_Duplicate(t *testing.T) {
	url := newBackend(t)
	signup(t, newApp(t, url), "a@x.com", "pw", "Ann")

	_, err := run(cli.NewSignupCmd(newApp(t, url)), "--email", "a@x.com", "--password", "other", "--name", "Bob")
	require.EqualError(t, err, "Email already registered")
}

func TestNewSignupCmd_RequiresName(t *testing.T) {
	_, err := run(cli.NewSignupCmd(newApp(t, "http://127.0.0.1:1")), "--email", "a@x.com", "--password", "pw")
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "name"))
}

func TestNewSignupCmd_PasswordFlagsExclusive(t *testing.T) {
	_, err := run(cli.NewSignupCmd(newApp(t, "http://127.0.0.1:1")),
		"--email", "a@x.com", "--name", "Ann", "--password", "pw", "--password-stdin")
	require.Error(t, err)
}
