package tests

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-resume-builder/internal/agent/cli"
)

func TestTemplates_All(t *testing.T) {
	out, err := run(cli.NewTemplatesCmd(newApp(t, newBackend(t))))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7) // заголовок + 6 шаблонов
	require.Contains(t, out, "stem-modern")
	require.Contains(t, out, "humanities-academic")
}

func TestTemplates_ByCategory(t *testing.T) {
	out, err := run(cli.NewTemplatesCmd(newApp(t, newBackend(t))), "--category", "Business")
	require.NoError(t, err)

	require.Contains(t, out, "business-professional")
	require.NotContains(t, out, "stem-modern")
}

func TestStatus(t *testing.T) {
	url := newBackend(t)
	app := newApp(t, url)

	out, err := run(cli.NewStatusCmd(app))
	require.NoError(t, err)
	require.Contains(t, out, "ok (users: 0)")
	require.Contains(t, out, "not logged in")

	signup(t, app, "a@x.com", "pw", "Ann")

	out, err = run(cli.NewStatusCmd(app))
	require.NoError(t, err)
	require.Contains(t, out, "users: 1")
	require.Contains(t, out, "Ann <a@x.com>")
}

func TestStatus_ServerDown(t *testing.T) {
	_, err := run(cli.NewStatusCmd(newApp(t, "http://127.0.0.1:1")))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unavailable")
}
