package tests

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-resume-builder/internal/server/config"
	serr "github.com/IvanChernomyrdin/go-resume-builder/internal/shared/errors"
)

func TestExpandEnvStrict_ReplacesExistingEnv(t *testing.T) {
	t.Setenv("LOG_FILE", "/var/log/resume/http.log")

	in := `file: "${LOG_FILE}"`
	out := config.ExpandEnvStrict(in)

	require.Equal(t, `file: "/var/log/resume/http.log"`, out)
}

func TestExpandEnvStrict_LeavesUnknownEnvAsIs(t *testing.T) {
	in := `file: "${MISSING_ENV}"`
	out := config.ExpandEnvStrict(in)

	if out != in {
		t.Fatalf("expected unknown env placeholder to remain unchanged, got %q", out)
	}
}

func TestApplyDefaults_SetsExpectedDefaults(t *testing.T) {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)

	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, "127.0.0.1", cfg.Server.Host)
	require.Equal(t, 8000, cfg.Server.Port)
	require.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	require.Equal(t, int64(1<<20), cfg.Server.MaxBodyBytes)
	require.Equal(t, config.DefaultAllowedOrigins, cfg.CORS.AllowedOrigins)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestApplyDefaults_DoesNotAliasDefaultOrigins(t *testing.T) {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	cfg.CORS.AllowedOrigins[0] = "http://changed"

	require.Equal(t, "http://localhost:5173", config.DefaultAllowedOrigins[0])
}

func TestValidate_ServerHostRequired(t *testing.T) {
	cfg := minimalValidConfig()
	cfg.Server.Host = ""

	if err := cfg.Validate(); err == nil {
		t.Fatalf("%s, got nil", serr.ErrExpectedError.Error())
	}
}

func TestValidate_PortRange(t *testing.T) {
	cfg := minimalValidConfig()
	cfg.Server.Port = 70000

	require.Error(t, cfg.Validate())
}

func TestValidate_TLSRequiresCertAndKey(t *testing.T) {
	cfg := minimalValidConfig()
	cfg.TLS.Enabled = true

	if err := cfg.Validate(); err == nil {
		t.Fatalf("%s, got nil", serr.ErrExpectedError.Error())
	}
}

func TestValidate_TLSUnexpandedEnv(t *testing.T) {
	cfg := minimalValidConfig()
	cfg.TLS = config.TLSConfig{Enabled: true, CertFile: "${TLS_CERT_FILE}", KeyFile: "key.pem"}

	require.Error(t, cfg.Validate())

	// при выключенном TLS плейсхолдеры не мешают
	cfg.TLS.Enabled = false
	require.NoError(t, cfg.Validate())
}

func TestValidate_BadOrigin(t *testing.T) {
	cfg := minimalValidConfig()
	cfg.CORS.AllowedOrigins = []string{"localhost"}

	require.Error(t, cfg.Validate())
}

func TestValidate_WildcardWithCredentials(t *testing.T) {
	cfg := minimalValidConfig()
	cfg.CORS.AllowedOrigins = []string{"*"}
	cfg.CORS.AllowCredentials = boolPtr(true)

	require.Error(t, cfg.Validate())
}

func TestValidate_WildcardWithoutCredentials(t *testing.T) {
	cfg := minimalValidConfig()
	cfg.CORS.AllowedOrigins = []string{"*"}
	cfg.CORS.AllowCredentials = boolPtr(false)

	require.NoError(t, cfg.Validate())
}

func TestApplyDefaults_CredentialsAllowedWithoutCORSSection(t *testing.T) {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)

	require.NotNil(t, cfg.CORS.AllowCredentials)
	require.True(t, *cfg.CORS.AllowCredentials)
	require.True(t, cfg.CORS.Credentials())
}

func TestLoad_CredentialsDisabledExplicitly(t *testing.T) {
	yml := `
cors:
  allowed_origins:
    - "http://localhost:5173"
  allow_credentials: false
`
	p := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(p, []byte(yml), 0o600))

	cfg, err := config.Load(p)
	require.NoError(t, err)
	require.False(t, cfg.CORS.Credentials())
}

func TestLoad_NoCORSSection_AllowsCredentials(t *testing.T) {
	p := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(p, []byte("env: dev\n"), 0o600))

	cfg, err := config.Load(p)
	require.NoError(t, err)
	require.Equal(t, config.DefaultAllowedOrigins, cfg.CORS.AllowedOrigins)
	require.True(t, cfg.CORS.Credentials())
}

func TestValidate_LogLevel(t *testing.T) {
	cfg := minimalValidConfig()
	cfg.Log.Level = "verbose"

	require.Error(t, cfg.Validate())
}

func TestApplyEnvOverrides_ServerPort(t *testing.T) {
	cfg := minimalValidConfig()

	t.Setenv("SERVER_PORT", "9090")
	cfg.ApplyEnvOverrides()

	require.Equal(t, 9090, cfg.Server.Port)
}

func TestApplyEnvOverrides_CORSOrigins(t *testing.T) {
	cfg := minimalValidConfig()

	t.Setenv("CORS_ORIGINS", " http://a.local/ ,http://b.local,, ")
	cfg.ApplyEnvOverrides()

	require.Equal(t, []string{"http://a.local", "http://b.local"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_ExpandsEnv_AppliesDefaults_AndValidates(t *testing.T) {
	t.Setenv("LOG_FILE", "runtime/logs/test.log")

	yml := `
env: dev
server:
  host: "0.0.0.0"
  port: 0
  shutdown_timeout: 3s
cors:
  allowed_origins:
    - "http://localhost:5173"
  allow_credentials: true
log:
  level: ""
  file: "${LOG_FILE}"
`

	p := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(p, []byte(yml), 0o600))

	cfg, err := config.Load(p)
	require.NoError(t, err)

	// проверяем дефолты
	require.Equal(t, 8000, cfg.Server.Port)
	require.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.AllowedOrigins)
	require.True(t, cfg.CORS.Credentials())
	require.Equal(t, "0.0.0.0:8000", cfg.Addr())

	// проверяем, что env подставился (не остался ${...})
	require.False(t, strings.Contains(cfg.Log.File, "${"))
}

func TestLoad_UnexpandedEnvFails(t *testing.T) {
	yml := `
log:
  file: "${RESUME_MISSING_LOG_FILE}"
`
	p := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(p, []byte(yml), 0o600))

	_, err := config.Load(p)
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

// --- helpers ---

func minimalValidConfig() *config.Config {
	return &config.Config{
		Env: "dev",
		Server: config.ServerConfig{
			Host: "127.0.0.1",
			Port: 8000,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"http://localhost:5173"},
		},
		Log: config.LogConfig{
			Level: "info",
		},
	}
}

func boolPtr(v bool) *bool {
	return &v
}
