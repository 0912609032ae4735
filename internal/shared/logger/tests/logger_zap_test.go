package tests

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-resume-builder/internal/shared/logger"
)

func TestNewHTTPLogger_CreatesLogFileAndWrites(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "http.log")

	l, err := logger.NewHTTPLogger(logger.Options{File: logPath})
	require.NoError(t, err)
	// пишем лог
	l.Info("test message")
	// закрываем буферы zap
	_ = l.Sync()

	b, err := os.ReadFile(logPath)
	require.NoError(t, err)
	s := string(b)

	require.NotEmpty(t, s)
	require.Regexp(t, `\btest message\b`, s)

	// проверяем формат времени: "HH:MM:SS DD.MM.YYYY"
	// пример: 11:57:16 16.01.2026
	require.Regexp(t, `\b\d{2}:\d{2}:\d{2} \d{2}\.\d{2}\.\d{4}\b`, s)
}

func TestHTTPLogger_LogRequest_WritesStructuredFields(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "http.log")

	l, err := logger.NewHTTPLogger(logger.Options{File: logPath})
	require.NoError(t, err)
	l.LogRequest("POST", "/login/", 400, 20, 158.5463)
	l.Sync()

	b, err := os.ReadFile(logPath)
	require.NoError(t, err)
	s := string(b)

	// проверяем наличие ключевых полей
	mustContain := []string{
		"HTTP request",
		"method", "POST",
		"uri", "/login/",
		"status", "400",
		"response_size", "20",
		"duration_ms",
	}
	for _, sub := range mustContain {
		require.Regexp(t, regexp.QuoteMeta(sub), s)
	}
}

func TestNewHTTPLogger_LevelFiltersDebug(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "http.log")

	l, err := logger.NewHTTPLogger(logger.Options{File: logPath, Level: "warn"})
	require.NoError(t, err)
	l.Info("info hidden")
	l.Warn("warn visible")
	l.Sync()

	b, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.NotContains(t, string(b), "info hidden")
	require.Contains(t, string(b), "warn visible")
}

func TestNewHTTPLogger_BadLevel(t *testing.T) {
	_, err := logger.NewHTTPLogger(logger.Options{File: filepath.Join(t.TempDir(), "x.log"), Level: "loud"})
	require.Error(t, err)
}

func TestNewNop_DoesNotPanic(t *testing.T) {
	l := logger.NewNop()
	l.LogRequest("GET", "/", 200, 1, 0.1)
}
