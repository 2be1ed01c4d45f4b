package logs

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withoutSystemd(t *testing.T) {
	t.Helper()

	previous := isSystemdService
	isSystemdService = func() bool { return false }
	t.Cleanup(func() { isSystemdService = previous })
}

func TestLoggerWritesTextAtConfiguredLevel(t *testing.T) {
	withoutSystemd(t)

	var terminal bytes.Buffer
	logger, err := New(Options{Level: "info", Terminal: &terminal})
	require.NoError(t, err)
	t.Cleanup(func() { _ = logger.Close() })

	logger.Debug("hidden")
	logger.Info("session started", "max_turns", 10)

	out := terminal.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, `msg="session started"`)
	assert.Contains(t, out, "max_turns=10")

	logger.SetLevel(slog.LevelDebug)
	logger.Debug("now visible")
	assert.Contains(t, terminal.String(), "now visible")
}

func TestLoggerFansOutToJSONFile(t *testing.T) {
	withoutSystemd(t)

	var terminal bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "glkpilot.log")
	logger, err := New(Options{Level: "error", Terminal: &terminal, File: path})
	require.NoError(t, err)

	ctx := WithAttrs(context.Background(), slog.String("story", "cloak.toml"))
	logger.DebugContext(ctx, "delivering input", "gen", 3)
	require.NoError(t, logger.Close())

	assert.Empty(t, terminal.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(data))), &record))
	assert.Equal(t, "delivering input", record["msg"])
	assert.Equal(t, "cloak.toml", record["story"])
	assert.EqualValues(t, 3, record["gen"])
}

func TestLoggerWithAttrsKeepsContextAttrs(t *testing.T) {
	withoutSystemd(t)

	var terminal bytes.Buffer
	logger, err := New(Options{Level: "debug", Terminal: &terminal})
	require.NoError(t, err)

	ctx := WithAttrs(WithAttrs(context.Background(), slog.String("a", "1")), slog.String("b", "2"))
	logger.With("session", "s-1").InfoContext(ctx, "turn played")

	out := terminal.String()
	assert.Contains(t, out, "session=s-1")
	assert.Contains(t, out, "a=1")
	assert.Contains(t, out, "b=2")
}

func TestParseLevel(t *testing.T) {
	for raw, want := range map[string]slog.Level{
		"":        slog.LevelWarn,
		"DEBUG":   slog.LevelDebug,
		" info ":  slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	} {
		got, err := ParseLevel(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseLevel("verbose")
	require.ErrorContains(t, err, "unknown log level")
}

func TestToJournalKey(t *testing.T) {
	assert.Equal(t, "MAX_TURNS", toJournalKey("max_turns"))
	assert.Equal(t, "LLM_MODEL", toJournalKey("llm.model"))
}
