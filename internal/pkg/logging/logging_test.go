package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARNING"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestNewLogger_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(Config{Level: "warn", Format: "json"}, &buf)

	l.Info("hidden")
	l.Warn("archetype fallback", "raw", "Bardo")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "archetype fallback", entry["msg"])
	assert.Equal(t, "Bardo", entry["raw"])
	assert.NoError(t, l.Close())
}

func TestNewLogger_FileSink(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "server.log")
	l := newLogger(Config{Level: "info", Format: "text", File: path, FileMaxSizeMB: 1}, &buf)

	l.With("character_id", "agent_1").Info("character created")
	require.NoError(t, l.Close())

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "character created")
	assert.Contains(t, string(contents), "character_id=agent_1")
	assert.Contains(t, buf.String(), "character created")
}

func TestInterceptorLogger(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(Config{Level: "debug", Format: "text"}, &buf)

	InterceptorLogger(l.Logger).Log(context.Background(), grpc_logging.LevelInfo, "finished call", "grpc.method", "RollDice")

	assert.Contains(t, buf.String(), "finished call")
	assert.Contains(t, buf.String(), "grpc.method=RollDice")
}
