package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"ai_tool_directory/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNew_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn", "json")

	l.Info("dropped")
	l.Warn("kept", "user_id", "u-1")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"msg":"kept"`)
	assert.Contains(t, buf.String(), `"user_id":"u-1"`)
}

func TestInitSlog_File(t *testing.T) {
	prev := Logger
	t.Cleanup(func() {
		Logger = prev
		slog.SetDefault(prev)
	})

	cfg := &config.Config{}
	cfg.Log.Output = "file"
	cfg.Log.FilePath = filepath.Join(t.TempDir(), "logs", "app.log")

	require.NoError(t, InitSlog(cfg))
	With("component", "test").Info("hello")

	data, err := os.ReadFile(cfg.Log.FilePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "component=test")
}
