package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_Discard(t *testing.T) {
	logger, closeFn, err := Setup("", slog.LevelDebug)
	require.NoError(t, err)
	logger.Info("dropped")
	assert.NoError(t, closeFn())
}

func TestSetup_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "dmvnav.log")

	logger, closeFn, err := Setup(path, slog.LevelInfo)
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("session started", "session_id", "abc")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "session started")
	assert.Contains(t, string(data), "session_id=abc")
	assert.NotContains(t, string(data), "hidden")
}

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn)
	logger.Info("info")
	logger.Warn("warn")
	assert.NotContains(t, buf.String(), "msg=info")
	assert.Contains(t, buf.String(), "msg=warn")
}
