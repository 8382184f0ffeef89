package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvBank, EnvLogFile, EnvLogLevel, EnvSeed} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.False(t, cfg.HasSeed)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvBank, "/tmp/bank.json")
	t.Setenv(EnvLogFile, "/tmp/dmvnav.log")
	t.Setenv(EnvLogLevel, "DEBUG")
	t.Setenv(EnvSeed, "42")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/bank.json", cfg.BankPath)
	assert.Equal(t, "/tmp/dmvnav.log", cfg.LogFile)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.True(t, cfg.HasSeed)
	assert.Equal(t, uint64(42), cfg.Seed)
}

func TestFromEnv_InvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSeed, "not-a-number")
	_, err := FromEnv()
	assert.ErrorContains(t, err, EnvSeed)

	clearEnv(t)
	t.Setenv(EnvLogLevel, "loud")
	_, err = FromEnv()
	assert.ErrorContains(t, err, "unknown log level")
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("DMVNAV_SEED=7\nDMVNAV_LOG_LEVEL=warn\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv(EnvSeed)
		os.Unsetenv(EnvLogLevel)
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
}

func TestLoad_EnvDoesNotOverrideProcess(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSeed, "1")
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("DMVNAV_SEED=9\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), cfg.Seed)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err, "explicit env file must exist")

	t.Chdir(t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"Info", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
