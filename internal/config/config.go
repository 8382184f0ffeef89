package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvBank     = "DMVNAV_BANK"
	EnvLogFile  = "DMVNAV_LOG_FILE"
	EnvLogLevel = "DMVNAV_LOG_LEVEL"
	EnvSeed     = "DMVNAV_SEED"
)

// DefaultEnvFile is read by Load when no other file is given.
const DefaultEnvFile = ".env"

// Config holds runtime configuration.
type Config struct {
	// BankPath points to an external question bank (.json or SQLite).
	// Empty means the embedded bank.
	BankPath string

	// LogFile receives structured logs. Empty discards them.
	LogFile string

	// LogLevel is one of debug, info, warn, error. Default: info.
	LogLevel slog.Level

	// Seed makes question shuffles deterministic when HasSeed is set.
	Seed    uint64
	HasSeed bool
}

// DefaultConfig returns a Config with defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel: slog.LevelInfo,
	}
}

// FromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()

	if p := os.Getenv(EnvBank); p != "" {
		cfg.BankPath = p
	}
	if p := os.Getenv(EnvLogFile); p != "" {
		cfg.LogFile = p
	}
	if l := os.Getenv(EnvLogLevel); l != "" {
		level, err := ParseLevel(l)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}
	if s := os.Getenv(EnvSeed); s != "" {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s: invalid seed %q", EnvSeed, s)
		}
		cfg.Seed = seed
		cfg.HasSeed = true
	}

	return cfg, nil
}

// Load reads envFile into the process environment (without overriding
// variables already set) and then calls FromEnv. A missing file is not an
// error unless it was named explicitly.
func Load(envFile string) (Config, error) {
	explicit := envFile != ""
	if !explicit {
		envFile = DefaultEnvFile
	}

	if err := godotenv.Load(envFile); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	return FromEnv()
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
