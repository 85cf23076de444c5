package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("AOC24_INPUTS", "")
	t.Setenv("AOC24_LOG_LEVEL", "")
	t.Setenv("AOC24_WORKERS", "")
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
	assert.NoError(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "aoc24.yaml")
	data := []byte("inputs: puzzles\nlogging:\n  level: debug\npatrol:\n  workers: 3\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	want := &Config{
		Inputs:  "puzzles",
		Logging: LoggingConfig{Level: "debug", Format: "console"},
		Patrol:  PatrolConfig{Workers: 3},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "aoc24.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging: [oops"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("all set", func(t *testing.T) {
		t.Setenv("AOC24_INPUTS", "/data")
		t.Setenv("AOC24_LOG_LEVEL", "warn")
		t.Setenv("AOC24_WORKERS", "8")

		cfg := Default()
		require.NoError(t, cfg.applyEnvOverrides())
		assert.Equal(t, "/data", cfg.Inputs)
		assert.Equal(t, "warn", cfg.Logging.Level)
		assert.Equal(t, 8, cfg.Patrol.Workers)
	})

	t.Run("empty keeps file values", func(t *testing.T) {
		clearEnv(t)
		cfg := &Config{Inputs: "x", Patrol: PatrolConfig{Workers: 2}}
		require.NoError(t, cfg.applyEnvOverrides())
		assert.Equal(t, "x", cfg.Inputs)
		assert.Equal(t, 2, cfg.Patrol.Workers)
	})

	t.Run("bad workers", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("AOC24_WORKERS", "many")
		cfg := Default()
		assert.ErrorIs(t, cfg.applyEnvOverrides(), ErrInvalidConfig)
	})
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty inputs", func(c *Config) { c.Inputs = "" }},
		{"bad level", func(c *Config) { c.Logging.Level = "trace" }},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }},
		{"negative workers", func(c *Config) { c.Patrol.Workers = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
