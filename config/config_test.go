package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"lasker/meta"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults when nothing is configured", func(t *testing.T) {
		dir := t.TempDir()

		cfg, err := Load(filepath.Join(dir, "missing.yaml"), filepath.Join(dir, "missing.env"))

		require.NoError(t, err)
		require.Equal(t, "info", cfg.LogLevel)
		require.Equal(t, meta.MAX_TURNS, cfg.MaxTurns)
		require.Equal(t, meta.END_SENTINEL, cfg.EndSentinel)
		require.Equal(t, 10*time.Second, cfg.Timeout)
	})

	t.Run("yaml file overrides defaults", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "lasker.yaml", "log_level: debug\nmax_turns: 50\ntimeout: 3s\nseed: 7\nend_sentinel: STOP\n")

		cfg, err := Load(path, filepath.Join(dir, "missing.env"))

		require.NoError(t, err)
		require.Equal(t, "debug", cfg.LogLevel)
		require.Equal(t, 50, cfg.MaxTurns)
		require.Equal(t, 3*time.Second, cfg.Timeout)
		require.Equal(t, uint64(7), cfg.Seed)
		require.Equal(t, "STOP", cfg.EndSentinel)
		require.Equal(t, meta.MODEL, cfg.Model)
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "lasker.yaml", "max_turns: 50\nmodel: from-file\n")
		t.Setenv("LASKER_MAX_TURNS", "80")
		t.Setenv("LASKER_MODEL", "from-env")
		t.Setenv("LASKER_TIMEOUT", "250ms")

		cfg, err := Load(path, filepath.Join(dir, "missing.env"))

		require.NoError(t, err)
		require.Equal(t, 80, cfg.MaxTurns)
		require.Equal(t, "from-env", cfg.Model)
		require.Equal(t, 250*time.Millisecond, cfg.Timeout)
	})

	t.Run("dotenv file supplies the api key", func(t *testing.T) {
		dir := t.TempDir()
		env := writeFile(t, dir, ".env", "LASKER_API_KEY=from-dotenv\n")
		t.Setenv("LASKER_API_KEY", "")
		os.Unsetenv("LASKER_API_KEY")

		cfg, err := Load("", env)

		require.NoError(t, err)
		require.Equal(t, "from-dotenv", cfg.APIKey)
	})

	t.Run("invalid values", func(t *testing.T) {
		dir := t.TempDir()
		noEnv := filepath.Join(dir, "missing.env")

		_, err := Load(writeFile(t, dir, "bad.yaml", "max_turns: [1"), noEnv)
		require.Error(t, err)

		_, err = Load(writeFile(t, dir, "level.yaml", "log_level: loud\n"), noEnv)
		require.ErrorContains(t, err, "invalid log level")

		_, err = Load(writeFile(t, dir, "turns.yaml", "max_turns: 0\n"), noEnv)
		require.ErrorContains(t, err, "max turns")

		t.Setenv("LASKER_SEED", "abc")
		_, err = Load("", noEnv)
		require.ErrorContains(t, err, "LASKER_SEED")
	})
}
