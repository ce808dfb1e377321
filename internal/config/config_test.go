package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MVTB_DATA_PATH", "")
	t.Setenv("MVTB_LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Nil(t, cfg.DataPath)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}

func TestLoadDataPath(t *testing.T) {
	t.Setenv("MVTB_DATA_PATH", "/opt/spectra: :/home/me/data")
	t.Setenv("MVTB_LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"/opt/spectra", "/home/me/data"}, cfg.DataPath)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
}

func TestLevel(t *testing.T) {
	for name, want := range map[string]slog.Level{
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	} {
		assert.Equal(t, want, Config{LogLevel: name}.Level(), name)
	}
}
