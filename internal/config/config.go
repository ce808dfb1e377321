// Package config loads toolbox settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds settings shared by the library and the command-line tools.
type Config struct {
	// DataPath lists directories searched for spectral tables before the
	// embedded set.
	DataPath []string `env:"MVTB_DATA_PATH" envSeparator:":"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"MVTB_LOG_LEVEL" envDefault:"info"`
}

// Load parses Config from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	cfg.DataPath = compact(cfg.DataPath)
	return cfg, nil
}

// Level maps LogLevel to a slog level. Unknown names map to info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func compact(dirs []string) []string {
	out := dirs[:0]
	for _, d := range dirs {
		if d = strings.TrimSpace(d); d != "" {
			out = append(out, d)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
