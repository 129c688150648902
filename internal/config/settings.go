package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// Settings are the runtime knobs of the conversion engine, loaded from
// DOCUNITS_* environment variables.
type Settings struct {
	ConfigDir string `envconfig:"CONFIG_DIR" default:"config" validate:"required"`
	SigFigs   int    `envconfig:"SIG_FIGS" default:"5" validate:"min=1,max=15"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text" validate:"oneof=text json"`
}

// LoadSettings reads settings from the environment and validates them.
func LoadSettings() (*Settings, error) {
	var s Settings
	if err := envconfig.Process("DOCUNITS", &s); err != nil {
		return nil, fmt.Errorf("failed to load settings from env: %w", err)
	}
	if err := validator.New().Struct(s); err != nil {
		return nil, fmt.Errorf("settings validation failed: %w", err)
	}
	return &s, nil
}

// SlogLevel maps the configured level string to a slog.Level.
func (s *Settings) SlogLevel() slog.Level {
	switch s.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger builds a slog.Logger matching the configured level and format.
func (s *Settings) Logger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: s.SlogLevel()}
	if s.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
