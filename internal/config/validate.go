package config

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/nodeboard/internal/errors"
	"github.com/rileyhilliard/nodeboard/internal/i18n"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Snapshot) == "" {
		return errors.New(errors.ErrConfig,
			"No snapshot file configured",
			"Set 'snapshot' in "+ConfigFileName+" or pass --snapshot")
	}

	switch cfg.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("'%s' isn't a color mode", cfg.Output.Color),
			"Use one of: auto, always, never")
	}

	if cfg.Monitor.Interval < MinMonitorInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Monitor interval %s is too short", cfg.Monitor.Interval),
			fmt.Sprintf("Minimum interval is %s", MinMonitorInterval))
	}

	if cfg.Monitor.Timeout <= 0 {
		return errors.New(errors.ErrConfig,
			"Monitor timeout must be positive",
			"Try something like 5s")
	}

	if cfg.Display.Width < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Display width %d is negative", cfg.Display.Width),
			"Use 0 to detect the terminal width")
	}

	if cfg.Locale != "" && cfg.Locale != i18n.LocaleAuto {
		if _, err := i18n.Load(cfg.Locale); err != nil {
			return err
		}
	}

	return nil
}
