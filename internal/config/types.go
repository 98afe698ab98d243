package config

import "time"

// Config represents the .nodeboard.yaml configuration file.
type Config struct {
	// Snapshot is the YAML or JSON file holding node metadata and telemetry.
	// Relative paths resolve against the directory of the config file.
	Snapshot string        `yaml:"snapshot" mapstructure:"snapshot"`
	Locale   string        `yaml:"locale" mapstructure:"locale"`
	Output   OutputConfig  `yaml:"output" mapstructure:"output"`
	Monitor  MonitorConfig `yaml:"monitor" mapstructure:"monitor"`
	Display  DisplayConfig `yaml:"display" mapstructure:"display"`
}

// OutputConfig controls terminal output.
type OutputConfig struct {
	// Color is auto, always or never.
	Color string `yaml:"color" mapstructure:"color"`
}

// MonitorConfig controls the interactive dashboard.
type MonitorConfig struct {
	// Interval between snapshot reloads.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// Timeout bounds a single snapshot reload.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// DisplayConfig controls how cards are drawn.
type DisplayConfig struct {
	// DefaultCurrency replaces the built-in currency for nodes without one.
	DefaultCurrency string `yaml:"default_currency" mapstructure:"default_currency"`

	// Width overrides terminal width detection for one-shot output. 0 detects.
	Width int `yaml:"width" mapstructure:"width"`
}

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// MinMonitorInterval keeps the dashboard from hammering the snapshot file.
const MinMonitorInterval = 500 * time.Millisecond

// DefaultConfig returns a Config with defaults filled in.
func DefaultConfig() *Config {
	return &Config{
		Snapshot: "nodes.yaml",
		Locale:   "auto",
		Output: OutputConfig{
			Color: ColorAuto,
		},
		Monitor: MonitorConfig{
			Interval: 2 * time.Second,
			Timeout:  5 * time.Second,
		},
	}
}
