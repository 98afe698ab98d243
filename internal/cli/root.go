package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/nodeboard/internal/config"
	"github.com/rileyhilliard/nodeboard/internal/errors"
	"github.com/rileyhilliard/nodeboard/internal/i18n"
	"github.com/rileyhilliard/nodeboard/internal/logger"
	"github.com/rileyhilliard/nodeboard/internal/snapshot"
	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile      string
	snapshotFlag string
	localeFlag   string
	colorFlag    string
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "nodeboard",
	Short: "Status cards for your servers, straight from a snapshot file",
	Long: `nodeboard renders status cards for a fleet of servers: billing, expiry,
traffic quota, tags and live usage, read from a snapshot file that some
other agent keeps up to date.

Examples:
  nodeboard show
  nodeboard show 8f1c2d --width 100
  nodeboard list
  nodeboard monitor`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .nodeboard.yaml, then ~/.config/nodeboard/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&snapshotFlag, "snapshot", "", "snapshot file to read (overrides config)")
	rootCmd.PersistentFlags().StringVar(&localeFlag, "locale", "", "display language: auto, en, zh-CN (overrides config)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "color output: auto, always, never (overrides config)")
}

// Execute runs the root command and exits on error.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	// ExitError is a quiet exit: the command already printed what it had to.
	if code, ok := errors.GetExitCode(err); ok {
		os.Exit(code)
	}

	if isUnknownCommandError(err) {
		if name := extractUnknownCommand(err); name != "" {
			err = errors.New(errors.ErrConfig,
				fmt.Sprintf("'%s' isn't a nodeboard command", name),
				"Run 'nodeboard --help' to see the available commands.")
		}
	}

	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}

// app is everything a command needs after config is resolved.
type app struct {
	cfg    *config.Config
	loc    *i18n.Catalog
	source *snapshot.FileSource
	log    logger.Logger
}

// loadApp resolves config, applies flag overrides, validates and sets up
// localization, colors and the snapshot source.
func loadApp() (*app, error) {
	cfg, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, err
	}
	applyFlagOverrides(cfg)

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	loc, err := i18n.Load(cfg.Locale)
	if err != nil {
		return nil, err
	}

	applyColorMode(cfg.Output.Color)

	log := logger.NewEnvLogger("[nodeboard]")
	if path != "" {
		log.Debug("using config %s", path)
	}

	source := snapshot.NewFileSource(cfg.Snapshot)
	source.DefaultCurrency = cfg.Display.DefaultCurrency

	return &app{cfg: cfg, loc: loc, source: source, log: log}, nil
}

// applyFlagOverrides lets persistent flags win over the config file.
// --snapshot is relative to the working directory, not the config file.
func applyFlagOverrides(cfg *config.Config) {
	if snapshotFlag != "" {
		cwd, _ := os.Getwd()
		cfg.Snapshot = config.ResolvePath(snapshotFlag, cwd)
	}
	if localeFlag != "" {
		cfg.Locale = localeFlag
	}
	if colorFlag != "" {
		cfg.Output.Color = colorFlag
	}
}

// applyColorMode forces the lipgloss color profile for always/never. auto
// keeps whatever termenv detected.
func applyColorMode(mode string) {
	switch mode {
	case config.ColorAlways:
		lipgloss.SetColorProfile(termenv.TrueColor)
	case config.ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// isUnknownCommandError checks if the error is cobra's unknown command/flag error.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag")
}

// extractUnknownCommand pulls the command name out of
// `unknown command "foo" for "nodeboard"`.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start == -1 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end == -1 {
		return ""
	}
	return msg[start+1 : start+1+end]
}
