package cli

import (
	"os"

	"github.com/rileyhilliard/nodeboard/internal/errors"
	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	showFlags           showOptions
	listNowFlag         string
	pickWidthFlag       int
	pickNowFlag         string
	monitorIntervalFlag string
)

// showCmd renders node cards once
var showCmd = &cobra.Command{
	Use:   "show [uuid|name...]",
	Short: "Render node cards once",
	Long: `Render a status card for each node in the snapshot, or only the nodes
named on the command line (by uuid or name).

The card layout follows the width: narrow below 80 columns, medium up to
119, wide from 120. Width comes from --width, then display.width in the
config, then the terminal.

With --json, the derived summaries are printed in the standard envelope
instead of cards. With --strict, the command exits 2 when any shown node
is overloaded, expired or about to expire, or nearly out of traffic.

Examples:
  nodeboard show
  nodeboard show tokyo-1 fra-edge
  nodeboard show --width 120 --now 2026-03-10T12:00:00Z
  nodeboard show --json --strict`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := showFlags
		opts.Refs = args
		machineMode = opts.JSON

		err := runShow(cmd, opts)
		if err != nil && opts.JSON {
			if _, isExit := errors.GetExitCode(err); !isExit {
				_ = WriteJSONFromError(cmd.OutOrStdout(), err)
				return errors.NewExitError(1)
			}
		}
		return err
	},
}

func runShow(cmd *cobra.Command, opts showOptions) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	opts.Width = resolveWidth(opts.Width, a.cfg.Display.Width, out)
	return showCommand(cmd.Context(), out, a, opts)
}

// listCmd prints a table of nodes
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List nodes in a table",
	Long: `Print one row per node with its online state, region, price, expiry
and traffic quota usage.

Examples:
  nodeboard list
  nodeboard list --locale zh-CN`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fixed, err := ParseNow(listNowFlag)
		if err != nil {
			return err
		}
		a, err := loadApp()
		if err != nil {
			return err
		}
		return listCommand(cmd.Context(), cmd.OutOrStdout(), a, clockFor(fixed)())
	},
}

// pickCmd selects a node interactively and shows it
var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick a node interactively and show its card",
	Long: `Choose a node from a menu, then print its card in the wide layout
followed by its details route.

Examples:
  nodeboard pick`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fixed, err := ParseNow(pickNowFlag)
		if err != nil {
			return err
		}
		a, err := loadApp()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		width := resolveWidth(pickWidthFlag, a.cfg.Display.Width, out)
		return pickCommand(cmd.Context(), out, a, width, clockFor(fixed)())
	},
}

// monitorCmd starts the TUI dashboard
var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Live dashboard of node cards",
	Long: `Start an interactive dashboard that rereads the snapshot on an interval
and shows a card per node.

Keyboard shortcuts:
  q / Ctrl+C  Quit
  r           Reload now
  s           Cycle sort order (default/name/CPU/expiry/traffic)
  up/k        Select previous node
  down/j      Select next node
  Enter       Open node details
  Esc         Back
  ?           Show help

Examples:
  nodeboard monitor
  nodeboard monitor --interval 5s`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		interval, err := ParseInterval(monitorIntervalFlag)
		if err != nil {
			return err
		}
		a, err := loadApp()
		if err != nil {
			return err
		}
		return monitorCommand(a, interval)
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for nodeboard.

Examples:
  # Bash
  nodeboard completion bash > /etc/bash_completion.d/nodeboard

  # Zsh
  nodeboard completion zsh > "${fpath[1]}/_nodeboard"

  # Fish
  nodeboard completion fish > ~/.config/fish/completions/nodeboard.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// show command flags
	showCmd.Flags().IntVar(&showFlags.Width, "width", 0, "render width in columns (default: terminal width)")
	showCmd.Flags().BoolVar(&showFlags.JSON, "json", false, "print derived summaries as JSON")
	showCmd.Flags().StringVar(&showFlags.Now, "now", "", "evaluate expiry at this time (RFC3339)")
	showCmd.Flags().BoolVar(&showFlags.Strict, "strict", false, "exit 2 if any node needs attention")

	// list command flags
	listCmd.Flags().StringVar(&listNowFlag, "now", "", "evaluate expiry at this time (RFC3339)")

	// pick command flags
	pickCmd.Flags().IntVar(&pickWidthFlag, "width", 0, "render width in columns (at least 120)")
	pickCmd.Flags().StringVar(&pickNowFlag, "now", "", "evaluate expiry at this time (RFC3339)")

	// monitor command flags
	monitorCmd.Flags().StringVar(&monitorIntervalFlag, "interval", "", "reload interval (e.g., 2s, 5s, 1m; default from config)")

	// Register all commands
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(monitorCmd)
	rootCmd.AddCommand(completionCmd)
}
