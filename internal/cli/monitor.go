package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/nodeboard/internal/errors"
	"github.com/rileyhilliard/nodeboard/internal/logger"
	"github.com/rileyhilliard/nodeboard/internal/monitor"
)

// debugLogFile receives logs while the dashboard owns the terminal.
const debugLogFile = "nodeboard-debug.log"

// monitorCommand starts the TUI dashboard. A zero interval uses the config.
func monitorCommand(a *app, interval time.Duration) error {
	if interval == 0 {
		interval = a.cfg.Monitor.Interval
	}

	// Anything written to stderr would tear the alt screen, so logs either go
	// to a file or nowhere.
	log := logger.Noop()
	if logger.DebugEnabled() {
		f, err := tea.LogToFile(debugLogFile, "nodeboard")
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Couldn't open "+debugLogFile,
				"Unset NODEBOARD_DEBUG or run from a writable directory.")
		}
		defer f.Close()
		log = a.log
	}
	a.source.Logger = log

	model := monitor.NewModel(a.source, monitor.Options{
		Interval:  interval,
		Timeout:   a.cfg.Monitor.Timeout,
		Localizer: a.loc,
		Logger:    log,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			"Dashboard stopped unexpectedly",
			"Run with NODEBOARD_DEBUG=1 and check "+debugLogFile+".")
	}
	return nil
}
