package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rileyhilliard/nodeboard/internal/config"
	"github.com/rileyhilliard/nodeboard/internal/errors"
	"golang.org/x/term"
)

// fallbackWidth is used when output isn't a terminal and nothing else says.
const fallbackWidth = 80

// ParseInterval parses a monitor interval flag. An empty flag returns zero,
// meaning "use the config value".
func ParseInterval(flag string) (time.Duration, error) {
	if flag == "" {
		return 0, nil
	}

	duration, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid interval", flag),
			"Try something like 2s, 5s, or 1m.")
	}
	if duration < config.MinMonitorInterval {
		return 0, errors.New(errors.ErrConfig,
			"Interval too short",
			fmt.Sprintf("Minimum interval is %s", config.MinMonitorInterval))
	}
	return duration, nil
}

// ParseNow parses the --now flag. An empty flag returns the zero time,
// meaning "use the wall clock".
func ParseNow(flag string) (time.Time, error) {
	if flag == "" {
		return time.Time{}, nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, flag); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New(errors.ErrConfig,
		fmt.Sprintf("'%s' isn't a valid time", flag),
		"Use RFC3339, e.g. 2026-03-10T12:00:00Z, or a plain date like 2026-03-10.")
}

// clockFor returns a clock pinned to fixed, or the wall clock when fixed is
// zero.
func clockFor(fixed time.Time) func() time.Time {
	if fixed.IsZero() {
		return time.Now
	}
	return func() time.Time { return fixed }
}

// resolveWidth picks the render width: the flag, then config, then the
// terminal size of out, then fallbackWidth.
func resolveWidth(flagWidth, configWidth int, out io.Writer) int {
	if flagWidth > 0 {
		return flagWidth
	}
	if configWidth > 0 {
		return configWidth
	}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return fallbackWidth
}
