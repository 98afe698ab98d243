package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/nodeboard/internal/card"
)

// HelpBinding represents a single keyboard shortcut entry. Desc is a
// catalog key.
type HelpBinding struct {
	Key  string
	Desc string
}

// helpBindings defines all keyboard shortcuts shown in the help overlay.
var helpBindings = []HelpBinding{
	{Key: "q / Ctrl+C", Desc: "help.quit"},
	{Key: "r", Desc: "help.reload"},
	{Key: "s", Desc: "help.sort"},
	{Key: "up / k", Desc: "help.prev"},
	{Key: "down / j", Desc: "help.next"},
	{Key: "Home", Desc: "help.first"},
	{Key: "End", Desc: "help.last"},
	{Key: "Enter", Desc: "help.open"},
	{Key: "Esc", Desc: "help.back"},
	{Key: "?", Desc: "help.toggle"},
}

// Help overlay styles
var (
	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(card.ColorAccent).
			Background(card.ColorSurfaceBg).
			Padding(1, 2)

	helpTitleStyle = lipgloss.NewStyle().
			Foreground(card.ColorAccent).
			Bold(true).
			MarginBottom(1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(card.ColorTextPrimary).
			Bold(true).
			Width(14)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(card.ColorTextSecondary)
)

// renderHelpOverlay renders a centered box with the keyboard shortcuts.
func (m Model) renderHelpOverlay() string {
	var lines []string
	lines = append(lines, helpTitleStyle.Render(m.loc.T("help.title", nil)))
	lines = append(lines, "")

	for _, binding := range helpBindings {
		lines = append(lines, helpKeyStyle.Render(binding.Key)+helpDescStyle.Render(m.loc.T(binding.Desc, nil)))
	}

	lines = append(lines, "")
	lines = append(lines, card.LabelStyle.Render(m.loc.T("help.close", nil)))

	helpBox := helpBoxStyle.Render(strings.Join(lines, "\n"))

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		helpBox,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(ColorDarkBg),
	)
}
