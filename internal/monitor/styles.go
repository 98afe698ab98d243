package monitor

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/nodeboard/internal/card"
)

// ColorDarkBg is the dashboard backdrop, one step darker than card surfaces.
const ColorDarkBg = lipgloss.Color("#0A0A0F")

// Dashboard chrome styles. Card styles live in the card package.
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(card.ColorTextPrimary).
			Background(card.ColorSurfaceBg).
			Bold(true).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(card.ColorAccent).
			Bold(true)

	StatsStyle = lipgloss.NewStyle().
			Foreground(card.ColorTextSecondary)

	FooterStyle = lipgloss.NewStyle().
			Foreground(card.ColorTextMuted).
			Padding(0, 1)

	ErrorLineStyle = lipgloss.NewStyle().
			Foreground(card.ColorCritical).
			Padding(0, 1)
)
