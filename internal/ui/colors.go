package ui

import "github.com/charmbracelet/lipgloss"

// ANSI palette for plain CLI output (tables, pickers, spinners). The
// dashboard cards use the truecolor palette in the card package instead;
// these stay on the 16 base colors so piped or basic terminals keep them.

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)
