package card

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/nodeboard/internal/node"
)

// Card color palette
const (
	ColorSurfaceBg = lipgloss.Color("#12121A")
	ColorBorder    = lipgloss.Color("#2A2A4A")

	ColorHealthy  = lipgloss.Color("#39FF14")
	ColorElevated = lipgloss.Color("#3D8BFF")
	ColorWarning  = lipgloss.Color("#FFAA00")
	ColorCritical = lipgloss.Color("#FF0055")

	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4B4D0")
	ColorTextMuted     = lipgloss.Color("#6B6B8D")

	ColorAccent = lipgloss.Color("#FF2E97")
	ColorGraph  = lipgloss.Color("#00FFFF")
)

// toneColors maps every node.Tone to its color. Unknown tones fall back to
// the primary text color.
var toneColors = map[node.Tone]lipgloss.Color{
	node.ToneNormal:   ColorHealthy,
	node.ToneElevated: ColorElevated,
	node.ToneWarning:  ColorWarning,
	node.ToneCritical: ColorCritical,
	node.ToneMuted:    ColorTextMuted,
}

// ToneColor returns the color for a tone.
func ToneColor(t node.Tone) lipgloss.Color {
	if c, ok := toneColors[t]; ok {
		return c
	}
	return ColorTextPrimary
}

// ToneStyle returns a foreground style for a tone.
func ToneStyle(t node.Tone) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ToneColor(t))
}

// tagColors are the named colors a tag may ask for.
var tagColors = map[string]lipgloss.Color{
	"blue":   lipgloss.Color("#3D8BFF"),
	"red":    lipgloss.Color("#FF0055"),
	"green":  lipgloss.Color("#39FF14"),
	"yellow": lipgloss.Color("#FFE600"),
	"orange": lipgloss.Color("#FFAA00"),
	"amber":  lipgloss.Color("#FFBF00"),
	"purple": lipgloss.Color("#BF40FF"),
	"violet": lipgloss.Color("#8F5BFF"),
	"pink":   lipgloss.Color("#FF2E97"),
	"cyan":   lipgloss.Color("#00FFFF"),
	"teal":   lipgloss.Color("#00C2A8"),
	"gray":   lipgloss.Color("#6B6B8D"),
	"grey":   lipgloss.Color("#6B6B8D"),
}

// TagColor resolves a tag color name. Hex colors are used as-is; anything
// else unknown renders in the default tag color.
func TagColor(name string) lipgloss.Color {
	name = strings.ToLower(strings.TrimSpace(name))
	if c, ok := tagColors[name]; ok {
		return c
	}
	if isHexColor(name) {
		return lipgloss.Color(name)
	}
	return tagColors[node.DefaultTagColor]
}

func isHexColor(s string) bool {
	if len(s) != 4 && len(s) != 7 {
		return false
	}
	if s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}

// Base styles
var (
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1).
			MarginBottom(1)

	CardSelectedStyle = CardStyle.
				BorderForeground(ColorAccent)

	NameStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	dividerStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)
)

// Status glyphs
const (
	StatusOnline  = "◉"
	StatusOffline = "◌"
	AlertGlyph    = "!"
)

// Badge renders text as a small colored pill.
func Badge(text string, color lipgloss.Color) string {
	return lipgloss.NewStyle().
		Foreground(color).
		Bold(true).
		Render("[" + text + "]")
}

// ThinBar renders a line-based bar, ━ for the filled part and ─ for the
// rest. Percentages above 100 render as a full bar.
func ThinBar(width int, percent float64, tone node.Tone) string {
	if width < 1 {
		width = 1
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(percent / 100.0 * float64(width))
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("━", filled) + strings.Repeat("─", width-filled)
	return ToneStyle(tone).Render(bar)
}

// SectionHeader renders a section header with the title on the left and
// value on the right.
// Format: ╭─ Title ────────────────────────────────────── Value ╮
func SectionHeader(title, value string, width int) string {
	if width < 10 {
		width = 10
	}

	leftWidth := 3 + lipgloss.Width(title) + 1
	rightWidth := 1 + lipgloss.Width(value) + 2

	fillWidth := width - leftWidth - rightWidth
	if fillWidth < 1 {
		fillWidth = 1
	}
	middle := strings.Repeat("─", fillWidth)

	titleStyle := lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(ColorGraph).Bold(true)

	return dividerStyle.Render("╭─ ") +
		titleStyle.Render(title) +
		dividerStyle.Render(" "+middle+" ") +
		valueStyle.Render(value) +
		dividerStyle.Render(" ╮")
}

// SectionFooter renders the bottom border of a section.
// Format: ╰────────────────────────────────────────────────────╯
func SectionFooter(width int) string {
	if width < 2 {
		width = 2
	}
	return dividerStyle.Render("╰" + strings.Repeat("─", width-2) + "╯")
}

// SectionContentLine renders a content line with left and right borders,
// padded to width.
// Format: │ content                                              │
func SectionContentLine(content string, width int) string {
	if width < 4 {
		width = 4
	}

	padding := width - 4 - lipgloss.Width(content)
	if padding < 0 {
		padding = 0
	}

	return dividerStyle.Render("│") + " " + content + strings.Repeat(" ", padding) + " " + dividerStyle.Render("│")
}

// renderDivider renders a thin divider line.
func renderDivider(width int) string {
	if width < 1 {
		width = 1
	}
	return dividerStyle.Render(strings.Repeat("─", width))
}
