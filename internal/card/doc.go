// Package card renders node summaries as terminal cards.
//
// A Presenter turns node metadata, optional live telemetry and an explicit
// "now" into a lipgloss-styled string. Everything displayed is derived by
// the node package on each render; this package only decides layout and
// colors.
//
// # Layouts
//
// The layout follows the available width:
//
//	LayoutNarrow (<80 cols)   - identity and platform rows, stacked "CPU: 12%  RAM: 40%" footer
//	LayoutMedium (80-119)     - inline telemetry, tags hidden
//	LayoutWide   (120+)       - inline telemetry, tags and a traffic bar
//
// # Tones
//
// Severity arrives as node.Tone and is mapped to a color by ToneColor. Tag
// colors go through TagColor, which falls back to the default tag color for
// names it does not know.
//
// # Navigation
//
// Activating a card calls Presenter.Open, which hands the node's details
// route ("/instance/<uuid>") to the Navigator given to NewPresenter.
package card
