// Package ui holds the plain terminal components shared by the CLI
// commands: the node list table, sparklines and a Bubble Tea spinner.
//
// Colors here are base ANSI indices so table output survives basic
// terminals and pipes. The dashboard cards have their own truecolor
// palette in the card package.
//
// # Tables
//
//	ui.RenderNodeTable(headers, rows, "No nodes")
//
// Cells are plain text; the Bubbles table truncates them to column width.
//
// # Sparklines
//
// RenderSparkline scales to the data's own range. RenderPercentSparkline
// uses a fixed 0-100 scale and is what the dashboard uses for CPU history.
package ui
