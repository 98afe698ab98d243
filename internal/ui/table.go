package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// TableStyle provides consistent styling for tables across the CLI.
type TableStyle struct {
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Selected lipgloss.Style
	Border   lipgloss.Style
}

// DefaultTableStyle returns the default table styling.
func DefaultTableStyle() TableStyle {
	return TableStyle{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		Cell: lipgloss.NewStyle().
			Foreground(ColorPrimary),
		Selected: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Background(ColorMuted),
		Border: lipgloss.NewStyle().
			Foreground(ColorMuted),
	}
}

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// NewTable creates a new Bubbles table with default styling.
func NewTable(columns []TableColumn, rows []table.Row) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{
			Title: c.Title,
			Width: c.Width,
		}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1), // +1 for header
	)

	style := DefaultTableStyle()
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Inherit(style.Header)
	s.Cell = s.Cell.Inherit(style.Cell)
	// Non-interactive tables have no selection to highlight.
	s.Selected = lipgloss.NewStyle()

	t.SetStyles(s)
	return t
}

// RenderSimpleTable renders a non-interactive table string.
// This is for CLI output (not TUI), producing a simple formatted table.
func RenderSimpleTable(columns []TableColumn, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	t := NewTable(columns, tableRows)
	return t.View()
}

// NodeTableRow is one node in the list table. Cells are plain text; the
// table truncates them to the column width.
type NodeTableRow struct {
	Online  bool
	Name    string
	Region  string
	Price   string
	Expiry  string
	Traffic string
}

// NodeTableHeaders are the localized column titles for RenderNodeTable.
type NodeTableHeaders struct {
	Status  string
	Name    string
	Region  string
	Price   string
	Expiry  string
	Traffic string
}

// RenderNodeTable renders the node list. Empty returns emptyText.
func RenderNodeTable(headers NodeTableHeaders, rows []NodeTableRow, emptyText string) string {
	if len(rows) == 0 {
		return lipgloss.NewStyle().Foreground(ColorMuted).Render(emptyText)
	}

	columns := []TableColumn{
		{Title: headers.Status, Width: columnWidth(headers.Status, 6)},
		{Title: headers.Name, Width: 20},
		{Title: headers.Region, Width: columnWidth(headers.Region, 6)},
		{Title: headers.Price, Width: 16},
		{Title: headers.Expiry, Width: 22},
		{Title: headers.Traffic, Width: 24},
	}

	cells := make([][]string, len(rows))
	for i, row := range rows {
		status := SymbolOffline
		if row.Online {
			status = SymbolOnline
		}
		cells[i] = []string{status, row.Name, row.Region, row.Price, row.Expiry, row.Traffic}
	}
	return RenderSimpleTable(columns, cells)
}

// columnWidth fits short columns to their title.
func columnWidth(title string, minWidth int) int {
	if w := lipgloss.Width(title); w > minWidth {
		return w
	}
	return minWidth
}
