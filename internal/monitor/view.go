package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/nodeboard/internal/card"
)

// defaultWidth is used before the first WindowSizeMsg arrives.
const defaultWidth = 80

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	if line := m.renderErrorLine(); line != "" {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.renderCards())

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the title with node counts and reload age.
func (m Model) renderHeader() string {
	total := 0
	if m.snap != nil {
		total = len(m.snap.Nodes)
	}

	stats := m.loc.T("monitor.summary", map[string]any{
		"total":  total,
		"online": m.OnlineCount(),
		"ago":    m.updateText(),
	})
	sortText := m.loc.T("monitor.sort", map[string]any{"order": m.sortOrder.String()})

	title := TitleStyle.Render(m.loc.T("monitor.title", nil))
	return HeaderStyle.Render(title + StatsStyle.Render(" | "+stats+" | "+sortText))
}

func (m Model) updateText() string {
	seconds := m.SecondsSinceUpdate()
	if seconds == 0 {
		return m.loc.T("monitor.just_now", nil)
	}
	return m.loc.T("monitor.seconds_ago", map[string]any{"seconds": seconds})
}

// renderErrorLine shows the headline of the last reload error, if any.
func (m Model) renderErrorLine() string {
	if m.loadErr == nil {
		return ""
	}
	headline := strings.TrimSpace(strings.SplitN(m.loadErr.Error(), "\n", 2)[0])
	return ErrorLineStyle.Render(headline)
}

// renderCards renders the node cards in one or two columns.
func (m Model) renderCards() string {
	if m.snap == nil {
		return m.loading.View()
	}
	if len(m.order) == 0 {
		return card.LabelStyle.Render(m.loc.T("monitor.no_nodes", nil))
	}

	cardWidth, perRow := m.cardGeometry()
	now := m.now()

	cards := make([]string, 0, len(m.order))
	for i, uuid := range m.order {
		cards = append(cards, m.presenter.Render(card.Node{
			Meta:   m.meta[uuid],
			Live:   m.snap.Telemetry(uuid),
			Online: m.snap.IsOnline(uuid),
		}, card.Options{
			Width:    cardWidth,
			Now:      now,
			Selected: i == m.selected,
		}))
	}

	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := i + perRow
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// cardGeometry picks the card width and cards per row. Two columns are used
// only when each column still gets the medium card layout.
func (m Model) cardGeometry() (width, perRow int) {
	total := m.width
	if total <= 0 {
		total = defaultWidth
	}
	if total >= 2*card.MediumMinWidth {
		return total / 2, 2
	}
	return total, 1
}

// renderFooter renders the keyboard hints.
func (m Model) renderFooter() string {
	hints := []string{
		m.loc.T("monitor.hint_quit", nil),
		m.loc.T("monitor.hint_refresh", nil),
		m.loc.T("monitor.hint_select", nil),
		m.loc.T("monitor.hint_open", nil),
		m.loc.T("monitor.hint_help", nil),
	}
	return FooterStyle.Render(strings.Join(hints, " | "))
}
