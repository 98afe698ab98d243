package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/nodeboard/internal/card"
	"github.com/rileyhilliard/nodeboard/internal/node"
	"github.com/rileyhilliard/nodeboard/internal/ui"
)

// detailHistorySamples is how many CPU samples the history sparkline shows.
const detailHistorySamples = 60

var detailContainerStyle = lipgloss.NewStyle().Padding(0, 1)

// renderDetailView renders the expanded single-node view around the
// scrolling viewport.
func (m Model) renderDetailView() string {
	if m.detailUUID == "" {
		return card.LabelStyle.Render("No node selected")
	}

	var b strings.Builder
	b.WriteString(m.renderDetailHeader())
	b.WriteString("\n\n")

	if m.viewportReady {
		b.WriteString(m.detailViewport.View())
	} else {
		b.WriteString(m.renderDetailContent())
	}

	b.WriteString("\n")
	b.WriteString(m.renderDetailFooter())
	return b.String()
}

// updateDetailViewportContent refreshes what the detail viewport scrolls.
func (m *Model) updateDetailViewportContent() {
	if !m.viewportReady || m.detailUUID == "" {
		return
	}
	m.detailViewport.SetContent(m.renderDetailContent())
}

// renderDetailHeader renders the node name and online state.
func (m Model) renderDetailHeader() string {
	meta := m.meta[m.detailUUID]

	name := lipgloss.NewStyle().Foreground(card.ColorAccent).Bold(true).Render(meta.Name)

	status := card.Badge(card.StatusOffline+" "+m.loc.T("nodeCard.offline", nil), card.ColorTextMuted)
	if m.snap.IsOnline(m.detailUUID) {
		status = card.Badge(card.StatusOnline+" "+m.loc.T("nodeCard.online", nil), card.ColorHealthy)
	}

	return HeaderStyle.Render(fmt.Sprintf("%s  %s", name, status))
}

// renderDetailContent renders every section of the detail view.
func (m Model) renderDetailContent() string {
	meta := m.meta[m.detailUUID]
	s := m.summary(m.detailUUID)

	width := m.width - 4
	if width < 40 {
		width = 40
	}

	sections := []string{
		m.renderIdentitySection(meta, s, width),
		m.renderBillingSection(s, width),
		m.renderUsageSection(s, width),
		m.renderNetworkSection(s, width),
		m.renderHistorySection(width),
	}
	if s.Message != "" {
		sections = append(sections, m.renderSection(m.loc.T("monitor.detail_message", nil), "",
			[]string{card.ToneStyle(node.ToneWarning).Render(card.AlertGlyph + " " + s.Message)}, width))
	}
	sections = append(sections, m.renderSection(m.loc.T("monitor.detail_route", nil), "",
		[]string{card.ValueStyle.Render(s.DetailsRoute)}, width))

	return detailContainerStyle.Render(strings.Join(sections, "\n"))
}

// renderSection frames lines between a titled header and a footer.
func (m Model) renderSection(title, value string, lines []string, width int) string {
	out := []string{card.SectionHeader(title, value, width)}
	for _, line := range lines {
		out = append(out, card.SectionContentLine(line, width))
	}
	out = append(out, card.SectionFooter(width))
	return strings.Join(out, "\n")
}

func (m Model) renderIdentitySection(meta node.Metadata, s node.Summary, width int) string {
	lines := []string{
		field("UUID", meta.UUID),
	}
	if meta.Region != "" {
		lines = append(lines, field("Region", strings.TrimSpace(card.RegionFlag(meta.Region)+" "+meta.Region)))
	}
	if platform := strings.Trim(meta.OS+" / "+meta.Arch, " /"); platform != "" {
		lines = append(lines, field("Platform", platform))
	}
	if len(s.Tags) > 0 {
		tags := make([]string, 0, len(s.Tags))
		for _, tag := range s.Tags {
			tags = append(tags, card.Badge(tag.Label, card.TagColor(tag.Color)))
		}
		lines = append(lines, field("Tags", strings.Join(tags, " ")))
	}
	return m.renderSection(m.loc.T("monitor.detail_identity", nil), "", lines, width)
}

func (m Model) renderBillingSection(s node.Summary, width int) string {
	price := card.PriceText(m.loc, s.Price)
	if price == "" {
		price = "-"
	}
	lines := []string{field("Price", price)}

	expiry := "-"
	if s.Expiry != nil {
		expiry = card.ToneStyle(s.Expiry.Tone).Render(card.ExpiryText(m.loc, *s.Expiry))
	}
	lines = append(lines, field("Expiry", expiry))

	return m.renderSection(m.loc.T("monitor.detail_billing", nil), "", lines, width)
}

func (m Model) renderUsageSection(s node.Summary, width int) string {
	title := m.loc.T("monitor.detail_usage", nil)
	if !s.Reported {
		return m.renderSection(title, "",
			[]string{card.MutedStyle.Render(m.loc.T("nodeCard.never_reported", nil))}, width)
	}

	barWidth := width - 30
	if barWidth < 10 {
		barWidth = 10
	}
	usage := func(key string, pct float64) string {
		tone := node.UsageTone(pct)
		return fmt.Sprintf("%-6s %s %s",
			m.loc.T(key, nil),
			card.ThinBar(barWidth, pct, tone),
			card.ToneStyle(tone).Render(fmt.Sprintf("%6s", card.FormatPercent(pct))))
	}

	lines := []string{
		usage("nodeCard.cpu", s.CPUPercent),
		usage("nodeCard.ram", s.MemPercent),
		usage("nodeCard.disk", s.DiskPercent),
		fmt.Sprintf("%-6s %s", m.loc.T("nodeCard.load", nil),
			card.ToneStyle(node.LoadTone(s.Load1)).Render(fmt.Sprintf("%.2f", s.Load1))),
	}

	value := ""
	if s.HighUsage {
		value = m.loc.T("nodeCard.high", nil)
	}
	return m.renderSection(title, value, lines, width)
}

func (m Model) renderNetworkSection(s node.Summary, width int) string {
	q := s.Traffic
	lines := []string{
		fmt.Sprintf("↑ %s  ↓ %s", card.FormatRate(s.NetUpRate), card.FormatRate(s.NetDownRate)),
		fmt.Sprintf("%s ↑ %s  ↓ %s", m.loc.T("nodeCard.total", nil),
			card.FormatBytes(q.TotalUp), card.FormatBytes(q.TotalDown)),
	}

	value := ""
	if q.Limited {
		barWidth := width - 30
		if barWidth < 10 {
			barWidth = 10
		}
		lines = append(lines, fmt.Sprintf("%s %s %s / %s",
			m.loc.T("nodeCard.traffic", nil),
			card.ThinBar(barWidth, q.Percent, q.Tone),
			card.FormatBytes(q.UsedBytes),
			card.FormatBytes(q.Limit)))
		value = card.FormatPercent(q.Percent)
	}

	return m.renderSection(m.loc.T("monitor.detail_network", nil), value, lines, width)
}

func (m Model) renderHistorySection(width int) string {
	title := m.loc.T("monitor.detail_history", nil)
	samples := m.history.CPU(m.detailUUID, detailHistorySamples)
	if len(samples) == 0 {
		return m.renderSection(title, "", []string{card.MutedStyle.Render("-")}, width)
	}

	sparkWidth := width - 4
	if sparkWidth > detailHistorySamples {
		sparkWidth = detailHistorySamples
	}
	value := fmt.Sprintf("%d samples", len(samples))
	return m.renderSection(title, value, []string{ui.RenderPercentSparkline(samples, sparkWidth)}, width)
}

// renderDetailFooter renders navigation hints for the detail view.
func (m Model) renderDetailFooter() string {
	hints := []string{
		m.loc.T("monitor.hint_back", nil),
		m.loc.T("monitor.hint_refresh", nil),
		m.loc.T("monitor.hint_quit", nil),
	}
	return FooterStyle.Render(strings.Join(hints, " | "))
}

func field(label, value string) string {
	return card.LabelStyle.Render(fmt.Sprintf("%-9s", label)) + " " + value
}
