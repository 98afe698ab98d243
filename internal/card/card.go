package card

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/rileyhilliard/nodeboard/internal/i18n"
	"github.com/rileyhilliard/nodeboard/internal/node"
)

// Layout is the responsive card layout chosen from the available width.
type Layout int

const (
	// LayoutNarrow is for widths below 80 columns: identity and platform rows plus a
	// stacked telemetry footer.
	LayoutNarrow Layout = iota
	// LayoutMedium is for 80-119 columns: inline telemetry, no tags.
	LayoutMedium
	// LayoutWide is for 120 columns and up: inline telemetry and tags.
	LayoutWide
)

// Layout breakpoints in terminal columns.
const (
	MediumMinWidth = 80
	WideMinWidth   = 120

	// MinCardWidth is the smallest card that still fits a name and a badge.
	MinCardWidth = 24

	trafficBarWidth = 20
)

// LayoutFor returns the layout for a given width.
func LayoutFor(width int) Layout {
	switch {
	case width >= WideMinWidth:
		return LayoutWide
	case width >= MediumMinWidth:
		return LayoutMedium
	default:
		return LayoutNarrow
	}
}

func (l Layout) String() string {
	switch l {
	case LayoutWide:
		return "wide"
	case LayoutMedium:
		return "medium"
	default:
		return "narrow"
	}
}

// Navigator receives the route of a card the user activated.
type Navigator interface {
	Navigate(route string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(route string)

// Navigate calls f(route).
func (f NavigatorFunc) Navigate(route string) { f(route) }

// Node is the input a card is built from. Live is nil when the node never
// reported.
type Node struct {
	Meta   node.Metadata
	Live   *node.Telemetry
	Online bool
}

// Options control a single render.
type Options struct {
	// Width is the total card width including its border.
	Width int
	// Now is the instant expiry is measured against.
	Now      time.Time
	Selected bool
}

// Presenter renders node cards. It holds no per-node state; every render
// derives its summary from scratch.
type Presenter struct {
	loc i18n.Localizer
	nav Navigator
}

// NewPresenter creates a presenter. nav may be nil, in which case Open does
// nothing.
func NewPresenter(loc i18n.Localizer, nav Navigator) *Presenter {
	return &Presenter{loc: loc, nav: nav}
}

// Localizer returns the presenter's localizer.
func (p *Presenter) Localizer() i18n.Localizer {
	return p.loc
}

// Open hands the details route of uuid to the navigator.
func (p *Presenter) Open(uuid string) {
	if p.nav == nil {
		return
	}
	p.nav.Navigate(node.DetailsRoute(uuid))
}

// Render derives the summary of n and renders its card.
func (p *Presenter) Render(n Node, opts Options) string {
	return p.RenderSummary(n.Meta, node.Summarize(n.Meta, n.Live, opts.Now), n.Online, opts)
}

// RenderSummary renders a card for an already derived summary.
func (p *Presenter) RenderSummary(meta node.Metadata, s node.Summary, online bool, opts Options) string {
	width := opts.Width
	if width < MinCardWidth {
		width = MinCardWidth
	}
	layout := LayoutFor(width)

	style := CardStyle
	if opts.Selected {
		style = CardSelectedStyle
	}
	if !online {
		style = style.Faint(true)
	}
	// Border takes two columns, padding another two.
	style = style.Width(width - 2)
	inner := width - 4

	var lines []string
	lines = append(lines, p.headerLines(meta, s, online, inner)...)

	if info := p.infoLine(meta, s, layout); info != "" {
		lines = append(lines, info)
	}

	lines = append(lines, renderDivider(inner))

	if layout == LayoutNarrow {
		lines = append(lines, p.stackedTelemetry(s)...)
	} else {
		lines = append(lines, p.inlineTelemetry(s, layout)...)
	}

	if !s.Reported {
		lines = append(lines, MutedStyle.Render(p.loc.T("nodeCard.never_reported", nil)))
	}

	if s.Message != "" {
		alert := ToneStyle(node.ToneWarning).Bold(true).Render(AlertGlyph)
		lines = append(lines, alert+" "+ToneStyle(node.ToneWarning).Render(s.Message))
	}

	for i, line := range lines {
		lines[i] = ansi.Truncate(line, inner, "…")
	}

	return style.Render(strings.Join(lines, "\n"))
}

// headerLines renders the identity row. Badges share the row with the name
// when they fit and wrap below it otherwise.
func (p *Presenter) headerLines(meta node.Metadata, s node.Summary, online bool, width int) []string {
	glyph := ToneStyle(node.ToneNormal).Render(StatusOnline)
	nameStyle := NameStyle
	if !online {
		glyph = MutedStyle.Render(StatusOffline)
		nameStyle = nameStyle.Foreground(ColorTextMuted)
	}

	name := s.Name
	if name == "" {
		name = s.UUID
	}
	left := glyph + " "
	if flag := RegionFlag(meta.Region); flag != "" {
		left += flag + " "
	}
	left += nameStyle.Render(name)

	right := strings.Join(p.badges(s, online), " ")
	if right == "" {
		return []string{left}
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap >= 1 {
		return []string{left + strings.Repeat(" ", gap) + right}
	}
	return []string{left, right}
}

func (p *Presenter) badges(s node.Summary, online bool) []string {
	var out []string
	if online {
		out = append(out, Badge(p.loc.T("nodeCard.online", nil), ColorHealthy))
		if s.HighUsage {
			out = append(out, Badge(p.loc.T("nodeCard.high", nil), ToneColor(node.ToneWarning)))
		}
	} else {
		out = append(out, Badge(p.loc.T("nodeCard.offline", nil), ColorTextMuted))
	}
	if text := PriceText(p.loc, s.Price); text != "" {
		out = append(out, Badge(text, ColorTextSecondary))
	}
	if s.Expiry != nil {
		out = append(out, Badge(ExpiryText(p.loc, *s.Expiry), ToneColor(s.Expiry.Tone)))
	}
	return out
}

// infoLine shows os/arch, plus tags in the wide layout.
func (p *Presenter) infoLine(meta node.Metadata, s node.Summary, layout Layout) string {
	var parts []string
	if platform := joinNonEmpty(" · ", meta.OS, meta.Arch); platform != "" {
		parts = append(parts, MutedStyle.Render(platform))
	}
	if layout == LayoutWide {
		for _, t := range s.Tags {
			parts = append(parts, Badge(t.Label, TagColor(t.Color)))
		}
	}
	return strings.Join(parts, "  ")
}

// inlineTelemetry renders usage on one row and network plus traffic below.
func (p *Presenter) inlineTelemetry(s node.Summary, layout Layout) []string {
	usage := strings.Join([]string{
		p.metric("nodeCard.cpu", FormatPercent(s.CPUPercent), node.UsageTone(s.CPUPercent)),
		p.metric("nodeCard.ram", FormatPercent(s.MemPercent), node.UsageTone(s.MemPercent)),
		p.metric("nodeCard.disk", FormatPercent(s.DiskPercent), node.UsageTone(s.DiskPercent)),
		p.metric("nodeCard.load", fmt.Sprintf("%.2f", s.Load1), node.LoadTone(s.Load1)),
	}, "  ")

	lines := []string{usage}

	q := s.Traffic
	if q.Limited {
		traffic := p.metric("nodeCard.traffic", FormatPercent(q.Percent), q.Tone) + " " +
			ValueStyle.Render(FormatBytes(q.UsedBytes)+" / "+FormatBytes(q.Limit))
		if layout == LayoutWide {
			traffic += " " + ThinBar(trafficBarWidth, q.Percent, q.Tone)
		}
		lines = append(lines, traffic)
	}
	lines = append(lines, p.rates(s)+"  "+p.totals(q))
	return lines
}

// stackedTelemetry renders the narrow footer, one short row per pair.
func (p *Presenter) stackedTelemetry(s node.Summary) []string {
	pct := func(v float64) string { return fmt.Sprintf("%.0f%%", v) }

	lines := []string{
		p.metric("nodeCard.cpu", pct(s.CPUPercent), node.UsageTone(s.CPUPercent), ":") + "  " +
			p.metric("nodeCard.ram", pct(s.MemPercent), node.UsageTone(s.MemPercent), ":"),
		p.metric("nodeCard.disk", pct(s.DiskPercent), node.UsageTone(s.DiskPercent), ":") + "  " +
			p.metric("nodeCard.load", fmt.Sprintf("%.2f", s.Load1), node.LoadTone(s.Load1), ":"),
		p.rates(s),
	}

	q := s.Traffic
	if q.Limited {
		lines = append(lines, p.metric("nodeCard.traffic", pct(q.Percent), q.Tone, ":")+" "+
			ValueStyle.Render("("+FormatBytes(q.UsedBytes)+"/"+FormatBytes(q.Limit)+")"))
	}
	return append(lines, p.totals(q))
}

// rates renders the current throughput, "↑x/s ↓y/s".
func (p *Presenter) rates(s node.Summary) string {
	return LabelStyle.Render("↑") + ValueStyle.Render(FormatRate(s.NetUpRate)) + " " +
		LabelStyle.Render("↓") + ValueStyle.Render(FormatRate(s.NetDownRate))
}

// totals renders the cumulative counters, "Total ↑x ↓y".
func (p *Presenter) totals(q node.TrafficQuota) string {
	return LabelStyle.Render(p.loc.T("nodeCard.total", nil)) + " " +
		LabelStyle.Render("↑") + ValueStyle.Render(FormatBytes(q.TotalUp)) + " " +
		LabelStyle.Render("↓") + ValueStyle.Render(FormatBytes(q.TotalDown))
}

// metric renders "Label value" with the value in the given tone. An optional
// suffix is appended to the label, e.g. ":".
func (p *Presenter) metric(key, value string, tone node.Tone, suffix ...string) string {
	label := p.loc.T(key, nil) + strings.Join(suffix, "")
	return LabelStyle.Render(label) + " " + ToneStyle(tone).Render(value)
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}
