package monitor

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/nodeboard/internal/card"
	"github.com/rileyhilliard/nodeboard/internal/i18n"
	"github.com/rileyhilliard/nodeboard/internal/logger"
	"github.com/rileyhilliard/nodeboard/internal/node"
	"github.com/rileyhilliard/nodeboard/internal/snapshot"
	"github.com/rileyhilliard/nodeboard/internal/ui"
)

// Defaults used when Options leave them unset.
const (
	DefaultInterval = 2 * time.Second
	DefaultTimeout  = 5 * time.Second
)

// Options configure a dashboard Model.
type Options struct {
	Interval  time.Duration
	Timeout   time.Duration
	Localizer i18n.Localizer
	Logger    logger.Logger
	// Now is the clock used for expiry badges and "updated" times.
	Now func() time.Time
}

// router is the Navigator handed to the card presenter. Update reads the
// last route right after opening a card.
type router struct {
	route string
}

func (r *router) Navigate(route string) {
	r.route = route
}

// Model is the Bubble Tea model for the node dashboard.
type Model struct {
	source    snapshot.Source
	presenter *card.Presenter
	loc       i18n.Localizer
	router    *router
	history   *History
	log       logger.Logger
	now       func() time.Time

	snap       *snapshot.Snapshot
	meta       map[string]node.Metadata
	order      []string // uuids in display order
	selected   int
	detailUUID string
	lastUpdate time.Time
	loadErr    error

	width     int
	height    int
	interval  time.Duration
	timeout   time.Duration
	quitting  bool
	sortOrder SortOrder
	viewMode  ViewMode
	showHelp  bool

	detailViewport viewport.Model
	viewportReady  bool

	// loading animates until the first snapshot arrives.
	loading ui.SpinnerComponent
}

// tickMsg signals a periodic reload.
type tickMsg time.Time

// snapshotMsg carries the result of one snapshot load.
type snapshotMsg struct {
	snap *snapshot.Snapshot
	err  error
}

// NewModel creates a dashboard that reads from source.
func NewModel(source snapshot.Source, opts Options) Model {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Localizer == nil {
		opts.Localizer = i18n.MustLoad("en")
	}
	if opts.Logger == nil {
		opts.Logger = logger.Noop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	loading := ui.NewSpinnerComponent(opts.Localizer.T("monitor.loading", nil))
	loading.Start()

	r := &router{}
	return Model{
		source:    source,
		presenter: card.NewPresenter(opts.Localizer, r),
		loc:       opts.Localizer,
		router:    r,
		history:   NewHistory(DefaultHistorySize),
		log:       opts.Logger,
		now:       opts.Now,
		meta:      make(map[string]node.Metadata),
		interval:  opts.Interval,
		timeout:   opts.Timeout,
		sortOrder: SortByDefault,
		loading:   loading,
	}
}

// Init starts the reload timer and loads the first snapshot.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loading.Tick(),
		m.tickCmd(),
		m.loadCmd(),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}
		if m.viewMode == ViewDetail && m.viewportReady {
			var vpCmd tea.Cmd
			m.detailViewport, vpCmd = m.detailViewport.Update(msg)
			return m, vpCmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Header and footer take the rest.
		headerHeight := 3
		footerHeight := 2
		viewportHeight := m.height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.viewportReady {
			m.detailViewport = viewport.New(m.width, viewportHeight)
			m.detailViewport.YPosition = headerHeight
			m.viewportReady = true
		} else {
			m.detailViewport.Width = m.width
			m.detailViewport.Height = viewportHeight
		}

		if m.viewMode == ViewDetail {
			m.updateDetailViewportContent()
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.loading, cmd = m.loading.Update(msg)
		return m, cmd

	case tickMsg:
		return m, tea.Batch(m.tickCmd(), m.loadCmd())

	case snapshotMsg:
		m.applySnapshot(msg)
		if m.viewMode == ViewDetail {
			m.updateDetailViewportContent()
		}
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	if m.viewMode == ViewDetail {
		return m.renderDetailView()
	}
	return m.renderDashboard()
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// loadCmd reads the snapshot off the update loop, bounded by the timeout.
func (m Model) loadCmd() tea.Cmd {
	source, timeout := m.source, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		snap, err := source.Load(ctx)
		return snapshotMsg{snap: snap, err: err}
	}
}

// applySnapshot swaps in a freshly loaded snapshot. A failed load keeps the
// previous snapshot on screen and only records the error.
func (m *Model) applySnapshot(msg snapshotMsg) {
	if m.loading.Active() {
		if msg.err != nil {
			m.loading.Fail()
		} else {
			m.loading.Success()
		}
	}

	if msg.err != nil {
		m.loadErr = msg.err
		m.log.Warn("snapshot reload failed: %v", msg.err)
		return
	}

	m.loadErr = nil
	m.snap = msg.snap
	m.lastUpdate = m.now()

	m.meta = make(map[string]node.Metadata, len(m.snap.Nodes))
	uuids := make([]string, 0, len(m.snap.Nodes))
	for _, n := range m.snap.Nodes {
		m.meta[n.UUID] = n
		uuids = append(uuids, n.UUID)

		if live := m.snap.Telemetry(n.UUID); live != nil {
			s := node.Summarize(n, live, m.lastUpdate)
			m.history.Push(n.UUID, s.CPUPercent, s.MemPercent)
		}
	}
	m.history.Retain(uuids)

	selectedUUID := m.SelectedUUID()
	m.order = uuids
	m.sortNodes()
	m.selectUUID(selectedUUID)

	if m.viewMode == ViewDetail {
		if _, ok := m.meta[m.detailUUID]; !ok {
			m.closeDetail()
		}
	}
}

// followRoute acts on the route the presenter just navigated to.
func (m *Model) followRoute() {
	route := m.router.route
	m.router.route = ""

	uuid, ok := node.ParseDetailsRoute(route)
	if !ok {
		m.log.Debug("ignoring route %q", route)
		return
	}
	if _, known := m.meta[uuid]; !known {
		return
	}

	m.detailUUID = uuid
	m.viewMode = ViewDetail
	if m.viewportReady {
		m.detailViewport.GotoTop()
	}
	m.updateDetailViewportContent()
}

func (m *Model) closeDetail() {
	m.viewMode = ViewList
	m.detailUUID = ""
}

// summary derives the summary for uuid at the current time.
func (m Model) summary(uuid string) node.Summary {
	return node.Summarize(m.meta[uuid], m.snap.Telemetry(uuid), m.now())
}

// OnlineCount returns the number of nodes reported online.
func (m Model) OnlineCount() int {
	if m.snap == nil {
		return 0
	}
	return m.snap.OnlineCount()
}

// SelectedUUID returns the uuid of the selected node, or "".
func (m Model) SelectedUUID() string {
	if m.selected >= 0 && m.selected < len(m.order) {
		return m.order[m.selected]
	}
	return ""
}

// DetailUUID returns the node shown in the detail view, or "".
func (m Model) DetailUUID() string {
	return m.detailUUID
}

// Mode returns the current view mode.
func (m Model) Mode() ViewMode {
	return m.viewMode
}

// LastError returns the error of the most recent failed reload, or nil once
// a reload succeeds.
func (m Model) LastError() error {
	return m.loadErr
}

// SecondsSinceUpdate returns how many seconds have passed since the last
// successful reload.
func (m Model) SecondsSinceUpdate() int {
	if m.lastUpdate.IsZero() {
		return 0
	}
	return int(m.now().Sub(m.lastUpdate).Seconds())
}

func (m *Model) selectUUID(uuid string) {
	if uuid != "" {
		for i, id := range m.order {
			if id == uuid {
				m.selected = i
				return
			}
		}
	}
	if m.selected >= len(m.order) {
		m.selected = len(m.order) - 1
	}
	if m.selected < 0 && len(m.order) > 0 {
		m.selected = 0
	}
}

// sortNodes sorts the display order and keeps the selected node selected.
func (m *Model) sortNodes() {
	if len(m.order) == 0 || m.snap == nil {
		return
	}
	selected := m.SelectedUUID()

	position := make(map[string]int, len(m.snap.Nodes))
	for i, n := range m.snap.Nodes {
		position[n.UUID] = i
	}
	summaries := make(map[string]node.Summary, len(m.order))
	for _, uuid := range m.order {
		summaries[uuid] = m.summary(uuid)
	}

	byPosition := func(a, b string) bool { return position[a] < position[b] }

	var less func(a, b string) bool
	switch m.sortOrder {
	case SortByName:
		less = func(a, b string) bool {
			na, nb := strings.ToLower(m.meta[a].Name), strings.ToLower(m.meta[b].Name)
			if na != nb {
				return na < nb
			}
			return byPosition(a, b)
		}

	case SortByCPU:
		less = func(a, b string) bool {
			sa, sb := summaries[a], summaries[b]
			// Nodes that never reported go last.
			if sa.Reported != sb.Reported {
				return sa.Reported
			}
			if sa.CPUPercent != sb.CPUPercent {
				return sa.CPUPercent > sb.CPUPercent
			}
			return byPosition(a, b)
		}

	case SortByExpiry:
		less = func(a, b string) bool {
			ea, eb := summaries[a].Expiry, summaries[b].Expiry
			if (ea == nil) != (eb == nil) {
				return ea != nil
			}
			if ea != nil && ea.DaysRemaining != eb.DaysRemaining {
				return ea.DaysRemaining < eb.DaysRemaining
			}
			return byPosition(a, b)
		}

	case SortByTraffic:
		less = func(a, b string) bool {
			ta, tb := summaries[a].Traffic, summaries[b].Traffic
			if ta.Limited != tb.Limited {
				return ta.Limited
			}
			if ta.Percent != tb.Percent {
				return ta.Percent > tb.Percent
			}
			return byPosition(a, b)
		}

	default:
		less = func(a, b string) bool {
			oa, ob := m.snap.IsOnline(a), m.snap.IsOnline(b)
			if oa != ob {
				return oa
			}
			return byPosition(a, b)
		}
	}

	sort.SliceStable(m.order, func(i, j int) bool {
		return less(m.order[i], m.order[j])
	})
	m.selectUUID(selected)
}
