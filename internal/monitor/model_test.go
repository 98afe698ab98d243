package monitor

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/nodeboard/internal/logger"
	"github.com/rileyhilliard/nodeboard/internal/node"
	"github.com/rileyhilliard/nodeboard/internal/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

// fakeSource returns the queued results in order, repeating the last one.
type fakeSource struct {
	results []snapshotMsg
	calls   int
}

func (f *fakeSource) Load(ctx context.Context) (*snapshot.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	i := f.calls
	if i >= len(f.results) {
		i = len(f.results) - 1
	}
	f.calls++
	return f.results[i].snap, f.results[i].err
}

// testClock is a settable clock for Options.Now.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

// testSnapshot has three nodes listed offline-first so default ordering is
// observable:
//   - bravo: offline, never reported, no expiry
//   - charlie: online, CPU 95, expires in 100 days, no traffic limit
//   - alpha: online, CPU 20, expires in 3 days, traffic 50% of a sum quota
func testSnapshot() *snapshot.Snapshot {
	return &snapshot.Snapshot{
		Nodes: []node.Metadata{
			{UUID: "b", Name: "bravo", Region: "US"},
			{
				UUID: "c", Name: "charlie", Region: "JP",
				MemTotal: 1000, DiskTotal: 1000,
				ExpiredAt: testNow.AddDate(0, 0, 100).Format(time.RFC3339),
			},
			{
				UUID: "a", Name: "alpha", Region: "DE", OS: "debian", Arch: "amd64",
				Price: 5, Currency: "$", BillingCycle: 30,
				MemTotal: 1000, DiskTotal: 1000,
				TrafficLimit: 1000, TrafficLimitType: node.TrafficLimitSum,
				ExpiredAt: testNow.AddDate(0, 0, 3).Format(time.RFC3339),
				Tags:      "prod<red>;edge",
			},
		},
		Live: map[string]*node.Telemetry{
			"c": {CPU: node.CPUReport{Usage: 95}, RAM: node.UsageReport{Used: 500}},
			"a": {
				CPU:     node.CPUReport{Usage: 20},
				RAM:     node.UsageReport{Used: 250},
				Network: node.NetworkReport{TotalUp: 200, TotalDown: 300},
				Message: "disk check pending",
			},
		},
		Online: []string{"c", "a"},
	}
}

func newTestModel(t *testing.T, results ...snapshotMsg) (Model, *testClock, *fakeSource) {
	t.Helper()
	clock := &testClock{now: testNow}
	src := &fakeSource{results: results}
	if len(results) == 0 {
		src.results = []snapshotMsg{{snap: testSnapshot()}}
	}
	m := NewModel(src, Options{Now: clock.Now, Logger: logger.NewBufferLogger()})
	return m, clock, src
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok, "Update should return a Model")
	return out, cmd
}

func loaded(t *testing.T) Model {
	t.Helper()
	m, _, _ := newTestModel(t)
	m, _ = update(t, m, snapshotMsg{snap: testSnapshot()})
	return m
}

func TestNewModel_Defaults(t *testing.T) {
	m := NewModel(&fakeSource{}, Options{})

	assert.Equal(t, DefaultInterval, m.interval)
	assert.Equal(t, DefaultTimeout, m.timeout)
	assert.NotNil(t, m.loc)
	assert.NotNil(t, m.log)
	assert.NotNil(t, m.now)
	assert.NotNil(t, m.history)
	assert.Equal(t, SortByDefault, m.sortOrder)
	assert.Equal(t, ViewList, m.Mode())
	assert.True(t, m.loading.Active())
	assert.Empty(t, m.SelectedUUID())
}

func TestNewModel_KeepsOptions(t *testing.T) {
	m := NewModel(&fakeSource{}, Options{Interval: 10 * time.Second, Timeout: time.Second})

	assert.Equal(t, 10*time.Second, m.interval)
	assert.Equal(t, time.Second, m.timeout)
}

func TestModel_Init(t *testing.T) {
	m, _, _ := newTestModel(t)
	assert.NotNil(t, m.Init())
}

func TestModel_LoadCmd(t *testing.T) {
	snap := testSnapshot()
	m, _, src := newTestModel(t, snapshotMsg{snap: snap})

	msg := m.loadCmd()()

	got, ok := msg.(snapshotMsg)
	require.True(t, ok)
	assert.NoError(t, got.err)
	assert.Same(t, snap, got.snap)
	assert.Equal(t, 1, src.calls)
}

func TestModel_ApplySnapshot(t *testing.T) {
	m := loaded(t)

	assert.Equal(t, []string{"c", "a", "b"}, m.order, "online nodes first, then snapshot order")
	assert.Equal(t, 2, m.OnlineCount())
	assert.Equal(t, "c", m.SelectedUUID())
	assert.NoError(t, m.LastError())
	assert.False(t, m.loading.Active())
	assert.Equal(t, testNow, m.lastUpdate)
}

func TestModel_ApplySnapshot_RecordsHistoryForReportedNodes(t *testing.T) {
	m := loaded(t)
	m, _ = update(t, m, snapshotMsg{snap: testSnapshot()})

	assert.Equal(t, []float64{95, 95}, m.history.CPU("c", 10))
	assert.Equal(t, []float64{50, 50}, m.history.RAM("c", 10))
	assert.Equal(t, []float64{20, 20}, m.history.CPU("a", 10))
	assert.Empty(t, m.history.CPU("b", 10), "never-reported nodes have no history")
}

func TestModel_ApplySnapshot_DropsHistoryOfRemovedNodes(t *testing.T) {
	m := loaded(t)

	smaller := testSnapshot()
	smaller.Nodes = smaller.Nodes[:2] // drop alpha
	m, _ = update(t, m, snapshotMsg{snap: smaller})

	assert.Empty(t, m.history.CPU("a", 10))
	assert.Equal(t, 2, m.history.Count("c"), "history keeps one sample per reload")
}

func TestModel_FailedReloadKeepsPreviousSnapshot(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = update(t, m, snapshotMsg{snap: testSnapshot()})
	before := m.snap

	loadErr := errors.New("snapshot file vanished")
	m, _ = update(t, m, snapshotMsg{err: loadErr})

	assert.Same(t, before, m.snap)
	assert.Equal(t, []string{"c", "a", "b"}, m.order)
	assert.ErrorIs(t, m.LastError(), loadErr)

	log, ok := m.log.(*logger.BufferLogger)
	require.True(t, ok)
	assert.True(t, log.Contains("warn", "snapshot file vanished"))

	m, _ = update(t, m, snapshotMsg{snap: testSnapshot()})
	assert.NoError(t, m.LastError(), "a successful reload clears the error")
}

func TestModel_FirstLoadFailureStopsSpinner(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = update(t, m, snapshotMsg{err: errors.New("boom")})

	assert.False(t, m.loading.Active())
	assert.Nil(t, m.snap)
}

func TestModel_SelectionFollowsNodeAcrossReloads(t *testing.T) {
	m := loaded(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, "a", m.SelectedUUID())

	// charlie goes offline, so alpha moves to the top.
	snap := testSnapshot()
	snap.Online = []string{"a"}
	m, _ = update(t, m, snapshotMsg{snap: snap})

	assert.Equal(t, []string{"a", "b", "c"}, m.order)
	assert.Equal(t, "a", m.SelectedUUID())
}

func TestModel_SelectionClampsWhenNodesDisappear(t *testing.T) {
	m := loaded(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	require.Equal(t, "b", m.SelectedUUID())

	snap := testSnapshot()
	snap.Nodes = snap.Nodes[1:] // drop bravo
	m, _ = update(t, m, snapshotMsg{snap: snap})

	assert.Equal(t, []string{"c", "a"}, m.order)
	assert.Equal(t, "a", m.SelectedUUID())
}

func TestModel_SortOrders(t *testing.T) {
	tests := []struct {
		order  SortOrder
		expect []string
	}{
		{SortByDefault, []string{"c", "a", "b"}},
		{SortByName, []string{"a", "b", "c"}},
		{SortByCPU, []string{"c", "a", "b"}},
		{SortByExpiry, []string{"a", "c", "b"}},
		{SortByTraffic, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.order.String(), func(t *testing.T) {
			m := loaded(t)
			m.sortOrder = tt.order
			m.sortNodes()
			assert.Equal(t, tt.expect, m.order)
		})
	}
}

func TestModel_SortKeepsSelection(t *testing.T) {
	m := loaded(t)
	require.Equal(t, "c", m.SelectedUUID())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})

	assert.Equal(t, SortByName, m.sortOrder)
	assert.Equal(t, []string{"a", "b", "c"}, m.order)
	assert.Equal(t, "c", m.SelectedUUID())
}

func TestModel_OpenAndCloseDetail(t *testing.T) {
	m := loaded(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ViewDetail, m.Mode())
	assert.Equal(t, "a", m.DetailUUID())
	assert.Empty(t, m.router.route, "the route is consumed once followed")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ViewList, m.Mode())
	assert.Empty(t, m.DetailUUID())
	assert.Equal(t, "a", m.SelectedUUID())
}

func TestModel_DetailClosesWhenNodeDisappears(t *testing.T) {
	m := loaded(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "c", m.DetailUUID())

	snap := testSnapshot()
	snap.Nodes = []node.Metadata{snap.Nodes[0], snap.Nodes[2]}
	m, _ = update(t, m, snapshotMsg{snap: snap})

	assert.Equal(t, ViewList, m.Mode())
	assert.Empty(t, m.DetailUUID())
}

func TestModel_FollowRouteIgnoresUnknownRoutes(t *testing.T) {
	tests := []struct {
		name  string
		route string
	}{
		{"empty", ""},
		{"other page", "/settings"},
		{"unknown node", node.DetailsRoute("nope")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := loaded(t)
			m.router.Navigate(tt.route)
			m.followRoute()

			assert.Equal(t, ViewList, m.Mode())
			assert.Empty(t, m.router.route)
		})
	}
}

func TestModel_TickReloads(t *testing.T) {
	m, _, _ := newTestModel(t)
	_, cmd := update(t, m, tickMsg(testNow))
	assert.NotNil(t, cmd)
}

func TestModel_WindowSize(t *testing.T) {
	m := loaded(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
	assert.True(t, m.viewportReady)
	assert.Equal(t, 120, m.detailViewport.Width)
	assert.Equal(t, 35, m.detailViewport.Height)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 3})
	assert.Equal(t, 60, m.detailViewport.Width)
	assert.Equal(t, 1, m.detailViewport.Height, "viewport keeps at least one row")
}

func TestModel_SecondsSinceUpdate(t *testing.T) {
	m, clock, _ := newTestModel(t)
	assert.Equal(t, 0, m.SecondsSinceUpdate(), "no update yet")

	m, _ = update(t, m, snapshotMsg{snap: testSnapshot()})
	clock.now = clock.now.Add(7 * time.Second)

	assert.Equal(t, 7, m.SecondsSinceUpdate())
}

func TestModel_QuitClearsView(t *testing.T) {
	m := loaded(t)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	assert.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}
