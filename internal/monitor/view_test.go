package monitor

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/rileyhilliard/nodeboard/internal/i18n"
	"github.com/rileyhilliard/nodeboard/internal/snapshot"
	"github.com/stretchr/testify/assert"
)

func TestView_LoadingBeforeFirstSnapshot(t *testing.T) {
	m, _, _ := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "Loading snapshot...")
	assert.Contains(t, view, "0 nodes | 0 online")
}

func TestView_Dashboard(t *testing.T) {
	m := loaded(t)

	view := m.View()
	for _, want := range []string{
		"nodeboard",
		"3 nodes | 2 online | updated just now",
		"sort: default",
		"alpha", "bravo", "charlie",
		"q quit", "enter details",
	} {
		assert.Contains(t, view, want)
	}
}

func TestView_CardsFollowDisplayOrder(t *testing.T) {
	m := loaded(t)
	view := m.View()

	c := strings.Index(view, "charlie")
	a := strings.Index(view, "alpha")
	b := strings.Index(view, "bravo")
	assert.True(t, c < a && a < b, "cards should render in display order")
}

func TestView_UpdatedAgo(t *testing.T) {
	m, clock, _ := newTestModel(t)
	m, _ = update(t, m, snapshotMsg{snap: testSnapshot()})
	clock.now = clock.now.Add(12 * time.Second)

	assert.Contains(t, m.View(), "updated 12s ago")
}

func TestView_ErrorLineKeepsCards(t *testing.T) {
	m := loaded(t)
	m, _ = update(t, m, snapshotMsg{err: errors.New("permission denied\nsee the log")})

	view := m.View()
	assert.Contains(t, view, "permission denied")
	assert.NotContains(t, view, "see the log", "only the headline is shown")
	assert.Contains(t, view, "charlie")
}

func TestView_NoNodes(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = update(t, m, snapshotMsg{snap: &snapshot.Snapshot{}})

	assert.Contains(t, m.View(), "No nodes in snapshot")
}

func TestView_Localized(t *testing.T) {
	m := NewModel(&fakeSource{}, Options{
		Now:       func() time.Time { return testNow },
		Localizer: i18n.MustLoad("zh-CN"),
	})
	m, _ = update(t, m, snapshotMsg{snap: testSnapshot()})

	view := m.View()
	assert.Contains(t, view, "3 个节点")
	assert.Contains(t, view, "在线")
}

func TestView_HelpOverlay(t *testing.T) {
	m := loaded(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = update(t, m, runes("?"))

	view := m.View()
	assert.Contains(t, view, "Keyboard Shortcuts")
	assert.Contains(t, view, "Open node details")
	assert.NotContains(t, view, "charlie")
	assert.NotContains(t, view, "help.", "every description resolves to catalog text")
}

func TestView_HelpOverlayLocalized(t *testing.T) {
	m := NewModel(&fakeSource{}, Options{
		Now:       func() time.Time { return testNow },
		Localizer: i18n.MustLoad("zh-CN"),
	})
	m, _ = update(t, m, snapshotMsg{snap: testSnapshot()})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = update(t, m, runes("?"))

	view := m.View()
	assert.Contains(t, view, "快捷键")
	assert.Contains(t, view, "打开节点详情")
	assert.NotContains(t, view, "Keyboard Shortcuts")
	assert.NotContains(t, view, "Open node details")
}

func TestCardGeometry(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		wantWidth  int
		wantPerRow int
	}{
		{"before first resize", 0, defaultWidth, 1},
		{"narrow", 60, 60, 1},
		{"wide single column", 140, 140, 1},
		{"two medium columns", 160, 80, 2},
		{"very wide", 250, 125, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Model{width: tt.width}
			w, perRow := m.cardGeometry()
			assert.Equal(t, tt.wantWidth, w)
			assert.Equal(t, tt.wantPerRow, perRow)
		})
	}
}

func TestView_TwoColumnsStayWithinWidth(t *testing.T) {
	m := loaded(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 170, Height: 50})

	for _, line := range strings.Split(m.renderCards(), "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 170)
	}
}
