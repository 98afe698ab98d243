package monitor

import tea "github.com/charmbracelet/bubbletea"

// SortOrder defines how nodes are sorted in the dashboard.
type SortOrder int

const (
	// SortByDefault puts online nodes first, then keeps snapshot order.
	SortByDefault SortOrder = iota
	SortByName
	SortByCPU
	SortByExpiry
	SortByTraffic
)

const sortOrderCount = 5

// String returns a short label for the sort order.
func (s SortOrder) String() string {
	switch s {
	case SortByDefault:
		return "default"
	case SortByName:
		return "name"
	case SortByCPU:
		return "CPU"
	case SortByExpiry:
		return "expiry"
	case SortByTraffic:
		return "traffic"
	default:
		return "default"
	}
}

// Next cycles to the next sort order.
func (s SortOrder) Next() SortOrder {
	return SortOrder((int(s) + 1) % sortOrderCount)
}

// ViewMode defines the current display mode of the dashboard.
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewDetail
)

// Key bindings as constants for consistency.
const (
	KeyQuit        = "q"
	KeyQuitAlt     = "ctrl+c"
	KeyRefresh     = "r"
	KeyCycleSort   = "s"
	KeySelectPrev  = "up"
	KeySelectPrevK = "k"
	KeySelectNext  = "down"
	KeySelectNextJ = "j"
	KeySelectFirst = "home"
	KeySelectLast  = "end"
	KeyOpen        = "enter"
	KeyBack        = "esc"
	KeyToggleHelp  = "?"
)

// HandleKeyMsg processes keyboard input. It returns false for keys it leaves
// to the detail viewport.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	if key == KeyToggleHelp {
		m.showHelp = !m.showHelp
		return true, nil
	}

	if m.showHelp && key == KeyBack {
		m.showHelp = false
		return true, nil
	}

	switch key {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		return true, tea.Quit

	case KeyRefresh:
		return true, m.loadCmd()
	}

	if m.viewMode == ViewDetail {
		if key == KeyBack {
			m.closeDetail()
			return true, nil
		}
		// Everything else scrolls the viewport.
		return false, nil
	}

	switch key {
	case KeyCycleSort:
		m.sortOrder = m.sortOrder.Next()
		m.sortNodes()
		return true, nil

	case KeySelectPrev, KeySelectPrevK:
		if m.selected > 0 {
			m.selected--
		}
		return true, nil

	case KeySelectNext, KeySelectNextJ:
		if m.selected < len(m.order)-1 {
			m.selected++
		}
		return true, nil

	case KeySelectFirst:
		m.selected = 0
		return true, nil

	case KeySelectLast:
		if len(m.order) > 0 {
			m.selected = len(m.order) - 1
		}
		return true, nil

	case KeyOpen:
		if uuid := m.SelectedUUID(); uuid != "" {
			m.presenter.Open(uuid)
			m.followRoute()
		}
		return true, nil
	}

	return false, nil
}
