package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SpinnerFrames defines the animation frames (◐ ◓ ◑ ◒) used by SpinnerComponent.
var SpinnerFrames = spinner.Spinner{
	Frames: []string{"◐", "◓", "◑", "◒"},
	FPS:    time.Second / 10, // 100ms per frame
}

// SpinnerComponentState represents the state of a spinner in a Bubble Tea model.
type SpinnerComponentState int

const (
	SpinnerComponentPending SpinnerComponentState = iota
	SpinnerComponentInProgress
	SpinnerComponentSuccess
	SpinnerComponentFailed
)

// SpinnerComponent is a labelled spinner meant to be embedded in a larger
// Bubble Tea model, e.g. while the first snapshot loads.
type SpinnerComponent struct {
	spinner spinner.Model
	Label   string
	State   SpinnerComponentState
}

// NewSpinnerComponent creates a new spinner component with the given label.
func NewSpinnerComponent(label string) SpinnerComponent {
	sp := spinner.New()
	sp.Spinner = SpinnerFrames
	sp.Style = lipgloss.NewStyle().Foreground(ColorSecondary)

	return SpinnerComponent{
		spinner: sp,
		Label:   label,
		State:   SpinnerComponentPending,
	}
}

// Update advances the animation. Ticks are dropped once the spinner stops,
// which ends the tick loop.
func (s SpinnerComponent) Update(msg tea.Msg) (SpinnerComponent, tea.Cmd) {
	if s.State != SpinnerComponentInProgress {
		return s, nil
	}

	if tickMsg, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(tickMsg)
		return s, cmd
	}
	return s, nil
}

// View renders the spinner in its current state.
func (s SpinnerComponent) View() string {
	switch s.State {
	case SpinnerComponentInProgress:
		return s.spinner.View() + " " + s.Label + "..."
	case SpinnerComponentSuccess:
		return s.viewFinal(SymbolSuccess, ColorSuccess)
	case SpinnerComponentFailed:
		return s.viewFinal(SymbolFail, ColorError)
	default:
		return s.viewFinal(SymbolOffline, ColorMuted)
	}
}

func (s SpinnerComponent) viewFinal(symbol string, color lipgloss.Color) string {
	return lipgloss.NewStyle().Foreground(color).Render(symbol) + " " + s.Label
}

// Start transitions the spinner to in-progress state.
func (s *SpinnerComponent) Start() tea.Cmd {
	s.State = SpinnerComponentInProgress
	return s.spinner.Tick
}

// Tick returns the command that drives the animation.
func (s SpinnerComponent) Tick() tea.Cmd {
	return s.spinner.Tick
}

// Success transitions the spinner to success state.
func (s *SpinnerComponent) Success() {
	s.State = SpinnerComponentSuccess
}

// Fail transitions the spinner to failed state.
func (s *SpinnerComponent) Fail() {
	s.State = SpinnerComponentFailed
}

// Active reports whether the spinner is still animating.
func (s SpinnerComponent) Active() bool {
	return s.State == SpinnerComponentInProgress
}
