package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dicklesworthstone/bd_board/pkg/board"
	"github.com/Dicklesworthstone/bd_board/pkg/watcher"
)

// RefreshFunc produces a fresh set of board lines from the issue store.
type RefreshFunc func() ([]board.Line, error)

// WatchModel is the bubbletea model for watch mode: it shows the board
// in a scrollable viewport and refreshes when the store changes.
type WatchModel struct {
	theme   Theme
	refresh RefreshFunc
	watch   *watcher.Watcher

	viewport  viewport.Model
	ready     bool
	err       error
	updatedAt time.Time
}

type refreshedMsg struct {
	lines []board.Line
	err   error
}

type storeChangedMsg struct{}

// NewWatchModel creates the watch-mode model. The watcher may be nil,
// in which case only manual refresh (r) is available.
func NewWatchModel(theme Theme, refresh RefreshFunc, w *watcher.Watcher) WatchModel {
	// Inside the TUI the terminal is always in control, so styling
	// stays on regardless of how stdout looked at startup.
	theme.Plain = false
	return WatchModel{theme: theme, refresh: refresh, watch: w}
}

func (m WatchModel) Init() tea.Cmd {
	return tea.Batch(m.refreshCmd(), m.waitForChange())
}

func (m WatchModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		lines, err := m.refresh()
		return refreshedMsg{lines: lines, err: err}
	}
}

func (m WatchModel) waitForChange() tea.Cmd {
	if m.watch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-m.watch.Changed; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}

func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m, m.refreshCmd()
		}

	case tea.WindowSizeMsg:
		headerHeight := 1
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight
		}
		return m, nil

	case storeChangedMsg:
		return m, tea.Batch(m.refreshCmd(), m.waitForChange())

	case refreshedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.updatedAt = time.Now()
			m.viewport.SetContent(RenderLines(m.theme, msg.lines))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m WatchModel) View() string {
	if !m.ready {
		return "loading board..."
	}
	footer := m.theme.Counts.Render(m.footerText())
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m WatchModel) footerText() string {
	if m.err != nil {
		return fmt.Sprintf("error: %v  (r to retry, q to quit)", m.err)
	}
	if m.updatedAt.IsZero() {
		return "watching for changes  (q to quit)"
	}
	return fmt.Sprintf("updated %s  (r to refresh, q to quit)", m.updatedAt.Format("15:04:05"))
}
