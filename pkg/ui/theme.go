// Package ui is the presentation layer: it colors the plain lines the
// board core emits and hosts the watch-mode TUI.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/Dicklesworthstone/bd_board/pkg/model"
)

// Theme maps issue attributes to display styles. It is injected into
// the rendering path so callers can restyle the board without touching
// the core.
type Theme struct {
	// Plain disables all styling (piped output, NO_COLOR, --no-color).
	Plain bool

	Header   lipgloss.Style
	Counts   lipgloss.Style
	Statuses map[model.Status]lipgloss.Style
	Fallback lipgloss.Style
}

// Board palette, matching the bd house colors.
var (
	colorInProgress = lipgloss.Color("#F0C674") // yellow
	colorOpen       = lipgloss.Color("#81A2BE") // blue
	colorDefault    = lipgloss.Color("#C5C8C6") // grey
	colorHeader     = lipgloss.Color("#B5BD68") // green
	colorMuted      = lipgloss.Color("#969896") // grey
)

// DefaultTheme returns the standard board theme. Styling is disabled
// automatically when stdout is not a terminal or NO_COLOR is set.
func DefaultTheme() Theme {
	return Theme{
		Plain:  os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(os.Stdout.Fd())),
		Header: lipgloss.NewStyle().Bold(true).Foreground(colorHeader),
		Counts: lipgloss.NewStyle().Foreground(colorMuted),
		Statuses: map[model.Status]lipgloss.Style{
			model.StatusInProgress: lipgloss.NewStyle().Foreground(colorInProgress),
			model.StatusOpen:       lipgloss.NewStyle().Foreground(colorOpen),
		},
		Fallback: lipgloss.NewStyle().Foreground(colorDefault),
	}
}

// WithOverrides replaces status colors from the board config. Keys are
// status values, values are hex colors.
func (t Theme) WithOverrides(colors map[string]string) Theme {
	if len(colors) == 0 {
		return t
	}
	statuses := make(map[model.Status]lipgloss.Style, len(t.Statuses)+len(colors))
	for s, style := range t.Statuses {
		statuses[s] = style
	}
	for s, hex := range colors {
		statuses[model.Status(s)] = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}
	t.Statuses = statuses
	return t
}

// StatusStyle returns the style for an issue line in the given status.
func (t Theme) StatusStyle(s model.Status) lipgloss.Style {
	if style, ok := t.Statuses[s]; ok {
		return style
	}
	return t.Fallback
}
