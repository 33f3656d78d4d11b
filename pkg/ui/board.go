package ui

import (
	"strings"

	"github.com/Dicklesworthstone/bd_board/pkg/board"
)

// RenderLines applies the theme to rendered board lines and joins them
// into terminal output. Issue lines are colored by status, as bd's own
// list output does.
func RenderLines(t Theme, lines []board.Line) string {
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(styleLine(t, line))
	}
	return b.String()
}

func styleLine(t Theme, line board.Line) string {
	if t.Plain || line.Kind == board.KindBlank {
		return line.Text
	}
	switch line.Kind {
	case board.KindHeader:
		return t.Header.Render(line.Text)
	case board.KindCounts:
		return t.Counts.Render(line.Text)
	default:
		if line.Issue != nil {
			return t.StatusStyle(line.Issue.Status).Render(line.Text)
		}
		return line.Text
	}
}
