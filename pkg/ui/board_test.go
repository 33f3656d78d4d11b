package ui

import (
	"strings"
	"testing"

	"github.com/Dicklesworthstone/bd_board/pkg/board"
	"github.com/Dicklesworthstone/bd_board/pkg/model"
)

func plainTheme() Theme {
	t := DefaultTheme()
	t.Plain = true
	return t
}

func TestRenderLinesPlain(t *testing.T) {
	issue := &model.Issue{ID: "bd-1", Status: model.StatusOpen}
	lines := []board.Line{
		{Kind: board.KindBlank},
		{Text: "bd Board", Kind: board.KindHeader},
		{Text: "1 issues (0 in progress, 1 open)", Kind: board.KindCounts},
		{Text: "○ bd-1       [p2 task] Title", Issue: issue, Kind: board.KindIssue},
	}

	got := RenderLines(plainTheme(), lines)
	want := "\nbd Board\n1 issues (0 in progress, 1 open)\n○ bd-1       [p2 task] Title"
	if got != want {
		t.Errorf("plain rendering must pass text through untouched:\ngot  %q\nwant %q", got, want)
	}
}

func TestRenderLinesStyledKeepsContent(t *testing.T) {
	theme := DefaultTheme()
	theme.Plain = false

	issue := &model.Issue{ID: "bd-1", Status: model.StatusInProgress}
	lines := []board.Line{{Text: "● bd-1", Issue: issue, Kind: board.KindIssue}}

	got := RenderLines(theme, lines)
	if !strings.Contains(got, "● bd-1") {
		t.Errorf("styled output must still contain the line text, got %q", got)
	}
}

func TestThemeWithOverrides(t *testing.T) {
	theme := DefaultTheme().WithOverrides(map[string]string{"blocked": "#FF5555"})
	if _, ok := theme.Statuses[model.StatusBlocked]; !ok {
		t.Error("expected blocked status style from override")
	}
	if _, ok := theme.Statuses[model.StatusOpen]; !ok {
		t.Error("default styles must survive overrides")
	}
}

func TestThemeFallbackStyle(t *testing.T) {
	theme := DefaultTheme()
	// Unrecognized statuses get the fallback, not a zero style lookup.
	style := theme.StatusStyle(model.Status("weird"))
	if style.GetForeground() != theme.Fallback.GetForeground() {
		t.Error("unknown status must use the fallback style")
	}
}
