package board

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/Dicklesworthstone/bd_board/pkg/model"
)

// Connector glyphs. A node's own line gets a tee or corner; the indent
// its descendants inherit continues the bar only while siblings remain
// below.
const (
	connectorTee    = "├── "
	connectorCorner = "└── "
	indentBar       = "│   "
	indentBlank     = "    "
)

// Line is one row of rendered board output. Issue is nil for
// structural rows (header, counts, spacers) so the presentation layer
// can style rows without re-parsing the text.
type Line struct {
	Text  string
	Issue *model.Issue
	Kind  LineKind
}

// LineKind classifies a rendered row for styling.
type LineKind int

const (
	KindIssue LineKind = iota
	KindHeader
	KindCounts
	KindBlank
)

// Renderer produces display lines from a built Tree. It is agnostic to
// color; widths are injectable so the board config can widen columns.
type Renderer struct {
	IDWidth    int
	TitleWidth int
}

// NewRenderer returns a Renderer with the standard board columns:
// a 10-cell id field and titles capped at 50 display cells.
func NewRenderer() *Renderer {
	return &Renderer{IDWidth: 10, TitleWidth: 50}
}

// FormatIssue renders a single issue as one line, without indentation:
// status glyph, padded id, [p<priority> <type>] tag, truncated title.
func (r *Renderer) FormatIssue(issue *model.Issue) string {
	return fmt.Sprintf("%s %-*s [p%d %s] %s",
		statusGlyph(issue.Status),
		r.IDWidth, issue.ID,
		issue.Priority, issue.IssueType.Abbrev(),
		r.truncateTitle(issue.Title))
}

// truncateTitle caps a title at TitleWidth display cells, replacing the
// overflow with a trailing ellipsis. Width is measured in terminal
// cells, not bytes, so wide runes count double.
func (r *Renderer) truncateTitle(title string) string {
	if runewidth.StringWidth(title) <= r.TitleWidth {
		return title
	}
	return runewidth.Truncate(title, r.TitleWidth, "…")
}

func statusGlyph(status model.Status) string {
	switch status {
	case model.StatusInProgress:
		return "●"
	case model.StatusOpen:
		return "○"
	default:
		return "·"
	}
}

// frame is one pending node in the iterative traversal. path holds the
// ids of every ancestor on this branch; a child already on it would
// mean a cycle, which gets pruned instead of recursed into.
type frame struct {
	id     string
	prefix string
	indent string
	path   map[string]bool
}

// RenderSubtree returns the lines for all descendants of rootID in
// pre-order, each prefixed with its connector and indentation. The
// root's own line is not included. Children missing from the lookup
// are skipped without a line; is-last is still judged by list
// position, so a dangling final child leaves its siblings with tee
// connectors (reference behavior).
func (r *Renderer) RenderSubtree(t *Tree, rootID string) []Line {
	var lines []Line
	stack := make([]frame, 0, len(t.Children[rootID]))

	pushChildren := func(parentID, indent string, path map[string]bool) {
		children := t.Children[parentID]
		for i := len(children) - 1; i >= 0; i-- {
			childID := children[i]
			if _, ok := t.Lookup[childID]; !ok {
				continue
			}
			if path[childID] {
				// Revisiting an ancestor; prune the branch rather
				// than looping forever.
				continue
			}
			isLast := i == len(children)-1
			connector, next := connectorTee, indentBar
			if isLast {
				connector, next = connectorCorner, indentBlank
			}
			stack = append(stack, frame{
				id:     childID,
				prefix: indent + connector,
				indent: indent + next,
				path:   path,
			})
		}
	}

	rootPath := map[string]bool{rootID: true}
	pushChildren(rootID, "", rootPath)

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		issue := t.Lookup[f.id]
		lines = append(lines, Line{
			Text:  f.prefix + r.FormatIssue(issue),
			Issue: issue,
			Kind:  KindIssue,
		})

		childPath := make(map[string]bool, len(f.path)+1)
		for id := range f.path {
			childPath[id] = true
		}
		childPath[f.id] = true
		pushChildren(f.id, f.indent, childPath)
	}

	return lines
}

// RenderBoard renders every top-level issue followed by its subtree,
// each group separated by a blank line.
func (r *Renderer) RenderBoard(t *Tree) []Line {
	var lines []Line
	for _, id := range t.TopLevel {
		issue, ok := t.Lookup[id]
		if !ok {
			continue
		}
		lines = append(lines, Line{Text: r.FormatIssue(issue), Issue: issue, Kind: KindIssue})
		lines = append(lines, r.RenderSubtree(t, id)...)
		lines = append(lines, Line{Kind: KindBlank})
	}
	return lines
}
