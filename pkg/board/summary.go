package board

import (
	"fmt"

	"github.com/Dicklesworthstone/bd_board/pkg/model"
)

// Summary holds the board header counts.
type Summary struct {
	Total      int
	InProgress int
	Open       int
}

// Summarize counts issues by status for the board header.
func Summarize(issues []model.Issue) Summary {
	s := Summary{Total: len(issues)}
	for _, issue := range issues {
		switch issue.Status {
		case model.StatusInProgress:
			s.InProgress++
		case model.StatusOpen:
			s.Open++
		}
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("%d issues (%d in progress, %d open)", s.Total, s.InProgress, s.Open)
}

// HeaderLines returns the board title and counts rows that precede the
// tree, styled by the presentation layer.
func (s Summary) HeaderLines() []Line {
	return []Line{
		{Kind: KindBlank},
		{Text: "bd Board", Kind: KindHeader},
		{Text: s.String(), Kind: KindCounts},
		{Kind: KindBlank},
	}
}
