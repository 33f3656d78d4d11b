package board

import (
	"github.com/sahilm/fuzzy"

	"github.com/Dicklesworthstone/bd_board/pkg/model"
)

// filterSource adapts issues to fuzzy.Source, matching on id plus title.
type filterSource []model.Issue

func (s filterSource) Len() int { return len(s) }

func (s filterSource) String(i int) string {
	return s[i].ID + " " + s[i].Title
}

// Filter returns the issues fuzzy-matching query by id or title, in
// match-score order. An empty query returns the input unchanged. The
// tree is rebuilt from the filtered set, so unmatched ancestors drop
// out and their matched descendants surface as top-level issues.
func Filter(issues []model.Issue, query string) []model.Issue {
	if query == "" {
		return issues
	}
	matches := fuzzy.FindFrom(query, filterSource(issues))
	filtered := make([]model.Issue, 0, len(matches))
	for _, m := range matches {
		filtered = append(filtered, issues[m.Index])
	}
	return filtered
}
