// Package board turns a flat set of bd issues into a parent-child
// forest and renders it as an indented tree with box-drawing
// connectors.
package board

import (
	"sort"

	"github.com/Dicklesworthstone/bd_board/pkg/model"
)

// Tree is the built hierarchy: an id lookup, a parent -> ordered
// children map, and the sorted top-level ids. All three are built once
// by Build and read-only afterwards.
type Tree struct {
	TopLevel []string
	Children map[string][]string
	Lookup   map[string]*model.Issue

	childIDs map[string]bool
}

// edgeOrigin tags which relationship field an edge came from. The two
// sources merge with different dedup rules, see addEdge.
type edgeOrigin int

const (
	fromDependents edgeOrigin = iota
	fromDependencies
)

// addEdge records childID under parentID. Edges from the dependents
// field are appended unconditionally, so a child listed twice there
// shows up twice. Edges from the dependencies field are dropped when
// the child is already present. The asymmetry matches bd's dual
// encoding of the same relationship and is covered by tests.
func (t *Tree) addEdge(parentID, childID string, origin edgeOrigin) {
	if origin == fromDependencies {
		for _, existing := range t.Children[parentID] {
			if existing == childID {
				t.childIDs[childID] = true
				return
			}
		}
	}
	t.Children[parentID] = append(t.Children[parentID], childID)
	t.childIDs[childID] = true
}

// Build constructs the tree from a flat issue list.
//
// The lookup is last-write-wins on duplicate ids. The child map merges
// the dependents field (parent perspective) first, then parent-child
// entries of the dependencies field (child perspective). Top-level ids
// are the ones never seen as a child, sorted epics first, then by
// priority, then by id.
func Build(issues []model.Issue) *Tree {
	t := &Tree{
		Children: make(map[string][]string),
		Lookup:   make(map[string]*model.Issue, len(issues)),
		childIDs: make(map[string]bool),
	}

	for i := range issues {
		t.Lookup[issues[i].ID] = &issues[i]
	}

	for i := range issues {
		for _, dep := range issues[i].Dependents {
			if dep != nil {
				t.addEdge(issues[i].ID, dep.ID, fromDependents)
			}
		}
	}
	for i := range issues {
		for _, dep := range issues[i].Dependencies {
			if dep != nil && dep.Type == model.DepParentChild {
				t.addEdge(dep.ID, issues[i].ID, fromDependencies)
			}
		}
	}

	for i := range issues {
		if !t.childIDs[issues[i].ID] {
			t.TopLevel = append(t.TopLevel, issues[i].ID)
		}
	}
	sort.SliceStable(t.TopLevel, func(a, b int) bool {
		return t.topLevelLess(t.TopLevel[a], t.TopLevel[b])
	})

	return t
}

// topLevelLess orders root issues: epics first, then ascending
// priority, ties broken by id.
func (t *Tree) topLevelLess(a, b string) bool {
	ia, ib := t.Lookup[a], t.Lookup[b]
	ra, rb := epicRank(ia), epicRank(ib)
	if ra != rb {
		return ra < rb
	}
	if ia.Priority != ib.Priority {
		return ia.Priority < ib.Priority
	}
	return a < b
}

func epicRank(i *model.Issue) int {
	if i.IssueType == model.TypeEpic {
		return 0
	}
	return 1
}
