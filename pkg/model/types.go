package model

import "encoding/json"

// Issue represents a trackable work item as emitted by `bd list --json`
// and `bd show --json`.
type Issue struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description,omitempty"`
	Status       Status        `json:"status"`
	Priority     int           `json:"priority"`
	IssueType    IssueType     `json:"issue_type"`
	Assignee     string        `json:"assignee,omitempty"`
	Labels       []string      `json:"labels,omitempty"`
	Dependencies []*Dependency `json:"dependencies,omitempty"`
	Dependents   []*Dependent  `json:"dependents,omitempty"`
}

// UnmarshalJSON applies bd's field defaults: a missing priority means
// medium (2), a missing status means open, a missing type means task.
func (i *Issue) UnmarshalJSON(data []byte) error {
	type alias Issue
	aux := struct {
		Priority *int `json:"priority"`
		*alias
	}{alias: (*alias)(i)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Priority != nil {
		i.Priority = *aux.Priority
	} else {
		i.Priority = DefaultPriority
	}
	if i.Status == "" {
		i.Status = StatusOpen
	}
	if i.IssueType == "" {
		i.IssueType = TypeTask
	}
	return nil
}

// DefaultPriority is assumed when a record carries no priority field.
const DefaultPriority = 2

// Status represents the current state of an issue
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusBlocked    Status = "blocked"
	StatusClosed     Status = "closed"
)

// IsActive returns true for the states shown on the board by default.
func (s Status) IsActive() bool {
	return s == StatusOpen || s == StatusInProgress
}

// IssueType categorizes the kind of work
type IssueType string

const (
	TypeBug     IssueType = "bug"
	TypeFeature IssueType = "feature"
	TypeTask    IssueType = "task"
	TypeEpic    IssueType = "epic"
	TypeChore   IssueType = "chore"
)

var typeAbbrevs = map[IssueType]string{
	TypeFeature: "feat",
	TypeTask:    "task",
	TypeBug:     "bug",
	TypeEpic:    "epic",
	TypeChore:   "chore",
}

// Abbrev returns the short form used in board tags. Unknown types are
// passed through verbatim.
func (t IssueType) Abbrev() string {
	if short, ok := typeAbbrevs[t]; ok {
		return short
	}
	return string(t)
}

// Dependency is a relationship from the child's perspective: an entry
// typed parent-child names this issue's parent.
type Dependency struct {
	ID   string         `json:"id"`
	Type DependencyType `json:"dependency_type"`
}

// Dependent is a relationship from the parent's perspective: the
// referenced issue is a child of the holder.
type Dependent struct {
	ID string `json:"id"`
}

// DependencyType categorizes the relationship
type DependencyType string

const (
	DepBlocks         DependencyType = "blocks"
	DepRelated        DependencyType = "related"
	DepParentChild    DependencyType = "parent-child"
	DepDiscoveredFrom DependencyType = "discovered-from"
)
