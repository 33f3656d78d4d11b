package loader

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/Dicklesworthstone/bd_board/pkg/model"
)

func writeTestDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "beads.db")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	schema := `
	CREATE TABLE issues (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		status TEXT NOT NULL,
		priority INTEGER NOT NULL,
		issue_type TEXT NOT NULL,
		assignee TEXT
	);
	CREATE TABLE dependencies (
		issue_id TEXT NOT NULL,
		depends_on_id TEXT NOT NULL,
		type TEXT NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("create schema: %v", err)
	}

	inserts := []string{
		`INSERT INTO issues VALUES ('bd-1', 'Epic', 'open', 1, 'epic', NULL)`,
		`INSERT INTO issues VALUES ('bd-2', 'Child', 'in_progress', 0, 'task', 'alice')`,
		`INSERT INTO dependencies VALUES ('bd-2', 'bd-1', 'parent-child')`,
		`INSERT INTO dependencies VALUES ('bd-2', 'bd-9', 'blocks')`,
	}
	for _, stmt := range inserts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	return path
}

func TestLoadIssuesFromDB(t *testing.T) {
	path := writeTestDB(t)

	issues, err := LoadIssuesFromDB(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %d", len(issues))
	}

	byID := make(map[string]model.Issue)
	for _, issue := range issues {
		byID[issue.ID] = issue
	}

	child := byID["bd-2"]
	if child.Assignee != "alice" || child.Status != model.StatusInProgress {
		t.Errorf("unexpected child fields: %+v", child)
	}
	if len(child.Dependencies) != 2 {
		t.Fatalf("expected 2 dependency rows, got %d", len(child.Dependencies))
	}
	var parentChild *model.Dependency
	for _, dep := range child.Dependencies {
		if dep.Type == model.DepParentChild {
			parentChild = dep
		}
	}
	if parentChild == nil || parentChild.ID != "bd-1" {
		t.Errorf("expected parent-child dependency on bd-1, got %+v", child.Dependencies)
	}

	if got := byID["bd-1"]; got.Assignee != "" {
		t.Errorf("NULL assignee must load as empty string, got %q", got.Assignee)
	}
}

func TestLoadIssuesFromDBMissing(t *testing.T) {
	if _, err := LoadIssuesFromDB(filepath.Join(t.TempDir(), "nope.db")); err == nil {
		t.Fatal("expected error for missing database")
	}
}
