package loader

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Dicklesworthstone/bd_board/pkg/model"
)

// LoadIssuesFromDB reads issues and their parent-child dependencies
// from a beads sqlite database (.beads/beads.db). The dependents field
// is not stored there; the tree builder reconstructs the hierarchy
// from the dependencies rows alone.
func LoadIssuesFromDB(dbPath string) ([]model.Issue, error) {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("no beads database found at %s", dbPath)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT id, title, status, priority, issue_type, COALESCE(assignee, '')
		FROM issues
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query issues: %w", err)
	}
	defer rows.Close()

	var issues []model.Issue
	index := make(map[string]int)
	for rows.Next() {
		var issue model.Issue
		if err := rows.Scan(&issue.ID, &issue.Title, &issue.Status, &issue.Priority, &issue.IssueType, &issue.Assignee); err != nil {
			return nil, fmt.Errorf("scan issue: %w", err)
		}
		index[issue.ID] = len(issues)
		issues = append(issues, issue)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read issues: %w", err)
	}

	depRows, err := db.Query(`SELECT issue_id, depends_on_id, type FROM dependencies`)
	if err != nil {
		return nil, fmt.Errorf("query dependencies: %w", err)
	}
	defer depRows.Close()

	for depRows.Next() {
		var issueID, dependsOnID string
		var depType model.DependencyType
		if err := depRows.Scan(&issueID, &dependsOnID, &depType); err != nil {
			return nil, fmt.Errorf("scan dependency: %w", err)
		}
		if i, ok := index[issueID]; ok {
			issues[i].Dependencies = append(issues[i].Dependencies, &model.Dependency{
				ID:   dependsOnID,
				Type: depType,
			})
		}
	}
	if err := depRows.Err(); err != nil {
		return nil, fmt.Errorf("read dependencies: %w", err)
	}

	return issues, nil
}
