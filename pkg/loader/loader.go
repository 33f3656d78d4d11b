// Package loader fetches bd issues from the supported sources: the bd
// CLI itself, the .beads/issues.jsonl export, or the beads.db sqlite
// store.
package loader

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Dicklesworthstone/bd_board/pkg/model"
)

// LoadIssues reads issues from the .beads/issues.jsonl file in the
// given repository path. An empty path means the current directory.
func LoadIssues(repoPath string) ([]model.Issue, error) {
	if repoPath == "" {
		var err error
		repoPath, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current working directory: %w", err)
		}
	}

	jsonlPath := filepath.Join(repoPath, ".beads", "issues.jsonl")
	return LoadIssuesFromFile(jsonlPath)
}

// LoadIssuesFromFile reads issues directly from a specific JSONL file path.
func LoadIssuesFromFile(path string) ([]model.Issue, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("no beads issues found at %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open issues file: %w", err)
	}
	defer file.Close()

	var issues []model.Issue
	scanner := bufio.NewScanner(file)
	// Increase buffer size for large lines (issues can be large)
	const maxCapacity = 1024 * 1024 * 10 // 10MB
	buf := make([]byte, maxCapacity)
	scanner.Buffer(buf, maxCapacity)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var issue model.Issue
		if err := json.Unmarshal(line, &issue); err != nil {
			// Skip malformed lines but continue loading the rest
			continue
		}
		issues = append(issues, issue)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading issues file: %w", err)
	}

	return issues, nil
}

// FilterActive keeps only the issues whose status the board shows,
// preserving input order. A nil status list keeps everything.
func FilterActive(issues []model.Issue, statuses []model.Status) []model.Issue {
	if statuses == nil {
		return issues
	}
	allowed := make(map[model.Status]bool, len(statuses))
	for _, s := range statuses {
		allowed[s] = true
	}
	active := make([]model.Issue, 0, len(issues))
	for _, issue := range issues {
		if allowed[issue.Status] {
			active = append(active, issue)
		}
	}
	return active
}
