package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dicklesworthstone/bd_board/pkg/board"
	"github.com/Dicklesworthstone/bd_board/pkg/config"
	"github.com/Dicklesworthstone/bd_board/pkg/loader"
	"github.com/Dicklesworthstone/bd_board/pkg/model"
	"github.com/Dicklesworthstone/bd_board/pkg/ui"
	"github.com/Dicklesworthstone/bd_board/pkg/watcher"
)

func main() {
	repo := flag.String("repo", "", "Repository path (defaults to current directory)")
	source := flag.String("source", "auto", "Issue source: auto, bd, jsonl, or db")
	jsonFile := flag.String("json-file", "", "Read issues from a specific JSONL file")
	dbFile := flag.String("db", "", "Read issues from a specific beads.db")
	filterQuery := flag.String("filter", "", "Fuzzy-filter issues by id or title")
	all := flag.Bool("all", false, "Include closed and blocked issues")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	watch := flag.Bool("watch", false, "Watch the issue store and re-render on changes")
	version := flag.Bool("version", false, "Show version")
	help := flag.Bool("help", false, "Show help")
	flag.Parse()

	if *help {
		fmt.Println("Usage: bb [options]")
		fmt.Println("\nRenders a compact board of bd issues with parent-child grouping.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *version {
		fmt.Println("bb version 0.1.0")
		os.Exit(0)
	}

	cfg, err := config.Load(*repo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading board config: %v\n", err)
		os.Exit(1)
	}

	statuses := cfg.Statuses
	if *all {
		statuses = nil
	}

	load := func() ([]model.Issue, error) {
		return loadIssues(*source, *repo, *jsonFile, *dbFile, statuses)
	}

	renderer := board.NewRenderer()
	if cfg.IDWidth > 0 {
		renderer.IDWidth = cfg.IDWidth
	}
	if cfg.TitleWidth > 0 {
		renderer.TitleWidth = cfg.TitleWidth
	}

	refresh := func() ([]board.Line, error) {
		issues, err := load()
		if err != nil {
			return nil, err
		}
		issues = board.Filter(issues, *filterQuery)
		lines := board.Summarize(issues).HeaderLines()
		lines = append(lines, renderer.RenderBoard(board.Build(issues))...)
		return lines, nil
	}

	theme := ui.DefaultTheme().WithOverrides(cfg.StatusColors)
	if *noColor {
		theme.Plain = true
	}

	if *watch {
		runWatch(theme, refresh, *repo, time.Duration(cfg.WatchDebounce))
		return
	}

	issues, err := load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading issues: %v\n", err)
		os.Exit(1)
	}
	issues = board.Filter(issues, *filterQuery)
	if len(issues) == 0 {
		fmt.Println("No open issues found.")
		return
	}

	lines := board.Summarize(issues).HeaderLines()
	lines = append(lines, renderer.RenderBoard(board.Build(issues))...)
	fmt.Println(ui.RenderLines(theme, lines))
}

// loadIssues fetches issues from the selected source. "auto" prefers
// the bd CLI, then the JSONL export, then the sqlite store.
func loadIssues(source, repo, jsonFile, dbFile string, statuses []model.Status) ([]model.Issue, error) {
	if jsonFile != "" {
		source = "jsonl"
	}
	if dbFile != "" {
		source = "db"
	}

	bd := loader.NewBDClient()
	if source == "auto" {
		switch {
		case bd.Available():
			source = "bd"
		case jsonlExists(repo):
			source = "jsonl"
		default:
			source = "db"
		}
	}

	switch source {
	case "bd":
		return bd.ListActive(context.Background(), statuses)
	case "jsonl":
		var issues []model.Issue
		var err error
		if jsonFile != "" {
			issues, err = loader.LoadIssuesFromFile(jsonFile)
		} else {
			issues, err = loader.LoadIssues(repo)
		}
		if err != nil {
			return nil, err
		}
		return loader.FilterActive(issues, statuses), nil
	case "db":
		path := dbFile
		if path == "" {
			path = filepath.Join(repo, ".beads", "beads.db")
		}
		issues, err := loader.LoadIssuesFromDB(path)
		if err != nil {
			return nil, err
		}
		return loader.FilterActive(issues, statuses), nil
	default:
		return nil, fmt.Errorf("unknown source %q", source)
	}
}

func jsonlExists(repo string) bool {
	_, err := os.Stat(filepath.Join(repo, ".beads", "issues.jsonl"))
	return err == nil
}

func runWatch(theme ui.Theme, refresh ui.RefreshFunc, repo string, debounce time.Duration) {
	w, err := watcher.New(repo, debounce)
	if err != nil {
		// Still usable with manual refresh only.
		fmt.Fprintf(os.Stderr, "Warning: %v; falling back to manual refresh\n", err)
		w = nil
	}
	if w != nil {
		defer w.Close()
	}

	m := ui.NewWatchModel(theme, refresh, w)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running board watch: %v\n", err)
		os.Exit(1)
	}
}
