package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Dicklesworthstone/bd_board/pkg/model"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.IDWidth != 10 || cfg.TitleWidth != 50 {
		t.Errorf("unexpected default widths: %+v", cfg)
	}
	if len(cfg.Statuses) != 2 {
		t.Errorf("expected open and in_progress by default, got %v", cfg.Statuses)
	}
	if time.Duration(cfg.WatchDebounce) != 250*time.Millisecond {
		t.Errorf("unexpected default debounce: %v", cfg.WatchDebounce)
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".beads"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := `
statuses: [open, in_progress, blocked]
title_width: 72
status_colors:
  blocked: "#FF5555"
watch_debounce: 1s
`
	if err := os.WriteFile(filepath.Join(dir, ".beads", "board.yml"), []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TitleWidth != 72 {
		t.Errorf("expected title width override, got %d", cfg.TitleWidth)
	}
	if cfg.IDWidth != 10 {
		t.Errorf("unset field must keep its default, got %d", cfg.IDWidth)
	}
	if len(cfg.Statuses) != 3 || cfg.Statuses[2] != model.StatusBlocked {
		t.Errorf("unexpected statuses: %v", cfg.Statuses)
	}
	if cfg.StatusColors["blocked"] != "#FF5555" {
		t.Errorf("unexpected status colors: %v", cfg.StatusColors)
	}
	if time.Duration(cfg.WatchDebounce) != time.Second {
		t.Errorf("unexpected debounce: %v", cfg.WatchDebounce)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".beads"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".beads", "board.yml"), []byte("statuses: ["), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".beads"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".beads", "board.yml"), []byte("watch_debounce: soon"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatal("expected duration parse error")
	}
}
