// Package config loads optional board settings from .beads/board.yml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Dicklesworthstone/bd_board/pkg/model"
)

// Config controls which issues the board shows and how it styles them.
// Zero values fall back to the defaults below.
type Config struct {
	// Statuses shown on the board. Defaults to open and in_progress.
	Statuses []model.Status `yaml:"statuses"`

	// Column widths for the rendered lines.
	IDWidth    int `yaml:"id_width"`
	TitleWidth int `yaml:"title_width"`

	// Color overrides, hex strings keyed by status value.
	StatusColors map[string]string `yaml:"status_colors"`

	// Debounce window for watch mode, e.g. "250ms".
	WatchDebounce Duration `yaml:"watch_debounce"`
}

// Duration wraps time.Duration so yaml values like "250ms" parse.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Default returns the board's built-in settings.
func Default() Config {
	return Config{
		Statuses:      []model.Status{model.StatusOpen, model.StatusInProgress},
		IDWidth:       10,
		TitleWidth:    50,
		WatchDebounce: Duration(250 * time.Millisecond),
	}
}

// Load reads .beads/board.yml under repoPath, returning defaults when
// the file does not exist. Fields missing from the file keep their
// default values.
func Load(repoPath string) (Config, error) {
	cfg := Default()

	path := filepath.Join(repoPath, ".beads", "board.yml")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read board config: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.merge(fileCfg)
	return cfg, nil
}

func (c *Config) merge(o Config) {
	if len(o.Statuses) > 0 {
		c.Statuses = o.Statuses
	}
	if o.IDWidth > 0 {
		c.IDWidth = o.IDWidth
	}
	if o.TitleWidth > 0 {
		c.TitleWidth = o.TitleWidth
	}
	if len(o.StatusColors) > 0 {
		c.StatusColors = o.StatusColors
	}
	if o.WatchDebounce > 0 {
		c.WatchDebounce = o.WatchDebounce
	}
}
