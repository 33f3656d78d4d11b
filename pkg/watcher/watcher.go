package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher observes the .beads directory and emits a debounced signal
// on the Changed channel whenever the issue store is rewritten. bd
// replaces issues.jsonl atomically, so renames and creates count as
// changes too.
type Watcher struct {
	Changed <-chan struct{}

	fw       *fsnotify.Watcher
	changed  chan struct{}
	debounce *Debouncer
	done     chan struct{}
}

// New starts watching the .beads directory under repoPath. An empty
// repoPath means the current directory.
func New(repoPath string, debounce time.Duration) (*Watcher, error) {
	if repoPath == "" {
		var err error
		repoPath, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current working directory: %w", err)
		}
	}
	dir := filepath.Join(repoPath, ".beads")
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("cannot watch %s: %w", dir, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	w := &Watcher{
		fw:       fw,
		changed:  make(chan struct{}, 1),
		debounce: NewDebouncer(debounce),
		done:     make(chan struct{}),
	}
	w.Changed = w.changed
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.debounce.Trigger(w.notify)
			}
		case _, ok := <-w.fw.Errors:
			// Watch errors are transient on most platforms; keep going
			// until Close.
			if !ok {
				return
			}
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) notify() {
	select {
	case w.changed <- struct{}{}:
	default:
	}
}

// Close stops watching and releases resources.
func (w *Watcher) Close() error {
	close(w.done)
	w.debounce.Stop()
	return w.fw.Close()
}
