package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleDelay coalesces the events of one save: a truncate followed by a
// write must not load the empty file in between.
const settleDelay = 50 * time.Millisecond

// Watcher reloads a configuration file when it changes
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	settle  time.Duration
}

// NewWatcher starts watching path. Editors often replace the file instead of
// writing it, so the parent directory is watched.
func NewWatcher(path string) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	return &Watcher{path: filepath.Clean(path), watcher: watcher, settle: settleDelay}, nil
}

// Run calls apply with every valid new version of the file until ctx is done.
// The file is loaded once it has been quiet for the settle delay. Invalid
// versions are logged and skipped. Run closes the watcher on return.
func (w *Watcher) Run(ctx context.Context, apply func(*Config)) {
	defer w.watcher.Close()

	settled := time.NewTimer(w.settle)
	settled.Stop()
	defer settled.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			settled.Reset(w.settle)

		case <-settled.C:
			cfg, err := Load(w.path)
			if err != nil {
				slog.Warn("ignoring config change", "path", w.path, "error", err)
				continue
			}
			slog.Info("config reloaded", "path", w.path)
			apply(cfg)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("config watcher failed", "path", w.path, "error", err)
		}
	}
}
