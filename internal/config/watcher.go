package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/averill/deckd/internal/button"
	"github.com/averill/deckd/internal/logging"
)

// debounceDelay coalesces the burst of events editors emit on save.
const debounceDelay = 250 * time.Millisecond

// Watcher reloads the button tree when the config file changes on disk.
// A reload that fails to parse is logged and the previous tree stays live.
type Watcher struct {
	path     string
	onReload func(*button.Menu)
	fsw      *fsnotify.Watcher
}

// NewWatcher watches path and invokes onReload with each successfully
// parsed tree. Watching the parent directory survives the rename-and-replace
// dance most editors do on save.
func NewWatcher(path string, onReload func(*button.Menu)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}
	return &Watcher{path: path, onReload: onReload, fsw: fsw}, nil
}

// Run blocks until ctx is cancelled, reloading on relevant events.
func (w *Watcher) Run(ctx context.Context) {
	defer w.fsw.Close()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounceDelay)
				fire = timer.C
			} else {
				timer.Reset(debounceDelay)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logging.Warn("Config watcher error", zap.Error(err))
		case <-fire:
			timer = nil
			fire = nil
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	menu, err := Load(w.path)
	if err != nil {
		logging.Warn("Config reload failed, keeping previous tree", zap.Error(err))
		return
	}
	for _, warning := range Validate(menu) {
		logging.Warn("Config warning", zap.String("detail", warning))
	}
	logging.Info("Config reloaded", zap.String("path", w.path))
	w.onReload(menu)
}
