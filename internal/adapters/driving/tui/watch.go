package tui

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/bikeshare-cli/internal/logger"
)

// Watcher reports changes to one dataset file.
// The parent directory is watched so that files replaced by rename are seen.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
}

// NewWatcher starts watching the dataset at path.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{path: abs, watcher: w}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Next returns a command that blocks until the dataset changes.
// It yields nil once the watcher is closed.
func (w *Watcher) Next() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.watcher.Events:
				if !ok {
					return nil
				}
				if !w.relevant(ev) {
					continue
				}
				logger.Debug("dataset %s: %s", ev.Op, ev.Name)
				return messages.DatasetChanged{Path: w.path}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return nil
				}
				return messages.WatchFailed{Err: err}
			}
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
