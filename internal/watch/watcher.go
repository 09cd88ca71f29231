// Package watch reloads a file-backed reference catalogue when it changes on disk.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Reloader is satisfied by *state.Store
type Reloader interface {
	Reload(ctx context.Context) error
}

const DefaultDebounce = 250 * time.Millisecond

// Watcher watches the directory containing one catalogue file. Watching the
// directory rather than the file survives editors that save by rename.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	target   Reloader
	logger   *zap.Logger
	debounce time.Duration
}

func New(path string, target Reloader, logger *zap.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}

	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		watcher:  fw,
		path:     abs,
		target:   target,
		logger:   logger,
		debounce: DefaultDebounce,
	}, nil
}

// SetDebounce changes the quiet period before a reload fires
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Run blocks until ctx is cancelled, then closes the underlying watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	w.logger.Info("watching reference catalogue", zap.String("path", w.path))

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("catalogue watcher error", zap.Error(err))

		case <-timer.C:
			if err := w.target.Reload(ctx); err != nil {
				w.logger.Error("catalogue reload failed, keeping previous", zap.Error(err))
				continue
			}
			w.logger.Info("reference catalogue reloaded", zap.String("path", w.path))
		}
	}
}
