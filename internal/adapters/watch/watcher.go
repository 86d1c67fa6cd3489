// Package watch reloads the site configuration when its file changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const DefaultDebounce = 200 * time.Millisecond

// ConfigWatcher watches the directory holding one file and calls OnChange
// after writes to that file settle. Editors often replace files by rename,
// so the directory is watched rather than the file itself.
type ConfigWatcher struct {
	path     string
	debounce time.Duration
	onChange func()
	logger   *zap.Logger
	watcher  *fsnotify.Watcher
}

func NewConfigWatcher(path string, debounce time.Duration, onChange func(), logger *zap.Logger) (*ConfigWatcher, error) {
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

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &ConfigWatcher{
		path:     abs,
		debounce: debounce,
		onChange: onChange,
		logger:   logger,
		watcher:  w,
	}, nil
}

// Run blocks until ctx is cancelled or the watcher fails.
func (cw *ConfigWatcher) Run(ctx context.Context) error {
	defer cw.watcher.Close()

	cw.logger.Info("watching config", zap.String("path", cw.path))

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-cw.watcher.Events:
			if !ok {
				return nil
			}
			if !cw.relevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(cw.debounce)
			} else {
				timer.Reset(cw.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			cw.logger.Debug("config changed", zap.String("path", cw.path))
			cw.onChange()

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return nil
			}
			cw.logger.Warn("config watcher error", zap.Error(err))
		}
	}
}

func (cw *ConfigWatcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != cw.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
