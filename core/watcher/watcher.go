package watcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/tristendillon/umdgen/core/logger"
)

const DefaultDebounce = 200 * time.Millisecond

// ConfigWatcher calls OnChange whenever the watched file is written or
// replaced. The parent directory is watched so editors that rename over the
// file are still seen. OnChange only runs on the Watch goroutine, so two
// calls never overlap.
type ConfigWatcher struct {
	Path     string
	Debounce time.Duration
	OnChange func() error

	watcher *fsnotify.Watcher
	fire    chan struct{}
	mu      sync.Mutex
	timer   *time.Timer
	closed  bool
}

func NewConfigWatcher(path string, onChange func() error) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to add watcher for %s: %w", abs, err)
	}

	return &ConfigWatcher{
		Path:     abs,
		Debounce: DefaultDebounce,
		OnChange: onChange,
		watcher:  w,
		fire:     make(chan struct{}, 1),
	}, nil
}

// Watch blocks until ctx is done or the watcher is closed.
func (cw *ConfigWatcher) Watch(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case <-cw.fire:
			logger.Debug("Change detected in %s, regenerating...", cw.Path)
			if err := cw.OnChange(); err != nil {
				logger.Error("Regeneration failed: %v", err)
			}

		case event, ok := <-cw.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != cw.Path {
				continue
			}
			logger.Debug("File event: %s %s", event.Op, event.Name)
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				cw.debounce()
			}

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				logger.Warn("Watcher overflow, regenerating")
				cw.debounce()
				continue
			}
			logger.Error("Watcher error: %v", err)
		}
	}
}

func (cw *ConfigWatcher) debounce() {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	if cw.closed {
		return
	}
	if cw.timer != nil {
		cw.timer.Stop()
	}
	cw.timer = time.AfterFunc(cw.Debounce, func() {
		// a pending signal already covers this change
		select {
		case cw.fire <- struct{}{}:
		default:
		}
	})
}

func (cw *ConfigWatcher) Close() error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	if cw.closed {
		return nil
	}
	cw.closed = true
	if cw.timer != nil {
		cw.timer.Stop()
	}
	return cw.watcher.Close()
}
