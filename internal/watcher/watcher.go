// Package watcher re-triggers work when input files change on disk.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is the quiet period after the last change before the
// callback runs
const DefaultDebounce = 500 * time.Millisecond

// Watcher watches a set of files for changes. The callback always runs on
// the goroutine that called Watch, so callers need no locking around the
// state it touches.
type Watcher struct {
	files    map[string]bool
	onChange func(path string)
	debounce time.Duration
	logger   *zap.Logger
	ready    chan struct{}
}

// New creates a watcher for paths. A nil logger disables logging.
func New(logger *zap.Logger, onChange func(path string), paths ...string) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	files := make(map[string]bool, len(paths))
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", path, err)
		}
		files[abs] = true
	}
	return &Watcher{
		files:    files,
		onChange: onChange,
		debounce: DefaultDebounce,
		logger:   logger,
		ready:    make(chan struct{}),
	}, nil
}

// WithDebounce sets the debounce duration
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	if d > 0 {
		w.debounce = d
	}
	return w
}

// Ready is closed once the watcher is registered and events will be seen
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Watch starts watching the files for changes.
// It blocks until the context is cancelled or an error occurs.
func (w *Watcher) Watch(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	// Watch the containing directories so files replaced by editors are
	// still seen
	dirs := make(map[string]bool)
	for path := range w.files {
		dir := filepath.Dir(path)
		if dirs[dir] {
			continue
		}
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		dirs[dir] = true
		w.logger.Info("watching for changes", zap.String("path", path))
	}
	close(w.ready)

	pending := make(map[string]bool)
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}

			abs, err := filepath.Abs(event.Name)
			if err != nil || !w.files[abs] {
				continue
			}

			// Handle write or create events
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			pending[abs] = true

			// Debounce rapid changes
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C

		case <-fire:
			fire = nil
			for _, path := range sortedKeys(pending) {
				w.logger.Info("file changed", zap.String("path", path))
				w.onChange(path)
			}
			pending = make(map[string]bool)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", zap.Error(err))

		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return ctx.Err()
		}
	}
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
