package adapter

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	m "weave.dev/pkg/weave/internal/model"
)

// PathFilter decides whether a changed path is interesting to the caller.
type PathFilter func(path string) bool

// Watcher watches source and target paths and delivers debounced change
// batches, so a burst of editor writes triggers a single re-injection.
type Watcher struct {
	watcher *fsnotify.Watcher
	delay   time.Duration
	filter  PathFilter
}

// NewWatcher creates a Watcher with the given debounce delay. A nil filter
// accepts every path.
func NewWatcher(delay time.Duration, filter PathFilter) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if filter == nil {
		filter = func(string) bool { return true }
	}

	return &Watcher{
		watcher: fsWatcher,
		delay:   delay,
		filter:  filter,
	}, nil
}

// Add registers a path for watching. Directories are added recursively;
// plain files are watched via their parent directory.
func (w *Watcher) Add(path m.Path) error {
	info, err := os.Stat(string(path))
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return w.watcher.Add(filepath.Dir(string(path)))
	}

	return filepath.Walk(string(path), func(sub string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			return nil
		}

		return w.watcher.Add(sub)
	})
}

// Run blocks until ctx is cancelled, calling handler with each debounced
// batch of changed paths. Handler errors are logged, not fatal: the watch
// keeps running so a broken template edit can be fixed and retried.
func (w *Watcher) Run(ctx context.Context, handler func(paths []string) error) error {
	var (
		pending []string
		timer   *time.Timer
		fire    <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}

			if !relevantOp(event.Op) || !w.filter(event.Name) {
				continue
			}

			pending = append(pending, event.Name)

			if timer == nil {
				timer = time.NewTimer(w.delay)
			} else {
				timer.Reset(w.delay)
			}

			fire = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}

			slog.Warn("watch error", "error", err)

		case <-fire:
			batch := dedupe(pending)
			pending = nil
			fire = nil

			if err := handler(batch); err != nil {
				slog.Error("change handler failed", "error", err)
			}
		}
	}
}

// Close releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func relevantOp(op fsnotify.Op) bool {
	return op.Has(fsnotify.Create) || op.Has(fsnotify.Write) ||
		op.Has(fsnotify.Remove) || op.Has(fsnotify.Rename)
}

func dedupe(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := make([]string, 0, len(paths))

	for _, path := range paths {
		if _, ok := seen[path]; ok {
			continue
		}

		seen[path] = struct{}{}

		out = append(out, path)
	}

	return out
}
