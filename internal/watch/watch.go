// Package watch re-runs a callback whenever a file changes.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DefaultDebounce is how long to wait for a burst of events to settle.
const DefaultDebounce = 250 * time.Millisecond

// Options configures Watch.
type Options struct {
	Debounce time.Duration
	Logger   *zap.SugaredLogger
}

// Watch calls fn once, then again after every change to path, until ctx is
// done. The parent directory is watched so editors that replace the file on
// save are still seen. fn always runs on the calling goroutine.
func Watch(ctx context.Context, path string, opts Options, fn func()) error {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(err, "cannot resolve %s", path)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "cannot start file watcher")
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return errors.Wrapf(err, "cannot watch %s", filepath.Dir(target))
	}

	fn()

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			log.Debugw("file changed", "file", event.Name, "op", event.Op.String())
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(opts.Debounce)
			fire = timer.C
		case <-fire:
			fire = nil
			fn()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warnw("file watch error", "error", err)
		}
	}
}
