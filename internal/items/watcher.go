package items

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

// DefaultReloadInterval is the minimum spacing between reloads
const DefaultReloadInterval = 250 * time.Millisecond

// Watcher reloads an items file whenever it changes on disk
type Watcher struct {
	path    string
	onLoad  func(lines []string)
	onError func(err error)
	limiter *rate.Limiter
	fs      *fsnotify.Watcher
}

// NewWatcher watches the directory of path so editor rename-and-replace saves are seen
func NewWatcher(path string, interval time.Duration, onLoad func([]string), onError func(error)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve items path: %w", err)
	}
	if interval <= 0 {
		interval = DefaultReloadInterval
	}
	if onError == nil {
		onError = func(error) {}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:    abs,
		onLoad:  onLoad,
		onError: onError,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		fs:      fsw,
	}, nil
}

// Run blocks until ctx is done or the watcher is closed
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			if err := w.limiter.Wait(ctx); err != nil {
				return
			}
			// a burst of writes collapses into one reload
			w.drain()
			w.reload()

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.onError(fmt.Errorf("file watcher: %w", err))
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

func (w *Watcher) drain() {
	for {
		select {
		case _, ok := <-w.fs.Events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

func (w *Watcher) reload() {
	lines, err := LoadFile(w.path)
	if err != nil {
		w.onError(err)
		return
	}
	w.onLoad(lines)
}

// Close stops watching
func (w *Watcher) Close() error {
	return w.fs.Close()
}
