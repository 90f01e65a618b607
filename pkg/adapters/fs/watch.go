package fs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/notenik/pkg/core"
)

// DefaultDebounce is how long Watch waits for a burst of file events to
// settle before re-reading the note.
const DefaultDebounce = 50 * time.Millisecond

// Change is emitted by Watch each time the watched note is re-read.
type Change struct {
	Path string
	Note *core.Note
	Err  error
	Time time.Time
}

func (c Change) String() string {
	if c.Err != nil {
		return fmt.Sprintf("%s: %v", c.Path, c.Err)
	}
	return fmt.Sprintf("%s: %q (%s)", c.Path, c.Note.Title(), c.Note.Dialect)
}

// Watch re-reads the note at path whenever it changes on disk and sends
// the result on the returned channel until ctx is cancelled. Each read goes
// into a fresh clone of base, so labels dropped from the file do not
// linger in the schema.
//
// The parent directory is watched rather than the file itself, because
// editors commonly save by renaming a new file over the old one.
func (s *Store) Watch(ctx context.Context, path string, base *core.Collection, debounce time.Duration) (<-chan Change, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	target, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}

	w := &noteWatcher{
		store:    s,
		target:   target,
		base:     base,
		debounce: debounce,
		watcher:  watcher,
		out:      make(chan Change),
	}
	s.setWatcherActive(true)

	lifecycle.Go(ctx, w.run, lifecycle.WithErrorHandler(func(err error) {
		s.config.Logger.Error("watcher stopped", "path", path, "error", err)
	}))
	return w.out, nil
}

type noteWatcher struct {
	store    *Store
	target   string
	base     *core.Collection
	debounce time.Duration
	watcher  *fsnotify.Watcher
	out      chan Change
}

func (w *noteWatcher) log() *slog.Logger { return w.store.config.Logger }

func (w *noteWatcher) run(ctx context.Context) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("watcher panic: %v", recovered)
			if w.log().Enabled(ctx, slog.LevelDebug) {
				w.log().Error("watcher panic", "error", err, "stack", string(debug.Stack()))
			} else {
				w.log().Error("watcher panic", "error", err)
			}
		}
	}()
	defer close(w.out)
	defer w.store.setWatcherActive(false)
	defer w.watcher.Close()

	var settle <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.relevant(event) {
				continue
			}
			w.log().Debug("note event", "path", event.Name, "op", event.Op.String())
			settle = time.After(w.debounce)

		case <-settle:
			settle = nil
			if !w.emit(ctx) {
				return nil
			}

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.log().Error("fsnotify error", "error", wErr)
		}
	}
}

func (w *noteWatcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove)
}

// emit re-reads the note and delivers it. It reports false once ctx is done.
func (w *noteWatcher) emit(ctx context.Context) bool {
	n, err := w.store.ReadNote(w.target, w.base.Clone())
	change := Change{Path: w.target, Note: n, Err: err, Time: time.Now()}
	select {
	case w.out <- change:
		return true
	case <-ctx.Done():
		return false
	}
}
