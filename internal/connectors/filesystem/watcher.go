package filesystem

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/philcanon/internal/core/domain"
	"github.com/custodia-labs/philcanon/internal/core/ports/driven"
	"github.com/custodia-labs/philcanon/internal/logger"
)

// DefaultEventRate is the number of changes per second the watcher emits.
const DefaultEventRate = 20

// Ensure Watcher implements the interface.
var _ driven.ChangeWatcher = (*Watcher)(nil)

// Watcher streams changes to eligible documents of a Source.
type Watcher struct {
	source  *Source
	limiter *rate.Limiter

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithEventRate limits how many changes per second are emitted.
// Bursts up to the same number are allowed.
func WithEventRate(perSecond int) WatcherOption {
	return func(w *Watcher) {
		if perSecond > 0 {
			w.limiter = rate.NewLimiter(rate.Limit(perSecond), perSecond)
		}
	}
}

// NewWatcher creates a watcher for source.
func NewWatcher(source *Source, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		source:  source,
		limiter: rate.NewLimiter(rate.Limit(DefaultEventRate), DefaultEventRate),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Watch starts watching the source root (and, for recursive sources,
// every visible subdirectory). The returned channel closes when ctx is
// cancelled or Close is called.
func (w *Watcher) Watch(ctx context.Context) (<-chan domain.Change, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := w.addDirs(fw); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w.mu.Lock()
	w.watcher = fw
	w.done = make(chan struct{})
	done := w.done
	w.mu.Unlock()

	changes := make(chan domain.Change)
	go w.loop(ctx, fw, done, changes)
	return changes, nil
}

func (w *Watcher) addDirs(fw *fsnotify.Watcher) error {
	root := w.source.Root()
	if err := fw.Add(root); err != nil {
		return err
	}
	if !w.source.Recursive() {
		return nil
	}
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() || path == root {
			return nil
		}
		if isHidden(d.Name()) {
			return filepath.SkipDir
		}
		return fw.Add(path)
	})
}

func (w *Watcher) loop(ctx context.Context, fw *fsnotify.Watcher, done <-chan struct{}, out chan<- domain.Change) {
	defer close(out)

	for {
		select {
		case <-ctx.Done():
			return
		case <-done:
			return
		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if w.source.Recursive() && event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() && !isHidden(info.Name()) {
					if err := fw.Add(event.Name); err != nil {
						logger.Warn("watch %s: %v", event.Name, err)
					}
				}
			}

			change, ok := w.handleFsEvent(event)
			if !ok {
				continue
			}
			if err := w.limiter.Wait(ctx); err != nil {
				return
			}
			settle(ctx)
			select {
			case out <- change:
			case <-ctx.Done():
				return
			case <-done:
				return
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			logger.Warn("watcher error: %v", err)
		}
	}
}

// handleFsEvent converts an fsnotify event into a change for an eligible
// document. Chmod events, directories and hidden files are ignored.
func (w *Watcher) handleFsEvent(event fsnotify.Event) (domain.Change, bool) {
	if !w.source.Eligible(event.Name) {
		return domain.Change{}, false
	}

	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return domain.Change{Type: domain.ChangeDeleted, Path: event.Name}, true
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		info, err := os.Stat(event.Name)
		if err != nil || info.IsDir() {
			return domain.Change{}, false
		}
		typ := domain.ChangeUpdated
		if event.Has(fsnotify.Create) {
			typ = domain.ChangeCreated
		}
		return domain.Change{Type: typ, Path: event.Name}, true
	default:
		return domain.Change{}, false
	}
}

// Close stops watching and releases resources. It is safe to call more
// than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.watcher == nil {
		return nil
	}
	close(w.done)
	err := w.watcher.Close()
	w.watcher = nil
	if errors.Is(err, fsnotify.ErrClosed) {
		return nil
	}
	return err
}

// settleDelay is how long the watcher holds a change before emitting it,
// so a file written in several steps is read complete.
const settleDelay = 50 * time.Millisecond

// settle blocks for settleDelay or until ctx is done.
func settle(ctx context.Context) {
	t := time.NewTimer(settleDelay)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
