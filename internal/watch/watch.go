// Package watch reports file changes under a directory tree to any number
// of subscribers.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ErrWatch is returned when the tree cannot be watched.
var ErrWatch = errors.New("cannot watch directory")

// DefaultBuffer is the per-subscriber channel capacity.
const DefaultBuffer = 16

// Event is a change to one file, with Path relative to the watched root
// in slash form.
type Event struct {
	Path string
}

// Watcher watches a directory tree and fans out change events.
// Subscribers that fall behind miss events instead of blocking the others.
type Watcher struct {
	root string
	fw   *fsnotify.Watcher

	// OnError receives watcher errors. Nil ignores them.
	OnError func(error)

	mu     sync.Mutex
	subs   map[int]chan Event
	nextID int
	closed bool
}

// New watches root and every non-hidden directory beneath it.
func New(root string) (*Watcher, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWatch, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWatch, err)
	}

	w := &Watcher{
		root: absRoot,
		fw:   fw,
		subs: make(map[int]chan Event),
	}
	if err := w.addTree(absRoot); err != nil {
		_ = fw.Close()
		return nil, err
	}
	return w, nil
}

// Root returns the absolute watched directory.
func (w *Watcher) Root() string {
	return w.root
}

// addTree registers dir and its subdirectories.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("%w: %v", ErrWatch, err)
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.fw.Add(path); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrWatch, path, err)
		}
		return nil
	})
}

// Subscribe returns a channel of events and a function that ends the
// subscription and closes the channel.
func (w *Watcher) Subscribe() (<-chan Event, func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	ch := make(chan Event, DefaultBuffer)
	if w.closed {
		close(ch)
		return ch, func() {}
	}

	id := w.nextID
	w.nextID++
	w.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			w.mu.Lock()
			defer w.mu.Unlock()
			if c, ok := w.subs[id]; ok {
				delete(w.subs, id)
				close(c)
			}
		})
	}
}

// Publish delivers ev to every subscriber without blocking.
func (w *Watcher) Publish(ev Event) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, ch := range w.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Run forwards filesystem events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			w.handle(ev)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			if w.OnError != nil {
				w.OnError(err)
			}
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if ev.Has(fsnotify.Chmod) && !ev.Has(fsnotify.Write) {
		return
	}

	if ev.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if err := w.addTree(ev.Name); err != nil && w.OnError != nil {
				w.OnError(err)
			}
			return
		}
	}

	rel, err := filepath.Rel(w.root, ev.Name)
	if err != nil {
		return
	}
	w.Publish(Event{Path: filepath.ToSlash(rel)})
}

// Close stops watching and closes every subscriber channel.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	for id, ch := range w.subs {
		delete(w.subs, id)
		close(ch)
	}
	w.mu.Unlock()

	return w.fw.Close()
}
