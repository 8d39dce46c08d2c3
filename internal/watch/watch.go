// Package watch flags a scanned directory as stale when its contents
// change. It watches the root and its top-level subdirectories and
// debounces the raw notifications into a single staleness signal.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"dirscan/internal/logging"
)

const defaultDebounce = time.Second

// Watcher monitors one scanned root for changes.
type Watcher struct {
	fs       *fsnotify.Watcher
	debounce time.Duration
	log      *logging.Logger

	mu      sync.Mutex
	root    string
	watched []string

	events    chan string
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// New creates a watcher. debounce collapses bursts of notifications;
// zero selects the default.
func New(debounce time.Duration) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fs watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	w := &Watcher{
		fs:       fs,
		debounce: debounce,
		log:      logging.Default().WithComponent("watch"),
		events:   make(chan string, 1),
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Watch replaces the watched root. The root itself must be watchable;
// unwatchable subdirectories are skipped.
func (w *Watcher) Watch(root string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, p := range w.watched {
		w.fs.Remove(p)
	}
	w.watched = nil
	w.root = ""

	if err := w.fs.Add(root); err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}
	w.root = root
	w.watched = append(w.watched, root)

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		sub := filepath.Join(root, entry.Name())
		if err := w.fs.Add(sub); err != nil {
			w.log.Debug("watching subdirectory failed", "path", sub, "err", err)
			continue
		}
		w.watched = append(w.watched, sub)
	}
	return nil
}

// Events returns the staleness channel. Each value is the root whose
// contents changed since it was scanned.
func (w *Watcher) Events() <-chan string {
	return w.events
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fs.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	var timer *time.Timer
	var timerC <-chan time.Time
	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-timerC:
			timer, timerC = nil, nil
			w.mu.Lock()
			root := w.root
			w.mu.Unlock()
			if root == "" {
				continue
			}
			select {
			case w.events <- root:
			default:
				// Consumer has an unread signal; one is enough.
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Debug("watch error", "err", err)
		}
	}
}
