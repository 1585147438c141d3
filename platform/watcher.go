package platform

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to a directory, such as ROMs being added or
// removed while the menu is open. Bursts of events are coalesced into one
// notification after the last of them.
type Watcher struct {
	dir      string
	watcher  *fsnotify.Watcher
	changed  chan struct{}
	debounce time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once
}

func NewWatcher(dir string, debounce time.Duration) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		dir:      dir,
		watcher:  w,
		changed:  make(chan struct{}, 1),
		debounce: debounce,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

func (w *Watcher) Start() error {
	if err := w.watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	go w.loop()
	return nil
}

// Changed receives a value after the directory changed. It never blocks
// the watcher; pending notifications collapse into one.
func (w *Watcher) Changed() <-chan struct{} {
	return w.changed
}

// Poll reports whether a change is pending and clears it.
func (w *Watcher) Poll() bool {
	select {
	case <-w.changed:
		return true
	default:
		return false
	}
}

func (w *Watcher) Stop() {
	w.once.Do(func() {
		w.cancel()
		w.watcher.Close()
	})
}

// loop notifies once the directory has been quiet for the debounce
// interval, so a burst of copies ends in a single rescan that sees all of
// them.
func (w *Watcher) loop() {
	quiet := time.NewTimer(w.debounce)
	quiet.Stop()
	defer quiet.Stop()
	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			quiet.Reset(w.debounce)

		case <-quiet.C:
			select {
			case w.changed <- struct{}{}:
			default:
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Warning: watching %s: %v", w.dir, err)
		}
	}
}
