package prefabs

import (
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadQuiet is how long the watched directories must stay quiet before a
// burst of edits collapses into one reload tick. Editors often write a file
// several times per save.
const reloadQuiet = 100 * time.Millisecond

// ReloadWatcher turns edits to authored files (catalog and prefab YAML,
// tengo scripts, roster YAML) into reload ticks. A tick carries no path:
// consumers rebuild the resolver and re-register the rosters wholesale,
// which is the only reload the registries and resolver support.
type ReloadWatcher struct {
	fsw   *fsnotify.Watcher
	ticks chan struct{}
	done  chan struct{}
	once  sync.Once
}

// WatchAuthoredFiles watches each directory for authored-file edits. The
// returned watcher ticks until Close is called.
func WatchAuthoredFiles(dirs ...string) (*ReloadWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	w := &ReloadWatcher{
		fsw:   fsw,
		ticks: make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Reloads ticks once per quiet period following authored-file edits. The
// channel is closed when the watcher shuts down.
func (w *ReloadWatcher) Reloads() <-chan struct{} {
	return w.ticks
}

// Close stops the watcher. Safe to call more than once.
func (w *ReloadWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fsw.Close()
	})
	return err
}

// run is the only sender on ticks and the only goroutine that closes it, so
// shutdown can never race a send.
func (w *ReloadWatcher) run() {
	defer close(w.ticks)

	var quiet <-chan time.Time
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !isAuthoredFile(ev.Name) {
				continue
			}
			quiet = time.After(reloadQuiet)
		case <-quiet:
			quiet = nil
			select {
			case w.ticks <- struct{}{}:
			default: // a tick is already pending
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("ReloadWatcher: %v", err)
		case <-w.done:
			return
		}
	}
}

func isAuthoredFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".tengo":
		return true
	}
	return false
}
