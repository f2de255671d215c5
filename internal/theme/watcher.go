package theme

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces editor write bursts into one reload.
const debounceDelay = 100 * time.Millisecond

// Watcher reloads the theme file when it changes and hands the result to
// the onChange callback.
type Watcher struct {
	fw       *fsnotify.Watcher
	path     string
	onChange func(Theme)
	done     chan struct{}
}

// Watch starts watching the theme file at path. The containing directory
// is watched rather than the file itself, so creating the file after
// startup also triggers a reload. onChange runs on the watcher goroutine.
func Watch(path string, onChange func(Theme)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	w := &Watcher{
		fw:       fw,
		path:     path,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	var debounce *time.Timer
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, w.reload)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			log.Printf("theme watcher: %v", err)
		}
	}
}

func (w *Watcher) reload() {
	t, err := Load(w.path)
	if err != nil {
		log.Printf("theme reload: %v", err)
		return
	}
	w.onChange(t)
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fw.Close()
}
