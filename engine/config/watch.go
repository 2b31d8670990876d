package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/kataras/golog"
)

var logger = golog.Child("[config]")

// settle is how long a burst of writes must be quiet before reloading.
const settle = 100 * time.Millisecond

// Watcher reloads a config file when it changes on disk.
type Watcher struct {
	path     string
	onChange func(*File)
	watcher  *fsnotify.Watcher
	closeCh  chan struct{}
	done     chan struct{}
	once     sync.Once
}

// Watch calls onChange with the freshly loaded file after every change to
// path. Editors often replace files instead of writing them, so the parent
// directory is watched. A file that fails to load is logged and skipped.
func Watch(path string, onChange func(*File)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, err
	}
	w := &Watcher{
		path:     abs,
		onChange: onChange,
		watcher:  fw,
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher and waits for the reload goroutine to exit.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	timer := time.NewTimer(settle)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(settle)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warnf("watch %s: %v", w.path, err)
		case <-timer.C:
			cfg, err := Load(w.path)
			if err != nil {
				logger.Errorf("reload skipped: %v", err)
				continue
			}
			logger.Infof("reloaded %s", w.path)
			w.onChange(cfg)
		case <-w.closeCh:
			return
		}
	}
}
