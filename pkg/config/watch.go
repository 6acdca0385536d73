package config

import (
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/mreqlib/mreq/pkg/logger"
)

// Watcher reloads a config file's mutable fields into a live *Config
// whenever the file changes on disk, using fsnotify to avoid polling.
// Only the fields ApplyMutable touches are ever changed; there is no
// code path from a file edit to a compile-time topic knob.
type Watcher struct {
	path string
	cfg  *Config
	log  *logger.Logger

	mu      sync.Mutex
	fw      *fsnotify.Watcher
	done    chan struct{}
	onApply func(*Config)
}

// NewWatcher builds a Watcher over path, applying reloads onto cfg.
// log may be nil to disable diagnostics.
func NewWatcher(path string, cfg *Config, log *logger.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(path); err != nil {
		fw.Close()
		return nil, err
	}
	return &Watcher{
		path: path,
		cfg:  cfg,
		log:  log,
		fw:   fw,
		done: make(chan struct{}),
	}, nil
}

// OnApply registers a callback invoked after each successful hot
// reload, with the live Config. Intended for components (the
// diagnostics cron reporter) that need to notice a changed schedule.
func (w *Watcher) OnApply(fn func(*Config)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onApply = fn
}

// Run blocks, applying reloads as fsnotify reports file changes, until
// Close is called. Intended to run in its own goroutine.
func (w *Watcher) Run() {
	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.reload()
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			if w.log != nil {
				w.log.Warn("config watch error", "error", err)
			}
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) reload() {
	next, err := Load(w.path)
	if err != nil {
		if w.log != nil {
			w.log.Warn("config reload failed", "path", w.path, "error", err)
		}
		return
	}

	w.mu.Lock()
	w.cfg.ApplyMutable(next)
	onApply := w.onApply
	w.mu.Unlock()

	if w.log != nil {
		w.log.Info("config reloaded", "path", w.path)
	}
	if onApply != nil {
		onApply(w.cfg)
	}
}

// Close stops Run and releases the underlying fsnotify watch.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fw.Close()
}
