package main

import (
	"context"
	"path/filepath"
	"time"

	"github.com/andareed/siftly-timepicker/config"
	"github.com/andareed/siftly-timepicker/logging"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// configWatchDebounce collapses the burst of events an editor save produces.
const configWatchDebounce = 300 * time.Millisecond

type configReloadedMsg struct {
	cfg *config.Config
	err error
}

// configWatcher reloads the config file when it changes on disk and hands the
// result to send.
type configWatcher struct {
	path     string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	send     func(tea.Msg)
}

// newConfigWatcher watches the directory holding path, since editors often
// replace the file rather than writing it in place.
func newConfigWatcher(path string, send func(tea.Msg)) (*configWatcher, error) {
	path = filepath.Clean(path)
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}
	return &configWatcher{
		path:     path,
		debounce: configWatchDebounce,
		watcher:  w,
		send:     send,
	}, nil
}

// Run blocks until ctx is cancelled or the watcher is closed.
func (w *configWatcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			cfg, err := config.LoadConfig(w.path)
			logging.Infof("config watcher: reloaded %s (err=%v)", w.path, err)
			w.send(configReloadedMsg{cfg: cfg, err: err})
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logging.Warnf("config watcher error: %v", err)
		}
	}
}
