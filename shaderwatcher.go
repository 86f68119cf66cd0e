package vulkano

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ShaderWatcher watches a directory of compiled SPIR-V shaders and reports
// changed files, so applications can rebuild their pipelines during
// development without restarting.
type ShaderWatcher struct {
	watcher *fsnotify.Watcher

	// Events receives the path of each shader that was written or
	// created. If the application falls behind, intermediate events
	// are dropped.
	Events chan string

	done chan struct{}
}

func NewShaderWatcher(dir string) (*ShaderWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("unable to create shader watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("unable to watch %s: %w", dir, err)
	}

	sw := &ShaderWatcher{
		watcher: w,
		Events:  make(chan string, 8),
		done:    make(chan struct{}),
	}
	go sw.run()
	return sw, nil
}

func (s *ShaderWatcher) run() {
	for {
		select {
		case <-s.done:
			return
		case ev, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Ext(ev.Name) != ".spv" {
				continue
			}
			logInfo("shader changed: %s", ev.Name)
			select {
			case s.Events <- ev.Name:
			default:
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			logWarn("shader watcher: %v", err)
		}
	}
}

func (s *ShaderWatcher) Close() error {
	close(s.done)
	return s.watcher.Close()
}
