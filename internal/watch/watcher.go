// Package watch reloads the editor when the opened markdown file changes
// on disk.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/untreu2/mdhtml/internal/logger"
)

// FileWatcher watches a single markdown file. Editors save by rename as
// often as by write, so the parent directory is watched and events are
// filtered down to the tracked path.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	logger   logger.Logger
	onChange func(path string)

	mu         sync.Mutex
	watchedDir string
	tracked    string
}

func NewFileWatcher(log logger.Logger, onChange func(path string)) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	fw := &FileWatcher{
		watcher:  watcher,
		logger:   log,
		onChange: onChange,
	}

	go fw.loop()
	return fw, nil
}

// Track switches the watcher to the given file, replacing any previously
// tracked file.
func (fw *FileWatcher) Track(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving watch path: %w", err)
	}
	dir := filepath.Dir(abs)

	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.watchedDir != dir {
		if fw.watchedDir != "" {
			if err := fw.watcher.Remove(fw.watchedDir); err != nil {
				fw.logger.Warning("Watcher", "removing old watch failed", map[string]interface{}{
					"dir":   fw.watchedDir,
					"error": err.Error(),
				})
			}
		}
		if err := fw.watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		fw.watchedDir = dir
	}

	fw.tracked = abs
	fw.logger.Debug("Watcher", "tracking file", map[string]interface{}{
		"path": abs,
	})
	return nil
}

// Stop tears the watcher down. No callbacks fire after Stop returns the
// watcher's event channel closed.
func (fw *FileWatcher) Stop() {
	if err := fw.watcher.Close(); err != nil {
		fw.logger.Warning("Watcher", "close failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (fw *FileWatcher) loop() {
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			fw.mu.Lock()
			tracked := fw.tracked
			fw.mu.Unlock()

			if tracked == "" || filepath.Clean(event.Name) != tracked {
				continue
			}
			fw.onChange(tracked)

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Warning("Watcher", "watch error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}
