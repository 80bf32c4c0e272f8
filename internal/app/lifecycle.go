package app

import (
	"github.com/untreu2/mdhtml/internal/gui"
	"github.com/untreu2/mdhtml/internal/logger"
	"github.com/untreu2/mdhtml/internal/preview"
	"github.com/untreu2/mdhtml/internal/watch"
)

type Lifecycle struct {
	guiManager *gui.Manager
	browser    *preview.Browser
	watcher    *watch.FileWatcher
	logger     logger.Logger
	isShutdown bool
}

func NewLifecycle(gm *gui.Manager, browser *preview.Browser, watcher *watch.FileWatcher, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		guiManager: gm,
		browser:    browser,
		watcher:    watcher,
		logger:     log,
	}
}

// Shutdown tears components down in reverse dependency order. Safe to call
// more than once.
func (l *Lifecycle) Shutdown() {
	if l.isShutdown {
		return
	}

	l.isShutdown = true
	l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

	if l.watcher != nil {
		l.watcher.Stop()
		l.logger.Debug("Lifecycle", "file watcher stopped", nil)
	}

	if l.browser != nil {
		l.browser.Cleanup()
		l.logger.Debug("Lifecycle", "preview temp files removed", nil)
	}

	if l.guiManager != nil {
		l.guiManager.Shutdown()
		l.logger.Debug("Lifecycle", "GUI manager shutdown completed", nil)
	}

	l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
}
