package app

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"github.com/untreu2/mdhtml/internal/gui"
	"github.com/untreu2/mdhtml/internal/logger"
	"github.com/untreu2/mdhtml/internal/preview"
	"github.com/untreu2/mdhtml/internal/render"
	"github.com/untreu2/mdhtml/internal/settings"
	"github.com/untreu2/mdhtml/internal/watch"
)

// Handlers implements every user action: edits, color picks, file loads
// and saves, and the browser preview. Each handler runs on the Fyne event
// thread; file I/O is pushed to a goroutine with results marshalled back
// through fyne.Do, the way the rest of the GUI code does it.
type Handlers struct {
	store      *settings.Store
	renderer   *render.Renderer
	guiManager *gui.Manager
	browser    *preview.Browser
	watcher    *watch.FileWatcher
	logger     logger.Logger

	mu           sync.Mutex
	editorText   string
	currentHTML  string
	trackedPath  string
	trackedText  string
}

func NewHandlers(store *settings.Store, renderer *render.Renderer, gm *gui.Manager, browser *preview.Browser, log logger.Logger) *Handlers {
	return &Handlers{
		store:      store,
		renderer:   renderer,
		guiManager: gm,
		browser:    browser,
		logger:     log,
	}
}

// SetWatcher attaches the file watcher once it exists; the watcher needs a
// handler callback and the handlers need the watcher, so wiring is split.
func (h *Handlers) SetWatcher(w *watch.FileWatcher) {
	h.watcher = w
}

// HandleEditorChanged re-renders the document on every keystroke. The
// rendered HTML is cached so Save HTML and Open in Browser consume the
// exact string the preview was produced from.
func (h *Handlers) HandleEditorChanged(text string) {
	document, err := h.renderer.Document(text, h.store.Get())
	if err != nil {
		h.logger.Error("Handlers", err, map[string]interface{}{
			"action": "render",
		})
		return
	}

	h.mu.Lock()
	h.editorText = text
	h.currentHTML = document
	h.mu.Unlock()

	h.guiManager.SetPreviewMarkdown(text)
}

// RefreshDocument recomputes the rendered HTML after a settings change.
func (h *Handlers) RefreshDocument() {
	h.mu.Lock()
	text := h.editorText
	h.mu.Unlock()

	document, err := h.renderer.Document(text, h.store.Get())
	if err != nil {
		h.logger.Error("Handlers", err, map[string]interface{}{
			"action": "refresh",
		})
		return
	}

	h.mu.Lock()
	h.currentHTML = document
	h.mu.Unlock()
}

func (h *Handlers) HandleBackgroundColorPick() {
	picker := dialog.NewColorPicker("Background Color", "Select the page background color", func(c color.Color) {
		hex := hexColor(c)
		h.store.Set(settings.Partial{BackgroundColor: &hex})
	}, h.guiManager.GetWindow())
	picker.Advanced = true
	picker.Show()
}

func (h *Handlers) HandleTextColorPick() {
	picker := dialog.NewColorPicker("Text Color", "Select the page text color", func(c color.Color) {
		hex := hexColor(c)
		h.store.Set(settings.Partial{TextColor: &hex})
	}, h.guiManager.GetWindow())
	picker.Advanced = true
	picker.Show()
}

func (h *Handlers) HandleFontChanged(font string) {
	h.store.Set(settings.Partial{FontFamily: &font})
}

func (h *Handlers) HandleCenterChanged(center bool) {
	h.store.Set(settings.Partial{CenterContent: &center})
}

func (h *Handlers) HandleReset() {
	h.store.Reset()
	h.guiManager.UpdateStatus("Settings reset to defaults")
}

func (h *Handlers) HandleOpenMarkdown() {
	fileOpen := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			h.showError("File Open Error", err)
			return
		}
		if reader == nil {
			return
		}

		path := reader.URI().Path()

		go func() {
			data, readErr := io.ReadAll(reader)
			reader.Close()

			fyne.Do(func() {
				if readErr != nil {
					h.showError("File Read Error", readErr)
					return
				}

				text := string(data)
				h.mu.Lock()
				h.trackedPath = path
				h.trackedText = text
				h.mu.Unlock()

				h.guiManager.Editor().SetText(text)
				h.trackFile(path)
				h.guiManager.UpdateStatus(fmt.Sprintf("Opened %s", filepath.Base(path)))
			})
		}()
	}, h.guiManager.GetWindow())

	fileOpen.SetFilter(storage.NewExtensionFileFilter([]string{".md", ".markdown"}))
	fileOpen.Show()
}

func (h *Handlers) HandleSaveMarkdown() {
	text := h.guiManager.Editor().Text()

	fileSave := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			h.showError("File Save Error", err)
			return
		}
		if writer == nil {
			return
		}

		path := writer.URI().Path()

		go func() {
			_, writeErr := writer.Write([]byte(text))
			closeErr := writer.Close()
			if writeErr == nil {
				writeErr = closeErr
			}

			fyne.Do(func() {
				if writeErr != nil {
					h.showError("Markdown Save Error", writeErr)
					return
				}

				h.mu.Lock()
				h.trackedPath = path
				h.trackedText = text
				h.mu.Unlock()

				h.trackFile(path)
				h.guiManager.UpdateStatus("Markdown saved")
			})
		}()
	}, h.guiManager.GetWindow())

	fileSave.SetFileName("document.md")
	fileSave.SetFilter(storage.NewExtensionFileFilter([]string{".md"}))
	fileSave.Show()
}

func (h *Handlers) HandleSaveHTML() {
	h.mu.Lock()
	document := h.currentHTML
	h.mu.Unlock()

	fileSave := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			h.showError("File Save Error", err)
			return
		}
		if writer == nil {
			return
		}

		go func() {
			_, writeErr := writer.Write([]byte(document))
			closeErr := writer.Close()
			if writeErr == nil {
				writeErr = closeErr
			}

			fyne.Do(func() {
				if writeErr != nil {
					h.showError("HTML Save Error", writeErr)
					return
				}
				h.guiManager.UpdateStatus("HTML saved")
			})
		}()
	}, h.guiManager.GetWindow())

	fileSave.SetFileName("document.html")
	fileSave.SetFilter(storage.NewExtensionFileFilter([]string{".html"}))
	fileSave.Show()
}

func (h *Handlers) HandleSaveConfig() {
	current := h.store.Get()

	fileSave := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			h.showError("File Save Error", err)
			return
		}
		if writer == nil {
			return
		}

		go func() {
			writeErr := settings.WriteConfig(writer, current)
			closeErr := writer.Close()
			if writeErr == nil {
				writeErr = closeErr
			}

			fyne.Do(func() {
				if writeErr != nil {
					h.showError("Config Save Error", writeErr)
					return
				}
				h.guiManager.UpdateStatus("Config saved")
			})
		}()
	}, h.guiManager.GetWindow())

	fileSave.SetFileName("config.json")
	fileSave.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	fileSave.Show()
}

// HandleLoadConfig applies a config file to the settings store. A file
// that fails to read or parse is a no-op: settings keep their prior
// values, nothing half-applies.
func (h *Handlers) HandleLoadConfig() {
	fileOpen := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			h.showError("File Open Error", err)
			return
		}
		if reader == nil {
			return
		}

		go func() {
			partial, loadErr := settings.ReadConfig(reader)
			reader.Close()

			fyne.Do(func() {
				if loadErr != nil {
					h.showError("Config Load Error", loadErr)
					h.guiManager.UpdateStatus("Config load failed")
					return
				}

				h.store.Set(partial)
				h.guiManager.UpdateStatus("Config loaded")
			})
		}()
	}, h.guiManager.GetWindow())

	fileOpen.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	fileOpen.Show()
}

func (h *Handlers) HandleOpenInBrowser() {
	h.mu.Lock()
	document := h.currentHTML
	h.mu.Unlock()

	h.guiManager.UpdateStatus("Opening in browser...")

	go func() {
		err := h.browser.Open(document)

		fyne.Do(func() {
			if err != nil {
				h.showError("Browser Preview Error", err)
				h.guiManager.UpdateStatus("Ready")
				return
			}
			h.guiManager.UpdateStatus("Opened in browser")
		})
	}()
}

// handleFileChanged reloads the tracked file after an external change,
// unless the buffer holds unsaved edits. Runs on the watcher goroutine.
func (h *Handlers) handleFileChanged(path string) {
	h.mu.Lock()
	dirty := h.editorText != h.trackedText
	h.mu.Unlock()

	if dirty {
		h.logger.Warning("Handlers", "external change ignored, buffer has unsaved edits", map[string]interface{}{
			"path": path,
		})
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		h.logger.Error("Handlers", err, map[string]interface{}{
			"action": "reload",
			"path":   path,
		})
		return
	}

	text := string(data)

	h.mu.Lock()
	h.trackedText = text
	h.mu.Unlock()

	fyne.Do(func() {
		h.guiManager.Editor().SetText(text)
		h.guiManager.UpdateStatus(fmt.Sprintf("Reloaded %s", filepath.Base(path)))
	})
}

func (h *Handlers) trackFile(path string) {
	if h.watcher == nil {
		return
	}
	if err := h.watcher.Track(path); err != nil {
		h.logger.Warning("Handlers", "file tracking unavailable", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
	}
}

func (h *Handlers) showError(title string, err error) {
	h.guiManager.ShowError(title, err)
}

// hexColor formats a color the way the settings store expects it, e.g.
// "#282828". The alpha channel is dropped; CSS colors here are opaque.
func hexColor(c color.Color) string {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", nrgba.R, nrgba.G, nrgba.B)
}
