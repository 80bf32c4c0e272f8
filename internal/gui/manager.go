package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"github.com/untreu2/mdhtml/internal/gui/components"
	"github.com/untreu2/mdhtml/internal/logger"
	"github.com/untreu2/mdhtml/internal/settings"
)

const (
	minTextScale  = float32(0.5)
	maxTextScale  = float32(3.0)
	textScaleStep = float32(0.1)
)

// Manager owns the three panes and the window-level widgets. All mutating
// methods are safe to call from any goroutine; GUI work is marshalled onto
// the event thread with fyne.Do.
type Manager struct {
	fyneApp    fyne.App
	window     fyne.Window
	logger     logger.Logger
	isShutdown bool

	settingsPanel *components.SettingsPanel
	editor        *components.Editor
	preview       *components.Preview

	textScale float32
}

func NewManager(fyneApp fyne.App, window fyne.Window, log logger.Logger) (*Manager, error) {
	manager := &Manager{
		fyneApp:       fyneApp,
		window:        window,
		logger:        log,
		settingsPanel: components.NewSettingsPanel(),
		editor:        components.NewEditor(),
		preview:       components.NewPreview(),
		textScale:     1.0,
	}

	manager.editor.SetZoomInHandler(manager.zoomIn)
	manager.editor.SetZoomOutHandler(manager.zoomOut)

	log.Info("GUIManager", "initialized three-pane layout", nil)
	return manager, nil
}

// GetMainContainer assembles the settings | editor | preview split, sized
// roughly 20/30/50 like the window the editor started out with.
func (m *Manager) GetMainContainer() fyne.CanvasObject {
	editorPreview := container.NewHSplit(
		m.editor.GetContainer(),
		m.preview.GetContainer(),
	)
	editorPreview.SetOffset(0.375)

	main := container.NewHSplit(m.settingsPanel.GetContainer(), editorPreview)
	main.SetOffset(0.17)

	return main
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

func (m *Manager) SettingsPanel() *components.SettingsPanel {
	return m.settingsPanel
}

func (m *Manager) Editor() *components.Editor {
	return m.editor
}

func (m *Manager) Preview() *components.Preview {
	return m.preview
}

// ApplySettings reflects a settings snapshot in the settings panel.
func (m *Manager) ApplySettings(s settings.Settings) {
	fyne.Do(func() {
		m.settingsPanel.ApplySettings(s)
	})
}

func (m *Manager) SetEditorText(text string) {
	fyne.Do(func() {
		m.editor.SetText(text)
	})
}

func (m *Manager) SetPreviewMarkdown(markdown string) {
	fyne.Do(func() {
		m.preview.SetMarkdown(markdown)
	})
}

func (m *Manager) UpdateStatus(status string) {
	fyne.Do(func() {
		m.preview.SetStatus(status)
		m.logger.Debug("GUIManager", "status updated", map[string]interface{}{
			"status": status,
		})
	})
}

func (m *Manager) ShowError(title string, err error) {
	m.logger.Error("GUIManager", err, map[string]interface{}{
		"title": title,
	})

	fyne.Do(func() {
		dialog.ShowError(err, m.window)
	})
}

func (m *Manager) zoomIn() {
	m.setTextScale(m.textScale + textScaleStep)
}

func (m *Manager) zoomOut() {
	m.setTextScale(m.textScale - textScaleStep)
}

func (m *Manager) setTextScale(scale float32) {
	if scale < minTextScale {
		scale = minTextScale
	}
	if scale > maxTextScale {
		scale = maxTextScale
	}
	if scale == m.textScale {
		return
	}

	m.textScale = scale
	m.fyneApp.Settings().SetTheme(newScaledTheme(scale))
	m.logger.Debug("GUIManager", "text scale changed", map[string]interface{}{
		"scale": scale,
	})
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown initiated", nil)
}
