package app

import (
	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"github.com/untreu2/mdhtml/internal/gui"
	"github.com/untreu2/mdhtml/internal/logger"
	"github.com/untreu2/mdhtml/internal/preview"
	"github.com/untreu2/mdhtml/internal/render"
	"github.com/untreu2/mdhtml/internal/settings"
	"github.com/untreu2/mdhtml/internal/watch"
)

const (
	AppName      = "mdhtml"
	AppID        = "com.untreu2.mdhtml"
	AppVersion   = "1.0.0"
	WindowWidth  = 1200
	WindowHeight = 700
)

type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	store      *settings.Store
	renderer   *render.Renderer
	guiManager *gui.Manager
	browser    *preview.Browser
	watcher    *watch.FileWatcher
	handlers   *Handlers
	lifecycle  *Lifecycle
}

func NewApplication() (*Application, error) {
	log := logger.NewConsoleLogger(logger.LevelFromEnv())

	fyneApp := fyneapp.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  WindowWidth,
		"window_height": WindowHeight,
	})

	store := settings.NewStore()
	renderer := render.NewRenderer()
	browser := preview.NewBrowser(log)

	guiManager, err := gui.NewManager(fyneApp, window, log)
	if err != nil {
		return nil, err
	}

	handlers := NewHandlers(store, renderer, guiManager, browser, log)

	watcher, err := watch.NewFileWatcher(log, handlers.handleFileChanged)
	if err != nil {
		return nil, err
	}
	handlers.SetWatcher(watcher)

	lifecycle := NewLifecycle(guiManager, browser, watcher, log)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     log,
		store:      store,
		renderer:   renderer,
		guiManager: guiManager,
		browser:    browser,
		watcher:    watcher,
		handlers:   handlers,
		lifecycle:  lifecycle,
	}

	application.setupHandlers()
	application.setupMenus()

	// Every settings mutation refreshes the panel and re-renders the
	// document, mirroring the editor-change path.
	store.Subscribe(func(s settings.Settings) {
		guiManager.ApplySettings(s)
		handlers.RefreshDocument()
	})

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) setupHandlers() {
	panel := a.guiManager.SettingsPanel()
	panel.SetBackgroundColorHandler(a.handlers.HandleBackgroundColorPick)
	panel.SetTextColorHandler(a.handlers.HandleTextColorPick)
	panel.SetFontChangeHandler(a.handlers.HandleFontChanged)
	panel.SetCenterChangeHandler(a.handlers.HandleCenterChanged)
	panel.SetSaveMarkdownHandler(a.handlers.HandleSaveMarkdown)
	panel.SetSaveHTMLHandler(a.handlers.HandleSaveHTML)
	panel.SetSaveConfigHandler(a.handlers.HandleSaveConfig)
	panel.SetLoadConfigHandler(a.handlers.HandleLoadConfig)
	panel.SetResetHandler(a.handlers.HandleReset)

	a.guiManager.Editor().SetChangeHandler(a.handlers.HandleEditorChanged)
	a.guiManager.Preview().SetOpenBrowserHandler(a.handlers.HandleOpenInBrowser)
}

func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	a.window.SetContent(a.guiManager.GetMainContainer())

	// Seed the preview and the cached document before the first keystroke.
	a.handlers.HandleEditorChanged("")

	a.window.Show()

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	return nil
}

func (a *Application) Quit() {
	a.lifecycle.Shutdown()
	a.fyneApp.Quit()
}
