package app

import "fyne.io/fyne/v2"

func (a *Application) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Markdown...", func() {
			a.handlers.HandleOpenMarkdown()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Save Markdown...", func() {
			a.handlers.HandleSaveMarkdown()
		}),
		fyne.NewMenuItem("Save HTML...", func() {
			a.handlers.HandleSaveHTML()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.Quit()
		}),
	)

	settingsMenu := fyne.NewMenu("Settings",
		fyne.NewMenuItem("Load Config...", func() {
			a.handlers.HandleLoadConfig()
		}),
		fyne.NewMenuItem("Save Config...", func() {
			a.handlers.HandleSaveConfig()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Reset to Default", func() {
			a.handlers.HandleReset()
		}),
	)

	mainMenu := fyne.NewMainMenu(fileMenu, settingsMenu)
	a.window.SetMainMenu(mainMenu)
}
