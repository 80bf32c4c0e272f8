package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/untreu2/mdhtml/internal/settings"
)

// fontChoices is the stock Google Fonts list offered by the font selector.
// Values loaded from a config file that are not listed here are appended at
// runtime; the selector never rejects a font.
var fontChoices = []string{
	"roboto mono", "arial", "times new roman", "courier new", "verdana",
	"open sans", "lato", "montserrat", "oswald", "source code pro",
	"fira code", "pt mono", "droid sans mono",
}

// SettingsPanel is the left pane: presentation options plus the file action
// buttons.
type SettingsPanel struct {
	container *fyne.Container

	bgColorButton   *widget.Button
	textColorButton *widget.Button
	fontSelect      *widget.Select
	centerCheck     *widget.Check

	saveMarkdownButton *widget.Button
	saveHTMLButton     *widget.Button
	saveConfigButton   *widget.Button
	loadConfigButton   *widget.Button
	resetButton        *widget.Button

	bgColorHandler      func()
	textColorHandler    func()
	fontChangeHandler   func(string)
	centerChangeHandler func(bool)
	saveMarkdownHandler func()
	saveHTMLHandler     func()
	saveConfigHandler   func()
	loadConfigHandler   func()
	resetHandler        func()

	// applying suppresses change handlers while widget state is being
	// synced from the store, so programmatic updates never echo back.
	applying bool
}

func NewSettingsPanel() *SettingsPanel {
	panel := &SettingsPanel{}
	panel.setupPanel()
	return panel
}

func (p *SettingsPanel) setupPanel() {
	defaults := settings.Defaults()

	p.bgColorButton = widget.NewButton(defaults.BackgroundColor, p.onBackgroundColor)
	p.textColorButton = widget.NewButton(defaults.TextColor, p.onTextColor)

	p.fontSelect = widget.NewSelect(fontChoices, p.onFontSelected)
	p.fontSelect.SetSelected(defaults.FontFamily)

	p.centerCheck = widget.NewCheck("Center on Desktop", p.onCenterChanged)
	p.centerCheck.SetChecked(defaults.CenterContent)

	p.saveMarkdownButton = widget.NewButton("Save Markdown", p.onSaveMarkdown)
	p.saveHTMLButton = widget.NewButton("Save HTML", p.onSaveHTML)
	p.saveConfigButton = widget.NewButton("Save Config", p.onSaveConfig)
	p.loadConfigButton = widget.NewButton("Load Config", p.onLoadConfig)
	p.resetButton = widget.NewButton("Reset to Default", p.onReset)

	form := widget.NewForm(
		widget.NewFormItem("Background Color", p.bgColorButton),
		widget.NewFormItem("Text Color", p.textColorButton),
		widget.NewFormItem("Font", p.fontSelect),
	)

	p.container = container.NewVBox(
		form,
		p.centerCheck,
		widget.NewSeparator(),
		p.saveMarkdownButton,
		p.saveHTMLButton,
		p.saveConfigButton,
		p.loadConfigButton,
		widget.NewSeparator(),
		p.resetButton,
	)
}

func (p *SettingsPanel) GetContainer() *fyne.Container {
	return p.container
}

// ApplySettings syncs the widgets to a settings snapshot without firing
// change handlers. A font outside the stock list gains a selector entry.
func (p *SettingsPanel) ApplySettings(s settings.Settings) {
	p.applying = true
	defer func() { p.applying = false }()

	p.bgColorButton.SetText(s.BackgroundColor)
	p.textColorButton.SetText(s.TextColor)

	if !containsOption(p.fontSelect.Options, s.FontFamily) {
		p.fontSelect.Options = append(p.fontSelect.Options, s.FontFamily)
	}
	p.fontSelect.SetSelected(s.FontFamily)
	p.centerCheck.SetChecked(s.CenterContent)
}

func (p *SettingsPanel) SetBackgroundColorHandler(handler func()) {
	p.bgColorHandler = handler
}

func (p *SettingsPanel) SetTextColorHandler(handler func()) {
	p.textColorHandler = handler
}

func (p *SettingsPanel) SetFontChangeHandler(handler func(string)) {
	p.fontChangeHandler = handler
}

func (p *SettingsPanel) SetCenterChangeHandler(handler func(bool)) {
	p.centerChangeHandler = handler
}

func (p *SettingsPanel) SetSaveMarkdownHandler(handler func()) {
	p.saveMarkdownHandler = handler
}

func (p *SettingsPanel) SetSaveHTMLHandler(handler func()) {
	p.saveHTMLHandler = handler
}

func (p *SettingsPanel) SetSaveConfigHandler(handler func()) {
	p.saveConfigHandler = handler
}

func (p *SettingsPanel) SetLoadConfigHandler(handler func()) {
	p.loadConfigHandler = handler
}

func (p *SettingsPanel) SetResetHandler(handler func()) {
	p.resetHandler = handler
}

func (p *SettingsPanel) onBackgroundColor() {
	if p.bgColorHandler != nil {
		p.bgColorHandler()
	}
}

func (p *SettingsPanel) onTextColor() {
	if p.textColorHandler != nil {
		p.textColorHandler()
	}
}

func (p *SettingsPanel) onFontSelected(font string) {
	if p.applying {
		return
	}
	if p.fontChangeHandler != nil {
		p.fontChangeHandler(font)
	}
}

func (p *SettingsPanel) onCenterChanged(checked bool) {
	if p.applying {
		return
	}
	if p.centerChangeHandler != nil {
		p.centerChangeHandler(checked)
	}
}

func (p *SettingsPanel) onSaveMarkdown() {
	if p.saveMarkdownHandler != nil {
		p.saveMarkdownHandler()
	}
}

func (p *SettingsPanel) onSaveHTML() {
	if p.saveHTMLHandler != nil {
		p.saveHTMLHandler()
	}
}

func (p *SettingsPanel) onSaveConfig() {
	if p.saveConfigHandler != nil {
		p.saveConfigHandler()
	}
}

func (p *SettingsPanel) onLoadConfig() {
	if p.loadConfigHandler != nil {
		p.loadConfigHandler()
	}
}

func (p *SettingsPanel) onReset() {
	if p.resetHandler != nil {
		p.resetHandler()
	}
}

func containsOption(options []string, value string) bool {
	for _, opt := range options {
		if opt == value {
			return true
		}
	}
	return false
}
