package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Preview is the right pane: the in-window rendered view of the current
// document, with a button to open the full HTML document in the system
// browser and a status line underneath.
type Preview struct {
	container *fyne.Container
	richText  *widget.RichText

	openBrowserButton *widget.Button
	statusLabel       *widget.Label

	openBrowserHandler func()
}

func NewPreview() *Preview {
	preview := &Preview{}
	preview.setupPreview()
	return preview
}

func (p *Preview) setupPreview() {
	p.richText = widget.NewRichTextFromMarkdown("")
	p.richText.Wrapping = fyne.TextWrapWord

	p.openBrowserButton = widget.NewButton("Open in Browser", p.onOpenBrowser)
	p.openBrowserButton.Importance = widget.HighImportance

	p.statusLabel = widget.NewLabel("Ready")

	scroll := container.NewVScroll(p.richText)

	p.container = container.NewBorder(
		p.openBrowserButton,
		p.statusLabel,
		nil, nil,
		scroll,
	)
}

func (p *Preview) GetContainer() *fyne.Container {
	return p.container
}

// SetMarkdown refreshes the in-window view from markdown source.
func (p *Preview) SetMarkdown(markdown string) {
	p.richText.ParseMarkdown(markdown)
}

func (p *Preview) SetStatus(status string) {
	p.statusLabel.SetText(status)
}

func (p *Preview) SetOpenBrowserHandler(handler func()) {
	p.openBrowserHandler = handler
}

func (p *Preview) onOpenBrowser() {
	if p.openBrowserHandler != nil {
		p.openBrowserHandler()
	}
}
