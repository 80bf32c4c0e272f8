package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Editor is the center pane: a monospace multiline entry with zoom
// controls above it.
type Editor struct {
	container *fyne.Container
	entry     *widget.Entry

	zoomInButton  *widget.Button
	zoomOutButton *widget.Button

	changeHandler  func(string)
	zoomInHandler  func()
	zoomOutHandler func()
}

func NewEditor() *Editor {
	editor := &Editor{}
	editor.setupEditor()
	return editor
}

func (e *Editor) setupEditor() {
	e.entry = widget.NewMultiLineEntry()
	e.entry.SetPlaceHolder("Write your Markdown content here...")
	e.entry.TextStyle = fyne.TextStyle{Monospace: true}
	e.entry.Wrapping = fyne.TextWrapWord
	e.entry.OnChanged = e.onTextChanged

	e.zoomInButton = widget.NewButton("Zoom In", e.onZoomIn)
	e.zoomOutButton = widget.NewButton("Zoom Out", e.onZoomOut)
	zoomRow := container.NewHBox(e.zoomInButton, e.zoomOutButton)

	e.container = container.NewBorder(zoomRow, nil, nil, nil, e.entry)
}

func (e *Editor) GetContainer() *fyne.Container {
	return e.container
}

func (e *Editor) Text() string {
	return e.entry.Text
}

// SetText replaces the buffer. The entry fires OnChanged, so the preview
// refreshes without extra plumbing.
func (e *Editor) SetText(text string) {
	e.entry.SetText(text)
}

func (e *Editor) SetChangeHandler(handler func(string)) {
	e.changeHandler = handler
}

func (e *Editor) SetZoomInHandler(handler func()) {
	e.zoomInHandler = handler
}

func (e *Editor) SetZoomOutHandler(handler func()) {
	e.zoomOutHandler = handler
}

func (e *Editor) onTextChanged(text string) {
	if e.changeHandler != nil {
		e.changeHandler(text)
	}
}

func (e *Editor) onZoomIn() {
	if e.zoomInHandler != nil {
		e.zoomInHandler()
	}
}

func (e *Editor) onZoomOut() {
	if e.zoomOutHandler != nil {
		e.zoomOutHandler()
	}
}
