package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// scaledTheme wraps the default theme with an adjustable text size, which
// is how the editor zoom is implemented: Fyne sizes text per theme, not
// per widget.
type scaledTheme struct {
	base  fyne.Theme
	scale float32
}

func newScaledTheme(scale float32) *scaledTheme {
	return &scaledTheme{base: theme.DefaultTheme(), scale: scale}
}

func (t *scaledTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return t.base.Color(name, variant)
}

func (t *scaledTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *scaledTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *scaledTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameText {
		return t.base.Size(name) * t.scale
	}
	return t.base.Size(name)
}
