// Package render turns markdown text and a settings snapshot into a
// complete HTML document. The result is a pure function of its inputs:
// no other state feeds the output.
package render

import (
	"fmt"
	"strings"

	"github.com/untreu2/mdhtml/internal/settings"
)

// DefaultTitle is used when the document carries no frontmatter title.
const DefaultTitle = "mdhtml"

// Renderer converts markdown into a rendered HTML document. Stateless;
// invoked synchronously on every editor or settings change.
type Renderer struct {
	converter *Converter
}

func NewRenderer() *Renderer {
	return &Renderer{converter: NewConverter()}
}

// Document renders a full HTML document from markdown source and a settings
// snapshot. A frontmatter title, when present, becomes the document title
// and is stripped from the body.
func (r *Renderer) Document(markdown string, s settings.Settings) (string, error) {
	title, body := splitFrontmatter(markdown)
	if title == "" {
		title = DefaultTitle
	}

	fragment, err := r.converter.Fragment([]byte(body))
	if err != nil {
		return "", fmt.Errorf("rendering document: %w", err)
	}

	return executeDocument(documentData{
		Title:           title,
		Fragment:        fragment,
		BackgroundColor: s.BackgroundColor,
		TextColor:       s.TextColor,
		FontFamily:      s.FontFamily,
		FontQuery:       fontQuery(s.FontFamily),
		HighlightCSS:    highlightCSS,
		Center:          s.CenterContent,
	})
}

// fontQuery converts a font family to its Google Fonts URL form, e.g.
// "roboto mono" -> "roboto+mono".
func fontQuery(family string) string {
	return strings.ReplaceAll(strings.TrimSpace(family), " ", "+")
}
