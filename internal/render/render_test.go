package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/untreu2/mdhtml/internal/settings"
)

func TestDocumentDeterministic(t *testing.T) {
	r := NewRenderer()
	s := settings.Defaults()
	source := "# Title\n\nSome *emphasis* and a [link](https://example.com).\n"

	first, err := r.Document(source, s)
	require.NoError(t, err)
	second, err := r.Document(source, s)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDocumentHeading(t *testing.T) {
	r := NewRenderer()

	doc, err := r.Document("# Hi", settings.Defaults())
	require.NoError(t, err)

	assert.Contains(t, doc, "<h1")
	assert.Contains(t, doc, "Hi</h1>")
}

func TestDocumentCentering(t *testing.T) {
	r := NewRenderer()
	s := settings.Defaults()

	s.CenterContent = true
	centered, err := r.Document("# Hi", s)
	require.NoError(t, err)
	assert.Contains(t, centered, "@media (min-width: 1024px)")
	assert.Contains(t, centered, "max-width: 800px")

	s.CenterContent = false
	plain, err := r.Document("# Hi", s)
	require.NoError(t, err)
	assert.NotContains(t, plain, "@media (min-width: 1024px)")
}

func TestDocumentStyleInterpolation(t *testing.T) {
	r := NewRenderer()
	s := settings.Defaults()
	s.BackgroundColor = "#000000"
	s.TextColor = "#ffffff"

	doc, err := r.Document("hello", s)
	require.NoError(t, err)

	assert.Contains(t, doc, "background-color: #000000;")
	assert.Contains(t, doc, "color: #ffffff;")
}

func TestDocumentFontStylesheet(t *testing.T) {
	r := NewRenderer()
	s := settings.Defaults()
	s.FontFamily = "roboto mono"

	doc, err := r.Document("hello", s)
	require.NoError(t, err)

	assert.Contains(t, doc, "https://fonts.googleapis.com/css2?family=roboto+mono:wght@300;400;700&display=swap")
	assert.Contains(t, doc, "font-family: 'roboto mono', monospace;")
}

func TestDocumentRawHTMLPassthrough(t *testing.T) {
	r := NewRenderer()

	doc, err := r.Document(`<div class="custom">kept</div>`, settings.Defaults())
	require.NoError(t, err)

	assert.Contains(t, doc, `<div class="custom">kept</div>`)
}

func TestDocumentFencedCodeHighlighting(t *testing.T) {
	r := NewRenderer()
	source := "```go\nfmt.Println(\"hi\")\n```\n"

	doc, err := r.Document(source, settings.Defaults())
	require.NoError(t, err)

	assert.Contains(t, doc, `class="chroma"`)
	// Class rules for the highlighted tokens ship inside the document.
	assert.Contains(t, doc, ".chroma")
}

func TestDocumentGFM(t *testing.T) {
	r := NewRenderer()

	doc, err := r.Document("~~gone~~", settings.Defaults())
	require.NoError(t, err)
	assert.Contains(t, doc, "<del>gone</del>")

	doc, err = r.Document("| a | b |\n|---|---|\n| 1 | 2 |\n", settings.Defaults())
	require.NoError(t, err)
	assert.Contains(t, doc, "<table>")
}

func TestDocumentFrontmatterTitle(t *testing.T) {
	r := NewRenderer()
	source := "---\ntitle: My Notes\n---\n\n# Hi\n"

	doc, err := r.Document(source, settings.Defaults())
	require.NoError(t, err)

	assert.Contains(t, doc, "<title>My Notes</title>")
	assert.NotContains(t, doc, "title: My Notes")
	assert.Contains(t, doc, "Hi</h1>")
}

func TestDocumentDefaultTitle(t *testing.T) {
	r := NewRenderer()

	doc, err := r.Document("# Hi", settings.Defaults())
	require.NoError(t, err)

	assert.Contains(t, doc, "<title>mdhtml</title>")
}

func TestDocumentEmptyInput(t *testing.T) {
	r := NewRenderer()

	doc, err := r.Document("", settings.Defaults())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc, "<!doctype html>"))
	assert.Contains(t, doc, "</html>")
}

func TestFontQuery(t *testing.T) {
	assert.Equal(t, "roboto+mono", fontQuery("roboto mono"))
	assert.Equal(t, "arial", fontQuery("arial"))
	assert.Equal(t, "source+code+pro", fontQuery(" source code pro "))
}
