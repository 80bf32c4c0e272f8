package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Converter turns markdown source into an HTML fragment.
type Converter struct {
	md goldmark.Markdown
}

// NewConverter builds the goldmark pipeline: GFM (tables, strikethrough,
// task lists, autolinks), fenced-code syntax highlighting with CSS classes,
// and raw HTML passthrough. Passthrough matches the permissive behavior of
// common markdown converters; the editor is not a security boundary.
func NewConverter() *Converter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(highlightStyle),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			html.WithUnsafe(),
		),
	)

	return &Converter{md: md}
}

// Fragment converts markdown to an HTML fragment, excluding the document
// shell.
func (c *Converter) Fragment(source []byte) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert(source, &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return buf.String(), nil
}

type documentMeta struct {
	Title string `yaml:"title"`
}

// splitFrontmatter extracts an optional YAML frontmatter title and returns
// the remaining markdown body. Input without frontmatter, or with malformed
// frontmatter, is passed through untouched.
func splitFrontmatter(source string) (title string, body string) {
	var meta documentMeta
	rest, err := frontmatter.Parse(strings.NewReader(source), &meta)
	if err != nil {
		return "", source
	}
	return meta.Title, string(rest)
}
