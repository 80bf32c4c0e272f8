package render

import (
	"bytes"
	"text/template"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// highlightStyle selects the chroma color scheme for fenced code blocks.
// It matches the gruvbox palette used by the document shell.
const highlightStyle = "gruvbox"

// documentData feeds the document template. Color and font values are
// interpolated without validation or escaping: settings are caller-supplied
// and trusted, as documented for the settings store.
type documentData struct {
	Title           string
	Fragment        string
	BackgroundColor string
	TextColor       string
	FontFamily      string
	FontQuery       string
	HighlightCSS    string
	Center          bool
}

// documentTemplate is the fixed document shell: a Google Fonts stylesheet
// link keyed by the font family, inline style rules parameterized by the
// settings, and the converted fragment as the body.
var documentTemplate = template.Must(template.New("document").Parse(`<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link href="https://fonts.googleapis.com/css2?family={{.FontQuery}}:wght@300;400;700&display=swap" rel="stylesheet">
  <style>
    html, body {
      margin: 0;
      padding: 0;
      font-family: '{{.FontFamily}}', monospace;
      background-color: {{.BackgroundColor}};
      color: {{.TextColor}};
      line-height: 1.6;
    }
    body { padding: 40px; }
    h1, h2, h3, h4, h5, h6 {
      color: {{.TextColor}};
      margin-top: 20px;
      margin-bottom: 10px;
      text-align: center;
    }
    p { margin: 15px 0; font-size: 1.1em; }
    a {
      color: #83a598;
      text-decoration: none;
    }
    a:hover { text-decoration: underline; }
    img {
      max-width: 100%;
      height: auto;
      display: block;
      margin: 20px auto;
    }
    blockquote {
      border-left: 4px solid #83a598;
      margin: 20px 0;
      padding: 10px 20px;
      background-color: #3c3836;
      color: #d5c4a1;
      font-style: italic;
    }
    code {
      background-color: #3c3836;
      padding: 3px 6px;
      border-radius: 4px;
      font-family: '{{.FontFamily}}', monospace;
    }
    pre {
      background-color: #3c3836;
      padding: 15px;
      border-radius: 8px;
      overflow-x: auto;
    }
{{.HighlightCSS}}{{if .Center}}    @media (min-width: 1024px) {
      body {
        max-width: 800px;
        margin: 0 auto;
      }
    }
{{end}}    @media (max-width: 600px) {
      body { padding: 20px; }
    }
  </style>
</head>
<body>
{{.Fragment}}</body>
</html>
`))

// highlightCSS holds the chroma class rules for the selected style,
// generated once at startup. Deterministic for a given chroma version.
var highlightCSS = func() string {
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	var buf bytes.Buffer
	if err := formatter.WriteCSS(&buf, styles.Get(highlightStyle)); err != nil {
		return ""
	}
	return buf.String()
}()

func executeDocument(data documentData) (string, error) {
	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
