// Package preview renders generated documentation Markdown to standalone
// HTML for inspection during development. It is a convenience layer on top
// of the core pipeline; the pipeline's product remains the Markdown string.
package preview

import (
	"bytes"
	"errors"
	"fmt"

	highlighting "github.com/yuin/goldmark-highlighting/v2"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrRender reports a Goldmark rendering failure.
var ErrRender = errors.New("preview rendering failed")

// htmlTemplate wraps Goldmark's fragment output in a complete HTML5 document.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s
</body>
</html>`

// defaultTitle is used when no document title is given.
const defaultTitle = "Documentation Preview"

// Renderer converts Markdown to a standalone HTML document.
type Renderer struct {
	md goldmark.Markdown
}

// New creates a Renderer with GFM extensions and chroma-backed syntax
// highlighting for fenced code blocks.
func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithStyle("friendly"),
			),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)
	return &Renderer{md: md}
}

// ToHTML renders markdown into a standalone HTML5 document. An empty title
// falls back to a generic one.
func (r *Renderer) ToHTML(markdown, title string) (string, error) {
	if title == "" {
		title = defaultTitle
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}
	return fmt.Sprintf(htmlTemplate, title, buf.String()), nil
}
