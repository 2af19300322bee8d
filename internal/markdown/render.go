package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// Renderer converts markdown content to HTML for the public pages.
type Renderer struct {
	md goldmark.Markdown
}

func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
		),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithHardWraps(),
		),
	)

	return &Renderer{md: md}
}

func (r *Renderer) Render(source string) (string, error) {
	var buf bytes.Buffer
	err := r.md.Convert([]byte(source), &buf)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
