package markup

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Renderer converts question and notes text into display form.
type Renderer interface {
	Render(text string) (string, error)
}

// Markdown renders Markdown to HTML with typographic replacements (curly
// quotes, dashes, ellipses).
type Markdown struct {
	md goldmark.Markdown
}

// NewMarkdown constructs the production renderer.
func NewMarkdown() *Markdown {
	return &Markdown{
		md: goldmark.New(goldmark.WithExtensions(extension.Typographer)),
	}
}

// Render converts one text fragment. Empty input renders as empty output.
func (m *Markdown) Render(text string) (string, error) {
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("render markup: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// Plain passes text through unchanged. The terminal preview uses it, and
// tests use it to keep expectations literal.
type Plain struct{}

func (Plain) Render(text string) (string, error) {
	return text, nil
}
