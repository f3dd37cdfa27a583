package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrNotesConversion indicates the notes could not be rendered.
var ErrNotesConversion = errors.New("notes conversion failed")

// NotesConverter renders Markdown notes to an HTML fragment.
type NotesConverter interface {
	ToFragment(ctx context.Context, markdown string) (string, error)
}

// GoldmarkConverter renders notes with goldmark. Raw HTML in the input is
// dropped, so the fragment can be inserted without further escaping.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM and class-based
// syntax highlighting for fenced code.
func NewGoldmarkConverter() *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
			),
		),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)
	return &GoldmarkConverter{md: md}
}

// ToFragment converts markdown to HTML. Blank input yields "".
// Goldmark has no context support, so conversion runs in a goroutine and
// the call returns early on cancellation.
func (c *GoldmarkConverter) ToFragment(ctx context.Context, markdown string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.TrimSpace(markdown) == "" {
		return "", nil
	}

	type result struct {
		html string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(markdown), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrNotesConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

var _ NotesConverter = (*GoldmarkConverter)(nil)
