package markdown

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
)

// Renderer renders bot replies as markdown with syntax highlighting.
// Rendered output is cached per message index since message content never
// changes once received.
type Renderer struct {
	glamour *glamour.TermRenderer
	width   int
	cache   map[int]string
}

// NewRenderer creates a new markdown renderer.
func NewRenderer(width int) (*Renderer, error) {
	gr, err := glamour.NewTermRenderer(
		glamour.WithStyles(customStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	return &Renderer{
		glamour: gr,
		width:   width,
		cache:   map[int]string{},
	}, nil
}

// ToMarkdown renders markdown content. The index keys the cache; use -1
// for non-cached rendering.
func (r *Renderer) ToMarkdown(content string, index int) string {
	if index >= 0 {
		if rendered, ok := r.cache[index]; ok {
			return rendered
		}
	}

	rendered, err := r.glamour.Render(content)
	if err != nil {
		return content
	}
	rendered = strings.Trim(rendered, "\n")

	if index >= 0 {
		r.cache[index] = rendered
	}
	return rendered
}

// Reset drops the render cache. Call when the cache's index space changes
// meaning, e.g. when switching to a different message sequence.
func (r *Renderer) Reset() {
	r.cache = map[int]string{}
}

// SetWidth updates the renderer width, recreating internals if needed.
func (r *Renderer) SetWidth(width int) error {
	if r.width == width {
		return nil
	}
	newRenderer, err := NewRenderer(width)
	if err != nil {
		return err
	}
	*r = *newRenderer
	return nil
}

// customStyle returns a modified glamour style for cleaner output.
func customStyle() ansi.StyleConfig {
	style := styles.DraculaStyleConfig
	zero := uint(0)
	style.Document.Margin = &zero
	style.CodeBlock.Margin = &zero
	style.CodeBlock.Indent = &zero
	style.CodeBlock.Prefix = ""
	style.CodeBlock.BlockPrefix = ""

	style.Code.Margin = &zero
	style.Code.Indent = &zero
	style.Code.Prefix = ""
	style.Code.Suffix = ""

	style.Paragraph.BlockPrefix = ""
	style.Paragraph.BlockSuffix = ""

	return style
}
