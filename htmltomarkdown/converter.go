// Package htmltomarkdown renders segments as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/treeseg"
)

// Ensure Converter implements the treeseg converter interfaces at compile time.
var (
	_ treeseg.Converter        = (*Converter)(nil)
	_ treeseg.SegmentConverter = (*Converter)(nil)
)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", treeseg.Errorf(treeseg.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return result, nil
}

// ConvertSegment renders the segment's nodes and converts them to Markdown.
func (c *Converter) ConvertSegment(s *treeseg.Segment) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}

	rendered, err := treeseg.RenderHTML(s.Nodes...)
	if err != nil {
		return "", err
	}

	return c.Convert(rendered)
}
