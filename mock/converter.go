package mock

import "github.com/fwojciec/treeseg"

var (
	_ treeseg.Converter        = (*Converter)(nil)
	_ treeseg.SegmentConverter = (*Converter)(nil)
)

// Converter is a mock implementation of treeseg.Converter and
// treeseg.SegmentConverter.
type Converter struct {
	ConvertFn        func(html string) (string, error)
	ConvertSegmentFn func(s *treeseg.Segment) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

func (c *Converter) ConvertSegment(s *treeseg.Segment) (string, error) {
	return c.ConvertSegmentFn(s)
}
