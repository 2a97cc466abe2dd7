package mock

import (
	"github.com/fwojciec/treeseg"
	"golang.org/x/net/html"
)

var _ treeseg.Segmenter = (*Segmenter)(nil)

// Segmenter is a mock implementation of treeseg.Segmenter.
type Segmenter struct {
	SegmentFn func(roots []*html.Node) ([][]*treeseg.Segment, error)
}

func (s *Segmenter) Segment(roots []*html.Node) ([][]*treeseg.Segment, error) {
	return s.SegmentFn(roots)
}
