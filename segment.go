package treeseg

import (
	"cmp"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// SegmentClass classifies a segment as boilerplate or content.
// Values are ordinal: a higher class ranks as more interesting.
type SegmentClass int

// Segment classes, ordered from least to most interesting.
const (
	// SegmentStatic marks text that is identical across all compared trees.
	SegmentStatic SegmentClass = iota
	// SegmentDynamic marks regions that vary between trees or cannot be aligned.
	SegmentDynamic
)

// String returns the lowercase name of the class.
func (c SegmentClass) String() string {
	switch c {
	case SegmentStatic:
		return "static"
	case SegmentDynamic:
		return "dynamic"
	}
	return fmt.Sprintf("SegmentClass(%d)", int(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c SegmentClass) MarshalText() ([]byte, error) {
	switch c {
	case SegmentStatic, SegmentDynamic:
		return []byte(c.String()), nil
	}
	return nil, Errorf(EINVALID, "unknown segment class %d", int(c))
}

// Segment is one classified terminal region of one input tree.
// Nodes point into the caller's tree and are never modified.
type Segment struct {
	Nodes []*html.Node `json:"-"`
	Class SegmentClass `json:"class"`

	// Index is the segment's score. It is zero until the segment is graded
	// and is only meaningful for ordering segments of the same class.
	Index float64 `json:"index"`
}

// NewSegment returns an ungraded segment covering nodes.
func NewSegment(class SegmentClass, nodes ...*html.Node) *Segment {
	return &Segment{Nodes: nodes, Class: class}
}

// Validate returns an error if the segment contains invalid fields.
func (s *Segment) Validate() error {
	if len(s.Nodes) == 0 {
		return Errorf(EINVALID, "segment nodes required")
	}
	for _, n := range s.Nodes {
		if n == nil {
			return Errorf(EINVALID, "segment contains nil node")
		}
	}
	return nil
}

// Text returns the combined text of the segment's nodes.
func (s *Segment) Text() string {
	if len(s.Nodes) == 1 {
		return Text(s.Nodes[0])
	}
	var sb strings.Builder
	for _, n := range s.Nodes {
		sb.WriteString(Text(n))
	}
	return sb.String()
}

// CompareSegments orders segments by priority for use with slices.SortStableFunc.
// Dynamic segments come before static ones; within a class, higher Index
// comes first. Equal segments compare as 0 so stable sorts keep their order.
func CompareSegments(a, b *Segment) int {
	if a.Class != b.Class {
		return cmp.Compare(b.Class, a.Class)
	}
	return cmp.Compare(b.Index, a.Index)
}

// DensityFunc estimates the informational density of a single node.
// Higher values mean more text relative to markup.
type DensityFunc func(n *html.Node) float64

// Segmenter partitions parallel trees into ranked segments.
type Segmenter interface {
	// Segment walks the roots in parallel and returns one ranked segment
	// list per root, in input order. Fewer than two roots yields a nil
	// result and a nil error: there is nothing to compare.
	Segment(roots []*html.Node) ([][]*Segment, error)
}
