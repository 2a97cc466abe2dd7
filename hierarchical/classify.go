package hierarchical

import (
	"github.com/fwojciec/treeseg"
	"golang.org/x/net/html"
)

// Classification is the outcome of comparing one group of aligned nodes.
// Exactly one of Segments and Orders is set.
type Classification struct {
	// Segments holds one terminal segment per group member.
	Segments []*treeseg.Segment

	// Orders holds, per group member, the normalized child order to
	// descend into when the group is not terminal.
	Orders [][]int
}

// Terminal reports whether the group ends the descent.
func (c Classification) Terminal() bool {
	return c.Segments != nil
}

// Classify decides how a group of nodes, one per tree at the same position,
// should be treated:
//
//   - identical word sets: the group is boilerplate, one static segment each;
//   - aligned children that are all inline: one dynamic segment each;
//   - aligned children with block-level elements: descend (not terminal);
//   - anything else: the trees diverge here, one dynamic segment each.
func Classify(group []*html.Node) Classification {
	if len(group) == 0 {
		return Classification{Segments: []*treeseg.Segment{}}
	}

	if sameWords(group) {
		return terminal(group, treeseg.SegmentStatic)
	}

	sequences := make([][]string, len(group))
	for i, n := range group {
		sequences[i] = ChildTokens(n)
	}

	if len(sequences[0]) == 0 || !allAligned(sequences) {
		return terminal(group, treeseg.SegmentDynamic)
	}

	orders := make([][]int, len(sequences))
	for i, seq := range sequences {
		orders[i] = NormalizedOrder(seq)
	}

	if allInline(orders[0]) {
		return terminal(group, treeseg.SegmentDynamic)
	}

	return Classification{Orders: orders}
}

func sameWords(group []*html.Node) bool {
	first := WordSet(group[0])
	for _, n := range group[1:] {
		if !first.Equal(WordSet(n)) {
			return false
		}
	}
	return true
}

func allAligned(sequences [][]string) bool {
	for _, seq := range sequences[1:] {
		if !SequencesAligned(sequences[0], seq) {
			return false
		}
	}
	return true
}

func allInline(order []int) bool {
	for _, pos := range order {
		if pos != PositionInline {
			return false
		}
	}
	return true
}

func terminal(group []*html.Node, class treeseg.SegmentClass) Classification {
	segments := make([]*treeseg.Segment, len(group))
	for i, n := range group {
		segments[i] = treeseg.NewSegment(class, n)
	}
	return Classification{Segments: segments}
}
