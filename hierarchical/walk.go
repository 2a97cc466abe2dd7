package hierarchical

import (
	"slices"

	"github.com/fwojciec/treeseg"
	"golang.org/x/net/html"
)

// DefaultMaxDepth is the deepest tree level Walk descends into by default.
const DefaultMaxDepth = 512

// frame is one pending group on the walk stack.
type frame struct {
	group []*html.Node
	depth int
}

// LimitFunc is called with every group the walk stops descending because
// it reached the depth limit.
type LimitFunc func(depth int, group []*html.Node)

// Walk descends the roots in parallel and collects terminal segments.
// It returns one segment list per root, in input order, with segments in
// document order. A group at maxDepth that would need further descent
// becomes dynamic segments instead; maxDepth <= 0 disables the limit.
//
// Walk returns EINTERNAL if the trees turn out not to align position for
// position during descent.
func Walk(roots []*html.Node, maxDepth int) ([][]*treeseg.Segment, error) {
	return walk(roots, maxDepth, nil)
}

func walk(roots []*html.Node, maxDepth int, onLimit LimitFunc) ([][]*treeseg.Segment, error) {
	results := make([][]*treeseg.Segment, len(roots))
	for i := range results {
		results[i] = []*treeseg.Segment{}
	}
	if len(roots) == 0 {
		return results, nil
	}

	stack := []frame{{group: roots}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Text nodes carry no structure to compare.
		if slices.ContainsFunc(f.group, isLeaf) {
			continue
		}

		c := Classify(f.group)
		if !c.Terminal() && maxDepth > 0 && f.depth >= maxDepth {
			if onLimit != nil {
				onLimit(f.depth, f.group)
			}
			c = terminal(f.group, treeseg.SegmentDynamic)
		}

		if c.Terminal() {
			for i, s := range c.Segments {
				results[i] = append(results[i], s)
			}
			continue
		}

		next, err := descend(f, c.Orders)
		if err != nil {
			return nil, err
		}
		// Push in reverse so groups pop left to right.
		for i := len(next) - 1; i >= 0; i-- {
			stack = append(stack, next[i])
		}
	}

	return results, nil
}

// descend gathers the child groups for every block-level position.
func descend(f frame, orders [][]int) ([]frame, error) {
	if len(orders) != len(f.group) {
		return nil, treeseg.Errorf(treeseg.EINTERNAL,
			"alignment fault at depth %d: %d orders for %d nodes", f.depth, len(orders), len(f.group))
	}
	first := orders[0]
	for i, order := range orders {
		if len(order) != len(first) {
			return nil, treeseg.Errorf(treeseg.EINTERNAL,
				"alignment fault at depth %d: tree %d has %d positions, tree 0 has %d",
				f.depth, i, len(order), len(first))
		}
	}

	children := make([][]*html.Node, len(f.group))
	for i, n := range f.group {
		children[i] = treeseg.Children(n)
	}

	var next []frame
	for p, pos := range first {
		if pos == PositionInline {
			continue
		}
		group := make([]*html.Node, len(f.group))
		for i, order := range orders {
			idx := order[p]
			if idx < 0 || idx >= len(children[i]) {
				return nil, treeseg.Errorf(treeseg.EINTERNAL,
					"alignment fault at depth %d: tree %d has no child %d", f.depth, i, idx)
			}
			group[i] = children[i][idx]
		}
		next = append(next, frame{group: group, depth: f.depth + 1})
	}
	return next, nil
}

func isLeaf(n *html.Node) bool {
	return !treeseg.IsElement(n)
}
