package hierarchical

import (
	"slices"

	"github.com/fwojciec/treeseg"
	"golang.org/x/net/html"
)

// TextToken stands in for every non-element child in a tag sequence.
const TextToken = "text"

// Position markers returned by ClassifyPosition.
const (
	PositionText   = -2
	PositionInline = -1
)

// inlineElements holds tags rendered without a line break. Children with
// these tags never open a new block for descent.
var inlineElements = map[string]struct{}{
	"b": {}, "big": {}, "i": {}, "small": {}, "tt": {},
	"abbr": {}, "acronym": {}, "cite": {}, "code": {}, "dfn": {},
	"em": {}, "kbd": {}, "strong": {}, "samp": {}, "var": {},
	"a": {}, "bdo": {}, "br": {}, "img": {}, "map": {},
	"object": {}, "q": {}, "script": {}, "span": {}, "sub": {},
	"sup": {}, "button": {}, "input": {}, "label": {}, "select": {},
	"textarea": {},
	// Cufón font replacement.
	"cufontext": {}, "cufon": {},
}

// IsInline reports whether tag is an inline-level element.
func IsInline(tag string) bool {
	_, ok := inlineElements[tag]
	return ok
}

// TagToken maps a node to a comparable token: its tag name for elements,
// TextToken for everything else.
func TagToken(n *html.Node) string {
	if treeseg.IsElement(n) {
		return treeseg.TagName(n)
	}
	return TextToken
}

// ChildTokens returns the tag token of every direct child of n.
func ChildTokens(n *html.Node) []string {
	var tokens []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		tokens = append(tokens, TagToken(c))
	}
	return tokens
}

// ClassifyPosition returns PositionText for text tokens, PositionInline for
// inline elements, and i itself for block-level elements.
func ClassifyPosition(token string, i int) int {
	if token == TextToken {
		return PositionText
	}
	if IsInline(token) {
		return PositionInline
	}
	return i
}

// NormalizedOrder classifies each token by position and drops text entries.
// The result holds child indexes for block-level children and
// PositionInline for inline ones, in document order.
func NormalizedOrder(tokens []string) []int {
	order := make([]int, 0, len(tokens))
	for i, token := range tokens {
		if pos := ClassifyPosition(token, i); pos != PositionText {
			order = append(order, pos)
		}
	}
	return order
}

// SequencesAligned reports whether two tag sequences have the same element
// tags in the same order once text tokens are removed. Sequences without
// any element never align.
func SequencesAligned(a, b []string) bool {
	a = withoutText(a)
	b = withoutText(b)
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	return slices.Equal(a, b)
}

func withoutText(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if token != TextToken {
			out = append(out, token)
		}
	}
	return out
}
