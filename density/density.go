// Package density estimates how text-heavy an HTML element is.
//
// Text density follows the densitometric approach: a block's text is
// wrapped at a fixed column width and the density is the average number
// of words per full line. Navigation and boilerplate tend to produce
// short lines of few words; article prose fills lines.
package density

import (
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/treeseg"
	"github.com/fwojciec/treeseg/hierarchical"
	"golang.org/x/net/html"
)

// LineWidth is the column at which block text is wrapped.
const LineWidth = 80

// Ensure MaxDensity satisfies treeseg.DensityFunc at compile time.
var _ treeseg.DensityFunc = MaxDensity

// skipped elements hold no rendered text.
var skipped = map[string]struct{}{
	"script":   {},
	"style":    {},
	"noscript": {},
	"template": {},
}

// TextDensity returns the average number of words per wrapped line of
// text. The last line is ignored when there is more than one, since it is
// usually only partly filled. Returns 0 for text without words.
func TextDensity(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}

	lines := 1
	lineLen := 0
	lastLineWords := 0
	for _, w := range words {
		n := utf8.RuneCountInString(w)
		if lineLen > 0 && lineLen+1+n > LineWidth {
			lines++
			lineLen = n
			lastLineWords = 1
			continue
		}
		if lineLen > 0 {
			lineLen++
		}
		lineLen += n
		lastLineWords++
	}

	if lines == 1 {
		return float64(len(words))
	}
	return float64(len(words)-lastLineWords) / float64(lines-1)
}

// MaxDensity returns the highest text density among n and its block-level
// descendants. Inline elements belong to the block that contains them.
func MaxDensity(n *html.Node) float64 {
	if n == nil {
		return 0
	}
	if n.Type == html.TextNode {
		return TextDensity(n.Data)
	}

	var best float64
	for _, text := range Blocks(n) {
		if d := TextDensity(text); d > best {
			best = d
		}
	}
	return best
}

// Blocks returns the own text of n and of every block-level element below
// it, in document order. Text inside a nested block is attributed to that
// block only.
func Blocks(n *html.Node) []string {
	var blocks []string
	var collect func(n *html.Node, sb *strings.Builder)
	collect = func(n *html.Node, sb *strings.Builder) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				sb.WriteString(c.Data)
			case html.ElementNode:
				if _, ok := skipped[c.Data]; ok {
					continue
				}
				if hierarchical.IsInline(c.Data) {
					collect(c, sb)
					continue
				}
				// Blocks break the surrounding text.
				sb.WriteByte(' ')
				var inner strings.Builder
				idx := len(blocks)
				blocks = append(blocks, "")
				collect(c, &inner)
				blocks[idx] = inner.String()
			}
		}
	}

	var own strings.Builder
	blocks = append(blocks, "")
	collect(n, &own)
	blocks[0] = own.String()
	return blocks
}
