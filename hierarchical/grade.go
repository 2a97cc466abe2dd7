package hierarchical

import (
	"unicode"

	"github.com/fwojciec/treeseg"
	"golang.org/x/net/html"
)

// noiseTags mark navigational text that does not count as content.
var noiseTags = map[string]struct{}{
	"a":    {},
	"time": {},
}

// Grade scores s by the share of its word characters that are content
// rather than noise, scaled by the density of its first node.
// Digits outside links and every word character inside links or <time>
// elements count as noise. A segment without word characters keeps its
// current Index. Grade updates s in place and returns it.
func Grade(s *treeseg.Segment, density treeseg.DensityFunc) *treeseg.Segment {
	var wrong, all int

	for _, n := range s.Nodes {
		var linkDigits, linkWords int
		for _, noise := range noiseNodes(n) {
			text := treeseg.Text(noise)
			linkDigits += countDigits(text)
			linkWords += countWordChars(text)
		}

		text := treeseg.Text(n)
		all += countWordChars(text)
		wrong += countDigits(text) - linkDigits + linkWords
	}

	if all != 0 {
		s.Index = (1.0 - float64(wrong)/float64(all)) * density(s.Nodes[0])
	}
	return s
}

// noiseNodes returns every descendant of n, excluding n, whose tag is a
// noise tag. Nested matches are all returned.
func noiseNodes(n *html.Node) []*html.Node {
	var found []*html.Node
	var visit func(*html.Node)
	visit = func(p *html.Node) {
		for c := p.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			if _, ok := noiseTags[c.Data]; ok {
				found = append(found, c)
			}
			visit(c)
		}
	}
	visit(n)
	return found
}

func countDigits(s string) int {
	var count int
	for _, r := range s {
		if unicode.IsDigit(r) {
			count++
		}
	}
	return count
}

// countWordChars counts letters, numbers and underscores.
func countWordChars(s string) int {
	var count int
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_' {
			count++
		}
	}
	return count
}
