package hierarchical_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/treeseg"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// parseElement parses an HTML fragment and returns its first element
// inside <body>.
func parseElement(t *testing.T, fragment string) *html.Node {
	t.Helper()

	doc, err := html.Parse(strings.NewReader("<html><head></head><body>" + fragment + "</body></html>"))
	require.NoError(t, err)

	body := findTag(doc, "body")
	require.NotNil(t, body)
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	require.FailNow(t, "fragment has no element", fragment)
	return nil
}

func parseElements(t *testing.T, fragments ...string) []*html.Node {
	t.Helper()

	nodes := make([]*html.Node, len(fragments))
	for i, f := range fragments {
		nodes[i] = parseElement(t, f)
	}
	return nodes
}

func findTag(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findTag(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// tagsOf returns the tag name of the first node of each segment.
func tagsOf(segments []*treeseg.Segment) []string {
	tags := make([]string, len(segments))
	for i, s := range segments {
		tags[i] = treeseg.TagName(s.Nodes[0])
	}
	return tags
}

// classesOf returns the class of each segment.
func classesOf(segments []*treeseg.Segment) []treeseg.SegmentClass {
	classes := make([]treeseg.SegmentClass, len(segments))
	for i, s := range segments {
		classes[i] = s.Class
	}
	return classes
}

func constDensity(v float64) treeseg.DensityFunc {
	return func(*html.Node) float64 { return v }
}
