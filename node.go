package treeseg

import (
	"strings"

	"golang.org/x/net/html"
)

// DocumentTag is the tag name reported for document nodes.
const DocumentTag = "#document"

// IsElement reports whether n can hold children for segmentation purposes.
// Document nodes count as elements; text, comment and doctype nodes do not.
func IsElement(n *html.Node) bool {
	return n != nil && (n.Type == html.ElementNode || n.Type == html.DocumentNode)
}

// TagName returns the element's tag name, or "" for non-elements.
func TagName(n *html.Node) string {
	switch {
	case n == nil:
		return ""
	case n.Type == html.DocumentNode:
		return DocumentTag
	case n.Type == html.ElementNode:
		return n.Data
	}
	return ""
}

// Children returns the direct children of n in document order.
func Children(n *html.Node) []*html.Node {
	var children []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, c)
	}
	return children
}

// Text returns the concatenated text of n and all its descendants.
// Comments and doctypes contribute nothing.
func Text(n *html.Node) string {
	if n == nil {
		return ""
	}
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	writeText(&sb, n)
	return sb.String()
}

func writeText(sb *strings.Builder, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			sb.WriteString(c.Data)
		case html.ElementNode:
			writeText(sb, c)
		}
	}
}

// RenderHTML serializes nodes back to HTML, concatenated in order.
func RenderHTML(nodes ...*html.Node) (string, error) {
	var sb strings.Builder
	for _, n := range nodes {
		if err := html.Render(&sb, n); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}
