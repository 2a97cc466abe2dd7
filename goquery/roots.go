// Package goquery selects candidate segmentation roots from HTML pages
// using CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/treeseg"
	"golang.org/x/net/html"
)

// DefaultSelector selects the page body when no selector is given.
const DefaultSelector = "body"

// Ensure RootSelector implements treeseg.RootSelector at compile time.
var _ treeseg.RootSelector = (*RootSelector)(nil)

// RootSelector finds the elements to compare using CSS selectors.
type RootSelector struct{}

// NewRootSelector creates a new RootSelector.
func NewRootSelector() *RootSelector {
	return &RootSelector{}
}

// SelectRoots parses each page and returns the first element matching
// selector in each, in page order.
// Returns EINVALID for an invalid selector and ENOTFOUND if a page has no
// matching element.
func (s *RootSelector) SelectRoots(pages []string, selector string) ([]*html.Node, error) {
	selector, err := compile(selector)
	if err != nil {
		return nil, err
	}

	roots := make([]*html.Node, 0, len(pages))
	for i, page := range pages {
		doc, err := parse(page)
		if err != nil {
			return nil, err
		}

		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			return nil, treeseg.Errorf(treeseg.ENOTFOUND, "page %d: no element matches %q", i, selector)
		}
		roots = append(roots, sel.Get(0))
	}
	return roots, nil
}

// SelectSiblings returns every element in page matching selector, in
// document order. Matches nested inside another match are dropped so the
// result holds comparable, non-overlapping trees.
// Returns ENOTFOUND if nothing matches.
func (s *RootSelector) SelectSiblings(page string, selector string) ([]*html.Node, error) {
	selector, err := compile(selector)
	if err != nil {
		return nil, err
	}

	doc, err := parse(page)
	if err != nil {
		return nil, err
	}

	var roots []*html.Node
	doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		n := sel.Get(0)
		for _, r := range roots {
			if contains(r, n) {
				return
			}
		}
		roots = append(roots, n)
	})

	if len(roots) == 0 {
		return nil, treeseg.Errorf(treeseg.ENOTFOUND, "no element matches %q", selector)
	}
	return roots, nil
}

// compile validates selector up front; goquery silently matches nothing
// for selectors it cannot parse.
func compile(selector string) (string, error) {
	selector = selectorOrDefault(selector)
	if _, err := cascadia.Compile(selector); err != nil {
		return "", treeseg.Errorf(treeseg.EINVALID, "invalid selector %q: %v", selector, err)
	}
	return selector, nil
}

func parse(page string) (*goquery.Document, error) {
	if strings.TrimSpace(page) == "" {
		return nil, treeseg.Errorf(treeseg.EINVALID, "empty HTML input")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, treeseg.Errorf(treeseg.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

func selectorOrDefault(selector string) string {
	if strings.TrimSpace(selector) == "" {
		return DefaultSelector
	}
	return selector
}

// contains reports whether n is a descendant of root.
func contains(root, n *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p == root {
			return true
		}
	}
	return false
}
