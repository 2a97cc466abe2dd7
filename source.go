package treeseg

import (
	"context"

	"golang.org/x/net/html"
)

// Source is one loaded input page.
type Source struct {
	// Name is the URL or file path the page was loaded from.
	Name string
	HTML string
}

// Validate returns an error if the source contains invalid fields.
func (s *Source) Validate() error {
	if s.Name == "" {
		return Errorf(EINVALID, "source name required")
	}
	if s.HTML == "" {
		return Errorf(EINVALID, "source %q is empty", s.Name)
	}
	return nil
}

// SourceLoader loads input pages from URLs or files.
type SourceLoader interface {
	// Load returns one Source per name, in the order given.
	Load(ctx context.Context, names []string) ([]*Source, error)
}

// RootSelector picks the candidate root elements to compare.
type RootSelector interface {
	// SelectRoots parses each page and returns the first element matching
	// selector in each, in page order.
	// Returns ENOTFOUND if a page has no matching element.
	SelectRoots(pages []string, selector string) ([]*html.Node, error)

	// SelectSiblings returns every element matching selector in one page,
	// for pages that repeat a template several times.
	SelectSiblings(page string, selector string) ([]*html.Node, error)
}

// Result holds the ranked segments found for one source.
type Result struct {
	Source *Source

	// Root is the 1-based position of the compared root within a page that
	// holds several of them, or 0 when the page contributed a single root.
	Root int

	Segments []*Segment
}

// ResultWriter persists segmentation results.
type ResultWriter interface {
	WriteResult(ctx context.Context, r *Result) error
}
