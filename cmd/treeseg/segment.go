package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fwojciec/treeseg"
	"golang.org/x/net/html"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Loader    treeseg.SourceLoader
	Roots     treeseg.RootSelector
	Segmenter treeseg.Segmenter

	// Writer is optional; results are only printed when it is nil.
	Writer treeseg.ResultWriter
}

// SegmentCmd loads the sources, segments their roots and reports the
// ranked segments.
type SegmentCmd struct {
	Sources  []string
	Selector string
	Siblings bool
	Top      int
	Out      string
}

// Run executes the segment command.
func (c *SegmentCmd) Run(deps *Dependencies) error {
	sources, err := deps.Loader.Load(deps.Ctx, c.Sources)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", treeseg.ErrorMessage(err))
		return err
	}

	results, roots, err := c.selectRoots(deps, sources)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", treeseg.ErrorMessage(err))
		return err
	}

	lists, err := deps.Segmenter.Segment(roots)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", treeseg.ErrorMessage(err))
		return err
	}
	if lists == nil {
		fmt.Fprintln(deps.Stdout, "nothing to segment")
		return nil
	}

	for i, r := range results {
		r.Segments = lists[i]
	}

	fmt.Fprintln(deps.Stdout, treeseg.FormatResults(results, c.Top))

	if deps.Writer == nil {
		return nil
	}

	for _, r := range results {
		if err := deps.Writer.WriteResult(deps.Ctx, r); err != nil {
			return fmt.Errorf("writing %s: %w", r.Source.Name, err)
		}
	}
	fmt.Fprintf(deps.Stdout, "\nWrote %d files to %s\n", len(results), c.Out)

	return nil
}

// selectRoots picks one root per source, or every matching sibling of a
// single source, and prepares one result per root.
func (c *SegmentCmd) selectRoots(deps *Dependencies, sources []*treeseg.Source) ([]*treeseg.Result, []*html.Node, error) {
	if c.Siblings {
		if len(sources) != 1 {
			return nil, nil, treeseg.Errorf(treeseg.EINVALID, "--siblings takes exactly one source, got %d", len(sources))
		}
		roots, err := deps.Roots.SelectSiblings(sources[0].HTML, c.Selector)
		if err != nil {
			return nil, nil, err
		}
		results := make([]*treeseg.Result, len(roots))
		for i := range roots {
			results[i] = &treeseg.Result{Source: sources[0], Root: i + 1}
		}
		return results, roots, nil
	}

	pages := make([]string, len(sources))
	results := make([]*treeseg.Result, len(sources))
	for i, src := range sources {
		pages[i] = src.HTML
		results[i] = &treeseg.Result{Source: src}
	}

	roots, err := deps.Roots.SelectRoots(pages, c.Selector)
	if err != nil {
		return nil, nil, err
	}
	return results, roots, nil
}
