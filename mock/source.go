package mock

import (
	"context"

	"github.com/fwojciec/treeseg"
	"golang.org/x/net/html"
)

var _ treeseg.SourceLoader = (*SourceLoader)(nil)

// SourceLoader is a mock implementation of treeseg.SourceLoader.
type SourceLoader struct {
	LoadFn func(ctx context.Context, names []string) ([]*treeseg.Source, error)
}

func (l *SourceLoader) Load(ctx context.Context, names []string) ([]*treeseg.Source, error) {
	return l.LoadFn(ctx, names)
}

var _ treeseg.RootSelector = (*RootSelector)(nil)

// RootSelector is a mock implementation of treeseg.RootSelector.
type RootSelector struct {
	SelectRootsFn    func(pages []string, selector string) ([]*html.Node, error)
	SelectSiblingsFn func(page string, selector string) ([]*html.Node, error)
}

func (s *RootSelector) SelectRoots(pages []string, selector string) ([]*html.Node, error) {
	return s.SelectRootsFn(pages, selector)
}

func (s *RootSelector) SelectSiblings(page string, selector string) ([]*html.Node, error) {
	return s.SelectSiblingsFn(page, selector)
}

var _ treeseg.ResultWriter = (*ResultWriter)(nil)

// ResultWriter is a mock implementation of treeseg.ResultWriter.
type ResultWriter struct {
	WriteResultFn func(ctx context.Context, r *treeseg.Result) error
}

func (w *ResultWriter) WriteResult(ctx context.Context, r *treeseg.Result) error {
	return w.WriteResultFn(ctx, r)
}
