// Package hierarchical implements hierarchical segmentation: parallel
// descent through several trees built from the same template, splitting
// them where their text or structure stops matching.
package hierarchical

import (
	"log/slog"
	"slices"

	"github.com/fwojciec/treeseg"
	"golang.org/x/net/html"
)

// Ensure Segmenter implements treeseg.Segmenter at compile time.
var _ treeseg.Segmenter = (*Segmenter)(nil)

// Segmenter compares parallel trees and ranks their segments.
// Segmenter holds no mutable state and is safe for concurrent use.
type Segmenter struct {
	density  treeseg.DensityFunc
	maxDepth int
	logger   *slog.Logger
}

// Option configures a Segmenter.
type Option func(*Segmenter)

// WithMaxDepth limits how deep the walk descends.
// Defaults to DefaultMaxDepth; zero or less disables the limit.
func WithMaxDepth(depth int) Option {
	return func(s *Segmenter) {
		s.maxDepth = depth
	}
}

// WithLogger sets the logger that reports groups cut off at the depth
// limit, at debug level. Defaults to discarding.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Segmenter) {
		s.logger = logger
	}
}

// NewSegmenter creates a Segmenter that scales segment scores by density.
// Returns EINVALID if density is nil.
func NewSegmenter(density treeseg.DensityFunc, opts ...Option) (*Segmenter, error) {
	if density == nil {
		return nil, treeseg.Errorf(treeseg.EINVALID, "density function required")
	}

	s := &Segmenter{
		density:  density,
		maxDepth: DefaultMaxDepth,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Segment walks the roots, grades every segment and sorts each root's
// segments with dynamic content first. Fewer than two roots returns
// nil, nil since there is nothing to compare against.
func (s *Segmenter) Segment(roots []*html.Node) ([][]*treeseg.Segment, error) {
	if len(roots) < 2 {
		return nil, nil
	}
	for i, root := range roots {
		if root == nil {
			return nil, treeseg.Errorf(treeseg.EINVALID, "root %d is nil", i)
		}
	}

	results, err := walk(roots, s.maxDepth, s.logLimit)
	if err != nil {
		return nil, err
	}

	for _, segments := range results {
		for _, seg := range segments {
			Grade(seg, s.density)
		}
		slices.SortStableFunc(segments, treeseg.CompareSegments)
	}
	return results, nil
}

func (s *Segmenter) logLimit(depth int, group []*html.Node) {
	s.logger.Debug("depth limit reached",
		"depth", depth,
		"tag", treeseg.TagName(group[0]),
		"roots", len(group),
	)
}
