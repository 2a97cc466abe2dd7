package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/treeseg"
	"golang.org/x/net/html"
)

var _ treeseg.Segmenter = (*LoggingSegmenter)(nil)

// LoggingSegmenter wraps a Segmenter, logging each call and, at debug
// level, the class breakdown of every root's segments.
type LoggingSegmenter struct {
	next   treeseg.Segmenter
	logger *slog.Logger
}

func NewLoggingSegmenter(next treeseg.Segmenter, logger *slog.Logger) *LoggingSegmenter {
	return &LoggingSegmenter{next: next, logger: logger}
}

func (s *LoggingSegmenter) Segment(roots []*html.Node) (lists [][]*treeseg.Segment, err error) {
	defer func(begin time.Time) {
		total := 0
		for _, l := range lists {
			total += len(l)
		}
		s.logger.Info("segment",
			"roots", len(roots),
			"segments", total,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())

	lists, err = s.next.Segment(roots)
	if err != nil {
		return nil, err
	}

	for i, l := range lists {
		var static, dynamic int
		for _, seg := range l {
			if seg.Class == treeseg.SegmentDynamic {
				dynamic++
			} else {
				static++
			}
		}
		s.logger.Debug("root segments",
			"root", i,
			"static", static,
			"dynamic", dynamic,
		)
	}
	return lists, nil
}
