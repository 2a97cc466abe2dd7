package treeseg

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}

// SegmentConverter converts a whole segment to Markdown.
type SegmentConverter interface {
	// ConvertSegment renders the segment's nodes and converts them.
	ConvertSegment(s *Segment) (string, error)
}
