package treeseg

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// previewWidth is the maximum number of runes shown per segment preview.
const previewWidth = 72

// FormatResults formats ranked segments for display.
// Each source gets a header followed by one numbered line per segment;
// sources are separated by blank lines. If top is positive, only the
// first top segments of each source are listed.
func FormatResults(results []*Result, top int) string {
	if len(results) == 0 {
		return ""
	}

	parts := make([]string, 0, len(results))
	for _, r := range results {
		var b strings.Builder
		b.WriteString("## Source: ")
		b.WriteString(r.Source.Name)
		if r.Root > 0 {
			fmt.Fprintf(&b, " (root %d)", r.Root)
		}

		segments := r.Segments
		if top > 0 && len(segments) > top {
			segments = segments[:top]
		}
		for i, s := range segments {
			fmt.Fprintf(&b, "\n%d. %-7s %.3f  %s", i+1, s.Class, s.Index, Preview(s.Text()))
		}
		if len(r.Segments) == 0 {
			b.WriteString("\n(no segments)")
		}
		parts = append(parts, b.String())
	}

	return strings.Join(parts, "\n\n")
}

// Preview collapses whitespace in text and truncates it to a single line.
func Preview(text string) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	if collapsed == "" {
		return "(no text)"
	}
	if utf8.RuneCountInString(collapsed) <= previewWidth {
		return collapsed
	}
	runes := []rune(collapsed)
	return string(runes[:previewWidth-1]) + "…"
}
