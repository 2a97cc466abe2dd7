// Package fs writes segmentation results as Markdown files.
package fs

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/treeseg"
)

// SourceToPath converts a source name to a relative, slash-separated output
// file path.
// URLs keep their host and cleaned path: https://example.com/docs/api → example.com/docs/api.md.
// Local files keep only their base name: pages/a.html → a.md.
// Returns EINVALID for names that would resolve outside the output directory.
func SourceToPath(name string) (string, error) {
	if name == "" {
		return "", treeseg.Errorf(treeseg.EINVALID, "source name required")
	}

	var rel string
	u, err := url.Parse(name)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		base := filepath.Base(name)
		rel = strings.TrimSuffix(base, filepath.Ext(base)) + ".md"
	} else {
		p := u.Path
		dir := p == "" || strings.HasSuffix(p, "/")
		p = strings.TrimPrefix(path.Clean("/"+p), "/")

		// Root or trailing slash → index.md
		if dir || p == "" {
			p = path.Join(p, "index")
		}
		rel = u.Host + "/" + p + ".md"
	}

	if !filepath.IsLocal(filepath.FromSlash(rel)) {
		return "", treeseg.Errorf(treeseg.EINVALID, "source %q maps outside the output directory", name)
	}
	return rel, nil
}

// FormatResult renders a result as Markdown with YAML front matter.
// Each segment becomes one section, converted with conv. A positive top
// limits the number of sections.
func FormatResult(r *treeseg.Result, conv treeseg.SegmentConverter, top int) (string, error) {
	segments := r.Segments
	if top > 0 && len(segments) > top {
		segments = segments[:top]
	}

	var body strings.Builder
	for i, s := range segments {
		md, err := conv.ConvertSegment(s)
		if err != nil {
			return "", fmt.Errorf("converting segment %d: %w", i+1, err)
		}
		md = strings.TrimSpace(md)
		if md == "" {
			md = "_(no text)_"
		}

		fmt.Fprintf(&body, "## %d. %s (%.3f)\n\n%s\n\n", i+1, s.Class, s.Index, md)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(strconv.Quote(r.Source.Name))
	if r.Root > 0 {
		fmt.Fprintf(&b, "\nroot: %d", r.Root)
	}
	fmt.Fprintf(&b, "\nsegments: %d", len(segments))
	fmt.Fprintf(&b, "\nhash: %016x", xxhash.Sum64String(body.String()))
	b.WriteString("\n---\n\n")
	b.WriteString(body.String())
	return b.String(), nil
}

// Ensure Writer implements treeseg.ResultWriter at compile time.
var _ treeseg.ResultWriter = (*Writer)(nil)

// Writer writes results as markdown files to a directory.
// Results whose names map to the same file get a numeric suffix, so one
// Writer never overwrites its own output.
type Writer struct {
	baseDir   string
	converter treeseg.SegmentConverter
	top       int

	mu   sync.Mutex
	used map[string]struct{}
}

// Option configures a Writer.
type Option func(*Writer)

// WithTop limits each file to the n best segments.
func WithTop(n int) Option {
	return func(w *Writer) {
		w.top = n
	}
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string, conv treeseg.SegmentConverter, opts ...Option) *Writer {
	w := &Writer{
		baseDir:   baseDir,
		converter: conv,
		used:      make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteResult writes a result to disk as a markdown file.
func (w *Writer) WriteResult(ctx context.Context, r *treeseg.Result) error {
	if r == nil || r.Source == nil {
		return treeseg.Errorf(treeseg.EINVALID, "result source required")
	}

	relPath, err := SourceToPath(r.Source.Name)
	if err != nil {
		return err
	}
	if r.Root > 0 {
		relPath = fmt.Sprintf("%s-%d.md", strings.TrimSuffix(relPath, ".md"), r.Root)
	}

	content, err := FormatResult(r, w.converter, w.top)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, filepath.FromSlash(w.reserve(relPath)))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(content), 0644)
}

// reserve returns relPath, or relPath with the first free -N suffix when
// an earlier result already claimed it.
func (w *Writer) reserve(relPath string) string {
	w.mu.Lock()
	defer w.mu.Unlock()

	candidate := relPath
	stem := strings.TrimSuffix(relPath, ".md")
	for n := 2; ; n++ {
		if _, ok := w.used[candidate]; !ok {
			break
		}
		candidate = fmt.Sprintf("%s-%d.md", stem, n)
	}
	w.used[candidate] = struct{}{}
	return candidate
}
