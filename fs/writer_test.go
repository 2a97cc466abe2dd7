package fs_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/treeseg"
	"github.com/fwojciec/treeseg/fs"
	"github.com/fwojciec/treeseg/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestSourceToPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "url path",
			source: "https://example.com/docs/api/users",
			want:   "example.com/docs/api/users.md",
		},
		{
			name:   "trailing slash becomes index",
			source: "https://example.com/docs/",
			want:   "example.com/docs/index.md",
		},
		{
			name:   "root becomes index",
			source: "https://example.com",
			want:   "example.com/index.md",
		},
		{
			name:   "ignores query string",
			source: "https://example.com/news?page=2",
			want:   "example.com/news.md",
		},
		{
			name:   "local file keeps base name",
			source: "testdata/pages/a.html",
			want:   "a.md",
		},
		{
			name:   "cleans dot segments in url path",
			source: "https://example.com/../../../tmp/evil",
			want:   "example.com/tmp/evil.md",
		},
		{
			name:   "cleans dot segments before a trailing slash",
			source: "https://example.com/docs/../../guide/",
			want:   "example.com/guide/index.md",
		},
		{
			name:   "local file without extension",
			source: "/tmp/page",
			want:   "page.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.SourceToPath(tt.source)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("rejects empty name", func(t *testing.T) {
		t.Parallel()

		_, err := fs.SourceToPath("")

		assert.Equal(t, treeseg.EINVALID, treeseg.ErrorCode(err))
	})

	t.Run("rejects host that climbs out of the output directory", func(t *testing.T) {
		t.Parallel()

		_, err := fs.SourceToPath("https://../etc/passwd")

		assert.Equal(t, treeseg.EINVALID, treeseg.ErrorCode(err))
	})
}

func element(tag, text string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: tag}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}

func upperConverter() *mock.Converter {
	return &mock.Converter{
		ConvertSegmentFn: func(s *treeseg.Segment) (string, error) {
			h, err := treeseg.RenderHTML(s.Nodes...)
			return strings.ToUpper(h), err
		},
	}
}

func testResult() *treeseg.Result {
	first := treeseg.NewSegment(treeseg.SegmentDynamic, element("p", "story"))
	first.Index = 0.75
	second := treeseg.NewSegment(treeseg.SegmentStatic, element("nav", "menu"))
	second.Index = 0.25
	return &treeseg.Result{
		Source:   &treeseg.Source{Name: "https://example.com/news/1", HTML: "<p>story</p>"},
		Segments: []*treeseg.Segment{first, second},
	}
}

func TestFormatResult(t *testing.T) {
	t.Parallel()

	t.Run("writes front matter and one section per segment", func(t *testing.T) {
		t.Parallel()

		got, err := fs.FormatResult(testResult(), upperConverter(), 0)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(got, "---\nsource: \"https://example.com/news/1\"\nsegments: 2\nhash: "))
		assert.Contains(t, got, "## 1. dynamic (0.750)\n\n<P>STORY</P>\n\n")
		assert.Contains(t, got, "## 2. static (0.250)\n\n<NAV>MENU</NAV>\n\n")
	})

	t.Run("limits sections to top", func(t *testing.T) {
		t.Parallel()

		got, err := fs.FormatResult(testResult(), upperConverter(), 1)

		require.NoError(t, err)
		assert.Contains(t, got, "segments: 1\n")
		assert.Contains(t, got, "## 1. dynamic")
		assert.NotContains(t, got, "## 2.")
	})

	t.Run("hash is stable for identical content", func(t *testing.T) {
		t.Parallel()

		a, err := fs.FormatResult(testResult(), upperConverter(), 0)
		require.NoError(t, err)
		b, err := fs.FormatResult(testResult(), upperConverter(), 0)
		require.NoError(t, err)

		assert.Equal(t, a, b)
	})

	t.Run("marks empty segments", func(t *testing.T) {
		t.Parallel()

		r := &treeseg.Result{
			Source:   &treeseg.Source{Name: "a.html", HTML: "<div></div>"},
			Segments: []*treeseg.Segment{treeseg.NewSegment(treeseg.SegmentStatic, &html.Node{Type: html.ElementNode, Data: "div"})},
		}
		conv := &mock.Converter{ConvertSegmentFn: func(*treeseg.Segment) (string, error) { return "  ", nil }}

		got, err := fs.FormatResult(r, conv, 0)

		require.NoError(t, err)
		assert.Contains(t, got, "_(no text)_")
	})

	t.Run("returns converter error", func(t *testing.T) {
		t.Parallel()

		convErr := errors.New("boom")
		conv := &mock.Converter{ConvertSegmentFn: func(*treeseg.Segment) (string, error) { return "", convErr }}

		_, err := fs.FormatResult(testResult(), conv, 0)

		require.ErrorIs(t, err, convErr)
	})
}

func TestWriter_WriteResult(t *testing.T) {
	t.Parallel()

	t.Run("writes file under host directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir, upperConverter())

		err := w.WriteResult(context.Background(), testResult())

		require.NoError(t, err)
		content, err := os.ReadFile(filepath.Join(dir, "example.com", "news", "1.md"))
		require.NoError(t, err)
		assert.Contains(t, string(content), `source: "https://example.com/news/1"`)
		assert.Contains(t, string(content), "<P>STORY</P>")
	})

	t.Run("applies top option", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir, upperConverter(), fs.WithTop(1))

		err := w.WriteResult(context.Background(), testResult())

		require.NoError(t, err)
		content, err := os.ReadFile(filepath.Join(dir, "example.com", "news", "1.md"))
		require.NoError(t, err)
		assert.NotContains(t, string(content), "NAV")
	})

	t.Run("suffixes sibling roots", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir, upperConverter())
		r := testResult()
		r.Root = 2

		err := w.WriteResult(context.Background(), r)

		require.NoError(t, err)
		content, err := os.ReadFile(filepath.Join(dir, "example.com", "news", "1-2.md"))
		require.NoError(t, err)
		assert.Contains(t, string(content), "root: 2\n")
	})

	t.Run("suffixes local files sharing a base name", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir, upperConverter())
		first := testResult()
		first.Source = &treeseg.Source{Name: "a/page.html", HTML: "<p>a</p>"}
		second := testResult()
		second.Source = &treeseg.Source{Name: "b/page.html", HTML: "<p>b</p>"}

		require.NoError(t, w.WriteResult(context.Background(), first))
		require.NoError(t, w.WriteResult(context.Background(), second))

		content, err := os.ReadFile(filepath.Join(dir, "page.md"))
		require.NoError(t, err)
		assert.Contains(t, string(content), `source: "a/page.html"`)
		content, err = os.ReadFile(filepath.Join(dir, "page-2.md"))
		require.NoError(t, err)
		assert.Contains(t, string(content), `source: "b/page.html"`)
	})

	t.Run("keeps dot-segment urls inside the output directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir, upperConverter())
		r := testResult()
		r.Source = &treeseg.Source{Name: "https://example.com/../../../tmp/evil", HTML: "<p>x</p>"}

		err := w.WriteResult(context.Background(), r)

		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(dir, "example.com", "tmp", "evil.md"))
		require.NoError(t, err)
	})

	t.Run("quotes source names in front matter", func(t *testing.T) {
		t.Parallel()

		r := testResult()
		r.Source = &treeseg.Source{Name: "notes: draft #1.html", HTML: "<p>x</p>"}

		got, err := fs.FormatResult(r, upperConverter(), 0)

		require.NoError(t, err)
		assert.Contains(t, got, "source: \"notes: draft #1.html\"\n")
	})

	t.Run("rejects result without source", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir(), upperConverter())

		err := w.WriteResult(context.Background(), &treeseg.Result{})

		assert.Equal(t, treeseg.EINVALID, treeseg.ErrorCode(err))
	})
}
