// Package crawl loads the pages to segment from URLs and local files.
package crawl

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"

	"github.com/fwojciec/treeseg"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of sources loaded at once.
const DefaultConcurrency = 3

var _ treeseg.SourceLoader = (*Loader)(nil)

// Loader loads sources concurrently while preserving their order.
// HTTP(S) URLs go through Fetcher, throttled per host by RateLimiter;
// anything else is read from disk.
type Loader struct {
	Fetcher     treeseg.Fetcher
	RateLimiter treeseg.DomainLimiter
	Concurrency int

	// ReadFile reads local sources. Defaults to os.ReadFile.
	ReadFile func(name string) ([]byte, error)
}

// Load returns one Source per name, in the order given.
// The first failure cancels the remaining loads.
func (l *Loader) Load(ctx context.Context, names []string) ([]*treeseg.Source, error) {
	concurrency := l.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	sources := make([]*treeseg.Source, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, name := range names {
		g.Go(func() error {
			content, err := l.load(gctx, name)
			if err != nil {
				return fmt.Errorf("loading %s: %w", name, err)
			}

			src := &treeseg.Source{Name: name, HTML: content}
			if err := src.Validate(); err != nil {
				return err
			}
			sources[i] = src
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sources, nil
}

func (l *Loader) load(ctx context.Context, name string) (string, error) {
	if !IsURL(name) {
		return l.readFile(name)
	}

	if l.Fetcher == nil {
		return "", treeseg.Errorf(treeseg.EINVALID, "no fetcher configured for %s", name)
	}

	if l.RateLimiter != nil {
		u, err := url.Parse(name)
		if err != nil {
			return "", treeseg.Errorf(treeseg.EINVALID, "invalid URL %q: %v", name, err)
		}
		if err := l.RateLimiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}

	return l.Fetcher.Fetch(ctx, name)
}

func (l *Loader) readFile(name string) (string, error) {
	readFile := l.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}

	b, err := readFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return "", treeseg.Errorf(treeseg.ENOTFOUND, "file %s does not exist", name)
	} else if err != nil {
		return "", err
	}
	return string(b), nil
}

// IsURL reports whether name is an absolute http or https URL.
func IsURL(name string) bool {
	u, err := url.Parse(name)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
