package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/treeseg"
	"github.com/fwojciec/treeseg/crawl"
	"github.com/fwojciec/treeseg/density"
	"github.com/fwojciec/treeseg/fs"
	"github.com/fwojciec/treeseg/goquery"
	"github.com/fwojciec/treeseg/hierarchical"
	"github.com/fwojciec/treeseg/htmltomarkdown"
	treehttp "github.com/fwojciec/treeseg/http"
	"github.com/fwojciec/treeseg/rod"
	treeslog "github.com/fwojciec/treeseg/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("treeseg"),
		kong.Description("Split pages that share a template into ranked content and boilerplate segments"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	segmenter, err := hierarchical.NewSegmenter(density.MaxDensity,
		hierarchical.WithMaxDepth(cli.MaxDepth),
		hierarchical.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Roots:     goquery.NewRootSelector(),
		Segmenter: treeslog.NewLoggingSegmenter(segmenter, logger),
	}

	fetcher, err := newFetcher(cli, stderr)
	if err != nil {
		return err
	}
	defer fetcher.Close()

	deps.Loader = &crawl.Loader{
		Fetcher:     treeslog.NewLoggingFetcher(fetcher, logger),
		RateLimiter: crawl.NewDomainLimiter(cli.RateLimit),
		Concurrency: cli.Concurrency,
	}

	if cli.Out != "" {
		deps.Writer = fs.NewWriter(cli.Out, htmltomarkdown.NewConverter(), fs.WithTop(cli.Top))
	}

	cmd := &SegmentCmd{
		Sources:  cli.Sources,
		Selector: cli.Selector,
		Siblings: cli.Siblings,
		Top:      cli.Top,
		Out:      cli.Out,
	}

	return cmd.Run(deps)
}

// newFetcher returns a headless browser fetcher when rendering is requested
// and a plain HTTP fetcher otherwise.
func newFetcher(cli *CLI, stderr io.Writer) (treeseg.Fetcher, error) {
	timeout := cli.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	if !cli.Render {
		return treehttp.NewFetcher(treehttp.WithTimeout(timeout)), nil
	}

	f, err := rod.NewFetcher(rod.WithFetchTimeout(timeout))
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}
	return f, nil
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Selector    string        `short:"s" default:"body" help:"CSS selector of the root element to compare"`
	Siblings    bool          `help:"Compare every element matching the selector within a single page"`
	MaxDepth    int           `name:"max-depth" default:"512" help:"Deepest level the walker descends before treating a subtree as content"`
	Top         int           `short:"n" default:"0" help:"Show only the top N segments per source (0 for all)"`
	Out         string        `short:"o" type:"path" help:"Directory to write one Markdown file per source"`
	Render      bool          `short:"r" help:"Render pages in a headless browser before segmenting"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Concurrency int           `short:"c" default:"3" help:"Concurrent fetch limit"`
	RateLimit   float64       `name:"rate-limit" default:"1" help:"Requests per second per domain (0 disables)"`
	Verbose     bool          `short:"v" help:"Log debug output to stderr"`
	Sources     []string      `arg:"" help:"Page URLs or HTML files sharing a template"`
}
