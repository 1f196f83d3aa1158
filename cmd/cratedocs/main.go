package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/cratedocs"
	"github.com/fwojciec/cratedocs/convert"
	"github.com/fwojciec/cratedocs/docsrs"
	"github.com/fwojciec/cratedocs/fs"
	"github.com/fwojciec/cratedocs/goquery"
	"github.com/fwojciec/cratedocs/htmltomarkdown"
	"github.com/fwojciec/cratedocs/pipeline"
	"github.com/fwojciec/cratedocs/rate"
	"github.com/fwojciec/cratedocs/readability"
	"github.com/fwojciec/cratedocs/slog"
	"github.com/fwojciec/cratedocs/toml"
	"github.com/fwojciec/cratedocs/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Cache directory. Set before calling Run().
	CacheDir string

	// Directory for rotating JSON log files. Set before calling Run().
	LogDir string

	// Input stream for commands that read from stdin.
	Stdin io.Reader

	// Closes the log sink. Populated by Run().
	LogCloser io.Closer

	// Services for end-to-end testing.
	Store   cratedocs.DocStore
	Fetcher cratedocs.CrateFetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		CacheDir: defaultCacheDir(),
		LogDir:   defaultLogDir(),
		Stdin:    os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.LogCloser != nil {
		return m.LogCloser.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("cratedocs"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'cratedocs --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger, logCloser := slog.NewRotatingLogger(m.LogDir)
	m.LogCloser = logCloser
	defer m.Close()

	// Wire core services into dependencies
	m.Store = slog.NewLoggingDocStore(fs.NewCache(m.CacheDir), logger)
	deps.Lockfile = toml.NewParser()
	deps.Store = m.Store
	deps.Pipeline = &pipeline.Pipeline{
		Lockfile: deps.Lockfile,
		Store:    m.Store,
	}

	// Wire command-specific dependencies based on command
	if cmd == "fetch" || cmd == "sync" {
		m.Fetcher = slog.NewLoggingCrateFetcher(&docsrs.Fetcher{
			Content:  goquery.NewExtractor(),
			Links:    goquery.NewDiscoverer(),
			Features: goquery.NewFeatureExtractor(),
			Pacer:    rate.NewPacer(moduleDelay),
		}, logger)
		deps.Fetcher = m.Fetcher
		deps.Pipeline.Fetcher = m.Fetcher
		deps.Pipeline.Pacer = rate.NewPacer(crateDelay)
	}

	if cmd == "convert" {
		deps.Batch = &convert.Batch{
			Converter: htmltomarkdown.NewConverter(),
		}
		switch {
		case cli.Convert.Readability:
			deps.Batch.Extractor = readability.NewExtractor()
		case cli.Convert.Extract:
			deps.Batch.Extractor = trafilatura.NewExtractor()
		}
	}

	return kongCtx.Run(deps)
}

// moduleDelay spaces requests for module pages within one crate fetch.
const moduleDelay = 500 * time.Millisecond

// crateDelay spaces fetches for successive manifest dependencies.
const crateDelay = time.Second

func defaultCacheDir() string {
	if dir := os.Getenv("CRATEDOCS_CACHE"); dir != "" {
		return dir
	}
	return "./rust_docs_cache"
}

func defaultLogDir() string {
	if dir := os.Getenv("CRATEDOCS_LOGS"); dir != "" {
		return dir
	}
	return "./logs"
}
