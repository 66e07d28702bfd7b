package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/tiagrib/webeater"
	"github.com/tiagrib/webeater/eater"
	"github.com/tiagrib/webeater/fs"
	"github.com/tiagrib/webeater/goquery"
	"github.com/tiagrib/webeater/htmltomarkdown"
	weathttp "github.com/tiagrib/webeater/http"
	"github.com/tiagrib/webeater/readability"
	"github.com/tiagrib/webeater/rod"
	weatslog "github.com/tiagrib/webeater/slog"
	"github.com/tiagrib/webeater/sqlite"
	"github.com/tiagrib/webeater/trafilatura"
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
	// Page cache database path. Set before calling Run().
	DBPath string

	// Hints directory. Empty means the default location.
	HintsDir string

	// Fetch retry backoff. Nil means the default delays.
	RetryDelays []time.Duration

	// SQLite database used when page caching is enabled.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("weat"),
		kong.Description("Extract readable content from web pages as markdown"),
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
		return fmt.Errorf("no command specified. Run 'weat --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	// Load configuration
	cfg, err := fs.LoadConfig(cli.Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cli.Debug {
		cfg.Debug = true
	}
	deps.Config = cfg
	deps.Logger = newLogger(stderr, cfg.Debug, cli.Silent)

	// Resolve hints for commands that use them
	store := fs.NewHintStore(m.HintsDir)
	if err := store.EnsureDefault(); err != nil {
		return fmt.Errorf("failed to write default hints: %w", err)
	}
	resolver := &webeater.Resolver{Loader: store, Logger: deps.Logger}

	var cliNames []string
	switch cmd {
	case "hints":
		cliNames = cli.Hints.Hints
	default:
		cliNames = cli.Get.Hints
	}
	resolution, err := resolver.Resolve(&cfg, cliNames, nil)
	if err != nil {
		return err
	}
	deps.Resolution = resolution

	// Wire the extraction pipeline for the get command
	if cmd == "get" {
		var fetcher webeater.Fetcher
		switch cli.Get.Fetcher {
		case "http":
			fetcher = weathttp.NewFetcher()
		default:
			rodFetcher, err := rod.NewFetcher(rod.WithWindowSize(cfg.WindowSizeW, cfg.WindowSizeH))
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = rodFetcher
		}
		defer fetcher.Close()

		var extractor webeater.Extractor
		switch cli.Get.Engine {
		case "trafilatura":
			extractor = trafilatura.NewExtractor()
		case "readability":
			extractor = readability.NewExtractor()
		default:
			extractor = goquery.NewExtractor()
		}
		if cfg.Debug {
			fetcher = rod.NewLoggingFetcher(fetcher, deps.Logger)
			extractor = weatslog.NewLoggingExtractor(extractor, deps.Logger)
		}

		var pages webeater.PageService
		if cli.Get.Cache {
			m.DB = sqlite.NewDB(m.DBPath)
			if err := m.DB.Open(); err != nil {
				fmt.Fprintf(stderr, "Hint: Set WEAT_DB to use a different database path\n")
				return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
			}
			defer m.Close()
			pages = sqlite.NewPageService(m.DB)
		}

		deps.Eater = &eater.Eater{
			Fetcher:     fetcher,
			Extractor:   extractor,
			Converter:   htmltomarkdown.NewConverter(),
			Pages:       pages,
			RateLimiter: eater.NewDomainLimiter(1.0),
			Hints:       resolution.Hints,
			Concurrency: cli.Get.Concurrency,
			RetryDelays: m.RetryDelays,
		}
	}

	return kongCtx.Run(deps)
}

// newLogger builds the process logger. Debug lowers the level, silent
// raises it so only errors get through.
func newLogger(w io.Writer, debug, silent bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	if silent {
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	if path := os.Getenv("WEAT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "weat.db"
	}
	dir := filepath.Join(home, ".weat")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "weat.db")
}
