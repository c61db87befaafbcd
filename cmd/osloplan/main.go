package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mkleven/osloplan"
	oslofiber "github.com/mkleven/osloplan/fiber"
	oslohttp "github.com/mkleven/osloplan/http"
	oslolog "github.com/mkleven/osloplan/slog"
	"github.com/mkleven/osloplan/sqlite"
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
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the catalog service.
	DB *sqlite.DB

	// Catalog service, exposed for end-to-end testing.
	Catalog osloplan.CatalogService
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

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("osloplan"),
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
		return fmt.Errorf("no command specified. Run 'osloplan --help' to see available commands")
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

	logger := newLogger(stderr)
	deps.Logger = logger

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set OSLOPLAN_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.Catalog = oslolog.NewLoggingCatalogService(sqlite.NewCatalogService(m.DB), logger)
	deps.Catalog = m.Catalog

	// Seed the catalog from the fixture. On an already populated store
	// this is a no-op; every fixture record dedups against its stored
	// counterpart.
	if _, err := m.Catalog.Seed(ctx, osloplan.Fixture()); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	// Wire command-specific dependencies based on command
	if cmd == "verify" {
		deps.Verifier = oslohttp.NewVerifier(
			oslohttp.WithConcurrency(cli.Verify.Concurrency),
			oslohttp.WithRate(cli.Verify.Rate),
		)
	}

	if cmd == "serve" {
		deps.Verifier = oslohttp.NewVerifier()
		deps.Server = oslofiber.NewServer(m.Catalog, deps.Verifier, logger)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("OSLOPLAN_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "osloplan.db"
	}
	dir := filepath.Join(home, ".osloplan")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "osloplan.db")
}

// newLogger constructs a text logger on w honoring LOG_LEVEL.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL"))) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}
