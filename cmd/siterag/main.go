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
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/siterag"
	"github.com/fwojciec/siterag/crawl"
	"github.com/fwojciec/siterag/fs"
	"github.com/fwojciec/siterag/gemini"
	"github.com/fwojciec/siterag/goquery"
	sitehttp "github.com/fwojciec/siterag/http"
	"github.com/fwojciec/siterag/index"
	siteslog "github.com/fwojciec/siterag/slog"
	"github.com/fwojciec/siterag/sqlite"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database holding the vector index.
	DB *sqlite.DB

	// Services for end-to-end testing. When set, they replace the
	// Gemini-backed implementations and no API key is required.
	Embedder siterag.Embedder
	Asker    siterag.Asker

	// Tokens overrides the local Gemini tokenizer used after a crawl.
	Tokens siterag.TokenCounter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
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
		kong.Name("siterag"),
		kong.Description("Crawl a website and answer questions about its content."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'siterag --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	defer m.Close()

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	cmd := strings.Fields(kongCtx.Command())[0]
	if cmd == "crawl" {
		var fetcher siterag.Fetcher = sitehttp.NewFetcher(sitehttp.WithTimeout(cli.Crawl.Timeout))
		if logger != nil {
			fetcher = siteslog.NewLoggingFetcher(fetcher, logger)
		}
		defer fetcher.Close()

		deps.Crawler = &crawl.Crawler{
			Fetcher:  fetcher,
			Parser:   goquery.NewParser(goquery.WithMinFragmentLength(cli.Crawl.MinFragmentLength)),
			MaxPages: cli.Crawl.MaxPages,
		}
		deps.Corpus = fs.NewCorpusStore(cli.Crawl.OutputDir, cli.Crawl.OutputFile)

		// Token counts are informational; the crawl proceeds without them.
		if m.Tokens != nil {
			deps.Tokens = m.Tokens
		} else if tokens, err := gemini.NewTokenCounter(gemini.DefaultModel); err == nil {
			deps.Tokens = tokens
		} else if logger != nil {
			logger.Debug("token counter unavailable", "err", err)
		}
	}

	if cmd == "extract" {
		var fetcher siterag.Fetcher = sitehttp.NewFetcher(sitehttp.WithTimeout(cli.Extract.Timeout))
		if logger != nil {
			fetcher = siteslog.NewLoggingFetcher(fetcher, logger)
		}
		defer fetcher.Close()

		deps.Fetcher = fetcher
		deps.Extract = goquery.NewExtractor(goquery.WithMinFragmentLength(cli.Extract.MinFragmentLength))
		deps.Links = goquery.NewLinkDiscoverer()
	}

	if cmd == "index" {
		deps.Corpus = fs.NewCorpusStore(filepath.Dir(cli.Index.Corpus), filepath.Base(cli.Index.Corpus))
	}

	needsIndex := cmd == "index" || (cmd == "crawl" && cli.Crawl.Index)
	needsSearch := cmd == "ask" || cmd == "serve"
	if !needsIndex && !needsSearch {
		return kongCtx.Run(deps)
	}

	if err := m.openDB(cli.IndexDir); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SITERAG_INDEX_DIR to use a different index directory\n")
		return err
	}
	chunks := sqlite.NewChunkService(m.DB)

	var client *genai.Client
	if m.Embedder == nil || (needsSearch && m.Asker == nil) {
		if client, err = newGeminiClient(ctx, stderr); err != nil {
			return err
		}
	}

	embedder := m.Embedder
	if embedder == nil {
		embedder = gemini.NewEmbedder(client, cli.EmbeddingModel)
	}
	if logger != nil {
		embedder = siteslog.NewLoggingEmbedder(embedder, logger)
	}

	if needsIndex {
		builder := &index.Builder{Embedder: embedder, Chunks: chunks}
		if cmd == "index" {
			splitter, err := siterag.NewTextSplitter(cli.Index.ChunkSize, cli.Index.ChunkOverlap)
			if err != nil {
				fmt.Fprintf(stderr, "error: %s\n", siterag.ErrorMessage(err))
				return err
			}
			builder.Splitter = splitter
		}
		deps.Indexer = builder
	}

	if needsSearch {
		topK := cli.Ask.TopK
		if cmd == "serve" {
			topK = cli.Serve.TopK
		}

		asker := m.Asker
		if asker == nil {
			a := gemini.NewAsker(client, index.NewSearcher(embedder, chunks), cli.Model)
			a.TopK = topK
			asker = a
		}
		if logger != nil {
			asker = siteslog.NewLoggingAsker(asker, logger)
		}
		deps.Asker = asker

		if cmd == "serve" {
			server := sitehttp.NewServer(asker)
			server.Addr = cli.Serve.Addr
			server.Logger = slog.New(slog.NewTextHandler(stderr, nil))
			deps.Server = server
		}
	}

	return kongCtx.Run(deps)
}

func (m *Main) openDB(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create index directory %q: %w", dir, err)
	}
	path := filepath.Join(dir, sqlite.DefaultFilename)
	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		return fmt.Errorf("failed to open index at %q: %w", path, err)
	}
	return nil
}

func newGeminiClient(ctx context.Context, stderr io.Writer) (*genai.Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}
	return client, nil
}
