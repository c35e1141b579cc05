package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/siterag"
	"github.com/fwojciec/siterag/crawl"
	sitehttp "github.com/fwojciec/siterag/http"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Fetcher siterag.Fetcher
	Extract siterag.Extractor
	Links   siterag.LinkDiscoverer
	Crawler *crawl.Crawler
	Corpus  siterag.CorpusStore
	Tokens  siterag.TokenCounter
	Indexer siterag.Indexer
	Asker   siterag.Asker
	Server  *sitehttp.Server
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	IndexDir       string `name:"index-dir" env:"SITERAG_INDEX_DIR" default:"vector_index" help:"Directory holding the vector index"`
	Model          string `env:"SITERAG_MODEL" default:"gemini-2.5-flash" help:"Gemini model used to answer questions"`
	EmbeddingModel string `name:"embedding-model" env:"SITERAG_EMBEDDING_MODEL" default:"gemini-embedding-001" help:"Gemini embedding model"`
	Verbose        bool   `short:"v" help:"Log service calls to stderr"`

	Crawl   CrawlCmd   `cmd:"" help:"Crawl a website and save its text content"`
	Extract ExtractCmd `cmd:"" help:"Show the text and links extracted from a single page"`
	Index   IndexCmd   `cmd:"" help:"Build the vector index from a saved corpus"`
	Ask     AskCmd     `cmd:"" help:"Ask a question about the indexed website"`
	Serve   ServeCmd   `cmd:"" help:"Serve the question answering API"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL               string        `arg:"" help:"Start URL"`
	MaxPages          int           `short:"n" name:"max-pages" default:"10" help:"Maximum number of pages to visit"`
	OutputDir         string        `name:"output-dir" default:"Extracted_Data" help:"Directory for the corpus file"`
	OutputFile        string        `name:"output-file" default:"extracted_content.json" help:"Corpus file name"`
	Timeout           time.Duration `default:"10s" help:"Per-page fetch timeout"`
	MinFragmentLength int           `name:"min-fragment-length" default:"20" help:"Drop text fragments of at most this many characters"`
	Index             bool          `help:"Build the vector index after crawling"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL               string        `arg:"" help:"Page URL"`
	Links             bool          `short:"l" help:"Also list the same-origin links found on the page"`
	Timeout           time.Duration `default:"10s" help:"Fetch timeout"`
	MinFragmentLength int           `name:"min-fragment-length" default:"20" help:"Drop text fragments of at most this many characters"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	Corpus       string `default:"Extracted_Data/extracted_content.json" help:"Corpus file to index"`
	ChunkSize    int    `name:"chunk-size" default:"500" help:"Maximum chunk length in characters"`
	ChunkOverlap int    `name:"chunk-overlap" default:"50" help:"Characters shared by consecutive chunks"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question to ask about the website"`
	TopK     int    `name:"top-k" default:"3" help:"Number of passages used as context"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8000" help:"Listen address"`
	TopK int    `name:"top-k" default:"3" help:"Number of passages used as context"`
}
