package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/mokoena/salaw"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Config      salaw.Config
	Logger      *slog.Logger
	Store       salaw.DocumentStore
	Assembler   salaw.ContextAssembler
	Classifier  salaw.Classifier
	Answerer    salaw.Answerer
	Transcriber salaw.Transcriber
}

// CLI defines the command-line interface structure.
type CLI struct {
	Serve   ServeCmd   `cmd:"" help:"Download the document catalog and serve the HTTP API."`
	Ask     AskCmd     `cmd:"" help:"Ask a one-shot legal question from the command line."`
	Docs    DocsCmd    `cmd:"" help:"List catalog documents and their cache status."`
	Refresh RefreshCmd `cmd:"" help:"Delete cached documents and re-download the catalog."`
}

// ServeCmd runs the HTTP server.
type ServeCmd struct {
	Addr string `help:"Listen address. Overrides SALAW_ADDR." default:""`
}

// AskCmd answers a single question.
type AskCmd struct {
	Question string `arg:"" help:"The legal question to answer."`
}

// DocsCmd lists catalog documents.
type DocsCmd struct{}

// RefreshCmd re-downloads the catalog.
type RefreshCmd struct{}
