package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/mokoena/salaw"
	"github.com/mokoena/salaw/ahocorasick"
	"github.com/mokoena/salaw/answer"
	"github.com/mokoena/salaw/assemble"
	"github.com/mokoena/salaw/gemini"
	"github.com/mokoena/salaw/googlespeech"
	salawhttp "github.com/mokoena/salaw/http"
	"github.com/mokoena/salaw/pdf"
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
	// Config is loaded from the environment before wiring.
	Config salaw.Config

	// Logger is the process-wide structured logger.
	Logger *slog.Logger
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Logger: slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()
	m.Config = salaw.ConfigFromEnv()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Config: m.Config,
		Logger: m.Logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("salaw"),
		kong.Description("South African legal question answering over a cached legislation catalog."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'salaw --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Every command works against the document store.
	store := salawhttp.NewStore(m.Config.DocumentsDir, salaw.DefaultCatalog(), m.Logger)
	deps.Store = store

	extractor := pdf.NewExtractor(store, m.Logger)
	assembler := assemble.NewAssembler(store, extractor, m.Logger)
	assembler.MaxPages = m.Config.MaxPages
	assembler.CharBudget = m.Config.ContextBudget
	deps.Assembler = assembler
	deps.Classifier = ahocorasick.NewClassifier()

	// The model client is only needed by commands that answer questions.
	if cmd == "serve" || cmd == "ask" {
		if m.Config.APIKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return salaw.Errorf(salaw.EUNAUTHORIZED, "GEMINI_API_KEY not set")
		}

		chat, err := gemini.NewClient(ctx, m.Config.APIKey, m.Config.Model)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return err
		}
		deps.Answerer = answer.NewService(chat, deps.Classifier, m.Logger, m.Config)
	}

	// The audio path is optional; without a speech key the server rejects
	// audio uploads but still answers text questions.
	if cmd == "serve" && m.Config.SpeechAPIKey != "" {
		transcriber, err := googlespeech.NewTranscriber(ctx, m.Config.SpeechAPIKey)
		if err != nil {
			return err
		}
		deps.Transcriber = transcriber
	}

	return kongCtx.Run(deps)
}
