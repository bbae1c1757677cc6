package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"query-schema-gen/internal/config"
	"query-schema-gen/internal/document"
	"query-schema-gen/internal/emit"
	"query-schema-gen/internal/logging"
	"query-schema-gen/internal/modelfilter"
	"query-schema-gen/internal/observability"
	"query-schema-gen/internal/transform"
)

var (
	// Version is set at build time via -ldflags "-X main.Version=...".
	Version = "dev"
	Commit  = "none"
)

func main() {
	if err := run(); err != nil {
		slog.Error("transform error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	pflag.Bool("version", false, "Print version and exit")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if showVersion, _ := pflag.CommandLine.GetBool("version"); showVersion {
		fmt.Printf("query-schema-gen %s (%s)\n", Version, Commit)
		return nil
	}

	if cfg.Observability.ServiceVersion == "" {
		cfg.Observability.ServiceVersion = Version
	}

	if result := cfg.Validate(); result.HasErrors() {
		for _, err := range result.Errors {
			slog.Error("configuration error",
				slog.String("field", err.Field),
				slog.String("message", err.Message),
				slog.String("hint", err.Hint),
			)
		}
		return fmt.Errorf("configuration validation failed")
	}

	ctx := context.Background()

	var loggerProvider *observability.LoggerProvider
	if cfg.Observability.Enabled() {
		loggerProvider, err = observability.InitLoggerProvider(ctx, cfg.Observability)
		if err != nil {
			return fmt.Errorf("failed to initialize log export: %w", err)
		}
	}

	logCfg := logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	}
	if loggerProvider != nil {
		logCfg.LoggerProvider = loggerProvider.Provider()
	}
	logger := logging.NewLogger(logCfg)
	slog.SetDefault(logger.Logger)

	if loggerProvider != nil {
		defer func() { _ = loggerProvider.Shutdown(ctx, logger.Logger) }()
	}

	if cfg.Observability.Enabled() {
		tracerProvider, err := observability.InitTracerProvider(ctx, cfg.Observability)
		if err != nil {
			return fmt.Errorf("failed to initialize tracing: %w", err)
		}
		defer func() { _ = tracerProvider.Shutdown(ctx, logger.Logger) }()
	}

	doc, err := readDocument(cfg.Input)
	if err != nil {
		return err
	}

	modelfilter.Apply(&doc, cfg.DatamodelFilters)

	out, report := transform.New(logger.Logger).Run(ctx, doc)

	for _, name := range report.Passthroughs() {
		logger.Warn("where-input left unsynthesized",
			slog.String("type", name),
			slog.String("run_id", report.RunID),
		)
	}

	if cfg.CheckSchema {
		if _, err := emit.Build(out); err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}
		logger.Info("schema check passed", slog.String("run_id", report.RunID))
	}

	return writeDocument(cfg.Output, out, cfg.Pretty)
}

// readDocument reads the introspected document from a file, or from stdin
// when no path is configured. An interactive stdin is refused rather than
// blocking on a terminal.
func readDocument(path string) (document.Document, error) {
	var r io.Reader
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return document.Document{}, fmt.Errorf("failed to open input document: %w", err)
		}
		defer f.Close()
		r = f
	} else {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return document.Document{}, fmt.Errorf("no input document: pass --input or pipe JSON to stdin")
		}
		r = os.Stdin
	}
	return document.Decode(r)
}

func writeDocument(path string, doc document.Document, pretty bool) error {
	var w io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}
	return document.Encode(w, doc, pretty)
}
