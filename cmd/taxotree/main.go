package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/anjali-pebl/DataApp-sub000/internal/config"
	"github.com/anjali-pebl/DataApp-sub000/internal/connector"
	"github.com/anjali-pebl/DataApp-sub000/internal/engine"
	"github.com/anjali-pebl/DataApp-sub000/internal/ingest"
	"github.com/anjali-pebl/DataApp-sub000/internal/logging"
	"github.com/anjali-pebl/DataApp-sub000/internal/output"
	"github.com/anjali-pebl/DataApp-sub000/internal/output/file"
	"github.com/anjali-pebl/DataApp-sub000/internal/output/multi"
	"github.com/anjali-pebl/DataApp-sub000/internal/output/stdout"
	"github.com/anjali-pebl/DataApp-sub000/internal/output/webhook"
	"github.com/anjali-pebl/DataApp-sub000/internal/pipeline"

	// Register lookup connector implementations.
	_ "github.com/anjali-pebl/DataApp-sub000/internal/connector/gbif"
	_ "github.com/anjali-pebl/DataApp-sub000/internal/connector/worms"
)

func main() {
	input := flag.String("input", "", "occurrence CSV path (overrides TAXOTREE_INPUT)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *input != "" {
		cfg.Input.Path = *input
	}
	if cfg.Input.Path == "" {
		log.Fatal("no input: pass -input or set TAXOTREE_INPUT")
	}

	logging.Init(cfg.Output.Format == "stdout", logging.ParseLevel(cfg.Log.Level))

	records, err := ingest.ReadFile(cfg.Input.Path)
	if err != nil {
		log.Fatalf("failed to read records: %v", err)
	}

	// Optional taxonomy lookup enrichment.
	var enricher *connector.Enricher
	if cfg.Lookup.Provider != "" {
		ctor, err := connector.Get(cfg.Lookup.Provider)
		if err != nil {
			log.Fatalf("failed to get lookup connector: %v", err)
		}
		lookupCfg := connector.LookupConfig{
			Provider: cfg.Lookup.Provider,
			Endpoint: cfg.Lookup.Endpoint,
			Timeout:  cfg.Lookup.Timeout(),
		}
		enricher, err = connector.NewEnricher(ctor(), lookupCfg, cfg.Lookup.CacheSize, cfg.Lookup.Concurrency)
		if err != nil {
			log.Fatalf("failed to create enricher: %v", err)
		}
	}

	out, err := buildOutput(cfg.Output)
	if err != nil {
		log.Fatalf("failed to create output: %v", err)
	}

	p := pipeline.New(enricher, engine.New(), out)
	defer p.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	slog.Info("taxotree: processing records",
		"input", cfg.Input.Path,
		"records", len(records),
		"lookup", cfg.Lookup.Provider,
	)

	result, err := p.Run(ctx, records)
	if err != nil {
		log.Fatalf("pipeline error: %v", err)
	}

	slog.Info("taxotree: done",
		"taxa", result.Root.SpeciesCount,
		"rows", len(result.Flattened),
	)
}

// buildOutput resolves the configured output destination.
func buildOutput(cfg config.OutputConfig) (output.Output, error) {
	switch cfg.Format {
	case "", "stdout":
		return stdout.New(cfg.Pretty), nil
	case "file":
		return file.New(cfg.Path)
	case "webhook":
		return webhook.New(cfg.WebhookURL), nil
	case "file,webhook", "webhook,file":
		f, err := file.New(cfg.Path)
		if err != nil {
			return nil, err
		}
		return multi.New(f, webhook.New(cfg.WebhookURL)), nil
	default:
		return nil, fmt.Errorf("unknown output format: %s", cfg.Format)
	}
}
