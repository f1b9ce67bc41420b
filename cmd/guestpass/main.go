package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cardoffice/guestpass/internal/batch"
	"github.com/cardoffice/guestpass/internal/compose"
	"github.com/cardoffice/guestpass/internal/config"
	"github.com/cardoffice/guestpass/internal/gmail"
	"github.com/cardoffice/guestpass/internal/ingest"
	"github.com/cardoffice/guestpass/internal/pdfgen"
	"github.com/cardoffice/guestpass/internal/pkg/logger"
	"github.com/cardoffice/guestpass/internal/render"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if *debug {
		logger.SetLevel(logger.DEBUG)
	}

	cfg, err := config.LoadFromEnv(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: failed to load config: %v\n", err)
		os.Exit(1)
	}

	// The master file is the only batch-fatal input: no rows, no run.
	rows, err := ingest.ReadMaster(cfg.Paths.MasterFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: failed to read master file: %v\n", err)
		os.Exit(1)
	}

	renderer := render.NewRenderer(cfg.Paths.TemplatesDir, cfg.Paths.AssetsDir)
	converter := pdfgen.NewChromeConverter(cfg.Render.ChromeBin, cfg.Render.SettleDelay())
	defer converter.Close()

	generator := pdfgen.NewGenerator(renderer, converter)
	composer := compose.NewComposer(cfg.Paths.AssetsDir)
	provider := gmail.NewFileTokenProvider(cfg.Gmail.ClientID, cfg.Gmail.ClientSecret, cfg.Gmail.TokenFile)
	dispatcher := gmail.NewDispatcher(provider, cfg.Gmail.DelegateEmail)

	runner := batch.NewRunner(generator, composer, dispatcher, batch.Options{
		OutputDir:          cfg.Paths.OutputDir,
		DiamondMaxVehicles: cfg.Batch.DiamondMaxVehicles,
		DiamondSubject:     cfg.Gmail.DiamondSubject,
		CodeSubject:        cfg.Gmail.CodeSubject,
	})

	outcome := runner.Run(context.Background(), rows)

	// The run always completes; partial failures surface in the summary only.
	batch.WriteSummary(os.Stdout, outcome)
}
