package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"dqcli/internal/config"
	"dqcli/internal/dataprocessing"
	pipeerrors "dqcli/internal/errors"
	"dqcli/internal/infrastructure"
)

func main() {
	inPath := flag.String("in", "", "input spreadsheet file (.xlsx or .csv)")
	outPath := flag.String("out", "", "output file for cleaned data (defaults to <input>_cleaned<ext>)")
	logLevel := flag.String("loglevel", "", "log level: debug, info, warn, error (default info)")
	verbose := flag.Bool("v", false, "shorthand for -loglevel debug")
	flag.Parse()

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "usage: cleaner -in <file> [-out <file>] [-loglevel <level>]")
		os.Exit(2)
	}

	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}
	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = &config.Config{
			Logging: config.LoggingConfig{
				Level:  "info",
				Output: "both",
			},
		}
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if *verbose {
		cfg.Logging.Level = "debug"
	}
	if cfg.Logging.FilePath == "" {
		cfg.Logging.FilePath = paths.RunLogPath(time.Now())
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	runID := infrastructure.NewRunID()
	logger = logger.With(slog.String("run_id", runID))

	logger.Info("Starting spreadsheet cleaning",
		slog.String("input", *inPath),
		slog.String("output", *outPath),
		slog.String("log_level", cfg.Logging.Level))

	pipeline := dataprocessing.NewPipeline(logger)
	cleaned, _, err := pipeline.ImproveQuality(*inPath, *outPath)
	if err != nil {
		if pipeerrors.IsCode(err, pipeerrors.CodeLoadFailed) {
			logger.Error("Cleaning aborted", slog.String("error", err.Error()))
			os.Exit(1)
		}
		// Save failures leave a usable in-memory result; report and go on.
		logger.Warn("Cleaning finished with errors", slog.String("error", err.Error()))
	}

	logger.Debug("Generating column-wise completeness metrics")
	for _, score := range dataprocessing.ColumnCompleteness(cleaned) {
		logger.Debug(fmt.Sprintf("Column completeness - %s: %.2f%%", score.Column, score.Percent))
	}
}
