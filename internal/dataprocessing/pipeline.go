package dataprocessing

import (
	"log/slog"

	pipeerrors "dqcli/internal/errors"
	"dqcli/internal/files"
)

// Pipeline runs the fixed sequence of data-quality stages over a table. The
// logger is injected so stages can be tested with a captured sink.
type Pipeline struct {
	logger *slog.Logger
}

// NewPipeline creates a pipeline logging through the given logger. A nil
// logger falls back to slog.Default.
func NewPipeline(logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{logger: logger}
}

// ImproveQuality loads the input file, runs every cleaning stage in order,
// saves the cleaned table and returns it with the quality report.
//
// A load failure aborts the run and returns a LOAD_FAILED error with no
// table. A save failure is logged and reported as a SAVE_FAILED error, but
// the cleaned in-memory table and report are still returned.
func (p *Pipeline) ImproveQuality(inputPath, outputPath string) (Table, QualityReport, error) {
	p.logger.Info("Starting data quality improvement process")

	if outputPath == "" {
		outputPath = files.DefaultCleanedPath(inputPath)
	}
	p.logger.Info("Loading file", slog.String("path", inputPath))

	table, err := LoadTable(inputPath)
	if err != nil {
		p.logger.Error("Error reading file", slog.String("error", err.Error()))
		return Table{}, QualityReport{}, pipeerrors.NewLoadError(inputPath, err)
	}
	p.logger.Info("Successfully loaded file",
		slog.Int("rows", table.RowCount()),
		slog.Int("columns", table.ColumnCount()))

	originalRows := table.RowCount()
	p.logger.Info("Original dataset",
		slog.Int("rows", originalRows),
		slog.Int("columns", table.ColumnCount()))

	table = p.NormalizeColumnNames(table)
	table, duplicatesRemoved := p.Deduplicate(table)
	table = p.ImputeMissing(table)
	table = p.CapOutliers(table)
	table = p.StandardizeDates(table)
	table = p.NormalizeText(table)
	table = p.AddRowCompleteness(table)
	table = p.ValidateEmails(table)

	var saveErr error
	if err := SaveTable(table, outputPath); err != nil {
		p.logger.Error("Error saving cleaned data", slog.String("error", err.Error()))
		saveErr = pipeerrors.NewSaveError(outputPath, err)
	} else {
		p.logger.Info("Cleaned data saved", slog.String("path", outputPath))
	}

	report := p.BuildReport(table, originalRows, duplicatesRemoved)
	p.LogReport(report)
	p.logger.Info("Data quality improvement process completed")
	return table, report, saveErr
}
