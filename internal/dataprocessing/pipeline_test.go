package dataprocessing

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pipeerrors "dqcli/internal/errors"
	"dqcli/internal/shared/testutil"
)

const sampleCSV = "Name ,EMAIL,Join Date\n\" alice \",alice@x.com,2020-01-01\nalice,bad-email,\nalice,alice@x.com,2020-01-01\n"

func TestImproveQualityEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.csv")
	output := filepath.Join(dir, "cleaned.csv")
	writeFile(t, input, sampleCSV)

	logger, handler := testutil.NewTestLogger(t)
	pipeline := NewPipeline(logger)

	cleaned, report, err := pipeline.ImproveQuality(input, output)
	require.NoError(t, err)

	// Dedup runs before text normalization, so the whitespace-differing
	// first row keeps all three rows alive.
	assert.Equal(t, 3, report.OriginalRows)
	assert.Equal(t, 3, report.CleanedRows)
	assert.Equal(t, 0, report.DuplicatesRemoved)
	assert.Equal(t, 5, report.ColumnsProcessed)

	names := make([]string, 0, cleaned.ColumnCount())
	for _, col := range cleaned.Columns {
		names = append(names, col.Name)
	}
	assert.Equal(t, []string{"name", "email", "join_date", "row_completeness", "email_valid"}, names)

	nameCol, _ := cleaned.Column("name")
	assert.Equal(t, []Cell{TextCell(" Alice "), TextCell("Alice"), TextCell("Alice")}, nameCol.Cells)

	emailCol, _ := cleaned.Column("email")
	assert.Equal(t, []Cell{TextCell("alice@x.com"), TextCell("bad-email"), TextCell("alice@x.com")}, emailCol.Cells)

	validCol, _ := cleaned.Column("email_valid")
	assert.Equal(t, []Cell{BoolCell(true), BoolCell(false), BoolCell(true)}, validCol.Cells)

	// The missing join date is forward-filled, then standardized.
	dateCol, _ := cleaned.Column("join_date")
	want := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, cell := range dateCol.Cells {
		require.Equal(t, CellTime, cell.Kind)
		assert.True(t, want.Equal(cell.Time))
	}

	completenessCol, _ := cleaned.Column("row_completeness")
	for _, cell := range completenessCol.Cells {
		assert.Equal(t, NumberCell(1), cell)
	}

	assert.InDelta(t, 100.0, report.OverallCompleteness, 1e-9)
	assert.FileExists(t, output)
	testutil.AssertLogContains(t, handler, slog.LevelInfo, "Data quality improvement process completed")
}

func TestImproveQualityIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.csv")
	first := filepath.Join(dir, "first.csv")
	second := filepath.Join(dir, "second.csv")
	writeFile(t, input, sampleCSV)

	pipeline := NewPipeline(slog.Default())
	_, _, err := pipeline.ImproveQuality(input, first)
	require.NoError(t, err)

	logger, handler := testutil.NewTestLogger(t)
	rerun := NewPipeline(logger)
	_, report, err := rerun.ImproveQuality(first, second)
	require.NoError(t, err)

	assert.Equal(t, 0, report.DuplicatesRemoved)
	assert.False(t, handler.HasMessage("Column has missing values"))
	assert.False(t, handler.HasMessage("Filled column"))
}

func TestImproveQualityDefaultOutputPath(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "survey.csv")
	writeFile(t, input, "Name,Score\nalice,1\nbob,2\n")

	pipeline := NewPipeline(slog.Default())
	_, _, err := pipeline.ImproveQuality(input, "")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "survey_cleaned.csv"))
}

func TestImproveQualityLoadFailure(t *testing.T) {
	logger, handler := testutil.NewTestLogger(t)
	pipeline := NewPipeline(logger)

	table, _, err := pipeline.ImproveQuality(filepath.Join(t.TempDir(), "absent.xlsx"), "")

	require.Error(t, err)
	assert.True(t, pipeerrors.IsCode(err, pipeerrors.CodeLoadFailed))
	assert.Equal(t, 0, table.ColumnCount())
	testutil.AssertLogContains(t, handler, slog.LevelError, "Error reading file")
}

func TestImproveQualitySaveFailureStillReturnsTable(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.csv")
	writeFile(t, input, "Name,Score\nalice,1\n")
	badOutput := filepath.Join(dir, "no_such_dir", "out.csv")

	logger, handler := testutil.NewTestLogger(t)
	pipeline := NewPipeline(logger)

	table, report, err := pipeline.ImproveQuality(input, badOutput)

	require.Error(t, err)
	assert.True(t, pipeerrors.IsCode(err, pipeerrors.CodeSaveFailed))
	// Partial success: the cleaned in-memory table and report survive.
	assert.Equal(t, 1, table.RowCount())
	assert.Equal(t, 1, report.CleanedRows)
	testutil.AssertLogContains(t, handler, slog.LevelError, "Error saving cleaned data")
}

func TestImproveQualityExcelInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.xlsx")
	output := filepath.Join(dir, "cleaned.xlsx")

	source := Table{Columns: []Column{
		{Name: "Product Type", Cells: []Cell{TextCell("gadget pro"), TextCell("widget"), MissingCell()}},
		{Name: "Price", Cells: []Cell{NumberCell(10), MissingCell(), NumberCell(30)}},
	}}
	require.NoError(t, SaveTable(source, input))

	pipeline := NewPipeline(slog.Default())
	cleaned, report, err := pipeline.ImproveQuality(input, output)
	require.NoError(t, err)

	assert.Equal(t, 3, report.CleanedRows)

	typeCol, ok := cleaned.Column("product_type")
	require.True(t, ok)
	// Mode fill ("gadget pro" vs "widget" ties to the smaller), then title case.
	assert.Equal(t, TextCell("Gadget Pro"), typeCol.Cells[0])
	assert.Equal(t, TextCell("Gadget Pro"), typeCol.Cells[2])

	priceCol, ok := cleaned.Column("price")
	require.True(t, ok)
	assert.Equal(t, NumberCell(20), priceCol.Cells[1])

	assert.FileExists(t, output)
	_ = os.Remove(output)
}
