package dataprocessing

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"dqcli/internal/shared/testutil"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
		ok   bool
	}{
		{name: "iso date", raw: "2020-01-02", want: time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC), ok: true},
		{name: "iso datetime", raw: "2020-01-02 13:45:00", want: time.Date(2020, 1, 2, 13, 45, 0, 0, time.UTC), ok: true},
		{name: "slash format", raw: "2020/01/02", want: time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC), ok: true},
		{name: "us format", raw: "01/02/2020", want: time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC), ok: true},
		{name: "month name", raw: "Jan 2, 2020", want: time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC), ok: true},
		{name: "padded", raw: "  2020-01-02  ", want: time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC), ok: true},
		{name: "garbage", raw: "not a date", ok: false},
		{name: "empty", raw: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseDate(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.want.Equal(got))
			}
		})
	}
}

func TestStandardizeDatesConvertsHintedColumns(t *testing.T) {
	pipeline := NewPipeline(slog.Default())
	table := Table{Columns: []Column{
		{Name: "join_date", Cells: []Cell{TextCell("2020-01-01"), TextCell("2020-02-01")}},
		{Name: "city", Cells: []Cell{TextCell("2020-01-01"), TextCell("oslo")}},
	}}

	got := pipeline.StandardizeDates(table)

	assert.Equal(t, CellTime, got.Columns[0].Cells[0].Kind)
	assert.Equal(t, CellTime, got.Columns[0].Cells[1].Kind)
	// Non-hinted columns are untouched even when their values look like dates.
	assert.Equal(t, TextCell("2020-01-01"), got.Columns[1].Cells[0])
}

func TestStandardizeDatesCoercesUnparseableToMissing(t *testing.T) {
	pipeline := NewPipeline(slog.Default())
	table := Table{Columns: []Column{{
		Name:  "start_day",
		Cells: []Cell{TextCell("2020-01-01"), TextCell("soon"), MissingCell()},
	}}}

	got := pipeline.StandardizeDates(table)

	cells := got.Columns[0].Cells
	assert.Equal(t, CellTime, cells[0].Kind)
	assert.True(t, cells[1].IsMissing())
	assert.True(t, cells[2].IsMissing())
}

func TestStandardizeDatesLeavesFailedColumnUnmodified(t *testing.T) {
	logger, handler := testutil.NewTestLogger(t)
	pipeline := NewPipeline(logger)
	table := Table{Columns: []Column{{
		Name:  "event_time",
		Cells: []Cell{TextCell("soonish"), TextCell("later")},
	}}}

	got := pipeline.StandardizeDates(table)

	assert.Equal(t, table.Columns[0].Cells, got.Columns[0].Cells)
	testutil.AssertLogContains(t, handler, slog.LevelWarn, "Could not convert column to datetime")
}

func TestStandardizeDatesHints(t *testing.T) {
	pipeline := NewPipeline(slog.Default())
	for _, name := range []string{"due_date", "start_time", "birth_day", "fiscal_month", "model_year"} {
		t.Run(name, func(t *testing.T) {
			table := Table{Columns: []Column{{Name: name, Cells: []Cell{TextCell("2021-05-05")}}}}

			got := pipeline.StandardizeDates(table)

			assert.Equal(t, CellTime, got.Columns[0].Cells[0].Kind)
		})
	}
}
