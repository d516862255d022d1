package dataprocessing

import (
	"log/slog"
	"strings"
	"time"
)

// dateHints marks columns that should be attempted as dates, by name.
var dateHints = []string{"date", "time", "day", "month", "year"}

// dateLayouts are tried in order when parsing a cell as a date.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"02-01-2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	"January 2, 2006",
}

// StandardizeDates converts every date-hinted column to time cells. Values
// that fail to parse are coerced to missing rather than treated as errors.
// When not a single value in a hinted column parses, the conversion is deemed
// failed: a warning is logged and the column is left unmodified.
func (p *Pipeline) StandardizeDates(t Table) Table {
	p.logger.Info("Standardizing date formats")

	out := t.Clone()
	for i := range out.Columns {
		col := &out.Columns[i]
		if !nameContainsAny(col.Name, dateHints) {
			continue
		}
		converted, parsed, present := convertToDates(*col)
		if present > 0 && parsed == 0 {
			p.logger.Warn("Could not convert column to datetime",
				slog.String("column", col.Name))
			continue
		}
		out.Columns[i] = converted
		p.logger.Info("Converted column to datetime format",
			slog.String("column", col.Name))
	}
	return out
}

// convertToDates parses each cell of the column as a date, returning the
// converted column plus how many values parsed and how many were present.
func convertToDates(c Column) (Column, int, int) {
	out := c.Clone()
	parsed, present := 0, 0
	for i, cell := range out.Cells {
		switch cell.Kind {
		case CellMissing:
			continue
		case CellTime:
			present++
			parsed++
			continue
		}
		present++
		if t, ok := parseDate(cell.String()); ok {
			out.Cells[i] = TimeCell(t)
			parsed++
		} else {
			out.Cells[i] = MissingCell()
		}
	}
	return out, parsed, present
}

func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
