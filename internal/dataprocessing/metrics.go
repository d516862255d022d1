package dataprocessing

import (
	"log/slog"
	"regexp"
)

// completenessColumn is the derived per-row quality metric column.
const completenessColumn = "row_completeness"

// emailNameHint marks columns that should be validated as email addresses.
const emailNameHint = "email"

// validSuffix is appended to the source column name for the boolean
// validation column.
const validSuffix = "_valid"

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// AddRowCompleteness appends a row_completeness column holding, per row, the
// fraction of the pre-existing columns with a non-missing value.
func (p *Pipeline) AddRowCompleteness(t Table) Table {
	out := t.Clone()
	total := len(out.Columns)
	cells := make([]Cell, out.RowCount())
	for i := range cells {
		present := 0
		for _, col := range out.Columns {
			if !col.Cells[i].IsMissing() {
				present++
			}
		}
		if total == 0 {
			cells[i] = NumberCell(0)
			continue
		}
		cells[i] = NumberCell(float64(present) / float64(total))
	}
	out.Columns = append(out.Columns, Column{Name: completenessColumn, Cells: cells})
	p.logger.Info("Added row completeness score column")
	return out
}

// ValidateEmails adds a boolean <column>_valid sibling for every
// email-named column. Values are coerced to text before matching; the source
// column is never altered. Missing values always validate as false.
func (p *Pipeline) ValidateEmails(t Table) Table {
	out := t.Clone()
	sources := make([]Column, 0, len(out.Columns))
	for _, col := range out.Columns {
		if nameContainsAny(col.Name, []string{emailNameHint}) {
			sources = append(sources, col)
		}
	}
	for _, col := range sources {
		p.logger.Info("Validating email addresses", slog.String("column", col.Name))
		cells := make([]Cell, len(col.Cells))
		invalid := 0
		for i, cell := range col.Cells {
			ok := !cell.IsMissing() && emailPattern.MatchString(cell.String())
			cells[i] = BoolCell(ok)
			if !ok {
				invalid++
			}
		}
		out.Columns = append(out.Columns, Column{Name: col.Name + validSuffix, Cells: cells})
		p.logger.Info("Found invalid email addresses",
			slog.String("column", col.Name),
			slog.Int("count", invalid))
	}
	return out
}
