package dataprocessing

import (
	"log/slog"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleHints marks columns whose text should be title-cased rather than
// lowercased.
var titleHints = []string{"name", "title", "category", "type"}

var titleCaser = cases.Title(language.Und)

// NormalizeColumnNames standardizes every column name: surrounding whitespace
// trimmed, lowercased, inner spaces replaced by underscores. Order is
// preserved and no collision resolution is attempted; a duplicate result is
// logged as a warning so the caller can see it happened.
func (p *Pipeline) NormalizeColumnNames(t Table) Table {
	out := t.Clone()
	before := make([]string, len(out.Columns))
	after := make([]string, len(out.Columns))
	seen := make(map[string]bool, len(out.Columns))
	for i := range out.Columns {
		before[i] = out.Columns[i].Name
		name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(out.Columns[i].Name)), " ", "_")
		if seen[name] {
			p.logger.Warn("Column name collision after normalization",
				slog.String("column", name))
		}
		seen[name] = true
		out.Columns[i].Name = name
		after[i] = name
	}
	p.logger.Info("Standardized column names")
	p.logger.Debug("Column names before", slog.Any("columns", before))
	p.logger.Debug("Column names after", slog.Any("columns", after))
	return out
}

// NormalizeText standardizes the text of every textual column. Columns with
// a name hinting at names or categories are title-cased; all others are
// trimmed and lowercased. Values are coerced to their textual form first, so
// numeric-looking text columns get stringified.
func (p *Pipeline) NormalizeText(t Table) Table {
	out := t.Clone()
	for i := range out.Columns {
		col := &out.Columns[i]
		if classifyColumn(*col) != KindTextual {
			continue
		}
		if nameContainsAny(col.Name, titleHints) {
			for j, cell := range col.Cells {
				if cell.IsMissing() {
					continue
				}
				col.Cells[j] = TextCell(titleCaser.String(cell.String()))
			}
			p.logger.Info("Converted column to title case", slog.String("column", col.Name))
		} else {
			for j, cell := range col.Cells {
				if cell.IsMissing() {
					continue
				}
				col.Cells[j] = TextCell(strings.ToLower(strings.TrimSpace(cell.String())))
			}
			p.logger.Info("Standardized column to lowercase", slog.String("column", col.Name))
		}
	}
	return out
}
