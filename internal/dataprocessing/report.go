package dataprocessing

import (
	"fmt"
	"strings"
)

// QualityReport summarizes a cleaning run. It is produced once from final
// table state and never mutated afterward.
type QualityReport struct {
	OriginalRows        int     `json:"original_rows"`
	CleanedRows         int     `json:"cleaned_rows"`
	DuplicatesRemoved   int     `json:"duplicates_removed"`
	ColumnsProcessed    int     `json:"columns_processed"`
	OverallCompleteness float64 `json:"overall_completeness"`
}

// BuildReport assembles the quality report from the final table and the
// counters collected along the run. Overall completeness is the mean over all
// cells of "is present", as a percentage.
func (p *Pipeline) BuildReport(final Table, originalRows, duplicatesRemoved int) QualityReport {
	return QualityReport{
		OriginalRows:        originalRows,
		CleanedRows:         final.RowCount(),
		DuplicatesRemoved:   duplicatesRemoved,
		ColumnsProcessed:    final.ColumnCount(),
		OverallCompleteness: overallCompleteness(final),
	}
}

// LogReport writes each report field on its own line. Completeness fields get
// a percent suffix with two decimals, everything else is logged as a plain
// value under a title-cased key.
func (p *Pipeline) LogReport(report QualityReport) {
	p.logger.Info("Data Quality Report:")
	for _, field := range report.fields() {
		if strings.Contains(field.key, "completeness") {
			p.logger.Info(fmt.Sprintf("%s: %.2f%%", titleKey(field.key), field.value))
		} else {
			p.logger.Info(fmt.Sprintf("%s: %d", titleKey(field.key), int(field.value)))
		}
	}
}

type reportField struct {
	key   string
	value float64
}

// fields returns the report's entries in their fixed order.
func (r QualityReport) fields() []reportField {
	return []reportField{
		{"original_rows", float64(r.OriginalRows)},
		{"cleaned_rows", float64(r.CleanedRows)},
		{"duplicates_removed", float64(r.DuplicatesRemoved)},
		{"columns_processed", float64(r.ColumnsProcessed)},
		{"overall_completeness", r.OverallCompleteness},
	}
}

// overallCompleteness is the percentage of non-missing cells over the whole
// table.
func overallCompleteness(t Table) float64 {
	total, present := 0, 0
	for _, col := range t.Columns {
		for _, cell := range col.Cells {
			total++
			if !cell.IsMissing() {
				present++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(present) / float64(total) * 100
}

// ColumnCompleteness reports the per-column percentage of non-missing values,
// in column order.
func ColumnCompleteness(t Table) []ColumnScore {
	scores := make([]ColumnScore, 0, len(t.Columns))
	for _, col := range t.Columns {
		present := 0
		for _, cell := range col.Cells {
			if !cell.IsMissing() {
				present++
			}
		}
		pct := 0.0
		if len(col.Cells) > 0 {
			pct = float64(present) / float64(len(col.Cells)) * 100
		}
		scores = append(scores, ColumnScore{Column: col.Name, Percent: pct})
	}
	return scores
}

// ColumnScore is a per-column completeness percentage.
type ColumnScore struct {
	Column  string
	Percent float64
}

// titleKey renders a report key for display: underscores become spaces and
// each word is capitalized.
func titleKey(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
