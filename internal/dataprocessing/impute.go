package dataprocessing

import (
	"log/slog"
	"sort"
)

// dateNameHint marks a column as date-intended for imputation even before
// its values are typed as dates.
const dateNameHint = "date"

// unknownFill is used when a column has missing values but nothing to derive
// a fill from.
const unknownFill = "Unknown"

// ImputeMissing fills missing values column by column. Numeric columns take
// the column median, date-hinted or temporal columns are forward-filled, and
// everything else takes the column mode (or "Unknown" when the column is
// entirely missing). Row and column counts never change.
func (p *Pipeline) ImputeMissing(t Table) Table {
	p.logger.Info("Handling missing values")

	out := t.Clone()
	for i := range out.Columns {
		col := &out.Columns[i]
		missing := missingCount(*col)
		if missing == 0 {
			continue
		}
		p.logger.Info("Column has missing values",
			slog.String("column", col.Name),
			slog.Int("count", missing))

		kind := classifyColumn(*col)
		switch {
		case kind == KindNumeric:
			median := columnMedian(*col)
			fillMissing(col, NumberCell(median))
			p.logger.Info("Filled column with median",
				slog.String("column", col.Name),
				slog.Float64("median", median))
		case kind == KindTemporal || nameContainsAny(col.Name, []string{dateNameHint}):
			forwardFill(col)
			p.logger.Info("Filled dates using forward fill",
				slog.String("column", col.Name))
		default:
			mode, ok := columnMode(*col)
			if !ok {
				mode = TextCell(unknownFill)
			}
			fillMissing(col, mode)
			p.logger.Info("Filled column with mode",
				slog.String("column", col.Name),
				slog.String("mode", mode.String()))
		}
	}
	return out
}

func missingCount(c Column) int {
	n := 0
	for _, cell := range c.Cells {
		if cell.IsMissing() {
			n++
		}
	}
	return n
}

func fillMissing(c *Column, fill Cell) {
	for i, cell := range c.Cells {
		if cell.IsMissing() {
			c.Cells[i] = fill
		}
	}
}

// forwardFill replaces each missing value with the nearest preceding
// non-missing value. Leading missing values with no predecessor stay missing.
func forwardFill(c *Column) {
	last := MissingCell()
	for i, cell := range c.Cells {
		if cell.IsMissing() {
			if !last.IsMissing() {
				c.Cells[i] = last
			}
			continue
		}
		last = cell
	}
}

// columnMedian computes the median of a column's non-missing numeric values,
// averaging the two middle values for even counts.
func columnMedian(c Column) float64 {
	nums := sortedNumbers(c)
	n := len(nums)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return nums[n/2]
	}
	return (nums[n/2-1] + nums[n/2]) / 2
}

// columnMode returns the most frequent non-missing value of a column. Ties
// break to the smallest value by textual encoding so the result is
// deterministic. The second return is false when the column has no
// non-missing values.
func columnMode(c Column) (Cell, bool) {
	counts := make(map[string]int)
	values := make(map[string]Cell)
	for _, cell := range c.Cells {
		if cell.IsMissing() {
			continue
		}
		key := cell.String()
		counts[key]++
		values[key] = cell
	}
	if len(counts) == 0 {
		return MissingCell(), false
	}
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	best := keys[0]
	for _, key := range keys[1:] {
		if counts[key] > counts[best] {
			best = key
		}
	}
	return values[best], true
}
