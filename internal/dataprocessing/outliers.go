package dataprocessing

import (
	"fmt"
	"log/slog"
	"math"
)

// iqrMultiplier sets the outlier fences at Q1-1.5*IQR and Q3+1.5*IQR.
const iqrMultiplier = 1.5

// CapOutliers clips the values of every numeric column to the interquartile
// fences computed over that column's non-missing values. Values are capped,
// never removed, so row count is unchanged. A zero-IQR column gets zero-width
// fences; off-median values in such columns are pulled to the shared bound.
func (p *Pipeline) CapOutliers(t Table) Table {
	p.logger.Info("Detecting and handling outliers")

	out := t.Clone()
	for i := range out.Columns {
		col := &out.Columns[i]
		if classifyColumn(*col) != KindNumeric {
			continue
		}
		nums := sortedNumbers(*col)
		if len(nums) == 0 {
			continue
		}
		q1 := quantile(nums, 0.25)
		q3 := quantile(nums, 0.75)
		iqr := q3 - q1
		lower := q1 - iqrMultiplier*iqr
		upper := q3 + iqrMultiplier*iqr

		outliers := 0
		for _, cell := range col.Cells {
			if cell.Kind == CellNumber && (cell.Number < lower || cell.Number > upper) {
				outliers++
			}
		}
		if outliers == 0 {
			continue
		}
		p.logger.Info("Column has outliers",
			slog.String("column", col.Name),
			slog.Int("count", outliers))
		for j, cell := range col.Cells {
			if cell.Kind != CellNumber {
				continue
			}
			if cell.Number < lower {
				col.Cells[j] = NumberCell(lower)
			} else if cell.Number > upper {
				col.Cells[j] = NumberCell(upper)
			}
		}
		p.logger.Info("Capped outliers",
			slog.String("column", col.Name),
			slog.String("lower", formatBound(lower)),
			slog.String("upper", formatBound(upper)))
	}
	return out
}

// quantile computes the p-quantile of ascending-sorted values with linear
// interpolation between adjacent ranks.
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}
	pos := p * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// formatBound renders a fence with two decimals for log readability.
func formatBound(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
