package dataprocessing

import (
	"log/slog"
	"strconv"
	"strings"
)

// Deduplicate removes rows that exactly duplicate an earlier row across all
// columns, keeping the first occurrence. Row order is preserved among
// survivors. It returns the deduplicated table and the number of rows
// removed.
func (p *Pipeline) Deduplicate(t Table) (Table, int) {
	p.logger.Info("Checking for duplicate rows")

	rowCount := t.RowCount()
	seen := make(map[string]bool, rowCount)
	keep := make([]int, 0, rowCount)
	for i := 0; i < rowCount; i++ {
		key := rowKey(t.Row(i))
		if seen[key] {
			continue
		}
		seen[key] = true
		keep = append(keep, i)
	}

	out := Table{Columns: make([]Column, len(t.Columns))}
	for j, col := range t.Columns {
		cells := make([]Cell, 0, len(keep))
		for _, i := range keep {
			cells = append(cells, col.Cells[i])
		}
		out.Columns[j] = Column{Name: col.Name, Cells: cells}
	}

	removed := rowCount - len(keep)
	p.logger.Info("Removed duplicate rows", slog.Int("count", removed))
	return out, removed
}

// rowKey builds an equality key for a row. Kind tags are encoded alongside
// the payload so a numeric 1 and the text "1" never collide.
func rowKey(row []Cell) string {
	var b strings.Builder
	for _, cell := range row {
		b.WriteString(strconv.Itoa(int(cell.Kind)))
		b.WriteByte(':')
		b.WriteString(cell.String())
		b.WriteByte('\x1f')
	}
	return b.String()
}
