package dataprocessing

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// CellKind identifies the payload stored in a Cell.
type CellKind int

const (
	CellMissing CellKind = iota
	CellNumber
	CellText
	CellTime
	CellBool
)

// Cell is a single typed value in a column. Exactly one payload field is
// meaningful, selected by Kind; a CellMissing cell carries no payload.
type Cell struct {
	Kind   CellKind
	Number float64
	Text   string
	Time   time.Time
	Bool   bool
}

// MissingCell returns the missing-value marker.
func MissingCell() Cell { return Cell{Kind: CellMissing} }

// NumberCell wraps a float64 value.
func NumberCell(v float64) Cell { return Cell{Kind: CellNumber, Number: v} }

// TextCell wraps a string value.
func TextCell(s string) Cell { return Cell{Kind: CellText, Text: s} }

// TimeCell wraps a calendar date/time value.
func TimeCell(t time.Time) Cell { return Cell{Kind: CellTime, Time: t} }

// BoolCell wraps a boolean value.
func BoolCell(b bool) Cell { return Cell{Kind: CellBool, Bool: b} }

// IsMissing reports whether the cell holds no value.
func (c Cell) IsMissing() bool { return c.Kind == CellMissing }

// String returns the textual form of the cell. Missing cells render as the
// empty string, dates in ISO format.
func (c Cell) String() string {
	switch c.Kind {
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellText:
		return c.Text
	case CellTime:
		return c.Time.Format("2006-01-02")
	case CellBool:
		return strconv.FormatBool(c.Bool)
	default:
		return ""
	}
}

// Equal compares two cells by kind and payload. Time cells compare by
// instant, not by representation.
func (c Cell) Equal(other Cell) bool {
	if c.Kind != other.Kind {
		return false
	}
	switch c.Kind {
	case CellNumber:
		return c.Number == other.Number
	case CellText:
		return c.Text == other.Text
	case CellTime:
		return c.Time.Equal(other.Time)
	case CellBool:
		return c.Bool == other.Bool
	default:
		return true
	}
}

// Column is a named vector of cells.
type Column struct {
	Name  string
	Cells []Cell
}

// Clone returns a deep copy of the column.
func (c Column) Clone() Column {
	cells := make([]Cell, len(c.Cells))
	copy(cells, c.Cells)
	return Column{Name: c.Name, Cells: cells}
}

// Table is an ordered sequence of columns with row-aligned cells.
type Table struct {
	Columns []Column
}

// RowCount returns the number of rows in the table.
func (t Table) RowCount() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Cells)
}

// ColumnCount returns the number of columns in the table.
func (t Table) ColumnCount() int { return len(t.Columns) }

// Column returns the column with the given name, or false when absent.
func (t Table) Column(name string) (Column, bool) {
	for _, col := range t.Columns {
		if col.Name == name {
			return col, true
		}
	}
	return Column{}, false
}

// Row returns the cells of row i across all columns.
func (t Table) Row(i int) []Cell {
	row := make([]Cell, len(t.Columns))
	for j, col := range t.Columns {
		row[j] = col.Cells[i]
	}
	return row
}

// Clone returns a deep copy of the table. Stage transforms operate on copies
// so each stage can be tested in isolation without aliasing hazards.
func (t Table) Clone() Table {
	cols := make([]Column, len(t.Columns))
	for i, col := range t.Columns {
		cols[i] = col.Clone()
	}
	return Table{Columns: cols}
}

// ColumnKind is the inferred semantic kind of a column. It is recomputed by
// each stage that needs it; there is no persisted schema.
type ColumnKind int

const (
	KindTextual ColumnKind = iota
	KindNumeric
	KindTemporal
)

// classifyColumn infers a column's kind from its non-missing cells: uniformly
// numeric cells make a numeric column, uniformly time cells a temporal one,
// anything mixed or empty is textual.
func classifyColumn(c Column) ColumnKind {
	var numbers, times, others int
	for _, cell := range c.Cells {
		switch cell.Kind {
		case CellMissing:
		case CellNumber:
			numbers++
		case CellTime:
			times++
		default:
			others++
		}
	}
	switch {
	case numbers > 0 && times == 0 && others == 0:
		return KindNumeric
	case times > 0 && numbers == 0 && others == 0:
		return KindTemporal
	default:
		return KindTextual
	}
}

// nameContainsAny reports whether the lowercased column name contains any of
// the hint substrings.
func nameContainsAny(name string, hints []string) bool {
	lower := strings.ToLower(name)
	for _, hint := range hints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}

// sortedNumbers extracts the non-missing numeric values of a column in
// ascending order.
func sortedNumbers(c Column) []float64 {
	nums := make([]float64, 0, len(c.Cells))
	for _, cell := range c.Cells {
		if cell.Kind == CellNumber {
			nums = append(nums, cell.Number)
		}
	}
	sort.Float64s(nums)
	return nums
}
