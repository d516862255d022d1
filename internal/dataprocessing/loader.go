package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// defaultSheetName is used when writing Excel output.
const defaultSheetName = "Sheet1"

// LoadTable reads a tabular file into a Table. The format is selected by
// file extension: .xlsx/.xlsm via excelize, .csv via encoding/csv. The first
// row is the header; empty cells become missing values and numeric-looking
// cells are typed as numbers. Date-looking text is left as text until the
// date standardization stage.
func LoadTable(path string) (Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return loadExcel(path)
	case ".csv":
		return loadCSV(path)
	default:
		return Table{}, fmt.Errorf("unsupported file format: %s", filepath.Ext(path))
	}
}

// SaveTable writes a Table to the given path, format again selected by
// extension. No row-index column is written; the header row comes first.
func SaveTable(t Table, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return saveExcel(t, path)
	case ".csv":
		return saveCSV(t, path)
	default:
		return fmt.Errorf("unsupported file format: %s", filepath.Ext(path))
	}
}

func loadExcel(path string) (Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Table{}, fmt.Errorf("no sheets found in %s", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return Table{}, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return tableFromRows(rows)
}

func loadCSV(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("failed to read csv: %w", err)
	}
	return tableFromRows(rows)
}

// tableFromRows builds a Table from raw string rows, the first row being the
// header. Short rows are padded with missing cells so all columns stay
// row-aligned.
func tableFromRows(rows [][]string) (Table, error) {
	if len(rows) == 0 {
		return Table{}, fmt.Errorf("file has no header row")
	}
	header := rows[0]
	cols := make([]Column, len(header))
	for j, name := range header {
		cols[j] = Column{Name: name, Cells: make([]Cell, 0, len(rows)-1)}
	}
	for _, row := range rows[1:] {
		for j := range cols {
			if j < len(row) {
				cols[j].Cells = append(cols[j].Cells, parseCell(row[j]))
			} else {
				cols[j].Cells = append(cols[j].Cells, MissingCell())
			}
		}
	}
	return Table{Columns: cols}, nil
}

// parseCell types a raw cell value. Blank cells are missing, parseable
// numbers become numeric cells, everything else stays text.
func parseCell(raw string) Cell {
	if strings.TrimSpace(raw) == "" {
		return MissingCell()
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
		return NumberCell(v)
	}
	return TextCell(raw)
}

func saveExcel(t Table, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]interface{}, len(t.Columns))
	for j, col := range t.Columns {
		header[j] = col.Name
	}
	if err := f.SetSheetRow(defaultSheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i := 0; i < t.RowCount(); i++ {
		row := make([]interface{}, len(t.Columns))
		for j, col := range t.Columns {
			row[j] = cellValue(col.Cells[i])
		}
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute cell address: %w", err)
		}
		if err := f.SetSheetRow(defaultSheetName, addr, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	return nil
}

func saveCSV(t Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	header := make([]string, len(t.Columns))
	for j, col := range t.Columns {
		header[j] = col.Name
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i := 0; i < t.RowCount(); i++ {
		row := make([]string, len(t.Columns))
		for j, col := range t.Columns {
			row[j] = col.Cells[i].String()
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// cellValue converts a cell to the native type excelize understands. Missing
// cells are written as empty cells, dates as ISO text.
func cellValue(c Cell) interface{} {
	switch c.Kind {
	case CellNumber:
		return c.Number
	case CellText:
		return c.Text
	case CellTime:
		return c.Time.Format("2006-01-02")
	case CellBool:
		return c.Bool
	default:
		return nil
	}
}
