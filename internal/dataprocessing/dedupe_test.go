package dataprocessing

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeduplicate(t *testing.T) {
	tests := []struct {
		name        string
		columns     []Column
		wantRows    int
		wantRemoved int
	}{
		{
			name: "removes exact duplicate keeping first",
			columns: []Column{
				{Name: "a", Cells: []Cell{TextCell("x"), TextCell("x"), TextCell("y")}},
				{Name: "b", Cells: []Cell{NumberCell(1), NumberCell(1), NumberCell(1)}},
			},
			wantRows:    2,
			wantRemoved: 1,
		},
		{
			name: "whitespace differences are distinct rows",
			columns: []Column{
				{Name: "a", Cells: []Cell{TextCell(" alice "), TextCell("alice")}},
			},
			wantRows:    2,
			wantRemoved: 0,
		},
		{
			name: "number and text never collide",
			columns: []Column{
				{Name: "a", Cells: []Cell{NumberCell(1), TextCell("1")}},
			},
			wantRows:    2,
			wantRemoved: 0,
		},
		{
			name: "all rows identical",
			columns: []Column{
				{Name: "a", Cells: []Cell{MissingCell(), MissingCell(), MissingCell()}},
			},
			wantRows:    1,
			wantRemoved: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pipeline := NewPipeline(slog.Default())

			got, removed := pipeline.Deduplicate(Table{Columns: tt.columns})

			assert.Equal(t, tt.wantRows, got.RowCount())
			assert.Equal(t, tt.wantRemoved, removed)
			assert.Equal(t, len(tt.columns), got.ColumnCount())
		})
	}
}

func TestDeduplicatePreservesSurvivorOrder(t *testing.T) {
	pipeline := NewPipeline(slog.Default())
	table := Table{Columns: []Column{
		{Name: "a", Cells: []Cell{TextCell("c"), TextCell("a"), TextCell("c"), TextCell("b")}},
	}}

	got, removed := pipeline.Deduplicate(table)

	assert.Equal(t, 1, removed)
	assert.Equal(t, []Cell{TextCell("c"), TextCell("a"), TextCell("b")}, got.Columns[0].Cells)
}
