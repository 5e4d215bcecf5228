package grid

import "github.com/arwah7/dragonet/internal/model"

// Bead builds the strict sequential layout: a pure reshape of the
// ascending-height sequence into rows-high columns, filled column-major top
// to bottom. Runs never affect column boundaries. The grid grows to fit all
// data but never shrinks below MinColumns columns.
func Bead(outcomes []model.Outcome, axis model.Axis, rows int) model.Grid {
	if rows < 1 {
		rows = model.DefaultRows
	}
	sorted := sortedByHeight(outcomes)

	cols := (len(sorted) + rows - 1) / rows
	if cols < MinColumns {
		cols = MinColumns
	}

	g := model.Grid{Rows: rows, Cols: make([]model.Column, cols)}
	for c := 0; c < cols; c++ {
		column := emptyColumn(rows)
		for r := 0; r < rows; r++ {
			if idx := c*rows + r; idx < len(sorted) {
				o := sorted[idx]
				column[r] = model.Cell{Value: o.ValueFor(axis), Digit: o.Digit}
			}
		}
		g.Cols[c] = column
	}
	return g
}
