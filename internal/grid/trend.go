package grid

import "github.com/arwah7/dragonet/internal/model"

// Trend builds the run-broken road layout. Walking the outcomes in ascending
// height order, a column collects consecutive outcomes sharing one
// classification value and breaks on a value change or when it reaches rows
// cells, so an unbroken run wraps into further columns of the same value.
// Closed columns are padded to rows cells and the grid is padded to at least
// MinColumns columns. Empty input yields an all-empty minimum-width grid.
func Trend(outcomes []model.Outcome, axis model.Axis, rows int) model.Grid {
	if rows < 1 {
		rows = model.DefaultRows
	}
	g := model.Grid{Rows: rows}

	var col model.Column
	var running model.Label
	for _, o := range sortedByHeight(outcomes) {
		v := o.ValueFor(axis)
		if len(col) > 0 && (v != running || len(col) == rows) {
			g.Cols = append(g.Cols, padColumn(col, rows))
			col = nil
		}
		col = append(col, model.Cell{Value: v, Digit: o.Digit})
		running = v
	}
	if len(col) > 0 {
		g.Cols = append(g.Cols, padColumn(col, rows))
	}

	for len(g.Cols) < MinColumns {
		g.Cols = append(g.Cols, emptyColumn(rows))
	}
	return g
}
