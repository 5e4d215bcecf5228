package model

// Cell is one road position. The zero value is an empty cell.
type Cell struct {
	Value Label `json:"value,omitempty"` // empty string means unoccupied
	Digit int   `json:"digit"`           // originating result digit
}

// Empty reports whether the cell holds no outcome.
func (c Cell) Empty() bool {
	return c.Value == ""
}

// Column is one vertical strip of a road, fixed-length, top to bottom.
type Column []Cell

// Grid is an ordered sequence of fixed-height columns. Builders guarantee
// every column has exactly Rows cells and the grid is at least 24 columns
// wide regardless of data volume.
type Grid struct {
	Rows int      `json:"rows"`
	Cols []Column `json:"cols"`
}

// Width is the number of columns.
func (g Grid) Width() int {
	return len(g.Cols)
}
