package grid

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arwah7/dragonet/internal/engine/testdata"
	"github.com/arwah7/dragonet/internal/model"
)

func TestBeadEmptyInput(t *testing.T) {
	g := Bead(nil, model.AxisSize, 6)

	require.Equal(t, MinColumns, g.Width())
	for _, col := range g.Cols {
		require.Len(t, col, 6)
		for _, cell := range col {
			require.True(t, cell.Empty())
		}
	}
}

func TestBeadSequentialFill(t *testing.T) {
	// Seven outcomes over three rows: data occupies the first three columns
	// column-major, the minimum width pads the rest.
	seq := testdata.Sequence(1, 1, 1, 2, 3, 4, 5, 6, 7)
	g := Bead(seq, model.AxisParity, 3)

	require.Equal(t, MinColumns, g.Width())

	wantDigits := [][]int{{1, 2, 3}, {4, 5, 6}, {7}}
	for c, digits := range wantDigits {
		for r, d := range digits {
			cell := g.Cols[c][r]
			require.False(t, cell.Empty(), "col %d row %d", c, r)
			require.Equal(t, d, cell.Digit)
			require.Equal(t, model.ParityOf(d), cell.Value)
		}
	}
	require.True(t, g.Cols[2][1].Empty())
	require.True(t, g.Cols[2][2].Empty())
	for _, cell := range g.Cols[3] {
		require.True(t, cell.Empty())
	}
}

func TestBeadGrowsPastMinimum(t *testing.T) {
	seq := testdata.Sequence(1, 1, testdata.Repeat(5, 100)...)
	g := Bead(seq, model.AxisParity, 4)

	require.Equal(t, 25, g.Width())
	last := g.Cols[24]
	require.False(t, last[3].Empty())
}

func TestBeadRunsDoNotBreakColumns(t *testing.T) {
	// Alternating parity still fills strictly sequentially.
	seq := testdata.Sequence(1, 1, testdata.Alternate(1, 2, 6)...)
	g := Bead(seq, model.AxisParity, 3)

	require.Equal(t, []model.Label{model.Odd, model.Even, model.Odd}, cells(g.Cols[0]))
	require.Equal(t, []model.Label{model.Even, model.Odd, model.Even}, cells(g.Cols[1]))
}

func TestBeadFlattenReproducesInput(t *testing.T) {
	seq := testdata.Sequence(1, 1, 3, 1, 4, 1, 5, 9, 2, 6)
	rows := 5
	g := Bead(seq, model.AxisSize, rows)

	var flat []model.Label
	for _, col := range g.Cols {
		require.Len(t, col, rows)
		for _, cell := range col {
			if !cell.Empty() {
				flat = append(flat, cell.Value)
			}
		}
	}

	want := make([]model.Label, len(seq))
	for i, o := range seq {
		want[i] = o.ValueFor(model.AxisSize)
	}
	require.Equal(t, want, flat)
}

func TestBeadUnorderedInput(t *testing.T) {
	seq := testdata.Sequence(1, 1, 1, 2, 3)
	shuffled := []model.Outcome{seq[2], seq[0], seq[1]}

	g := Bead(shuffled, model.AxisParity, 3)
	require.Equal(t, []model.Label{model.Odd, model.Even, model.Odd}, cells(g.Cols[0]))
}

func cells(col model.Column) []model.Label {
	out := make([]model.Label, 0, len(col))
	for _, cell := range col {
		if !cell.Empty() {
			out = append(out, cell.Value)
		}
	}
	return out
}
