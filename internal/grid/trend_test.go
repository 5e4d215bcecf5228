package grid

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arwah7/dragonet/internal/engine/testdata"
	"github.com/arwah7/dragonet/internal/model"
)

func TestTrendEmptyInput(t *testing.T) {
	g := Trend(nil, model.AxisParity, 6)

	require.Equal(t, MinColumns, g.Width())
	require.Equal(t, 6, g.Rows)
	for _, col := range g.Cols {
		require.Len(t, col, 6)
		for _, cell := range col {
			require.True(t, cell.Empty())
		}
	}
}

func TestTrendColumnBreaksOnValueChange(t *testing.T) {
	// Parity O,O,O,E,E,O,O gives three data columns.
	seq := testdata.Sequence(1, 1, 1, 1, 1, 2, 2, 1, 1)
	g := Trend(seq, model.AxisParity, 6)

	require.Equal(t, MinColumns, g.Width())
	require.Equal(t, []model.Label{model.Odd, model.Odd, model.Odd}, occupied(g.Cols[0]))
	require.Equal(t, []model.Label{model.Even, model.Even}, occupied(g.Cols[1]))
	require.Equal(t, []model.Label{model.Odd, model.Odd}, occupied(g.Cols[2]))
	for _, cell := range g.Cols[3] {
		require.True(t, cell.Empty())
	}
}

func TestTrendRunWrapsAtRows(t *testing.T) {
	// An unbroken run of eight with three rows wraps into columns of 3,3,2.
	seq := testdata.Sequence(1, 1, testdata.Repeat(7, 8)...)
	g := Trend(seq, model.AxisParity, 3)

	require.Equal(t, []model.Label{model.Odd, model.Odd, model.Odd}, occupied(g.Cols[0]))
	require.Equal(t, []model.Label{model.Odd, model.Odd, model.Odd}, occupied(g.Cols[1]))
	require.Equal(t, []model.Label{model.Odd, model.Odd}, occupied(g.Cols[2]))
}

func TestTrendStructuralInvariants(t *testing.T) {
	seq := testdata.Sequence(1, 1, 7, 2, 2, 9, 9, 9, 9, 4, 1, 1, 8, 3)
	rows := 4
	g := Trend(seq, model.AxisParity, rows)

	require.GreaterOrEqual(t, g.Width(), MinColumns)

	var flat []model.Label
	for _, col := range g.Cols {
		require.Len(t, col, rows)
		vals := occupied(col)
		// A column never mixes values.
		for _, v := range vals {
			require.Equal(t, vals[0], v)
		}
		flat = append(flat, vals...)
	}

	// Concatenating occupied cells column by column reproduces the
	// ascending-height classification sequence.
	want := make([]model.Label, len(seq))
	for i, o := range seq {
		want[i] = o.ValueFor(model.AxisParity)
	}
	require.Equal(t, want, flat)
}

func TestTrendUnorderedInput(t *testing.T) {
	seq := testdata.Sequence(1, 1, 1, 1, 2, 2)
	shuffled := []model.Outcome{seq[3], seq[0], seq[2], seq[1]}

	g := Trend(shuffled, model.AxisParity, 6)
	require.Equal(t, []model.Label{model.Odd, model.Odd}, occupied(g.Cols[0]))
	require.Equal(t, []model.Label{model.Even, model.Even}, occupied(g.Cols[1]))
}

func TestTrendSizeAxis(t *testing.T) {
	// Sizes S,S,B,B,B against parity O,E,O,E,O: the two axes produce
	// different shapes from the same outcomes.
	seq := testdata.Sequence(1, 1, 1, 2, 7, 8, 9)

	parity := Trend(seq, model.AxisParity, 6)
	size := Trend(seq, model.AxisSize, 6)

	require.Len(t, occupied(parity.Cols[0]), 1)
	require.Equal(t, []model.Label{model.Small, model.Small}, occupied(size.Cols[0]))
	require.Equal(t, []model.Label{model.Big, model.Big, model.Big}, occupied(size.Cols[1]))
}

func TestTrendDigitPreserved(t *testing.T) {
	seq := testdata.Sequence(1, 1, 9)
	g := Trend(seq, model.AxisSize, 6)

	require.Equal(t, 9, g.Cols[0][0].Digit)
	require.Equal(t, model.Big, g.Cols[0][0].Value)
}

// occupied returns the values of the leading non-empty cells of a column.
func occupied(col model.Column) []model.Label {
	var out []model.Label
	for _, cell := range col {
		if cell.Empty() {
			break
		}
		out = append(out, cell.Value)
	}
	return out
}
