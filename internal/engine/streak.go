package engine

import "github.com/arwah7/dragonet/internal/model"

// LeadingRun returns the classification value of the first element of
// ordered and the number of consecutive leading elements sharing it. The
// caller supplies the sequence with its most recent element first; only the
// leading run matters, not the longest run anywhere in the sequence. An
// empty sequence yields ("", 0).
func LeadingRun(ordered []model.Outcome, axis model.Axis) (model.Label, int) {
	if len(ordered) == 0 {
		return "", 0
	}
	value := ordered[0].ValueFor(axis)
	count := 1
	for _, o := range ordered[1:] {
		if o.ValueFor(axis) != value {
			break
		}
		count++
	}
	return value, count
}

// SplitRows partitions an earliest-first sequence round-robin: row r receives
// the elements at positions i where i%rows == r, in ascending order. This is
// the bead layout's column-major fill read back out by row.
func SplitRows(earliestFirst []model.Outcome, rows int) [][]model.Outcome {
	if rows < 1 {
		rows = 1
	}
	out := make([][]model.Outcome, rows)
	for i, o := range earliestFirst {
		r := i % rows
		out[r] = append(out[r], o)
	}
	return out
}

func reversed(seq []model.Outcome) []model.Outcome {
	out := make([]model.Outcome, len(seq))
	for i, o := range seq {
		out[len(seq)-1-i] = o
	}
	return out
}
