package grid

import (
	"sort"

	"github.com/arwah7/dragonet/internal/model"
)

// MinColumns is the fixed minimum display width of every road, independent
// of data volume.
const MinColumns = 24

func sortedByHeight(outcomes []model.Outcome) []model.Outcome {
	sorted := make([]model.Outcome, len(outcomes))
	copy(sorted, outcomes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Height < sorted[j].Height })
	return sorted
}

func padColumn(col model.Column, rows int) model.Column {
	for len(col) < rows {
		col = append(col, model.Cell{})
	}
	return col
}

func emptyColumn(rows int) model.Column {
	return make(model.Column, rows)
}
