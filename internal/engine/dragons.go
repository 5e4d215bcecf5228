package engine

import (
	"sort"

	"github.com/arwah7/dragonet/internal/model"
)

// Dragons computes both ranked streak lists for one snapshot of outcomes.
// Rules are processed in the order given; a rule whose aligned set is empty
// contributes nothing. Each list is sorted descending by count, ties keeping
// rule order, then parity before size, then ascending row.
func Dragons(outcomes []model.Outcome, rules []model.Rule) (trend, row []model.Dragon) {
	if len(outcomes) == 0 {
		return nil, nil
	}
	for _, rule := range rules {
		set := Sample(outcomes, rule)
		if set.Empty() {
			continue
		}
		threshold := rule.EffectiveThreshold()

		next := set.Latest().Height + rule.Step()
		for _, axis := range model.Axes {
			if value, count := LeadingRun(set.LatestFirst, axis); count >= threshold {
				trend = append(trend, newDragon(rule, axis, value, count, threshold, next, 0))
			}
		}

		rows := rule.EffectiveBeadRows()
		for r, rowSeq := range SplitRows(set.EarliestFirst, rows) {
			if len(rowSeq) == 0 {
				continue
			}
			latestFirst := reversed(rowSeq)
			// Each row advances one slot per full column, so the next
			// occupant of this row lands rows steps ahead.
			rowNext := latestFirst[0].Height + rule.Step()*int64(rows)
			for _, axis := range model.Axes {
				if value, count := LeadingRun(latestFirst, axis); count >= threshold {
					row = append(row, newDragon(rule, axis, value, count, threshold, rowNext, r+1))
				}
			}
		}
	}
	sortDragons(trend)
	sortDragons(row)
	return trend, row
}

func newDragon(rule model.Rule, axis model.Axis, value model.Label, count, threshold int, next int64, rowIdx int) model.Dragon {
	return model.Dragon{
		RuleID:     rule.ID,
		RuleLabel:  rule.Label,
		Axis:       axis,
		Value:      value,
		Display:    value.Display(),
		Color:      value.Color(),
		Count:      count,
		Threshold:  threshold,
		NextHeight: next,
		Row:        rowIdx,
	}
}

// sortDragons orders by descending count. The build order already encodes
// the tie-break, so a stable sort preserves it.
func sortDragons(ds []model.Dragon) {
	sort.SliceStable(ds, func(i, j int) bool { return ds[i].Count > ds[j].Count })
}
