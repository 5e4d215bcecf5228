package dragonet

import (
	"github.com/arwah7/dragonet/internal/classify"
	"github.com/arwah7/dragonet/internal/engine"
	"github.com/arwah7/dragonet/internal/grid"
	"github.com/arwah7/dragonet/internal/model"
	"github.com/arwah7/dragonet/internal/rules"
)

// The core types are aliases, so values move freely between this package
// and code that consumes its results.
type (
	Outcome  = model.Outcome
	RawBlock = model.RawBlock
	Rule     = model.Rule
	Dragon   = model.Dragon
	Axis     = model.Axis
	Label    = model.Label
	Cell     = model.Cell
	Column   = model.Column
	Grid     = model.Grid
	Report   = engine.Report
)

const (
	AxisParity = model.AxisParity
	AxisSize   = model.AxisSize

	Odd   = model.Odd
	Even  = model.Even
	Big   = model.Big
	Small = model.Small
)

// ClassifyBlock derives the classified outcome for one raw block: the last
// decimal digit of its hash decides parity and size. Blocks whose hash
// carries no decimal digit return an error.
func ClassifyBlock(b RawBlock) (Outcome, error) {
	return classify.FromBlock(b)
}

// Analyze computes every dragon the rules detect over the outcomes: trend
// streaks on the sampled sequence and row streaks on the bead layout.
// Outcomes may arrive in any order.
func Analyze(outcomes []Outcome, rs []Rule) Report {
	return engine.Analyze(outcomes, rs)
}

// TrendRoad lays the outcomes out in the run-broken road for one axis:
// columns collect consecutive like outcomes and break on change, so streaks
// show up as long columns.
func TrendRoad(outcomes []Outcome, axis Axis, rows int) Grid {
	return grid.Trend(outcomes, axis, rows)
}

// BeadRoad lays the outcomes out strictly sequentially, wrapped into
// rows-high columns.
func BeadRoad(outcomes []Outcome, axis Axis, rows int) Grid {
	return grid.Bead(outcomes, axis, rows)
}

// DefaultRules returns the built-in sampling rule set: every block, and
// roughly one-minute, five-minute, and one-hour intervals on a three-second
// chain.
func DefaultRules() []Rule {
	return rules.Defaults()
}
