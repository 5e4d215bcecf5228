package model

// Defaults applied when a rule leaves the field unset or non-positive.
const (
	DefaultThreshold = 3
	DefaultRows      = 6
)

// Rule describes one sampling interval the analyses run over. Several rules
// are usually active at once, each producing independent results.
type Rule struct {
	ID         string `yaml:"id" json:"id"`
	Label      string `yaml:"label" json:"label"`
	Every      int64  `yaml:"every" json:"every"`             // sampling step, >= 1
	StartBlock int64  `yaml:"start_block" json:"start_block"` // alignment offset, 0 = absolute multiples
	TrendRows  int    `yaml:"trend_rows" json:"trend_rows"`
	BeadRows   int    `yaml:"bead_rows" json:"bead_rows"`
	Threshold  int    `yaml:"threshold" json:"threshold"` // minimum run length to report
}

// Aligned reports whether a block height participates in this rule's sample.
// A step of 1 (or less) admits every height. With a start block set, heights
// before it never align and alignment counts from the start block; otherwise
// absolute multiples of the step align.
func (r Rule) Aligned(height int64) bool {
	if r.Every <= 1 {
		return true
	}
	if r.StartBlock > 0 {
		return height >= r.StartBlock && (height-r.StartBlock)%r.Every == 0
	}
	return height%r.Every == 0
}

// Step is the effective sampling step used for next-height projection.
func (r Rule) Step() int64 {
	if r.Every < 1 {
		return 1
	}
	return r.Every
}

// EffectiveThreshold is the reporting threshold with the default applied.
func (r Rule) EffectiveThreshold() int {
	if r.Threshold <= 0 {
		return DefaultThreshold
	}
	return r.Threshold
}

// EffectiveTrendRows is the trend road height with the default applied.
func (r Rule) EffectiveTrendRows() int {
	if r.TrendRows <= 0 {
		return DefaultRows
	}
	return r.TrendRows
}

// EffectiveBeadRows is the bead road height with the default applied.
func (r Rule) EffectiveBeadRows() int {
	if r.BeadRows <= 0 {
		return DefaultRows
	}
	return r.BeadRows
}
