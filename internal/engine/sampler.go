package engine

import (
	"sort"

	"github.com/arwah7/dragonet/internal/model"
)

// AlignedSet holds the outcomes matching one rule's sampling step, in both
// orderings the detectors consume.
type AlignedSet struct {
	LatestFirst   []model.Outcome
	EarliestFirst []model.Outcome
}

// Empty reports whether the rule matched no outcomes.
func (s AlignedSet) Empty() bool {
	return len(s.EarliestFirst) == 0
}

// Latest is the most recent aligned outcome. Only valid on a non-empty set.
func (s AlignedSet) Latest() model.Outcome {
	return s.LatestFirst[0]
}

// Sample filters outcomes to those aligned with the rule and orders them.
// The input may arrive in any order; both views are sorted by height here.
func Sample(outcomes []model.Outcome, rule model.Rule) AlignedSet {
	aligned := make([]model.Outcome, 0, len(outcomes))
	for _, o := range outcomes {
		if rule.Aligned(o.Height) {
			aligned = append(aligned, o)
		}
	}
	sort.Slice(aligned, func(i, j int) bool { return aligned[i].Height < aligned[j].Height })

	latest := make([]model.Outcome, len(aligned))
	for i, o := range aligned {
		latest[len(aligned)-1-i] = o
	}
	return AlignedSet{LatestFirst: latest, EarliestFirst: aligned}
}
