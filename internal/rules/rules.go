// Package rules manages the interval rule set the analyses run over.
package rules

import (
	"fmt"

	"github.com/arwah7/dragonet/internal/model"
)

// Set holds the active rules in their configured order. Dragon output breaks
// count ties by this order, so it is preserved exactly as given.
type Set struct {
	rules []model.Rule
	byID  map[string]model.Rule
}

// New validates the rules and builds a Set.
func New(rules []model.Rule) (*Set, error) {
	s := &Set{
		rules: make([]model.Rule, len(rules)),
		byID:  make(map[string]model.Rule, len(rules)),
	}
	copy(s.rules, rules)

	for i, r := range s.rules {
		if err := Validate(r); err != nil {
			return nil, fmt.Errorf("rules: rule %d: %w", i, err)
		}
		if _, dup := s.byID[r.ID]; dup {
			return nil, fmt.Errorf("rules: duplicate rule id %q", r.ID)
		}
		s.byID[r.ID] = r
	}
	return s, nil
}

// Validate checks one rule's configuration. Zero row counts and thresholds
// are fine (defaults apply); negative values and missing IDs are not.
func Validate(r model.Rule) error {
	if r.ID == "" {
		return fmt.Errorf("id is required")
	}
	if r.Every < 1 {
		return fmt.Errorf("%s: every must be >= 1, got %d", r.ID, r.Every)
	}
	if r.StartBlock < 0 {
		return fmt.Errorf("%s: start_block must be >= 0, got %d", r.ID, r.StartBlock)
	}
	if r.TrendRows < 0 || r.BeadRows < 0 {
		return fmt.Errorf("%s: row counts must be >= 0", r.ID)
	}
	if r.Threshold < 0 {
		return fmt.Errorf("%s: threshold must be >= 0, got %d", r.ID, r.Threshold)
	}
	return nil
}

// All returns the rules in configured order.
func (s *Set) All() []model.Rule {
	out := make([]model.Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Get returns the rule with the given id.
func (s *Set) Get(id string) (model.Rule, bool) {
	r, ok := s.byID[id]
	return r, ok
}

// Len returns the number of rules.
func (s *Set) Len() int {
	return len(s.rules)
}
