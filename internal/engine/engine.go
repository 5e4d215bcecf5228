package engine

import "github.com/arwah7/dragonet/internal/model"

// Report bundles the output of one computation pass. It is a pure function
// of the inputs; identical snapshots always produce identical reports.
type Report struct {
	Trend []model.Dragon `json:"trend"`
	Row   []model.Dragon `json:"row"`
}

// Analyze runs the streak analysis across all rules for one snapshot of
// outcomes. Safe to call from any goroutine; nothing here blocks or mutates
// shared state.
func Analyze(outcomes []model.Outcome, rules []model.Rule) Report {
	trend, row := Dragons(outcomes, rules)
	return Report{Trend: trend, Row: row}
}
