// Package dragonet detects streaks of like block outcomes (dragons) and
// lays outcome sequences out as road grids.
//
// Quick start:
//
//	report := dragonet.Analyze(outcomes, dragonet.DefaultRules())
//	for _, d := range report.Trend {
//	    fmt.Println(d.RuleID, d.Display, d.Count)
//	}
//
//	road := dragonet.TrendRoad(outcomes, dragonet.AxisParity, 6)
//
// Every function is pure: results are recomputed from the outcomes passed
// in, nothing is cached or mutated, and concurrent use is safe.
package dragonet
