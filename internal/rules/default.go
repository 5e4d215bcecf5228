package rules

import "github.com/arwah7/dragonet/internal/model"

// Defaults returns the built-in rule set used when no rules are configured.
// Steps assume a chain producing one block roughly every three seconds, so
// 20 blocks is about a minute and 1200 about an hour.
func Defaults() []model.Rule {
	return []model.Rule{
		{
			ID:        "block",
			Label:     "Every block",
			Every:     1,
			TrendRows: 6,
			BeadRows:  6,
			Threshold: 4,
		},
		{
			ID:        "1m",
			Label:     "1 minute",
			Every:     20,
			TrendRows: 6,
			BeadRows:  6,
			Threshold: 3,
		},
		{
			ID:        "5m",
			Label:     "5 minutes",
			Every:     100,
			TrendRows: 6,
			BeadRows:  6,
			Threshold: 3,
		},
		{
			ID:        "1h",
			Label:     "1 hour",
			Every:     1200,
			TrendRows: 6,
			BeadRows:  6,
			Threshold: 3,
		},
	}
}
