package output

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/arwah7/dragonet/internal/model"
)

var heights = message.NewPrinter(language.English)

// Summarize returns a copy of the alert with Text filled in: one line naming
// the streak, its length, and where it can extend, with block heights
// digit-grouped for readability. Sinks call it so every destination carries
// the same summary.
func Summarize(a model.Alert) model.Alert {
	verb := "dragon"
	if a.Kind == model.AlertExtended {
		verb = "dragon extended"
	}

	d := a.Dragon
	if d.Row > 0 {
		a.Text = heights.Sprintf("%s: %s %s %s x%d (row %d), next sample at height %d",
			verb, d.RuleLabel, d.Axis, d.Display, d.Count, d.Row, d.NextHeight)
	} else {
		a.Text = heights.Sprintf("%s: %s %s %s x%d, next sample at height %d",
			verb, d.RuleLabel, d.Axis, d.Display, d.Count, d.NextHeight)
	}
	return a
}
