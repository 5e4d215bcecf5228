package pipeline

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arwah7/dragonet/internal/engine"
	"github.com/arwah7/dragonet/internal/model"
)

// Tracker remembers which streaks have already been reported and at what
// length. Diffing each pass against that memory turns repeated detections of
// the same dragon into at most one alert per growth step.
type Tracker struct {
	mu   sync.Mutex
	seen map[string]int // streak key → last alerted count
}

// NewTracker creates an empty Tracker. The first pass against it reports
// every dragon as new.
func NewTracker() *Tracker {
	return &Tracker{seen: make(map[string]int)}
}

// Diff compares the report against the tracked state and returns alerts for
// streaks that crossed their threshold since the last pass or grew past the
// length already alerted on. Streaks absent from the report are forgotten,
// so a broken streak that re-forms alerts as new again. latest, when
// non-nil, is the outcome whose arrival triggered the pass.
func (t *Tracker) Diff(rep engine.Report, latest *model.Outcome, now time.Time) []model.Alert {
	t.mu.Lock()
	defer t.mu.Unlock()

	var alerts []model.Alert
	current := make(map[string]struct{}, len(rep.Trend)+len(rep.Row))

	for _, d := range append(append([]model.Dragon{}, rep.Trend...), rep.Row...) {
		key := d.Key()
		current[key] = struct{}{}

		prev, tracked := t.seen[key]
		switch {
		case !tracked:
			alerts = append(alerts, t.alert(model.AlertNew, d, latest, now))
		case d.Count > prev:
			alerts = append(alerts, t.alert(model.AlertExtended, d, latest, now))
		default:
			continue
		}
		t.seen[key] = d.Count
	}

	for key := range t.seen {
		if _, ok := current[key]; !ok {
			delete(t.seen, key)
		}
	}
	return alerts
}

func (t *Tracker) alert(kind model.AlertKind, d model.Dragon, latest *model.Outcome, now time.Time) model.Alert {
	return model.Alert{
		ID:     uuid.NewString(),
		Kind:   kind,
		Dragon: d,
		Latest: latest,
		Time:   now,
	}
}
