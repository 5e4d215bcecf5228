package pipeline

import (
	"testing"
	"time"

	"github.com/arwah7/dragonet/internal/engine"
	"github.com/arwah7/dragonet/internal/model"
)

func dragon(ruleID string, axis model.Axis, value model.Label, count, row int) model.Dragon {
	return model.Dragon{
		RuleID:     ruleID,
		RuleLabel:  ruleID,
		Axis:       axis,
		Value:      value,
		Display:    value.Display(),
		Count:      count,
		Threshold:  3,
		NextHeight: 1000,
		Row:        row,
	}
}

func TestTrackerFirstPassAllNew(t *testing.T) {
	tr := NewTracker()
	rep := engine.Report{
		Trend: []model.Dragon{dragon("1m", model.AxisParity, model.Even, 4, 0)},
		Row:   []model.Dragon{dragon("1m", model.AxisSize, model.Big, 3, 2)},
	}

	alerts := tr.Diff(rep, nil, time.Now())
	if len(alerts) != 2 {
		t.Fatalf("got %d alerts on first pass, want 2", len(alerts))
	}
	for i, a := range alerts {
		if a.Kind != model.AlertNew {
			t.Errorf("alert %d kind = %q, want new", i, a.Kind)
		}
		if a.ID == "" {
			t.Errorf("alert %d has no id", i)
		}
	}
	if alerts[0].ID == alerts[1].ID {
		t.Error("alerts share an id")
	}
}

func TestTrackerSilentAtSameCount(t *testing.T) {
	tr := NewTracker()
	rep := engine.Report{
		Trend: []model.Dragon{dragon("1m", model.AxisParity, model.Even, 4, 0)},
	}

	tr.Diff(rep, nil, time.Now())
	alerts := tr.Diff(rep, nil, time.Now())
	if len(alerts) != 0 {
		t.Fatalf("got %d alerts for unchanged report, want 0", len(alerts))
	}
}

func TestTrackerExtendedOnGrowth(t *testing.T) {
	tr := NewTracker()
	tr.Diff(engine.Report{
		Trend: []model.Dragon{dragon("1m", model.AxisParity, model.Even, 4, 0)},
	}, nil, time.Now())

	alerts := tr.Diff(engine.Report{
		Trend: []model.Dragon{dragon("1m", model.AxisParity, model.Even, 5, 0)},
	}, nil, time.Now())

	if len(alerts) != 1 {
		t.Fatalf("got %d alerts, want 1", len(alerts))
	}
	if alerts[0].Kind != model.AlertExtended {
		t.Fatalf("kind = %q, want extended", alerts[0].Kind)
	}
	if alerts[0].Dragon.Count != 5 {
		t.Fatalf("count = %d, want 5", alerts[0].Dragon.Count)
	}
}

func TestTrackerForgetsBrokenStreaks(t *testing.T) {
	tr := NewTracker()
	rep := engine.Report{
		Trend: []model.Dragon{dragon("1m", model.AxisParity, model.Even, 4, 0)},
	}

	tr.Diff(rep, nil, time.Now())

	// Streak broke: report no longer carries it.
	if alerts := tr.Diff(engine.Report{}, nil, time.Now()); len(alerts) != 0 {
		t.Fatalf("got %d alerts for empty report, want 0", len(alerts))
	}

	// Same streak slot re-forms; it should alert as new again.
	alerts := tr.Diff(rep, nil, time.Now())
	if len(alerts) != 1 {
		t.Fatalf("got %d alerts, want 1", len(alerts))
	}
	if alerts[0].Kind != model.AlertNew {
		t.Fatalf("kind = %q, want new for re-formed streak", alerts[0].Kind)
	}
}

func TestTrackerRowsTrackedSeparately(t *testing.T) {
	tr := NewTracker()
	rep := engine.Report{
		Row: []model.Dragon{
			dragon("5m", model.AxisParity, model.Odd, 3, 1),
			dragon("5m", model.AxisParity, model.Odd, 3, 4),
		},
	}

	alerts := tr.Diff(rep, nil, time.Now())
	if len(alerts) != 2 {
		t.Fatalf("got %d alerts, want 2 (one per row)", len(alerts))
	}

	// Only row 4 grows.
	rep.Row[1].Count = 4
	alerts = tr.Diff(rep, nil, time.Now())
	if len(alerts) != 1 {
		t.Fatalf("got %d alerts, want 1", len(alerts))
	}
	if alerts[0].Dragon.Row != 4 {
		t.Fatalf("alerted row = %d, want 4", alerts[0].Dragon.Row)
	}
}

func TestTrackerCarriesLatestOutcome(t *testing.T) {
	tr := NewTracker()
	latest := &model.Outcome{Height: 777, Digit: 4, Parity: model.Even, Size: model.Small}
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	alerts := tr.Diff(engine.Report{
		Trend: []model.Dragon{dragon("block", model.AxisParity, model.Even, 3, 0)},
	}, latest, now)

	if len(alerts) != 1 {
		t.Fatalf("got %d alerts, want 1", len(alerts))
	}
	if alerts[0].Latest == nil || alerts[0].Latest.Height != 777 {
		t.Fatalf("latest = %+v, want outcome at height 777", alerts[0].Latest)
	}
	if !alerts[0].Time.Equal(now) {
		t.Fatalf("time = %v, want %v", alerts[0].Time, now)
	}
}
