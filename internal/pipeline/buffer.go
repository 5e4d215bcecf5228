package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/arwah7/dragonet/internal/model"
	"github.com/arwah7/dragonet/internal/output"
)

// alertBuffer accumulates alerts and flushes collapsed batches on a timer.
// Within one window a streak that alerts several times (new, then extended
// block after block) is delivered once, at its final length.
type alertBuffer struct {
	out     output.Output
	window  time.Duration
	maxSize int // 0 means unlimited

	mu      sync.Mutex
	pending []model.Alert
	timer   *time.Timer
}

func newAlertBuffer(out output.Output, window time.Duration, maxSize int) *alertBuffer {
	return &alertBuffer{
		out:     out,
		window:  window,
		maxSize: maxSize,
	}
}

// add appends alerts to the buffer. If these are the first in a new window,
// starts the flush timer. Returns true if the buffer is full and needs
// flushing.
func (b *alertBuffer) add(alerts ...model.Alert) bool {
	if len(alerts) == 0 {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	wasEmpty := len(b.pending) == 0
	b.pending = append(b.pending, alerts...)
	if wasEmpty {
		// First alerts of the window — start timer.
		b.timer = time.NewTimer(b.window)
	}
	return b.maxSize > 0 && len(b.pending) >= b.maxSize
}

// flushCh returns the timer's channel, or nil if no timer is active.
func (b *alertBuffer) flushCh() <-chan time.Time {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer == nil {
		return nil
	}
	return b.timer.C
}

// flush collapses and writes all pending alerts.
func (b *alertBuffer) flush(ctx context.Context) error {
	b.mu.Lock()
	alerts := b.pending
	b.pending = nil
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.mu.Unlock()

	if len(alerts) == 0 {
		return nil
	}

	for _, a := range collapse(alerts) {
		if err := b.out.Write(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

// collapse keeps one alert per streak, in first-occurrence order. The
// surviving alert carries the newest dragon state; its kind stays "new"
// when the streak first crossed its threshold inside this window, since
// that is the event worth announcing.
func collapse(alerts []model.Alert) []model.Alert {
	byKey := make(map[string]int, len(alerts))
	out := make([]model.Alert, 0, len(alerts))

	for _, a := range alerts {
		key := a.Dragon.Key()
		i, ok := byKey[key]
		if !ok {
			byKey[key] = len(out)
			out = append(out, a)
			continue
		}
		kind := out[i].Kind
		id := out[i].ID
		out[i] = a
		out[i].ID = id
		if kind == model.AlertNew {
			out[i].Kind = model.AlertNew
		}
	}
	return out
}
