package cache

import (
	"context"
	"sort"
	"sync"

	"github.com/arwah7/dragonet/internal/model"
)

// Memory keeps the newest outcomes in process memory. The default backend.
type Memory struct {
	mu       sync.RWMutex
	capacity int
	byHeight map[int64]model.Outcome
}

// NewMemory creates a memory store keeping at most capacity outcomes.
// Capacity 0 keeps everything.
func NewMemory(capacity int) *Memory {
	return &Memory{
		capacity: capacity,
		byHeight: make(map[int64]model.Outcome),
	}
}

func (m *Memory) Put(_ context.Context, outcomes ...model.Outcome) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range outcomes {
		m.byHeight[o.Height] = o
	}
	m.trimLocked()
	return nil
}

// trimLocked drops the lowest heights until capacity holds.
func (m *Memory) trimLocked() {
	if m.capacity <= 0 || len(m.byHeight) <= m.capacity {
		return
	}
	heights := make([]int64, 0, len(m.byHeight))
	for h := range m.byHeight {
		heights = append(heights, h)
	}
	sort.Slice(heights, func(i, j int) bool { return heights[i] < heights[j] })
	for _, h := range heights[:len(heights)-m.capacity] {
		delete(m.byHeight, h)
	}
}

func (m *Memory) Snapshot(_ context.Context) ([]model.Outcome, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Outcome, 0, len(m.byHeight))
	for _, o := range m.byHeight {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Height < out[j].Height })
	return out, nil
}

func (m *Memory) LatestHeight(_ context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var latest int64
	for h := range m.byHeight {
		if h > latest {
			latest = h
		}
	}
	return latest, nil
}

func (m *Memory) Len(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byHeight), nil
}

func (m *Memory) Close() error {
	return nil
}
