package cache

import (
	"context"
	"testing"

	"github.com/arwah7/dragonet/internal/engine/testdata"
)

func TestMemorySnapshotAscending(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(0)

	seq := testdata.Sequence(100, 1, 7, 2, 9)
	if err := m.Put(ctx, seq[2], seq[0], seq[1]); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := m.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("snapshot returned %d outcomes, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Height >= got[i].Height {
			t.Fatalf("snapshot not ascending: height %d before %d", got[i-1].Height, got[i].Height)
		}
	}
}

func TestMemoryReplaceByHeight(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(0)

	first := testdata.Sequence(42, 1, 3)[0]
	second := testdata.Sequence(42, 1, 8)[0]
	if err := m.Put(ctx, first); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := m.Put(ctx, second); err != nil {
		t.Fatalf("put: %v", err)
	}

	n, err := m.Len(ctx)
	if err != nil {
		t.Fatalf("len: %v", err)
	}
	if n != 1 {
		t.Fatalf("len = %d after replacing height 42, want 1", n)
	}

	got, _ := m.Snapshot(ctx)
	if got[0].Digit != 8 {
		t.Fatalf("digit = %d after replace, want 8", got[0].Digit)
	}
}

func TestMemoryTrimsToCapacity(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(3)

	if err := m.Put(ctx, testdata.Sequence(10, 1, 1, 2, 3, 4, 5)...); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := m.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("kept %d outcomes, want 3", len(got))
	}
	if got[0].Height != 12 || got[2].Height != 14 {
		t.Fatalf("kept heights %d..%d, want newest 12..14", got[0].Height, got[2].Height)
	}
}

func TestMemoryUnboundedKeepsAll(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(0)

	if err := m.Put(ctx, testdata.Sequence(1, 1, testdata.Repeat(5, 200)...)...); err != nil {
		t.Fatalf("put: %v", err)
	}
	n, _ := m.Len(ctx)
	if n != 200 {
		t.Fatalf("len = %d, want 200", n)
	}
}

func TestMemoryLatestHeight(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(0)

	h, err := m.LatestHeight(ctx)
	if err != nil {
		t.Fatalf("latest height: %v", err)
	}
	if h != 0 {
		t.Fatalf("latest height of empty store = %d, want 0", h)
	}

	if err := m.Put(ctx, testdata.Sequence(900, 5, 1, 2, 3)...); err != nil {
		t.Fatalf("put: %v", err)
	}
	h, _ = m.LatestHeight(ctx)
	if h != 910 {
		t.Fatalf("latest height = %d, want 910", h)
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	if _, err := Open(context.Background(), Config{Backend: "etcd"}); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestOpenDefaultsToMemory(t *testing.T) {
	s, err := Open(context.Background(), Config{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()
	if _, ok := s.(*Memory); !ok {
		t.Fatalf("default backend is %T, want *Memory", s)
	}
}
