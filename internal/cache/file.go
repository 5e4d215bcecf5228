package cache

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/arwah7/dragonet/internal/model"
)

// File is an NDJSON-backed store, one outcome per line. The whole set loads
// into memory on open; puts append to the file immediately; Close rewrites
// the file compacted (sorted, deduplicated, trimmed to capacity) so restarts
// keep earlier backfills without replaying the append log.
type File struct {
	mu       sync.Mutex
	mem      *Memory
	f        *os.File
	w        *bufio.Writer
	path     string
	capacity int
}

// OpenFile opens (or creates) the NDJSON cache at path.
func OpenFile(path string, capacity int) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("cache: file backend needs a path")
	}

	fc := &File{mem: NewMemory(capacity), path: path, capacity: capacity}
	if err := fc.load(); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cache: open %s: %w", path, err)
	}
	fc.f = f
	fc.w = bufio.NewWriter(f)
	return fc, nil
}

func (fc *File) load() error {
	f, err := os.Open(fc.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cache: open %s: %w", fc.path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 {
			continue
		}
		var o model.Outcome
		if err := json.Unmarshal(raw, &o); err != nil {
			return fmt.Errorf("cache: %s line %d: %w", fc.path, line, err)
		}
		fc.mem.Put(context.Background(), o)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("cache: read %s: %w", fc.path, err)
	}
	return nil
}

func (fc *File) Put(ctx context.Context, outcomes ...model.Outcome) error {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	if err := fc.mem.Put(ctx, outcomes...); err != nil {
		return err
	}
	for _, o := range outcomes {
		data, err := json.Marshal(o)
		if err != nil {
			return fmt.Errorf("cache: marshal outcome %d: %w", o.Height, err)
		}
		data = append(data, '\n')
		if _, err := fc.w.Write(data); err != nil {
			return fmt.Errorf("cache: append %s: %w", fc.path, err)
		}
	}
	if err := fc.w.Flush(); err != nil {
		return fmt.Errorf("cache: flush %s: %w", fc.path, err)
	}
	return nil
}

func (fc *File) Snapshot(ctx context.Context) ([]model.Outcome, error) {
	return fc.mem.Snapshot(ctx)
}

func (fc *File) LatestHeight(ctx context.Context) (int64, error) {
	return fc.mem.LatestHeight(ctx)
}

func (fc *File) Len(ctx context.Context) (int, error) {
	return fc.mem.Len(ctx)
}

// Close compacts the append log: the current snapshot is written to a temp
// file which then replaces the log atomically.
func (fc *File) Close() error {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	if err := fc.w.Flush(); err != nil {
		fc.f.Close()
		return fmt.Errorf("cache: flush %s: %w", fc.path, err)
	}
	if err := fc.f.Close(); err != nil {
		return fmt.Errorf("cache: close %s: %w", fc.path, err)
	}

	snapshot, err := fc.mem.Snapshot(context.Background())
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	for _, o := range snapshot {
		data, err := json.Marshal(o)
		if err != nil {
			return fmt.Errorf("cache: marshal outcome %d: %w", o.Height, err)
		}
		buf.Write(data)
		buf.WriteByte('\n')
	}

	tmp := fc.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("cache: compact %s: %w", fc.path, err)
	}
	if err := os.Rename(tmp, fc.path); err != nil {
		return fmt.Errorf("cache: compact %s: %w", fc.path, err)
	}
	return nil
}
