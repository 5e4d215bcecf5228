package replay

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/arwah7/dragonet/internal/ledger"
	"github.com/arwah7/dragonet/internal/model"
)

func init() {
	ledger.Register("replay", New)
}

// Source replays blocks from an NDJSON file, one raw block per line. Used
// for offline scans and tests; its stream ends when the file does instead
// of following a live head.
type Source struct {
	blocks []model.RawBlock
}

// New loads the file named by the endpoint (or the "path" extra) into
// memory, sorted ascending by height.
func New(cfg ledger.SourceConfig) (ledger.Source, error) {
	path := cfg.Endpoint
	if path == "" {
		path = cfg.Extra["path"]
	}
	if path == "" {
		return nil, errors.New("replay: path is required")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	defer f.Close()

	var blocks []model.RawBlock
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 {
			continue
		}
		var b model.RawBlock
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, fmt.Errorf("replay: line %d: %w", line, err)
		}
		blocks = append(blocks, b)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}

	sort.Slice(blocks, func(i, j int) bool { return blocks[i].Height < blocks[j].Height })
	return &Source{blocks: blocks}, nil
}

func (s *Source) LatestHeight(_ context.Context) (int64, error) {
	if len(s.blocks) == 0 {
		return 0, nil
	}
	return s.blocks[len(s.blocks)-1].Height, nil
}

func (s *Source) FetchRange(_ context.Context, from, to int64) ([]model.RawBlock, error) {
	var out []model.RawBlock
	for _, b := range s.blocks {
		if b.Height >= from && b.Height <= to {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *Source) Stream(ctx context.Context, fromHeight int64) (<-chan model.RawBlock, error) {
	ch := make(chan model.RawBlock, 64)
	go func() {
		defer close(ch)
		for _, b := range s.blocks {
			if b.Height <= fromHeight {
				continue
			}
			select {
			case ch <- b:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}
