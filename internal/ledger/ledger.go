package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/arwah7/dragonet/internal/model"
)

// Source defines the interface all ledger providers must implement.
type Source interface {
	// LatestHeight returns the chain's current head height.
	LatestHeight(ctx context.Context) (int64, error)

	// FetchRange fetches the blocks with heights in [from, to], ascending.
	FetchRange(ctx context.Context, from, to int64) ([]model.RawBlock, error)

	// Stream polls the chain head and delivers blocks as they are produced,
	// starting after fromHeight. 0 means start at the current head.
	Stream(ctx context.Context, fromHeight int64) (<-chan model.RawBlock, error)
}

// SourceConfig holds provider-specific connection settings.
type SourceConfig struct {
	Provider     string
	Endpoint     string
	APIKey       string
	PollInterval time.Duration
	Extra        map[string]string
}

const defaultPollInterval = 3 * time.Second

// Interval returns the configured poll interval or the default.
func (c SourceConfig) Interval() time.Duration {
	if c.PollInterval > 0 {
		return c.PollInterval
	}
	return defaultPollInterval
}

// Poll implements the head-chasing stream loop shared by the HTTP providers.
// Each tick compares the head against the cursor and fetches the gap. Errors
// are logged and retried on the next tick; the cursor only advances past
// blocks that were delivered.
func Poll(ctx context.Context, src Source, name string, fromHeight int64, interval time.Duration) <-chan model.RawBlock {
	ch := make(chan model.RawBlock, 64)
	go func() {
		defer close(ch)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		cursor := pollOnce(ctx, src, name, fromHeight, ch)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				cursor = pollOnce(ctx, src, name, cursor, ch)
			}
		}
	}()
	return ch
}

func pollOnce(ctx context.Context, src Source, name string, cursor int64, ch chan<- model.RawBlock) int64 {
	head, err := src.LatestHeight(ctx)
	if err != nil {
		slog.Warn("poll error", "source", name, "error", err)
		return cursor
	}
	if cursor == 0 {
		// First pass with no resume point: deliver the head block itself.
		cursor = head - 1
	}
	if head <= cursor {
		return cursor
	}

	blocks, err := src.FetchRange(ctx, cursor+1, head)
	if err != nil {
		slog.Warn("fetch error", "source", name, "error", err)
		return cursor
	}
	for _, b := range blocks {
		select {
		case ch <- b:
			cursor = b.Height
		case <-ctx.Done():
			return cursor
		}
	}
	return cursor
}
