package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	"github.com/arwah7/dragonet/internal/cache"
	"github.com/arwah7/dragonet/internal/classify"
	"github.com/arwah7/dragonet/internal/config"
	"github.com/arwah7/dragonet/internal/engine"
	"github.com/arwah7/dragonet/internal/ledger"
	"github.com/arwah7/dragonet/internal/model"
	"github.com/arwah7/dragonet/internal/output"
	"github.com/arwah7/dragonet/internal/rules"
)

const (
	defaultAlertWindow  = 2 * time.Second
	defaultMaxBatch     = 32
	backfillChunk       = 200
	rulesReloadDebounce = 500 * time.Millisecond
)

// Options configure a Pipeline beyond its three collaborators.
type Options struct {
	Rules       []model.Rule  // active rule set; empty means rules.Defaults()
	RulesFile   string        // config file to hot-reload rules from while watching
	AlertWindow time.Duration // collapse window for alert delivery
	MaxBatch    int           // pending alerts forcing an early flush
}

// Pipeline connects a ledger source, the outcome cache, and an alert output
// into one processing loop.
type Pipeline struct {
	source ledger.Source
	store  cache.Store
	out    output.Output
	opts   Options

	mu    sync.RWMutex
	rules []model.Rule
}

// New creates a Pipeline from the given components.
func New(src ledger.Source, store cache.Store, out output.Output, opts Options) (*Pipeline, error) {
	active := opts.Rules
	if len(active) == 0 {
		active = rules.Defaults()
	}
	set, err := rules.New(active)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	if opts.AlertWindow <= 0 {
		opts.AlertWindow = defaultAlertWindow
	}
	if opts.MaxBatch <= 0 {
		opts.MaxBatch = defaultMaxBatch
	}
	return &Pipeline{
		source: src,
		store:  store,
		out:    out,
		opts:   opts,
		rules:  set.All(),
	}, nil
}

// Rules returns the active rule set.
func (p *Pipeline) Rules() []model.Rule {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.rules
}

func (p *Pipeline) setRules(rs []model.Rule) {
	p.mu.Lock()
	p.rules = rs
	p.mu.Unlock()
}

// Watch runs the streaming mode: blocks arrive from the source, each one is
// classified and cached, the streak analysis reruns over the new snapshot,
// and changed streaks are alerted on. Resumes after the highest cached
// height. Blocks until the context is cancelled, the source's stream ends,
// or an error occurs.
func (p *Pipeline) Watch(ctx context.Context) error {
	from, err := p.store.LatestHeight(ctx)
	if err != nil {
		return fmt.Errorf("pipeline: resume height: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	blocks, err := p.source.Stream(ctx, from)
	if err != nil {
		return fmt.Errorf("pipeline: stream: %w", err)
	}
	if from > 0 {
		slog.Info("resuming after cached height", "height", from)
	}

	g, ctx := errgroup.WithContext(ctx)
	if p.opts.RulesFile != "" {
		g.Go(func() error { return p.watchRules(ctx) })
	}
	g.Go(func() error {
		// Ends the rules watcher when the stream finishes, e.g. a replay
		// source running out of blocks.
		defer cancel()
		return p.stream(ctx, blocks)
	})
	return g.Wait()
}

func (p *Pipeline) stream(ctx context.Context, blocks <-chan model.RawBlock) error {
	tracker := NewTracker()
	buf := newAlertBuffer(p.out, p.opts.AlertWindow, p.opts.MaxBatch)

	for {
		select {
		case <-ctx.Done():
			// Deliver whatever is pending before reporting shutdown.
			if err := buf.flush(context.Background()); err != nil {
				slog.Warn("flush on shutdown", "error", err)
			}
			return ctx.Err()
		case <-buf.flushCh():
			if err := buf.flush(ctx); err != nil {
				return fmt.Errorf("pipeline: flush alerts: %w", err)
			}
		case b, ok := <-blocks:
			if !ok {
				return buf.flush(ctx)
			}
			if err := p.ingest(ctx, b, tracker, buf); err != nil {
				return err
			}
		}
	}
}

// ingest runs one block through classify → cache → analyze → diff. Blocks
// the classifier rejects are logged and skipped; the stream goes on.
func (p *Pipeline) ingest(ctx context.Context, block model.RawBlock, tracker *Tracker, buf *alertBuffer) error {
	outcome, err := classify.FromBlock(block)
	if err != nil {
		slog.Warn("skipping block", "height", block.Height, "error", err)
		return nil
	}
	if err := p.store.Put(ctx, outcome); err != nil {
		return fmt.Errorf("pipeline: cache block %d: %w", block.Height, err)
	}
	snapshot, err := p.store.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("pipeline: snapshot: %w", err)
	}

	rep := engine.Analyze(snapshot, p.Rules())
	if alerts := tracker.Diff(rep, &outcome, time.Now()); len(alerts) > 0 {
		if buf.add(alerts...) {
			return buf.flush(ctx)
		}
	}
	return nil
}

// Scan is the one-shot mode: it tops up the cache with the newest blocks
// from the source, then computes a report over the full snapshot and hands
// both back.
func (p *Pipeline) Scan(ctx context.Context, blocks int64) (engine.Report, []model.Outcome, error) {
	if blocks > 0 {
		if err := p.fetchInto(ctx, blocks, nil); err != nil {
			return engine.Report{}, nil, err
		}
	}
	snapshot, err := p.store.Snapshot(ctx)
	if err != nil {
		return engine.Report{}, nil, fmt.Errorf("pipeline: snapshot: %w", err)
	}
	return engine.Analyze(snapshot, p.Rules()), snapshot, nil
}

// Backfill loads the count newest blocks into the cache in chunks,
// reporting progress after each chunk.
func (p *Pipeline) Backfill(ctx context.Context, count int64, progress func(done, total int64)) error {
	return p.fetchInto(ctx, count, progress)
}

func (p *Pipeline) fetchInto(ctx context.Context, count int64, progress func(done, total int64)) error {
	head, err := p.source.LatestHeight(ctx)
	if err != nil {
		return fmt.Errorf("pipeline: head: %w", err)
	}
	from := head - count + 1
	if from < 1 {
		from = 1
	}
	total := head - from + 1
	var done int64

	for start := from; start <= head; start += backfillChunk {
		end := start + backfillChunk - 1
		if end > head {
			end = head
		}
		blocks, err := p.source.FetchRange(ctx, start, end)
		if err != nil {
			return fmt.Errorf("pipeline: fetch %d-%d: %w", start, end, err)
		}

		outcomes := make([]model.Outcome, 0, len(blocks))
		for _, b := range blocks {
			o, err := classify.FromBlock(b)
			if err != nil {
				slog.Warn("skipping block", "height", b.Height, "error", err)
				continue
			}
			outcomes = append(outcomes, o)
		}
		if err := p.store.Put(ctx, outcomes...); err != nil {
			return fmt.Errorf("pipeline: cache %d-%d: %w", start, end, err)
		}

		done += end - start + 1
		if progress != nil {
			progress(done, total)
		}
	}
	return nil
}

// watchRules reloads the rule set when the config file changes. Edits settle
// for a debounce period before the reload runs, and a file that fails to
// load leaves the active rules untouched.
func (p *Pipeline) watchRules(ctx context.Context) error {
	target, err := filepath.Abs(p.opts.RulesFile)
	if err != nil {
		return fmt.Errorf("pipeline: rules watcher: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("pipeline: rules watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors that replace the file on save would
	// otherwise drop a watch held on the file itself.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("pipeline: rules watcher: %w", err)
	}

	debounce := time.NewTimer(rulesReloadDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if evPath, err := filepath.Abs(event.Name); err != nil || evPath != target {
				continue
			}
			debounce.Reset(rulesReloadDebounce)
		case <-debounce.C:
			p.reloadRules(target)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("rules watcher error", "error", err)
		}
	}
}

func (p *Pipeline) reloadRules(path string) {
	cfg, err := config.Load(path)
	if err != nil {
		slog.Warn("rules reload failed", "path", path, "error", err)
		return
	}
	set, err := rules.New(cfg.Rules)
	if err != nil {
		slog.Warn("rules reload failed", "path", path, "error", err)
		return
	}
	p.setRules(set.All())
	slog.Info("rules reloaded", "path", path, "rules", set.Len())
}

// Close shuts down the output.
func (p *Pipeline) Close() error {
	return p.out.Close()
}
