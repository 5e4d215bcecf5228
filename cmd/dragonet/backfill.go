package main

import (
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/arwah7/dragonet/internal/logging"
	"github.com/arwah7/dragonet/internal/output/stdout"
	"github.com/arwah7/dragonet/internal/pipeline"
)

var backfillBlocks int64

var backfillCmd = &cobra.Command{
	Use:   "backfill",
	Short: "Load historical blocks into the cache",
	Long: `Backfill fetches the newest --blocks blocks from the ledger and stores
their classified outcomes in the cache, so roads and scans have history to
work with before the first watch.`,
	Args: cobra.NoArgs,
	RunE: runBackfill,
}

func runBackfill(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	src, err := openSource(cfg)
	if err != nil {
		return err
	}
	store, err := openCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	p, err := pipeline.New(src, store, stdout.New(false), pipeline.Options{Rules: cfg.Rules})
	if err != nil {
		return err
	}

	// The chain head caps the range, so the bar total is only known once
	// the first chunk reports in.
	var bar *progressbar.ProgressBar
	err = p.Backfill(ctx, backfillBlocks, func(done, total int64) {
		if bar == nil {
			bar = newProgressBar(total, "backfilling")
		}
		_ = bar.Set64(done)
	})
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return err
	}

	n, err := store.Len(ctx)
	if err != nil {
		return err
	}
	logging.Component("backfill").Info("backfill complete", "cached", n, "backend", cfg.Cache.Backend)
	return nil
}

func newProgressBar(total int64, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions64(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

func init() {
	backfillCmd.Flags().Int64Var(&backfillBlocks, "blocks", 1200, "Number of newest blocks to fetch")
	rootCmd.AddCommand(backfillCmd)
}
