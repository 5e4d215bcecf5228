package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arwah7/dragonet/internal/engine"
	"github.com/arwah7/dragonet/internal/grid"
	"github.com/arwah7/dragonet/internal/model"
	"github.com/arwah7/dragonet/internal/output/stdout"
	"github.com/arwah7/dragonet/internal/pipeline"
	"github.com/arwah7/dragonet/internal/rules"
)

var (
	roadsRule   string
	roadsAxis   string
	roadsLayout string
	roadsCols   int
	roadsBlocks int64
)

var roadsCmd = &cobra.Command{
	Use:   "roads",
	Short: "Draw the trend or bead road for one rule and axis",
	Long: `Roads lays the sampled outcomes of one rule out as a road grid. The trend
layout breaks columns when the streak breaks, so dragons show up as long
columns; the bead layout is the plain sequence wrapped into fixed-height
columns.`,
	Args: cobra.NoArgs,
	RunE: runRoads,
}

func runRoads(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	axis := model.Axis(roadsAxis)
	if axis != model.AxisParity && axis != model.AxisSize {
		return fmt.Errorf("unknown axis %q (want parity or size)", roadsAxis)
	}
	if roadsLayout != "trend" && roadsLayout != "bead" {
		return fmt.Errorf("unknown layout %q (want trend or bead)", roadsLayout)
	}

	set, err := rules.New(cfg.Rules)
	if err != nil {
		return err
	}
	id := roadsRule
	if id == "" {
		id = set.All()[0].ID
	}
	rule, ok := set.Get(id)
	if !ok {
		return fmt.Errorf("unknown rule %q", id)
	}

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
	_, snapshot, err := p.Scan(ctx, roadsBlocks)
	if err != nil {
		return err
	}

	sampled := engine.Sample(snapshot, rule).EarliestFirst
	var g model.Grid
	if roadsLayout == "trend" {
		g = grid.Trend(sampled, axis, rule.EffectiveTrendRows())
	} else {
		g = grid.Bead(sampled, axis, rule.EffectiveBeadRows())
	}

	r := renderer()
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s road, rule %s (%s), axis %s, %d samples\n",
		roadsLayout, rule.ID, rule.Label, axis, len(sampled))
	fmt.Fprintln(w, r.Legend(axis))
	fmt.Fprintln(w)
	fmt.Fprint(w, r.Road(g, roadsCols))
	return nil
}

func init() {
	roadsCmd.Flags().StringVar(&roadsRule, "rule", "", "Rule ID (default: first configured rule)")
	roadsCmd.Flags().StringVar(&roadsAxis, "axis", "parity", "Classification axis: parity or size")
	roadsCmd.Flags().StringVar(&roadsLayout, "layout", "trend", "Road layout: trend or bead")
	roadsCmd.Flags().IntVar(&roadsCols, "cols", 40, "Most recent columns to draw (0 = all)")
	roadsCmd.Flags().Int64Var(&roadsBlocks, "blocks", 120, "Newest blocks to fetch before drawing (0 = cache only)")
	rootCmd.AddCommand(roadsCmd)
}
