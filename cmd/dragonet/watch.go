package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arwah7/dragonet/internal/logging"
	"github.com/arwah7/dragonet/internal/pipeline"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream blocks and alert on forming dragons",
	Long: `Watch streams blocks from the configured ledger provider, classifies each
outcome, and writes an alert to the configured sinks whenever a streak
reaches its rule's threshold or grows past it. Runs until interrupted.

Rules are hot-reloaded when the config file changes.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	log := logging.Component("watch")
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info("shutting down")
		cancel()
	}()

	src, err := openSource(cfg)
	if err != nil {
		return err
	}
	store, err := openCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	out, err := openOutputs(cfg)
	if err != nil {
		return err
	}

	p, err := pipeline.New(src, store, out, pipeline.Options{
		Rules:     cfg.Rules,
		RulesFile: cfgPath,
	})
	if err != nil {
		return err
	}
	defer p.Close()

	log.Info("watching ledger",
		"provider", cfg.Ledger.Provider,
		"rules", len(cfg.Rules),
		"cache", cfg.Cache.Backend,
		"version", version,
	)
	if err := p.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
