package main

import (
	"context"

	"github.com/arwah7/dragonet/internal/cache"
	"github.com/arwah7/dragonet/internal/config"
	"github.com/arwah7/dragonet/internal/ledger"
	"github.com/arwah7/dragonet/internal/output"
	"github.com/arwah7/dragonet/internal/output/async"
	"github.com/arwah7/dragonet/internal/output/file"
	"github.com/arwah7/dragonet/internal/output/multi"
	"github.com/arwah7/dragonet/internal/output/stdout"
	"github.com/arwah7/dragonet/internal/output/webhook"
)

func openSource(cfg config.Config) (ledger.Source, error) {
	return ledger.Open(ledger.SourceConfig{
		Provider:     cfg.Ledger.Provider,
		Endpoint:     cfg.Ledger.Endpoint,
		APIKey:       cfg.Ledger.APIKey,
		PollInterval: cfg.Ledger.Interval(),
		Extra:        cfg.Ledger.Extra,
	})
}

func openCache(ctx context.Context, cfg config.Config) (cache.Store, error) {
	return cache.Open(ctx, cache.Config{
		Backend:       cfg.Cache.Backend,
		Capacity:      cfg.Cache.Capacity,
		Path:          cfg.Cache.Path,
		RedisAddr:     cfg.Cache.Redis.Addr,
		RedisPassword: cfg.Cache.Redis.Password,
		RedisDB:       cfg.Cache.Redis.DB,
		RedisPrefix:   cfg.Cache.Redis.Prefix,
	})
}

// openOutputs assembles the configured alert sinks into a single Output.
// The webhook sink is wrapped in an async buffer so a slow endpoint never
// stalls the watch loop.
func openOutputs(cfg config.Config) (output.Output, error) {
	var sinks []output.Output

	if cfg.Outputs.Stdout.Enabled {
		sinks = append(sinks, stdout.New(cfg.Outputs.Stdout.Pretty))
	}
	if cfg.Outputs.File.Path != "" {
		f, err := file.New(cfg.Outputs.File.Path, file.WithMaxSize(cfg.Outputs.File.MaxSize))
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, f)
	}
	if cfg.Outputs.Webhook.URL != "" {
		opts := []webhook.Option{
			webhook.WithFlushInterval(cfg.Outputs.Webhook.Interval()),
		}
		if len(cfg.Outputs.Webhook.Headers) > 0 {
			opts = append(opts, webhook.WithHeaders(cfg.Outputs.Webhook.Headers))
		}
		if cfg.Outputs.Webhook.BatchSize > 0 {
			opts = append(opts, webhook.WithBatchSize(cfg.Outputs.Webhook.BatchSize))
		}
		sinks = append(sinks, async.New(webhook.New(cfg.Outputs.Webhook.URL, opts...), async.WithDropOnFull()))
	}

	switch len(sinks) {
	case 0:
		return stdout.New(false), nil
	case 1:
		return sinks[0], nil
	default:
		return multi.New(sinks...), nil
	}
}
