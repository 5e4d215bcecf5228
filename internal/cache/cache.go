// Package cache maintains the classified-outcome snapshot that analyses
// read from. The pipeline appends as blocks arrive; readers always get the
// full snapshot ascending by height. Computed dragons and grids are never
// stored here, only the raw outcomes they are derived from.
package cache

import (
	"context"
	"fmt"

	"github.com/arwah7/dragonet/internal/model"
)

// Store is an outcome cache backend.
type Store interface {
	// Put inserts outcomes, replacing any cached entry with the same height.
	Put(ctx context.Context, outcomes ...model.Outcome) error

	// Snapshot returns every cached outcome, ascending by height.
	Snapshot(ctx context.Context) ([]model.Outcome, error)

	// LatestHeight returns the highest cached height, or 0 when empty.
	LatestHeight(ctx context.Context) (int64, error)

	// Len returns the number of cached outcomes.
	Len(ctx context.Context) (int, error)

	Close() error
}

// Config selects and configures a backend.
type Config struct {
	Backend  string // memory | file | redis, empty means memory
	Capacity int    // newest outcomes kept, 0 = unbounded
	Path     string // file backend

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
}

// Open builds the configured backend.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Backend {
	case "", "memory":
		return NewMemory(cfg.Capacity), nil
	case "file":
		return OpenFile(cfg.Path, cfg.Capacity)
	case "redis":
		return OpenRedis(ctx, RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
			Capacity: cfg.Capacity,
		})
	default:
		return nil, fmt.Errorf("cache: unknown backend %q", cfg.Backend)
	}
}
