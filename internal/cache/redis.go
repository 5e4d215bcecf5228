package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/arwah7/dragonet/internal/model"
)

const redisTimeout = 5 * time.Second

// RedisOptions configures the redis backend.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Prefix   string // key prefix, default "dragonet:"
	Capacity int    // newest outcomes kept, 0 = unbounded
}

// Redis stores outcomes in a sorted set scored by height, so range reads
// come back in canonical order and capacity trims drop the oldest heights.
type Redis struct {
	client   *redis.Client
	key      string
	capacity int
}

// OpenRedis connects and verifies the server is reachable.
func OpenRedis(ctx context.Context, opts RedisOptions) (*Redis, error) {
	if opts.Addr == "" {
		return nil, fmt.Errorf("cache: redis backend needs an address")
	}
	prefix := opts.Prefix
	if prefix == "" {
		prefix = "dragonet:"
	}

	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		ReadTimeout:  redisTimeout,
		WriteTimeout: redisTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("cache: redis connect %s: %w", opts.Addr, err)
	}

	return &Redis{
		client:   client,
		key:      prefix + "outcomes",
		capacity: opts.Capacity,
	}, nil
}

func (r *Redis) Put(ctx context.Context, outcomes ...model.Outcome) error {
	if len(outcomes) == 0 {
		return nil
	}

	members := make([]redis.Z, 0, len(outcomes))
	for _, o := range outcomes {
		data, err := json.Marshal(o)
		if err != nil {
			return fmt.Errorf("cache: marshal outcome %d: %w", o.Height, err)
		}
		members = append(members, redis.Z{Score: float64(o.Height), Member: data})
	}

	pipe := r.client.Pipeline()
	for _, o := range outcomes {
		// Drop any member already scored at this height, so a re-orged
		// block replaces the old entry instead of sitting next to it.
		h := strconv.FormatInt(o.Height, 10)
		pipe.ZRemRangeByScore(ctx, r.key, h, h)
	}
	pipe.ZAdd(ctx, r.key, members...)
	if r.capacity > 0 {
		// Keep only the capacity highest-ranked (newest) members.
		pipe.ZRemRangeByRank(ctx, r.key, 0, int64(-r.capacity-1))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache: redis put: %w", err)
	}
	return nil
}

func (r *Redis) Snapshot(ctx context.Context) ([]model.Outcome, error) {
	vals, err := r.client.ZRange(ctx, r.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("cache: redis snapshot: %w", err)
	}
	out := make([]model.Outcome, 0, len(vals))
	for _, v := range vals {
		var o model.Outcome
		if err := json.Unmarshal([]byte(v), &o); err != nil {
			return nil, fmt.Errorf("cache: redis snapshot decode: %w", err)
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *Redis) LatestHeight(ctx context.Context) (int64, error) {
	zs, err := r.client.ZRevRangeWithScores(ctx, r.key, 0, 0).Result()
	if err != nil {
		return 0, fmt.Errorf("cache: redis latest height: %w", err)
	}
	if len(zs) == 0 {
		return 0, nil
	}
	return int64(zs[0].Score), nil
}

func (r *Redis) Len(ctx context.Context) (int, error) {
	n, err := r.client.ZCard(ctx, r.key).Result()
	if err != nil {
		return 0, fmt.Errorf("cache: redis len: %w", err)
	}
	return int(n), nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
