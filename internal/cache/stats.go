package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	statsKeyPrefix = "hestia:stats:"
	generationKey  = statsKeyPrefix + "gen"
)

// ErrMiss is returned by Get when nothing is cached.
var ErrMiss = errors.New("cache miss")

// StatsCache keeps computed statistics payloads in redis, keyed by a generation counter.
// Invalidate bumps the counter, so a payload computed before an invalidation is stored
// under a generation nobody reads anymore and simply expires.
type StatsCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewStatsCache returns a cache writing entries that expire after ttl.
func NewStatsCache(client redis.Cmdable, ttl time.Duration) *StatsCache {
	return &StatsCache{client: client, ttl: ttl}
}

// NewClient builds a redis client and verifies it answers.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", addr, err)
	}

	return client, nil
}

func payloadKey(generation int64) string {
	return statsKeyPrefix + strconv.FormatInt(generation, 10)
}

// Get returns the payload cached for the current generation together with that generation.
// On ErrMiss the generation is still valid and should be handed back to Set.
func (c *StatsCache) Get(ctx context.Context) (models.Stats, int64, error) {
	generation, err := c.client.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		generation, err = 0, nil
	}
	if err != nil {
		return models.Stats{}, 0, fmt.Errorf("failed to read stats generation: %w", err)
	}

	payload, err := c.client.Get(ctx, payloadKey(generation)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Stats{}, generation, ErrMiss
	}
	if err != nil {
		return models.Stats{}, 0, fmt.Errorf("failed to read cached stats: %w", err)
	}

	var stats models.Stats
	if err = json.Unmarshal(payload, &stats); err != nil {
		return models.Stats{}, 0, fmt.Errorf("failed to decode cached stats: %w", err)
	}

	return stats, generation, nil
}

// Set stores stats under generation. Entries written for an outdated generation are
// never returned by Get.
func (c *StatsCache) Set(ctx context.Context, generation int64, stats models.Stats) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to encode stats: %w", err)
	}

	if err = c.client.Set(ctx, payloadKey(generation), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache stats: %w", err)
	}

	return nil
}

// Invalidate advances the generation, orphaning every payload stored so far.
func (c *StatsCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached stats: %w", err)
	}

	return nil
}

// Ping reports whether redis answers.
func (c *StatsCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
