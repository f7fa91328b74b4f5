package cache

import (
	"context"
	"errors"
	"fmt"
	"lol-tracker/internal/config"
	"lol-tracker/internal/constants"
	"lol-tracker/internal/rank"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// RankCache shares resolved solo-queue ranks between replicas. Values are the
// canonical rank string ("GOLD II", "UNRANKED").
type RankCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRankCache(client *redis.Client, ttl time.Duration) *RankCache {
	return &RankCache{client: client, ttl: ttl}
}

func rankKey(puuid string) string {
	return fmt.Sprintf("rank:%s:%s", constants.SoloQueueType, puuid)
}

func (c *RankCache) GetRank(ctx context.Context, puuid string) (rank.Resolved, bool, error) {
	data, err := c.client.Get(ctx, rankKey(puuid)).Result()
	if errors.Is(err, redis.Nil) {
		return rank.Resolved{}, false, nil
	}
	if err != nil {
		return rank.Resolved{}, false, err
	}

	r, err := rank.Parse(data)
	if err != nil {
		return rank.Resolved{}, false, fmt.Errorf("parsing cached rank: %w", err)
	}
	return r, true, nil
}

func (c *RankCache) SetRank(ctx context.Context, puuid string, r rank.Resolved) error {
	return c.client.Set(ctx, rankKey(puuid), r.String(), c.ttl).Err()
}

// NewSharedCache connects to Redis when REDIS_URL is set. Without it the
// fetcher runs with the in-process store only.
func NewSharedCache(lc fx.Lifecycle, cfg *config.Config, logger zerolog.Logger) (rank.SharedCache, error) {
	if cfg.RedisURL == "" {
		logger.Info().Msg("REDIS_URL not set, shared rank cache disabled")
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("redis ping failed: %w", err)
			}
			logger.Info().Str("addr", opts.Addr).Msg("connected to redis")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return NewRankCache(client, constants.RankSharedTTL), nil
}
