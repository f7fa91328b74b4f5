package config

import (
	"fmt"
	"lol-tracker/internal/constants"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	RiotAPIKey      string
	RegionalBaseURL string
	PlatformBaseURL string
	DBPath          string
	ServerPort      string
	LogLevel        zerolog.Level
	RedisURL        string
	RankCacheTTL    time.Duration
	RankCacheSize   int
	RankPacing      time.Duration
	RankBackoff     time.Duration

	// EnvFileLoaded is false when no .env file was found.
	EnvFileLoaded bool
}

func Load() (*Config, error) {
	envFileLoaded := godotenv.Load() == nil

	level, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	cfg := &Config{
		RiotAPIKey:      getEnv("RIOT_API_KEY", ""),
		RegionalBaseURL: getEnv("RIOT_REGIONAL_URL", "https://asia.api.riotgames.com"),
		PlatformBaseURL: getEnv("RIOT_PLATFORM_URL", "https://kr.api.riotgames.com"),
		DBPath:          getEnv("DB_PATH", "lol.db"),
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		LogLevel:        level,
		RedisURL:        getEnv("REDIS_URL", ""),
		EnvFileLoaded:   envFileLoaded,
	}

	if cfg.RiotAPIKey == "" {
		return nil, fmt.Errorf("RIOT_API_KEY is required")
	}

	if cfg.RankCacheTTL, err = getDuration("RANK_CACHE_TTL", 0); err != nil {
		return nil, err
	}
	if cfg.RankPacing, err = getDuration("RANK_PACING", constants.RankPacing); err != nil {
		return nil, err
	}
	if cfg.RankBackoff, err = getDuration("RANK_BACKOFF", constants.RankBackoffBase); err != nil {
		return nil, err
	}
	if cfg.RankCacheSize, err = getInt("RANK_CACHE_SIZE", 0); err != nil {
		return nil, err
	}
	if cfg.RankCacheTTL > 0 && cfg.RankCacheTTL < constants.MinRankCacheTTL {
		return nil, fmt.Errorf("invalid RANK_CACHE_TTL %s: must be 0 or at least %s", cfg.RankCacheTTL, constants.MinRankCacheTTL)
	}
	if cfg.RankCacheSize > 0 && cfg.RankCacheSize < constants.MinRankCacheSize {
		return nil, fmt.Errorf("invalid RANK_CACHE_SIZE %d: must be 0 or at least %d", cfg.RankCacheSize, constants.MinRankCacheSize)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a non-negative duration", key, v)
	}
	return d, nil
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a non-negative integer", key, v)
	}
	return n, nil
}

var Module = fx.Provide(Load)
