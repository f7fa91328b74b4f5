package logger

import (
	"lol-tracker/internal/config"
	"os"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func New(cfg *config.Config) zerolog.Logger {
	logger := SetLevel(cfg.LogLevel)

	if !cfg.EnvFileLoaded {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}
	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel.String()).
		Str("regional_url", cfg.RegionalBaseURL).
		Str("platform_url", cfg.PlatformBaseURL).
		Bool("redis", cfg.RedisURL != "").
		Dur("rank_cache_ttl", cfg.RankCacheTTL).
		Int("rank_cache_size", cfg.RankCacheSize).
		Msg("configuration loaded")

	return logger
}

func SetLevel(level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Caller().
		Logger()

	logger = logger.Level(level)

	return logger
}

var Module = fx.Provide(New)
