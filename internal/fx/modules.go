package fx

import (
	"database/sql"
	"lol-tracker/internal/api"
	"lol-tracker/internal/cache"
	"lol-tracker/internal/config"
	"lol-tracker/internal/database"
	"lol-tracker/internal/db"
	"lol-tracker/internal/logger"
	"lol-tracker/internal/rank"
	"lol-tracker/internal/repository"
	"lol-tracker/internal/server"
	"lol-tracker/internal/service"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func ProvideQueries(sqlDB *sql.DB) *db.Queries {
	return db.New(sqlDB)
}

// ProvideRiotAPI shares the single client, and its rate-limit state, with the services.
func ProvideRiotAPI(c *api.RiotClient) service.RiotAPI {
	return c
}

func ProvideRankStore(cfg *config.Config) rank.Store {
	return rank.NewMemoryStore(rank.StoreOptions{
		TTL:        cfg.RankCacheTTL,
		MaxEntries: cfg.RankCacheSize,
	})
}

func ProvideRankFetcher(
	riot *api.RiotClient,
	store rank.Store,
	shared rank.SharedCache,
	history *repository.RankHistoryRepository,
	cfg *config.Config,
	logger zerolog.Logger,
) *rank.Fetcher {
	fetcherCfg := rank.DefaultFetcherConfig()
	fetcherCfg.Pacing = cfg.RankPacing
	fetcherCfg.BackoffBase = cfg.RankBackoff

	return rank.NewFetcher(riot, store, fetcherCfg, logger,
		rank.WithSharedCache(shared),
		rank.WithRecorder(history),
	)
}

var Module = fx.Options(
	config.Module,
	logger.Module,
	fx.Provide(database.New),
	fx.Provide(ProvideQueries),
	// repos
	fx.Provide(repository.NewPlayerRepository),
	fx.Provide(repository.NewMatchRepository),
	fx.Provide(repository.NewRankHistoryRepository),
	// api client
	fx.Provide(api.NewRiotClient),
	fx.Provide(ProvideRiotAPI),
	// rank engine
	fx.Provide(cache.NewSharedCache),
	fx.Provide(ProvideRankStore),
	fx.Provide(ProvideRankFetcher),
	// svc
	fx.Provide(service.NewSummonerService),
	fx.Provide(service.NewMatchService),
	fx.Provide(service.NewTierService),
	// server
	fx.Provide(server.NewTrackerServer),
	fx.Provide(server.NewRouter),
)
