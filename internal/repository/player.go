package repository

import (
	"context"
	"database/sql"
	"errors"
	"lol-tracker/internal/db"
	"lol-tracker/internal/domain"
	"time"

	"github.com/rs/zerolog"
)

type PlayerRepository struct {
	queries *db.Queries
	logger  zerolog.Logger
}

func NewPlayerRepository(queries *db.Queries, logger zerolog.Logger) *PlayerRepository {
	return &PlayerRepository{
		queries: queries,
		logger:  logger,
	}
}

func (r *PlayerRepository) GetByName(ctx context.Context, gameName, tagLine string) (*domain.Player, error) {
	player, err := r.queries.GetPlayerByNameTag(ctx, db.GetPlayerByNameTagParams{
		GameName: gameName,
		TagLine:  tagLine,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomainPlayer(player), nil
}

func (r *PlayerRepository) Upsert(ctx context.Context, player *domain.Player) error {
	now := time.Now()
	if player.CreatedAt.IsZero() {
		player.CreatedAt = now
	}
	if player.LastFetchAt.IsZero() {
		player.LastFetchAt = now
	}
	player.UpdatedAt = now

	return r.queries.UpsertPlayer(ctx, db.UpsertPlayerParams{
		Puuid:         player.Puuid,
		GameName:      player.GameName,
		TagLine:       player.TagLine,
		ProfileIconID: int64(player.ProfileIconID),
		SummonerLevel: player.SummonerLevel,
		LastFetchAt:   player.LastFetchAt,
		CreatedAt:     player.CreatedAt,
		UpdatedAt:     player.UpdatedAt,
	})
}

func (r *PlayerRepository) ShouldRefresh(ctx context.Context, puuid string, ttl time.Duration) (bool, error) {
	player, err := r.queries.GetPlayerByPuuid(ctx, puuid)
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Debug().Str("puuid", puuid).Msg("player not found, should refresh")
		return true, nil
	}
	if err != nil {
		r.logger.Error().Err(err).Str("puuid", puuid).Msg("failed to get player")
		return false, err
	}

	timeSince := time.Since(player.LastFetchAt)
	shouldRefresh := timeSince > ttl
	r.logger.Debug().
		Str("puuid", puuid).
		Time("last_fetch_at", player.LastFetchAt).
		Dur("time_since", timeSince).
		Dur("ttl", ttl).
		Bool("should_refresh", shouldRefresh).
		Msg("checking if player should refresh")

	return shouldRefresh, nil
}

func (r *PlayerRepository) Search(ctx context.Context, query string, limit int) ([]domain.Player, error) {
	searchPattern := "%" + query + "%"
	players, err := r.queries.SearchPlayers(ctx, db.SearchPlayersParams{
		GameName: searchPattern,
		TagLine:  searchPattern,
		Limit:    int64(limit),
	})
	if err != nil {
		return nil, err
	}

	result := make([]domain.Player, len(players))
	for i, p := range players {
		result[i] = *toDomainPlayer(p)
	}
	return result, nil
}

func toDomainPlayer(p db.Player) *domain.Player {
	return &domain.Player{
		Puuid:         p.Puuid,
		GameName:      p.GameName,
		TagLine:       p.TagLine,
		ProfileIconID: int(p.ProfileIconID),
		SummonerLevel: p.SummonerLevel,
		LastFetchAt:   p.LastFetchAt,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
