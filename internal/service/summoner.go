package service

import (
	"context"
	"errors"
	"fmt"
	"lol-tracker/internal/api"
	"lol-tracker/internal/constants"
	"lol-tracker/internal/domain"
	"lol-tracker/internal/rank"
	"lol-tracker/internal/repository"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type SummonerService struct {
	riot    RiotAPI
	repo    *repository.PlayerRepository
	fetcher *rank.Fetcher
	logger  zerolog.Logger
}

func NewSummonerService(riot RiotAPI, repo *repository.PlayerRepository, fetcher *rank.Fetcher, logger zerolog.Logger) *SummonerService {
	return &SummonerService{riot: riot, repo: repo, fetcher: fetcher, logger: logger}
}

// GetSummoner looks a player up by Riot ID. Profile data is served from the
// database while fresh; league entries are always fetched live.
func (s *SummonerService) GetSummoner(ctx context.Context, gameName, tagLine string, refresh bool) (*domain.Summoner, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	gameName, tagLine = strings.TrimSpace(gameName), strings.TrimSpace(strings.TrimPrefix(tagLine, "#"))
	if gameName == "" || tagLine == "" {
		return nil, domain.ErrInvalidRiotID
	}

	s.logger.Info().Str("game_name", gameName).Str("tag_line", tagLine).Bool("refresh", refresh).Msg("getting summoner")

	player, err := s.cachedPlayer(ctx, gameName, tagLine, refresh)
	if err != nil {
		return nil, err
	}

	var entries []api.LeagueEntry
	if player != nil {
		apiCtx, apiCancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
		defer apiCancel()

		entries, err = s.riot.GetLeagueEntries(apiCtx, player.Puuid)
		if err != nil {
			s.logger.Error().Err(err).Str("puuid", rank.Redact(player.Puuid)).Msg("failed to fetch league entries")
			return nil, fmt.Errorf("failed to fetch league entries: %w", err)
		}
	} else {
		player, entries, err = s.fetchLive(ctx, gameName, tagLine)
		if err != nil {
			return nil, err
		}
		if err := s.repo.Upsert(ctx, player); err != nil {
			s.logger.Warn().Err(err).Str("puuid", rank.Redact(player.Puuid)).Msg("failed to upsert player")
		}
	}

	if _, err := s.fetcher.Observe(ctx, player.Puuid, entries); err != nil {
		s.logger.Error().Err(err).Str("puuid", rank.Redact(player.Puuid)).Msg("league entries carry an invalid rank")
		return nil, err
	}

	summoner := &domain.Summoner{Player: *player, Leagues: make([]domain.LeagueEntry, 0, len(entries))}
	for _, e := range entries {
		summoner.Leagues = append(summoner.Leagues, domain.LeagueEntry{
			QueueType:    e.QueueType,
			Tier:         e.Tier,
			Rank:         e.Rank,
			LeaguePoints: e.LeaguePoints,
			Wins:         e.Wins,
			Losses:       e.Losses,
			HotStreak:    e.HotStreak,
			Veteran:      e.Veteran,
			FreshBlood:   e.FreshBlood,
			Inactive:     e.Inactive,
		})
	}

	s.logger.Info().Str("puuid", rank.Redact(player.Puuid)).Int("leagues", len(summoner.Leagues)).Msg("summoner fetched successfully")
	return summoner, nil
}

func (s *SummonerService) cachedPlayer(ctx context.Context, gameName, tagLine string, refresh bool) (*domain.Player, error) {
	if refresh {
		s.logger.Debug().Str("game_name", gameName).Msg("manual refresh requested")
		return nil, nil
	}

	dbCtx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	player, err := s.repo.GetByName(dbCtx, gameName, tagLine)
	if errors.Is(err, domain.ErrNotFound) {
		s.logger.Debug().Str("game_name", gameName).Str("tag_line", tagLine).Msg("player not found in database, fetching from API")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read player: %w", err)
	}

	shouldRefresh, err := s.repo.ShouldRefresh(dbCtx, player.Puuid, constants.PlayerRefreshTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to check player freshness: %w", err)
	}
	if shouldRefresh {
		return nil, nil
	}

	s.logger.Debug().Str("puuid", rank.Redact(player.Puuid)).Msg("using cached player profile")
	return player, nil
}

func (s *SummonerService) fetchLive(ctx context.Context, gameName, tagLine string) (*domain.Player, []api.LeagueEntry, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	account, err := s.riot.GetAccount(apiCtx, gameName, tagLine)
	if err != nil {
		s.logger.Error().Err(err).Str("game_name", gameName).Str("tag_line", tagLine).Msg("failed to fetch account")
		return nil, nil, fmt.Errorf("failed to fetch account: %w", err)
	}

	g, gCtx := errgroup.WithContext(apiCtx)
	var summoner *api.Summoner
	var entries []api.LeagueEntry

	g.Go(func() error {
		var err error
		summoner, err = s.riot.GetSummoner(gCtx, account.Puuid)
		return err
	})

	g.Go(func() error {
		var err error
		entries, err = s.riot.GetLeagueEntries(gCtx, account.Puuid)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Str("puuid", rank.Redact(account.Puuid)).Msg("failed to fetch summoner data")
		return nil, nil, fmt.Errorf("failed to fetch summoner data: %w", err)
	}

	player := &domain.Player{
		Puuid:         account.Puuid,
		GameName:      account.GameName,
		TagLine:       account.TagLine,
		ProfileIconID: summoner.ProfileIconID,
		SummonerLevel: summoner.SummonerLevel,
		LastFetchAt:   time.Now(),
	}
	return player, entries, nil
}

func (s *SummonerService) Search(ctx context.Context, query string) ([]domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Player{}, nil
	}

	s.logger.Debug().Str("query", query).Msg("searching players")

	players, err := s.repo.Search(ctx, query, constants.SearchSuggestionLimit)
	if err != nil {
		s.logger.Error().Err(err).Str("query", query).Msg("failed to search players")
		return nil, err
	}

	s.logger.Info().Int("count", len(players)).Str("query", query).Msg("search completed")
	return players, nil
}
