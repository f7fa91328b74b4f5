package service

import (
	"context"
	"errors"
	"fmt"
	"lol-tracker/internal/api"
	"lol-tracker/internal/constants"
	"lol-tracker/internal/domain"
	"lol-tracker/internal/match"
	"lol-tracker/internal/rank"
	"lol-tracker/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type MatchQuery struct {
	Puuid string
	Start int
	Count int
	// zero means any queue
	Queue int
	Type  string
}

type MatchService struct {
	riot      RiotAPI
	matchRepo *repository.MatchRepository
	store     rank.Store
	logger    zerolog.Logger
}

func NewMatchService(riot RiotAPI, matchRepo *repository.MatchRepository, store rank.Store, logger zerolog.Logger) *MatchService {
	return &MatchService{riot: riot, matchRepo: matchRepo, store: store, logger: logger}
}

// GetMatches lists a player's recent matches, newest first. Participants whose
// rank is already in the store get it attached, along with the average of
// those ranks; nothing is fetched for ranks.
func (s *MatchService) GetMatches(ctx context.Context, q MatchQuery) ([]*domain.MatchRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	if q.Count == 0 {
		q.Count = constants.DefaultMatchCount
	}
	if q.Puuid == "" {
		return nil, domain.ErrNotFound
	}
	if q.Start < 0 || q.Count < 1 || q.Count > constants.MaxMatchCount {
		return nil, domain.ErrInvalidPaging
	}

	s.logger.Info().
		Str("puuid", rank.Redact(q.Puuid)).
		Int("start", q.Start).
		Int("count", q.Count).
		Int("queue", q.Queue).
		Str("type", q.Type).
		Msg("fetching matches for player")

	ids, err := s.riot.GetMatchIDs(ctx, q.Puuid, q.Start, q.Count, q.Queue, q.Type)
	if err != nil {
		s.logger.Error().Err(err).Str("puuid", rank.Redact(q.Puuid)).Msg("failed to fetch match ids")
		return nil, fmt.Errorf("failed to fetch match ids: %w", err)
	}

	records := make([]*domain.MatchRecord, len(ids))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(constants.MatchFetchConcurrency)

	for i, id := range ids {
		g.Go(func() error {
			m, err := s.loadMatch(gCtx, id)
			if err != nil {
				return err
			}
			record := match.Enrich(m, q.Puuid, s.cachedRanks(m))
			if avg, ok := rank.Average(s.store, m.Metadata.Participants); ok {
				record.AverageTier = avg.Format()
			}
			records[i] = record
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Str("puuid", rank.Redact(q.Puuid)).Msg("failed to fetch matches")
		return nil, err
	}

	s.logger.Info().Str("puuid", rank.Redact(q.Puuid)).Int("match_count", len(records)).Msg("matches fetched successfully")
	return records, nil
}

func (s *MatchService) loadMatch(ctx context.Context, matchID string) (*api.Match, error) {
	payload, err := s.matchRepo.GetPayload(ctx, matchID)
	switch {
	case err == nil:
		m, decodeErr := api.DecodeMatch(payload)
		if decodeErr == nil {
			s.logger.Debug().Str("match_id", matchID).Msg("match served from cache")
			return m, nil
		}
		s.logger.Warn().Err(decodeErr).Str("match_id", matchID).Msg("cached match payload unreadable, refetching")
	case !errors.Is(err, domain.ErrNotFound):
		s.logger.Warn().Err(err).Str("match_id", matchID).Msg("failed to read cached match")
	}

	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	payload, err = s.riot.GetMatchRaw(apiCtx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch match %s: %w", matchID, err)
	}
	m, err := api.DecodeMatch(payload)
	if err != nil {
		return nil, err
	}

	if err := s.matchRepo.SavePayload(ctx, matchID, m.Info.GameCreation, m.Info.QueueID, payload); err != nil {
		s.logger.Warn().Err(err).Str("match_id", matchID).Msg("failed to cache match")
	}
	return m, nil
}

func (s *MatchService) cachedRanks(m *api.Match) map[string]rank.Resolved {
	ranks := make(map[string]rank.Resolved)
	for _, p := range m.Info.Participants {
		if r, ok := s.store.Get(p.Puuid); ok {
			ranks[p.Puuid] = r
		}
	}
	return ranks
}
