package service

import (
	"context"
	"lol-tracker/internal/constants"
	"lol-tracker/internal/domain"
	"lol-tracker/internal/rank"
	"lol-tracker/internal/repository"

	"github.com/rs/zerolog"
)

type TierResult struct {
	// display rank per player, "" when unranked or unresolved
	Tiers       map[string]string
	AverageTier string
}

type TierService struct {
	fetcher *rank.Fetcher
	store   rank.Store
	history *repository.RankHistoryRepository
	logger  zerolog.Logger
}

func NewTierService(fetcher *rank.Fetcher, store rank.Store, history *repository.RankHistoryRepository, logger zerolog.Logger) *TierService {
	return &TierService{fetcher: fetcher, store: store, history: history, logger: logger}
}

// GetTiers resolves every player's solo-queue rank and their average. The
// batch is detached from ctx cancellation and always runs to completion.
func (s *TierService) GetTiers(ctx context.Context, puuids []string) (*TierResult, error) {
	if len(puuids) > constants.MaxTierBatchSize {
		return nil, domain.ErrTooManyPlayers
	}

	s.logger.Info().Int("players", len(puuids)).Msg("resolving tiers")

	resolved := s.fetcher.ResolveAll(context.WithoutCancel(ctx), puuids)

	result := &TierResult{Tiers: make(map[string]string, len(resolved))}
	unknown := 0
	for puuid, r := range resolved {
		result.Tiers[puuid] = r.Display()
		if r.State == rank.StateUnknown {
			unknown++
		}
	}

	if avg, ok := rank.Average(s.store, puuids); ok {
		result.AverageTier = avg.Format()
	}

	s.logger.Info().
		Int("players", len(puuids)).
		Int("unknown", unknown).
		Str("average_tier", result.AverageTier).
		Msg("tiers resolved")

	return result, nil
}

func (s *TierService) History(ctx context.Context, puuid string, limit int) ([]domain.RankSnapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if limit <= 0 || limit > constants.RankHistoryLimit {
		limit = constants.RankHistoryLimit
	}
	return s.history.GetByPuuid(ctx, puuid, limit)
}
