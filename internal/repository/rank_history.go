package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"lol-tracker/internal/constants"
	"lol-tracker/internal/db"
	"lol-tracker/internal/domain"
	"lol-tracker/internal/rank"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

type RankHistoryRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewRankHistoryRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *RankHistoryRepository {
	return &RankHistoryRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// RecordRank implements rank.Recorder. A snapshot is only written when the
// rank differs from the player's latest one.
func (r *RankHistoryRepository) RecordRank(ctx context.Context, puuid string, resolved rank.Resolved) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)

	latest, err := qtx.GetLatestRankHistory(ctx, db.GetLatestRankHistoryParams{
		Puuid:     puuid,
		QueueType: constants.SoloQueueType,
	})
	switch {
	case err == nil:
		if latest.State == resolved.State.String() && latest.Rank == resolved.String() {
			return nil
		}
	case !errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("failed to read latest rank: %w", err)
	}

	id, err := gonanoid.New()
	if err != nil {
		return fmt.Errorf("failed to generate nanoid: %w", err)
	}

	now := time.Now()
	ordinal := 0
	if resolved.IsRanked() {
		ordinal = resolved.Rank.Ordinal()
	}

	err = qtx.InsertRankHistory(ctx, db.InsertRankHistoryParams{
		ID:         id,
		Puuid:      puuid,
		QueueType:  constants.SoloQueueType,
		State:      resolved.State.String(),
		Rank:       resolved.String(),
		Ordinal:    int64(ordinal),
		ResolvedAt: now,
		CreatedAt:  now,
	})
	if err != nil {
		return fmt.Errorf("failed to insert rank history: %w", err)
	}

	r.logger.Debug().Str("puuid", rank.Redact(puuid)).Str("rank", resolved.String()).Msg("rank change recorded")
	return tx.Commit()
}

func (r *RankHistoryRepository) GetByPuuid(ctx context.Context, puuid string, limit int) ([]domain.RankSnapshot, error) {
	records, err := r.queries.GetRankHistoryByPuuid(ctx, db.GetRankHistoryByPuuidParams{
		Puuid: puuid,
		Limit: int64(limit),
	})
	if err != nil {
		return nil, err
	}

	result := make([]domain.RankSnapshot, len(records))
	for i, rec := range records {
		result[i] = domain.RankSnapshot{
			ID:         rec.ID,
			Puuid:      rec.Puuid,
			QueueType:  rec.QueueType,
			State:      rec.State,
			Rank:       rec.Rank,
			Ordinal:    int(rec.Ordinal),
			ResolvedAt: rec.ResolvedAt,
			CreatedAt:  rec.CreatedAt,
		}
	}
	return result, nil
}
