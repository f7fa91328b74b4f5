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

// MatchRepository caches raw match payloads. Finished matches never change,
// so entries are written once and never refreshed.
type MatchRepository struct {
	queries *db.Queries
	logger  zerolog.Logger
}

func NewMatchRepository(queries *db.Queries, logger zerolog.Logger) *MatchRepository {
	return &MatchRepository{
		queries: queries,
		logger:  logger,
	}
}

func (r *MatchRepository) GetPayload(ctx context.Context, matchID string) ([]byte, error) {
	row, err := r.queries.GetMatchPayload(ctx, matchID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.Payload, nil
}

func (r *MatchRepository) SavePayload(ctx context.Context, matchID string, gameCreation int64, queueID int, payload []byte) error {
	err := r.queries.InsertMatchPayload(ctx, db.InsertMatchPayloadParams{
		MatchID:      matchID,
		GameCreation: gameCreation,
		QueueID:      int64(queueID),
		Payload:      payload,
		FetchedAt:    time.Now(),
	})
	if err != nil {
		r.logger.Error().Err(err).Str("match_id", matchID).Msg("failed to save match payload")
		return err
	}
	return nil
}
