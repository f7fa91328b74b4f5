package db

import (
	"context"
	"time"
)

const insertRankHistory = `
INSERT INTO rank_history (id, puuid, queue_type, state, rank, ordinal, resolved_at, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`

type InsertRankHistoryParams struct {
	ID         string
	Puuid      string
	QueueType  string
	State      string
	Rank       string
	Ordinal    int64
	ResolvedAt time.Time
	CreatedAt  time.Time
}

func (q *Queries) InsertRankHistory(ctx context.Context, arg InsertRankHistoryParams) error {
	_, err := q.db.ExecContext(ctx, insertRankHistory,
		arg.ID,
		arg.Puuid,
		arg.QueueType,
		arg.State,
		arg.Rank,
		arg.Ordinal,
		arg.ResolvedAt,
		arg.CreatedAt,
	)
	return err
}

const getRankHistoryByPuuid = `
SELECT id, puuid, queue_type, state, rank, ordinal, resolved_at, created_at
FROM rank_history
WHERE puuid = ?
ORDER BY resolved_at DESC
LIMIT ?
`

type GetRankHistoryByPuuidParams struct {
	Puuid string
	Limit int64
}

func (q *Queries) GetRankHistoryByPuuid(ctx context.Context, arg GetRankHistoryByPuuidParams) ([]RankHistory, error) {
	rows, err := q.db.QueryContext(ctx, getRankHistoryByPuuid, arg.Puuid, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []RankHistory
	for rows.Next() {
		var i RankHistory
		if err := rows.Scan(
			&i.ID,
			&i.Puuid,
			&i.QueueType,
			&i.State,
			&i.Rank,
			&i.Ordinal,
			&i.ResolvedAt,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getLatestRankHistory = `
SELECT id, puuid, queue_type, state, rank, ordinal, resolved_at, created_at
FROM rank_history
WHERE puuid = ? AND queue_type = ?
ORDER BY resolved_at DESC
LIMIT 1
`

type GetLatestRankHistoryParams struct {
	Puuid     string
	QueueType string
}

func (q *Queries) GetLatestRankHistory(ctx context.Context, arg GetLatestRankHistoryParams) (RankHistory, error) {
	row := q.db.QueryRowContext(ctx, getLatestRankHistory, arg.Puuid, arg.QueueType)
	var i RankHistory
	err := row.Scan(
		&i.ID,
		&i.Puuid,
		&i.QueueType,
		&i.State,
		&i.Rank,
		&i.Ordinal,
		&i.ResolvedAt,
		&i.CreatedAt,
	)
	return i, err
}
