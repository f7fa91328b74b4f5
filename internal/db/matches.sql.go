package db

import (
	"context"
	"time"
)

const insertMatchPayload = `
INSERT INTO match_payloads (match_id, game_creation, queue_id, payload, fetched_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (match_id) DO NOTHING
`

type InsertMatchPayloadParams struct {
	MatchID      string
	GameCreation int64
	QueueID      int64
	Payload      []byte
	FetchedAt    time.Time
}

func (q *Queries) InsertMatchPayload(ctx context.Context, arg InsertMatchPayloadParams) error {
	_, err := q.db.ExecContext(ctx, insertMatchPayload,
		arg.MatchID,
		arg.GameCreation,
		arg.QueueID,
		arg.Payload,
		arg.FetchedAt,
	)
	return err
}

const getMatchPayload = `
SELECT match_id, game_creation, queue_id, payload, fetched_at
FROM match_payloads
WHERE match_id = ?
`

func (q *Queries) GetMatchPayload(ctx context.Context, matchID string) (MatchPayload, error) {
	row := q.db.QueryRowContext(ctx, getMatchPayload, matchID)
	var i MatchPayload
	err := row.Scan(
		&i.MatchID,
		&i.GameCreation,
		&i.QueueID,
		&i.Payload,
		&i.FetchedAt,
	)
	return i, err
}
