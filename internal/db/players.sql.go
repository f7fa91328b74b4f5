package db

import (
	"context"
	"time"
)

const upsertPlayer = `
INSERT INTO players (puuid, game_name, tag_line, profile_icon_id, summoner_level, last_fetch_at, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (puuid) DO UPDATE SET
    game_name = excluded.game_name,
    tag_line = excluded.tag_line,
    profile_icon_id = excluded.profile_icon_id,
    summoner_level = excluded.summoner_level,
    last_fetch_at = excluded.last_fetch_at,
    updated_at = excluded.updated_at
`

type UpsertPlayerParams struct {
	Puuid         string
	GameName      string
	TagLine       string
	ProfileIconID int64
	SummonerLevel int64
	LastFetchAt   time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (q *Queries) UpsertPlayer(ctx context.Context, arg UpsertPlayerParams) error {
	_, err := q.db.ExecContext(ctx, upsertPlayer,
		arg.Puuid,
		arg.GameName,
		arg.TagLine,
		arg.ProfileIconID,
		arg.SummonerLevel,
		arg.LastFetchAt,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const getPlayerByPuuid = `
SELECT puuid, game_name, tag_line, profile_icon_id, summoner_level, last_fetch_at, created_at, updated_at
FROM players
WHERE puuid = ?
`

func (q *Queries) GetPlayerByPuuid(ctx context.Context, puuid string) (Player, error) {
	row := q.db.QueryRowContext(ctx, getPlayerByPuuid, puuid)
	var i Player
	err := row.Scan(
		&i.Puuid,
		&i.GameName,
		&i.TagLine,
		&i.ProfileIconID,
		&i.SummonerLevel,
		&i.LastFetchAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getPlayerByNameTag = `
SELECT puuid, game_name, tag_line, profile_icon_id, summoner_level, last_fetch_at, created_at, updated_at
FROM players
WHERE game_name = ? COLLATE NOCASE AND tag_line = ? COLLATE NOCASE
LIMIT 1
`

type GetPlayerByNameTagParams struct {
	GameName string
	TagLine  string
}

func (q *Queries) GetPlayerByNameTag(ctx context.Context, arg GetPlayerByNameTagParams) (Player, error) {
	row := q.db.QueryRowContext(ctx, getPlayerByNameTag, arg.GameName, arg.TagLine)
	var i Player
	err := row.Scan(
		&i.Puuid,
		&i.GameName,
		&i.TagLine,
		&i.ProfileIconID,
		&i.SummonerLevel,
		&i.LastFetchAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const searchPlayers = `
SELECT puuid, game_name, tag_line, profile_icon_id, summoner_level, last_fetch_at, created_at, updated_at
FROM players
WHERE game_name LIKE ? OR tag_line LIKE ?
ORDER BY last_fetch_at DESC
LIMIT ?
`

type SearchPlayersParams struct {
	GameName string
	TagLine  string
	Limit    int64
}

func (q *Queries) SearchPlayers(ctx context.Context, arg SearchPlayersParams) ([]Player, error) {
	rows, err := q.db.QueryContext(ctx, searchPlayers, arg.GameName, arg.TagLine, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Player
	for rows.Next() {
		var i Player
		if err := rows.Scan(
			&i.Puuid,
			&i.GameName,
			&i.TagLine,
			&i.ProfileIconID,
			&i.SummonerLevel,
			&i.LastFetchAt,
			&i.CreatedAt,
			&i.UpdatedAt,
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
