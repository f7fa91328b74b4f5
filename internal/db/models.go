package db

import (
	"time"
)

type Player struct {
	Puuid         string
	GameName      string
	TagLine       string
	ProfileIconID int64
	SummonerLevel int64
	LastFetchAt   time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type MatchPayload struct {
	MatchID      string
	GameCreation int64
	QueueID      int64
	Payload      []byte
	FetchedAt    time.Time
}

type RankHistory struct {
	ID         string
	Puuid      string
	QueueType  string
	State      string
	Rank       string
	Ordinal    int64
	ResolvedAt time.Time
	CreatedAt  time.Time
}
