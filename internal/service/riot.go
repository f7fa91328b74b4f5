package service

import (
	"context"
	"lol-tracker/internal/api"
)

// RiotAPI is the subset of *api.RiotClient the services call.
type RiotAPI interface {
	GetAccount(ctx context.Context, gameName, tagLine string) (*api.Account, error)
	GetSummoner(ctx context.Context, puuid string) (*api.Summoner, error)
	GetLeagueEntries(ctx context.Context, puuid string) ([]api.LeagueEntry, error)
	GetMatchIDs(ctx context.Context, puuid string, start, count, queue int, matchType string) ([]string, error)
	GetMatchRaw(ctx context.Context, matchID string) ([]byte, error)
}

var _ RiotAPI = (*api.RiotClient)(nil)
