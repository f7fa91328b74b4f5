package server

import (
	"context"
	"lol-tracker/internal/domain"
	"lol-tracker/internal/service"
	"net/http"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
)

const TrackerServicePath = "/lol.v1.LeagueTracker/"

const (
	GetSummonerProcedure       = TrackerServicePath + "GetSummoner"
	GetMatchesProcedure        = TrackerServicePath + "GetMatches"
	GetTiersProcedure          = TrackerServicePath + "GetTiers"
	SearchSuggestionsProcedure = TrackerServicePath + "SearchSuggestions"
)

type SummonerFinder interface {
	GetSummoner(ctx context.Context, gameName, tagLine string, refresh bool) (*domain.Summoner, error)
	Search(ctx context.Context, query string) ([]domain.Player, error)
}

type MatchLister interface {
	GetMatches(ctx context.Context, q service.MatchQuery) ([]*domain.MatchRecord, error)
}

type TierResolver interface {
	GetTiers(ctx context.Context, puuids []string) (*service.TierResult, error)
	History(ctx context.Context, puuid string, limit int) ([]domain.RankSnapshot, error)
}

type TrackerServer struct {
	summoners SummonerFinder
	matches   MatchLister
	tiers     TierResolver
}

func NewTrackerServer(summoners *service.SummonerService, matches *service.MatchService, tiers *service.TierService) *TrackerServer {
	return newTrackerServer(summoners, matches, tiers)
}

func newTrackerServer(summoners SummonerFinder, matches MatchLister, tiers TierResolver) *TrackerServer {
	return &TrackerServer{summoners: summoners, matches: matches, tiers: tiers}
}

type GetSummonerRequest struct {
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
	Refresh  bool   `json:"refresh"`
}

type GetMatchesRequest struct {
	Puuid string `json:"puuid"`
	Start int    `json:"start"`
	Count int    `json:"count"`
	Queue int    `json:"queue,omitempty"`
	Type  string `json:"type,omitempty"`
}

type GetMatchesResponse struct {
	Matches []MatchResponse `json:"matches"`
}

type GetTiersRequest struct {
	Puuids []string `json:"puuids"`
}

type SearchSuggestionsRequest struct {
	Query string `json:"query"`
}

type SearchSuggestionsResponse struct {
	Suggestions []PlayerSuggestion `json:"suggestions"`
}

// Handlers returns the Connect procedures keyed by path.
func (s *TrackerServer) Handlers() map[string]http.Handler {
	opts := []connect.HandlerOption{connect.WithCodec(jsonCodec{})}
	return map[string]http.Handler{
		GetSummonerProcedure:       connect.NewUnaryHandler(GetSummonerProcedure, s.GetSummoner, opts...),
		GetMatchesProcedure:        connect.NewUnaryHandler(GetMatchesProcedure, s.GetMatches, opts...),
		GetTiersProcedure:          connect.NewUnaryHandler(GetTiersProcedure, s.GetTiers, opts...),
		SearchSuggestionsProcedure: connect.NewUnaryHandler(SearchSuggestionsProcedure, s.SearchSuggestions, opts...),
	}
}

func (s *TrackerServer) GetSummoner(ctx context.Context, req *connect.Request[GetSummonerRequest]) (*connect.Response[SummonerResponse], error) {
	summoner, err := s.summoners.GetSummoner(ctx, req.Msg.GameName, req.Msg.TagLine, req.Msg.Refresh)
	if err != nil {
		logFailure(ctx, err, "GetSummoner")
		return nil, toConnectError(err)
	}
	return connect.NewResponse(toSummonerResponse(summoner)), nil
}

func (s *TrackerServer) GetMatches(ctx context.Context, req *connect.Request[GetMatchesRequest]) (*connect.Response[GetMatchesResponse], error) {
	records, err := s.matches.GetMatches(ctx, service.MatchQuery{
		Puuid: req.Msg.Puuid,
		Start: req.Msg.Start,
		Count: req.Msg.Count,
		Queue: req.Msg.Queue,
		Type:  req.Msg.Type,
	})
	if err != nil {
		logFailure(ctx, err, "GetMatches")
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&GetMatchesResponse{Matches: toMatchResponses(records)}), nil
}

func (s *TrackerServer) GetTiers(ctx context.Context, req *connect.Request[GetTiersRequest]) (*connect.Response[TiersResponse], error) {
	result, err := s.tiers.GetTiers(ctx, req.Msg.Puuids)
	if err != nil {
		logFailure(ctx, err, "GetTiers")
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&TiersResponse{Tiers: result.Tiers, AverageTier: result.AverageTier}), nil
}

func (s *TrackerServer) SearchSuggestions(ctx context.Context, req *connect.Request[SearchSuggestionsRequest]) (*connect.Response[SearchSuggestionsResponse], error) {
	players, err := s.summoners.Search(ctx, req.Msg.Query)
	if err != nil {
		logFailure(ctx, err, "SearchSuggestions")
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&SearchSuggestionsResponse{Suggestions: toSuggestions(players)}), nil
}

// logFailure uses the request-scoped logger installed by the request id middleware.
func logFailure(ctx context.Context, err error, op string) {
	zerolog.Ctx(ctx).Warn().Err(err).Str("op", op).Msg("request failed")
}
