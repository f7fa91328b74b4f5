package server

import (
	"lol-tracker/internal/domain"
	"time"
)

type LeagueEntryResponse struct {
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	HotStreak    bool   `json:"hotStreak"`
	Veteran      bool   `json:"veteran"`
	FreshBlood   bool   `json:"freshBlood"`
	Inactive     bool   `json:"inactive"`
}

type SummonerResponse struct {
	Puuid         string                `json:"puuid"`
	GameName      string                `json:"gameName"`
	TagLine       string                `json:"tagLine"`
	ProfileIconID int                   `json:"profileIconId"`
	SummonerLevel int64                 `json:"summonerLevel"`
	Leagues       []LeagueEntryResponse `json:"leagues"`
}

type ParticipantResponse struct {
	Puuid                            string  `json:"puuid"`
	GameName                         string  `json:"gameName"`
	TagLine                          string  `json:"tagLine"`
	ChampionName                     string  `json:"championName"`
	ChampLevel                       int     `json:"champLevel"`
	Kills                            int     `json:"kills"`
	Deaths                           int     `json:"deaths"`
	Assists                          int     `json:"assists"`
	CS                               int     `json:"cs"`
	GoldEarned                       int     `json:"goldEarned"`
	TotalDamageDealtToChampions      int     `json:"totalDamageDealtToChampions"`
	VisionScore                      int     `json:"visionScore"`
	Item0                            int     `json:"item0"`
	Item1                            int     `json:"item1"`
	Item2                            int     `json:"item2"`
	Item3                            int     `json:"item3"`
	Item4                            int     `json:"item4"`
	Item5                            int     `json:"item5"`
	Item6                            int     `json:"item6"`
	Summoner1ID                      int     `json:"summoner1Id"`
	Summoner2ID                      int     `json:"summoner2Id"`
	Win                              bool    `json:"win"`
	TeamPosition                     string  `json:"teamPosition"`
	TeamID                           int     `json:"teamId"`
	KillParticipation                float64 `json:"killParticipation"`
	EarlyLaningPhaseGoldExpAdvantage int     `json:"earlyLaningPhaseGoldExpAdvantage"`
	LaningPhaseGoldExpAdvantage      int     `json:"laningPhaseGoldExpAdvantage"`
	LaneMinionsFirst10Minutes        int     `json:"laneMinionsFirst10Minutes"`
	MaxCSAdvantageOnLaneOpponent     float64 `json:"maxCsAdvantageOnLaneOpponent"`
	GoldPerMinute                    float64 `json:"goldPerMinute"`
	Tier                             string  `json:"tier,omitempty"`
}

type MatchResponse struct {
	MatchID       string                `json:"matchId"`
	GameDuration  int64                 `json:"gameDuration"`
	GameCreation  int64                 `json:"gameCreation"`
	GameMode      string                `json:"gameMode"`
	QueueID       int                   `json:"queueId"`
	AverageTier   string                `json:"averageTier,omitempty"`
	CurrentPlayer *ParticipantResponse  `json:"currentPlayer,omitempty"`
	Participants  []ParticipantResponse `json:"participants"`
}

type TiersResponse struct {
	Tiers       map[string]string `json:"tiers"`
	AverageTier string            `json:"averageTier"`
}

type PlayerSuggestion struct {
	Puuid         string `json:"puuid"`
	GameName      string `json:"gameName"`
	TagLine       string `json:"tagLine"`
	ProfileIconID int    `json:"profileIconId"`
	SummonerLevel int64  `json:"summonerLevel"`
}

type RankSnapshotResponse struct {
	State      string `json:"state"`
	Tier       string `json:"tier,omitempty"`
	Ordinal    int    `json:"ordinal,omitempty"`
	ResolvedAt string `json:"resolvedAt"`
}

func toSummonerResponse(s *domain.Summoner) *SummonerResponse {
	resp := &SummonerResponse{
		Puuid:         s.Puuid,
		GameName:      s.GameName,
		TagLine:       s.TagLine,
		ProfileIconID: s.ProfileIconID,
		SummonerLevel: s.SummonerLevel,
		Leagues:       make([]LeagueEntryResponse, 0, len(s.Leagues)),
	}
	for _, l := range s.Leagues {
		resp.Leagues = append(resp.Leagues, LeagueEntryResponse(l))
	}
	return resp
}

func toMatchResponses(records []*domain.MatchRecord) []MatchResponse {
	out := make([]MatchResponse, 0, len(records))
	for _, m := range records {
		resp := MatchResponse{
			MatchID:      m.MatchID,
			GameDuration: m.GameDuration,
			GameCreation: m.GameCreation,
			GameMode:     m.GameMode,
			QueueID:      m.QueueID,
			AverageTier:  m.AverageTier,
			Participants: make([]ParticipantResponse, 0, len(m.Participants)),
		}
		for _, p := range m.Participants {
			resp.Participants = append(resp.Participants, toParticipantResponse(p))
		}
		if cur, ok := m.CurrentPlayer(); ok {
			p := toParticipantResponse(*cur)
			resp.CurrentPlayer = &p
		}
		out = append(out, resp)
	}
	return out
}

func toParticipantResponse(p domain.MatchParticipant) ParticipantResponse {
	return ParticipantResponse{
		Puuid:                            p.Puuid,
		GameName:                         p.GameName,
		TagLine:                          p.TagLine,
		ChampionName:                     p.ChampionName,
		ChampLevel:                       p.ChampLevel,
		Kills:                            p.Kills,
		Deaths:                           p.Deaths,
		Assists:                          p.Assists,
		CS:                               p.CS,
		GoldEarned:                       p.GoldEarned,
		TotalDamageDealtToChampions:      p.Damage,
		VisionScore:                      p.VisionScore,
		Item0:                            p.Items[0],
		Item1:                            p.Items[1],
		Item2:                            p.Items[2],
		Item3:                            p.Items[3],
		Item4:                            p.Items[4],
		Item5:                            p.Items[5],
		Item6:                            p.Items[6],
		Summoner1ID:                      p.Summoner1ID,
		Summoner2ID:                      p.Summoner2ID,
		Win:                              p.Win,
		TeamPosition:                     p.TeamPosition,
		TeamID:                           p.TeamID,
		KillParticipation:                p.KillParticipation,
		EarlyLaningPhaseGoldExpAdvantage: p.EarlyLaningPhaseGoldExpAdvantage,
		LaningPhaseGoldExpAdvantage:      p.LaningPhaseGoldExpAdvantage,
		LaneMinionsFirst10Minutes:        p.LaneMinionsFirst10Minutes,
		MaxCSAdvantageOnLaneOpponent:     p.MaxCSAdvantageOnLaneOpponent,
		GoldPerMinute:                    p.GoldPerMinute,
		Tier:                             p.Tier,
	}
}

func toSuggestions(players []domain.Player) []PlayerSuggestion {
	out := make([]PlayerSuggestion, 0, len(players))
	for _, p := range players {
		out = append(out, PlayerSuggestion{
			Puuid:         p.Puuid,
			GameName:      p.GameName,
			TagLine:       p.TagLine,
			ProfileIconID: p.ProfileIconID,
			SummonerLevel: p.SummonerLevel,
		})
	}
	return out
}

func toRankSnapshots(snapshots []domain.RankSnapshot) []RankSnapshotResponse {
	out := make([]RankSnapshotResponse, 0, len(snapshots))
	for _, s := range snapshots {
		resp := RankSnapshotResponse{
			State:      s.State,
			ResolvedAt: s.ResolvedAt.UTC().Format(time.RFC3339),
		}
		if s.Ordinal > 0 {
			resp.Tier = s.Rank
			resp.Ordinal = s.Ordinal
		}
		out = append(out, resp)
	}
	return out
}
