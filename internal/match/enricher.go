package match

import (
	"lol-tracker/internal/api"
	"lol-tracker/internal/domain"
	"lol-tracker/internal/rank"
)

// Enrich builds the per-match view for the requesting player. ranks may be
// nil; participants without an entry get an empty tier. Enrich never fetches.
func Enrich(m *api.Match, requestingPuuid string, ranks map[string]rank.Resolved) *domain.MatchRecord {
	record := &domain.MatchRecord{
		MatchID:      m.Metadata.MatchID,
		GameDuration: m.Info.GameDuration,
		GameCreation: m.Info.GameCreation,
		GameMode:     m.Info.GameMode,
		QueueID:      m.Info.QueueID,
		Participants: make([]domain.MatchParticipant, 0, len(m.Info.Participants)),
		CurrentIndex: -1,
	}

	for _, p := range m.Info.Participants {
		var tier string
		if r, ok := ranks[p.Puuid]; ok {
			tier = r.Display()
		}
		record.Participants = append(record.Participants, toParticipant(p, tier))
	}

	for i := range record.Participants {
		if record.Participants[i].Puuid == requestingPuuid {
			record.CurrentIndex = i
			break
		}
	}

	return record
}

func toParticipant(p api.Participant, tier string) domain.MatchParticipant {
	mp := domain.MatchParticipant{
		Puuid:        p.Puuid,
		GameName:     p.RiotIDGameName,
		TagLine:      p.RiotIDTagline,
		ChampionName: p.ChampionName,
		ChampLevel:   p.ChampLevel,
		Kills:        p.Kills,
		Deaths:       p.Deaths,
		Assists:      p.Assists,
		CS:           p.TotalMinionsKilled + p.NeutralMinionsKilled,
		GoldEarned:   p.GoldEarned,
		Damage:       p.TotalDamageDealtToChampions,
		VisionScore:  p.VisionScore,
		Items:        [7]int{p.Item0, p.Item1, p.Item2, p.Item3, p.Item4, p.Item5, p.Item6},
		Summoner1ID:  p.Summoner1ID,
		Summoner2ID:  p.Summoner2ID,
		Win:          p.Win,
		TeamPosition: p.TeamPosition,
		TeamID:       p.TeamID,
		Tier:         tier,
	}
	// older games only carry the legacy summoner name
	if mp.GameName == "" {
		mp.GameName = p.SummonerName
	}

	if c := p.Challenges; c != nil {
		mp.KillParticipation = c.KillParticipation
		mp.GoldPerMinute = c.GoldPerMinute
		mp.LaneMinionsFirst10Minutes = int(c.LaneMinionsFirst10Minutes)
		mp.MaxCSAdvantageOnLaneOpponent = c.MaxCsAdvantageOnLaneOpponent
		mp.EarlyLaningPhaseGoldExpAdvantage = int(c.EarlyLaningPhaseGoldExpAdvantage)
		mp.LaningPhaseGoldExpAdvantage = int(c.LaningPhaseGoldExpAdvantage)
	}

	return mp
}
