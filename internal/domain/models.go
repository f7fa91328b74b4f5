package domain

import (
	"time"
)

type Player struct {
	Puuid         string
	GameName      string
	TagLine       string
	ProfileIconID int
	SummonerLevel int64
	LastFetchAt   time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type LeagueEntry struct {
	QueueType    string
	Tier         string
	Rank         string
	LeaguePoints int
	Wins         int
	Losses       int
	HotStreak    bool
	Veteran      bool
	FreshBlood   bool
	Inactive     bool
}

type Summoner struct {
	Player
	Leagues []LeagueEntry
}

type MatchParticipant struct {
	Puuid        string
	GameName     string
	TagLine      string
	ChampionName string
	ChampLevel   int
	Kills        int
	Deaths       int
	Assists      int
	CS           int
	GoldEarned   int
	Damage       int
	VisionScore  int
	Items        [7]int
	Summoner1ID  int
	Summoner2ID  int
	Win          bool
	TeamPosition string
	TeamID       int

	KillParticipation                float64
	GoldPerMinute                    float64
	LaneMinionsFirst10Minutes        int
	MaxCSAdvantageOnLaneOpponent     float64
	EarlyLaningPhaseGoldExpAdvantage int
	LaningPhaseGoldExpAdvantage      int

	// display form, "" when no rank was supplied
	Tier string
}

type MatchRecord struct {
	MatchID      string
	GameDuration int64
	GameCreation int64
	GameMode     string
	QueueID      int
	AverageTier  string
	Participants []MatchParticipant

	// index into Participants, -1 when the requesting player is not in the match
	CurrentIndex int
}

// CurrentPlayer returns a view into Participants, not a copy.
func (m *MatchRecord) CurrentPlayer() (*MatchParticipant, bool) {
	if m.CurrentIndex < 0 || m.CurrentIndex >= len(m.Participants) {
		return nil, false
	}
	return &m.Participants[m.CurrentIndex], true
}

type RankSnapshot struct {
	ID         string // nanoid
	Puuid      string
	QueueType  string
	State      string // "RANKED", "UNRANKED", "UNKNOWN"
	Rank       string // canonical upstream form, e.g. "GOLD II"
	Ordinal    int
	ResolvedAt time.Time
	CreatedAt  time.Time
}
