package api

type Account struct {
	Puuid    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

type Summoner struct {
	Puuid         string `json:"puuid"`
	ProfileIconID int    `json:"profileIconId"`
	RevisionDate  int64  `json:"revisionDate"`
	SummonerLevel int64  `json:"summonerLevel"`
}

type LeagueEntry struct {
	LeagueID     string `json:"leagueId"`
	Puuid        string `json:"puuid"`
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

type Match struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

type MatchMetadata struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"`
}

type MatchInfo struct {
	GameCreation     int64         `json:"gameCreation"`
	GameDuration     int64         `json:"gameDuration"`
	GameEndTimestamp int64         `json:"gameEndTimestamp"`
	GameMode         string        `json:"gameMode"`
	GameType         string        `json:"gameType"`
	QueueID          int           `json:"queueId"`
	Participants     []Participant `json:"participants"`
}

type Participant struct {
	Puuid                       string      `json:"puuid"`
	SummonerName                string      `json:"summonerName"`
	RiotIDGameName              string      `json:"riotIdGameName"`
	RiotIDTagline               string      `json:"riotIdTagline"`
	ChampionName                string      `json:"championName"`
	ChampionID                  int         `json:"championId"`
	ChampLevel                  int         `json:"champLevel"`
	Kills                       int         `json:"kills"`
	Deaths                      int         `json:"deaths"`
	Assists                     int         `json:"assists"`
	TotalMinionsKilled          int         `json:"totalMinionsKilled"`
	NeutralMinionsKilled        int         `json:"neutralMinionsKilled"`
	GoldEarned                  int         `json:"goldEarned"`
	TotalDamageDealtToChampions int         `json:"totalDamageDealtToChampions"`
	VisionScore                 int         `json:"visionScore"`
	Item0                       int         `json:"item0"`
	Item1                       int         `json:"item1"`
	Item2                       int         `json:"item2"`
	Item3                       int         `json:"item3"`
	Item4                       int         `json:"item4"`
	Item5                       int         `json:"item5"`
	Item6                       int         `json:"item6"`
	Summoner1ID                 int         `json:"summoner1Id"`
	Summoner2ID                 int         `json:"summoner2Id"`
	Win                         bool        `json:"win"`
	TeamPosition                string      `json:"teamPosition"`
	TeamID                      int         `json:"teamId"`
	Challenges                  *Challenges `json:"challenges"`
}

// Challenges is omitted by the API for some older and remade games. Every
// field is a float because the API does not keep integral values integral.
type Challenges struct {
	KillParticipation                float64 `json:"killParticipation"`
	GoldPerMinute                    float64 `json:"goldPerMinute"`
	LaneMinionsFirst10Minutes        float64 `json:"laneMinionsFirst10Minutes"`
	MaxCsAdvantageOnLaneOpponent     float64 `json:"maxCsAdvantageOnLaneOpponent"`
	EarlyLaningPhaseGoldExpAdvantage float64 `json:"earlyLaningPhaseGoldExpAdvantage"`
	LaningPhaseGoldExpAdvantage      float64 `json:"laningPhaseGoldExpAdvantage"`
}
